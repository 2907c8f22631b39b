package utils

import (
	"fmt"
	"time"

	"pitchbox/models"
)

// sampleBodyText is the fixed body every synthetic query carries.
const sampleBodyText = "We're seeking a psychologist's perspective on workplace burnout and coping strategies."

// SampleQueries produces limit synthetic newsletter queries, standing in
// for real inbox ingestion. Content is deterministic per call apart from
// the timestamps: sequential subject/sender numbering, status new, the
// deadline truncated to whole seconds.
func SampleQueries(limit int, now time.Time) []models.Query {
	deadline := now.Truncate(time.Second)
	queries := make([]models.Query, 0, limit)
	for i := 1; i <= limit; i++ {
		queries = append(queries, models.Query{
			Subject:         fmt.Sprintf("Call for psychology expert comment #%d", i),
			SenderEmail:     fmt.Sprintf("editor%d@newsletter.com", i),
			SenderName:      "Newsletter Editor",
			ReceivedAt:      now,
			Deadline:        &deadline,
			BodyText:        sampleBodyText,
			SourceMessageID: fmt.Sprintf("sim-%d", i),
			Status:          models.QueryStatusNew,
			Tags:            []string{"psych", "newsletter"},
		})
	}
	return queries
}
