package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeadlineExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name     string
		deadline *time.Time
		want     bool
	}{
		{name: "no deadline never expires", deadline: nil, want: false},
		{name: "past deadline expired", deadline: &past, want: true},
		{name: "future deadline not expired", deadline: &future, want: false},
		{name: "deadline equal to now not expired", deadline: &now, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Query{Deadline: tt.deadline}
			assert.Equal(t, tt.want, q.DeadlineExpired(now))
		})
	}
}
