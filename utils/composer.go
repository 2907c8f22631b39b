package utils

import (
	"strings"

	"pitchbox/models"
)

// PlaceholderPitch is substituted into a draft when the query has no
// generated pitch yet.
const PlaceholderPitch = "See below for my quick take: ..."

// defaultRecipientName greets senders whose name is unknown.
const defaultRecipientName = "there"

// Tone-conditioned closing sentences. Anything outside the two recognized
// tones (including concise, unset or unknown values) gets the fallback.
const (
	closingFormal    = "I would be pleased to provide a concise, research-informed statement."
	closingConfident = "I regularly comment for national outlets and can deliver a crisp quote."
	closingFallback  = "Happy to share a tight quote that serves your readers."
)

// ComposePitchContent builds the pitch text for a query: fixed bullet
// points plus one closing sentence selected by exact match on the tone.
func ComposePitchContent(query models.Query, settings models.Settings) string {
	lines := []string{
		"Regarding: " + query.Subject,
		"",
		"Key points I can contribute:",
		"- Evidence-based insights on burnout and coping",
		"- Practical takeaways grounded in CBT and behavioral science",
		"- Availability for quick follow-up if needed",
	}

	switch settings.Tone {
	case models.ToneFormal:
		lines = append(lines, closingFormal)
	case models.ToneConfident:
		lines = append(lines, closingConfident)
	default:
		lines = append(lines, closingFallback)
	}

	return strings.Join(lines, "\n")
}

// ComposeDraftBody renders intro and signature templates around the pitch
// content and concatenates them into the final email body. Composition is a
// pure function of its inputs: identical arguments produce an identical
// body. Unknown placeholders in either template surface as a TemplateError.
func ComposeDraftBody(query models.Query, pitchContent string, settings models.Settings) (string, error) {
	if pitchContent == "" {
		pitchContent = PlaceholderPitch
	}

	name := query.SenderName
	if name == "" {
		name = defaultRecipientName
	}

	intro, err := RenderTemplate(settings.IntroTemplate, map[string]string{
		"name":       name,
		"your_name":  settings.YourName,
		"your_title": settings.YourTitle,
	})
	if err != nil {
		return "", err
	}

	signature, err := RenderTemplate(settings.SignatureTemplate, map[string]string{
		"your_name":    settings.YourName,
		"your_title":   settings.YourTitle,
		"your_website": settings.YourWebsite,
	})
	if err != nil {
		return "", err
	}

	return intro + "\n\n" + pitchContent + signature, nil
}
