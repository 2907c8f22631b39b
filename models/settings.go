package models

// Collection names as created in the document store.
const (
	CollectionSettings   = "settings"
	CollectionQuery      = "query"
	CollectionPitch      = "pitch"
	CollectionEmailDraft = "emaildraft"
	CollectionSent       = "sent"
)

// SettingsOwnerID keys the singleton settings document.
const SettingsOwnerID = "owner"

// Supported pitch tones.
const (
	ToneFormal    = "formal"
	ToneFriendly  = "friendly"
	ToneConfident = "confident"
	ToneConcise   = "concise"
)

// Default style sheet used when no settings document exists. These are never
// persisted automatically; only an explicit PUT /settings writes the document.
const (
	DefaultVoice             = "First-person expert but approachable"
	DefaultIntroTemplate     = "Hi {name},\n\nThanks for reaching out. I'm {your_name}, a {your_title}."
	DefaultSignatureTemplate = "\n\nBest,\n{your_name}\n{your_title}\n{your_website}"
	DefaultYourName          = "Your Name"
	DefaultYourTitle         = "Licensed Psychologist"
	DefaultYourWebsite       = "yourwebsite.com"
)

// Settings is the singleton style/identity sheet for a single owner.
type Settings struct {
	OwnerID           string   `bson:"owner_id" json:"owner_id"`
	GmailEmail        string   `bson:"gmail_email,omitempty" json:"gmail_email,omitempty" validate:"omitempty,email"`
	GmailAppPassword  string   `bson:"gmail_app_password,omitempty" json:"-"`
	Keywords          []string `bson:"keywords" json:"keywords"`
	Tone              string   `bson:"tone,omitempty" json:"tone,omitempty" validate:"omitempty,oneof=formal friendly confident concise"`
	Voice             string   `bson:"voice,omitempty" json:"voice,omitempty"`
	StyleNotes        string   `bson:"style_notes,omitempty" json:"style_notes,omitempty"`
	IntroTemplate     string   `bson:"intro_template,omitempty" json:"intro_template,omitempty"`
	SignatureTemplate string   `bson:"signature_template,omitempty" json:"signature_template,omitempty"`
	YourName          string   `bson:"your_name,omitempty" json:"your_name,omitempty"`
	YourTitle         string   `bson:"your_title,omitempty" json:"your_title,omitempty"`
	YourWebsite       string   `bson:"your_website,omitempty" json:"your_website,omitempty"`
}

// DefaultSettings returns the embedded fallback style sheet.
func DefaultSettings() Settings {
	return Settings{
		OwnerID:           SettingsOwnerID,
		Keywords:          []string{"psych", "psychology", "mental health", "therapy", "behavioral"},
		Tone:              ToneFriendly,
		Voice:             DefaultVoice,
		IntroTemplate:     DefaultIntroTemplate,
		SignatureTemplate: DefaultSignatureTemplate,
		YourName:          DefaultYourName,
		YourTitle:         DefaultYourTitle,
		YourWebsite:       DefaultYourWebsite,
	}
}

// ResolveSettings turns an optional stored settings document into the
// effective one. A missing document yields the full default sheet; a stored
// document is used as-is except for the identity fields, which fall back to
// placeholders when blank. Absence of configuration is never an error.
func ResolveSettings(stored *Settings) Settings {
	if stored == nil {
		return DefaultSettings()
	}
	resolved := *stored
	if resolved.YourName == "" {
		resolved.YourName = DefaultYourName
	}
	if resolved.YourTitle == "" {
		resolved.YourTitle = DefaultYourTitle
	}
	if resolved.YourWebsite == "" {
		resolved.YourWebsite = DefaultYourWebsite
	}
	return resolved
}
