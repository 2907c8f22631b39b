package models

// CollectionSchema is a human-readable field map for one collection,
// exposed through GET /schema for the UI/database viewer.
type CollectionSchema struct {
	Name   string            `json:"name"`
	Schema map[string]string `json:"schema"`
}

// CollectionSchemas describes every collection the service writes.
func CollectionSchemas() []CollectionSchema {
	return []CollectionSchema{
		{
			Name: CollectionSettings,
			Schema: map[string]string{
				"owner_id":           "string (singleton identifier)",
				"gmail_email":        "string, optional (placeholder for future IMAP/SMTP)",
				"gmail_app_password": "string, optional (placeholder for future IMAP/SMTP)",
				"keywords":           "array of strings",
				"tone":               "string (formal|friendly|confident|concise)",
				"voice":              "string",
				"style_notes":        "string, optional",
				"intro_template":     "string ({name}, {your_name}, {your_title})",
				"signature_template": "string ({your_name}, {your_title}, {your_website})",
				"your_name":          "string, optional",
				"your_title":         "string, optional",
				"your_website":       "string, optional",
			},
		},
		{
			Name: CollectionQuery,
			Schema: map[string]string{
				"subject":           "string",
				"sender_email":      "string",
				"sender_name":       "string, optional",
				"received_at":       "datetime",
				"deadline":          "datetime, optional",
				"body_text":         "string",
				"source_message_id": "string, optional",
				"status":            "string (new|drafted|approved|sent|ignored)",
				"tags":              "array of strings",
			},
		},
		{
			Name: CollectionPitch,
			Schema: map[string]string{
				"query_id":   "string (soft reference to query)",
				"content":    "string",
				"style_used": "object {tone, voice}",
				"created_at": "datetime",
			},
		},
		{
			Name: CollectionEmailDraft,
			Schema: map[string]string{
				"query_id":   "string (soft reference to query)",
				"to_email":   "string",
				"subject":    "string",
				"body":       "string",
				"approved":   "bool",
				"created_at": "datetime",
				"updated_at": "datetime, optional",
			},
		},
		{
			Name: CollectionSent,
			Schema: map[string]string{
				"draft_id":   "string (soft reference to emaildraft)",
				"to":         "string",
				"subject":    "string",
				"body":       "string",
				"message_id": "string (simulated transport id)",
				"sent_at":    "datetime",
			},
		},
	}
}
