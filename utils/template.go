package utils

import (
	"regexp"

	"pitchbox/models"
)

var placeholderPattern = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// RenderTemplate substitutes {placeholder} tokens from values. The
// vocabulary is allow-listed: a token missing from values fails with a
// TemplateError instead of passing through silently.
func RenderTemplate(template string, values map[string]string) (string, error) {
	var renderErr error
	rendered := placeholderPattern.ReplaceAllStringFunc(template, func(token string) string {
		name := token[1 : len(token)-1]
		value, ok := values[name]
		if !ok {
			if renderErr == nil {
				renderErr = &models.TemplateError{Placeholder: name}
			}
			return token
		}
		return value
	})
	if renderErr != nil {
		return "", renderErr
	}
	return rendered, nil
}
