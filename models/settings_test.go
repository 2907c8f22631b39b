package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSettingsAbsent(t *testing.T) {
	resolved := ResolveSettings(nil)

	assert.Equal(t, DefaultSettings(), resolved)
	assert.Equal(t, ToneFriendly, resolved.Tone)
	assert.Equal(t, DefaultIntroTemplate, resolved.IntroTemplate)
	assert.Equal(t, DefaultSignatureTemplate, resolved.SignatureTemplate)
}

func TestResolveSettingsFillsIdentityFields(t *testing.T) {
	stored := &Settings{
		OwnerID:   SettingsOwnerID,
		Tone:      ToneFormal,
		YourName:  "",
		YourTitle: "Clinical Psychologist",
	}

	resolved := ResolveSettings(stored)

	assert.Equal(t, DefaultYourName, resolved.YourName)
	assert.Equal(t, "Clinical Psychologist", resolved.YourTitle)
	assert.Equal(t, DefaultYourWebsite, resolved.YourWebsite)
}

func TestResolveSettingsKeepsStoredValuesAsIs(t *testing.T) {
	// A stored document with an unset tone or templates is used verbatim;
	// only identity fields fall back. The composer treats the blank tone
	// as the generic branch.
	stored := &Settings{OwnerID: SettingsOwnerID}

	resolved := ResolveSettings(stored)

	assert.Empty(t, resolved.Tone)
	assert.Empty(t, resolved.IntroTemplate)
	assert.Empty(t, resolved.SignatureTemplate)
}

func TestResolveSettingsDoesNotMutateStored(t *testing.T) {
	stored := &Settings{OwnerID: SettingsOwnerID}
	_ = ResolveSettings(stored)
	assert.Empty(t, stored.YourName)
}
