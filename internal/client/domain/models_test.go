package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTelephone(t *testing.T) {
	valid := []string{
		"",
		"+22370000000",
		"70 00 00 00",
		"+223-70-00-00-00",
		"(223) 70.00.00.00",
	}
	for _, tel := range valid {
		assert.True(t, ValidateTelephone(tel), "tel=%q", tel)
	}

	invalid := []string{
		"1234567",          // trop court
		"1234567890123456", // trop long
		"70 00 00 0a",
		"++22370000000",
	}
	for _, tel := range invalid {
		assert.False(t, ValidateTelephone(tel), "tel=%q", tel)
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Amadou Diallo", Client{Nom: "Diallo", Prenom: "Amadou"}.DisplayName())
	assert.Equal(t, "Diallo", Client{Nom: "Diallo"}.DisplayName())
}
