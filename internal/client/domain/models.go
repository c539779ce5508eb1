package domain

import (
	"regexp"
	"strings"
	"time"
)

// Client is a person from the agency directory, referenced by dossiers,
// factures and locations.
type Client struct {
	ID               string    `json:"id"`
	Nom              string    `json:"nom"`
	Prenom           string    `json:"prenom"`
	Telephone        string    `json:"telephone"`
	Email            string    `json:"email,omitempty"`
	Adresse          string    `json:"adresse,omitempty"`
	DateCreation     time.Time `json:"dateCreation,omitzero"`
	DateModification time.Time `json:"dateModification,omitzero"`
}

// DisplayName renders "Prenom Nom" for lists and documents.
func (c Client) DisplayName() string {
	return strings.TrimSpace(c.Prenom + " " + c.Nom)
}

var telephoneRe = regexp.MustCompile(`^\+?[0-9]{8,15}$`)

var telephoneSeparators = strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "")

// ValidateTelephone accepts international numbers with common separators.
// Empty input is valid; required-ness is checked separately.
func ValidateTelephone(tel string) bool {
	if tel == "" {
		return true
	}
	return telephoneRe.MatchString(telephoneSeparators.Replace(tel))
}
