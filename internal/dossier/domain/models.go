package domain

import "time"

// StatutDossier is one of the five administrative customs-clearance stages.
// Any stage is reachable from any other; the order below is informational,
// for progress display only.
type StatutDossier string

const (
	StatutLance            StatutDossier = "Lance"
	StatutProvisoireEntree StatutDossier = "Provisoire_Entree"
	StatutProvisoireSortie StatutDossier = "Provisoire_Sortie"
	StatutCarteGriseEntree StatutDossier = "CarteGrise_Entree"
	StatutCarteGriseSortie StatutDossier = "CarteGrise_Sortie"
)

// WorkflowOrdre lists the stages in administrative order.
var WorkflowOrdre = []StatutDossier{
	StatutLance,
	StatutProvisoireEntree,
	StatutProvisoireSortie,
	StatutCarteGriseEntree,
	StatutCarteGriseSortie,
}

var statutLabels = map[StatutDossier]string{
	StatutLance:            "Lancé",
	StatutProvisoireEntree: "Provisoire (Entrée)",
	StatutProvisoireSortie: "Provisoire (Sortie)",
	StatutCarteGriseEntree: "Carte grise (Entrée)",
	StatutCarteGriseSortie: "Carte grise (Sortie)",
}

func (s StatutDossier) Label() string {
	if label, ok := statutLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s StatutDossier) Valid() bool {
	_, ok := statutLabels[s]
	return ok
}

// WorkflowIndex returns the 0-based position of s in the workflow, -1 when
// unknown.
func WorkflowIndex(s StatutDossier) int {
	for i, v := range WorkflowOrdre {
		if v == s {
			return i
		}
	}
	return -1
}

// Dossier is a customs case file tracking one vehicle through clearance.
type Dossier struct {
	ID                string        `json:"id"`
	NumeroCH          string        `json:"numeroCH"`
	ChassisCH         string        `json:"chassisCH,omitempty"`
	Annee             string        `json:"annee,omitempty"`
	ReferenceVehicule string        `json:"referenceVehicule"`
	TypeVehiculeID    string        `json:"typeVehiculeId,omitempty"`
	// TypeVehicule is the display label resolved at read time from
	// TypeVehiculeID; it is never the linkage key.
	TypeVehicule      string        `json:"typeVehicule,omitempty"`
	ClientID          string        `json:"clientId,omitempty"`
	Statut            StatutDossier `json:"statut"`
	Notes             string        `json:"notes"`
	DateCreation      time.Time     `json:"dateCreation,omitzero"`
	DateModification  time.Time     `json:"dateModification,omitzero"`

	// Legacy inline client identity, kept only for rows imported before
	// the client directory existed. ClientID supersedes these.
	NomClient       string `json:"nomClient,omitempty"`
	PrenomClient    string `json:"prenomClient,omitempty"`
	TelephoneClient string `json:"telephoneClient,omitempty"`
}
