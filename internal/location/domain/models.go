package domain

import "time"

type StatutLocation string

const (
	LocationEnCours  StatutLocation = "En_cours"
	LocationTerminee StatutLocation = "Terminee"
	LocationAnnulee  StatutLocation = "Annulee"
)

var statutLabels = map[StatutLocation]string{
	LocationEnCours:  "En cours",
	LocationTerminee: "Terminée",
	LocationAnnulee:  "Annulée",
}

func (s StatutLocation) Label() string {
	if label, ok := statutLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s StatutLocation) Valid() bool {
	_, ok := statutLabels[s]
	return ok
}

// DepenseLigne is one itemized expense of a rental contract.
type DepenseLigne struct {
	ID      string  `json:"id"`
	Libelle string  `json:"libelle"`
	Montant float64 `json:"montant"`
}

// Location is a truck-rental contract.
type Location struct {
	ID              string `json:"id"`
	ReferenceCamion string `json:"referenceCamion"`
	TypeCamionID    string `json:"typeCamionId,omitempty"`
	TypeCamion      string `json:"typeCamion,omitempty"`
	ClientID        string `json:"clientId,omitempty"`

	DateDebut    string  `json:"dateDebut"`
	DateFin      string  `json:"dateFin"`
	MontantTotal float64 `json:"montantTotal"`

	// Depenses is the legacy aggregated expense amount, superseded by
	// DepensesLignes whenever any itemized lines exist.
	Depenses       float64        `json:"depenses,omitempty"`
	DepensesLignes []DepenseLigne `json:"depensesLignes,omitempty"`

	Statut StatutLocation `json:"statut"`
	Notes  string         `json:"notes"`

	DateCreation     time.Time `json:"dateCreation,omitzero"`
	DateModification time.Time `json:"dateModification,omitzero"`

	// Legacy inline client identity, superseded by ClientID.
	NomClient       string `json:"nomClient,omitempty"`
	PrenomClient    string `json:"prenomClient,omitempty"`
	TelephoneClient string `json:"telephoneClient,omitempty"`
}

// DepensesTotal sums the itemized lines, falling back to the legacy scalar
// while no lines exist.
func DepensesTotal(l *Location) float64 {
	if len(l.DepensesLignes) > 0 {
		total := 0.0
		for _, d := range l.DepensesLignes {
			total += d.Montant
		}
		return total
	}
	return l.Depenses
}

// Benefice is the rental profit: contract amount minus expenses.
func Benefice(l *Location) float64 {
	return l.MontantTotal - DepensesTotal(l)
}
