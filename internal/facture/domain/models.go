package domain

import "time"

type StatutFacture string

const (
	FactureEnAttente          StatutFacture = "En_attente"
	FacturePartiellementPayee StatutFacture = "Partiellement_payee"
	FactureSoldee             StatutFacture = "Soldee"
)

var factureLabels = map[StatutFacture]string{
	FactureEnAttente:          "En attente",
	FacturePartiellementPayee: "Partiellement payée",
	FactureSoldee:             "Soldée",
}

func (s StatutFacture) Label() string {
	if label, ok := factureLabels[s]; ok {
		return label
	}
	return string(s)
}

type StatutTranche string

const (
	TrancheEnAttente StatutTranche = "En_attente"
	TranchePayee     StatutTranche = "Payee"
	TrancheEnRetard  StatutTranche = "En_retard"
)

var trancheLabels = map[StatutTranche]string{
	TrancheEnAttente: "En attente",
	TranchePayee:     "Payée",
	TrancheEnRetard:  "En retard",
}

func (s StatutTranche) Label() string {
	if label, ok := trancheLabels[s]; ok {
		return label
	}
	return string(s)
}

type ModePaiement string

const (
	ModeEspeces     ModePaiement = "Especes"
	ModeVirement    ModePaiement = "Virement"
	ModeMobileMoney ModePaiement = "MobileMoney"
	ModeCheque      ModePaiement = "Cheque"
)

var modeLabels = map[ModePaiement]string{
	ModeEspeces:     "Espèces",
	ModeVirement:    "Virement bancaire",
	ModeMobileMoney: "Mobile Money",
	ModeCheque:      "Chèque",
}

func (m ModePaiement) Label() string {
	if label, ok := modeLabels[m]; ok {
		return label
	}
	return string(m)
}

func (m ModePaiement) Valid() bool {
	_, ok := modeLabels[m]
	return ok
}

// DepenseLigne is one itemized miscellaneous expense of a facture.
type DepenseLigne struct {
	ID      string  `json:"id"`
	Libelle string  `json:"libelle"`
	Montant float64 `json:"montant"`
}

// Tranche is one scheduled installment of the invoice total. Tranches are
// numbered from 1 and must be paid in that order.
type Tranche struct {
	ID            string        `json:"id"`
	FactureID     string        `json:"factureId"`
	NumeroTranche int           `json:"numeroTranche"`
	Montant       float64       `json:"montant"`
	DateEcheance  string        `json:"dateEcheance"`
	DatePaiement  *string       `json:"datePaiement"`
	Statut        StatutTranche `json:"statut"`
	ModePaiement  *ModePaiement `json:"modePaiement"`
}

// Paiement is one recorded payment, optionally tied to a tranche.
// Payments are append-only; they are never edited or removed.
type Paiement struct {
	ID           string       `json:"id"`
	FactureID    string       `json:"factureId"`
	TrancheID    *string      `json:"trancheId"`
	Montant      float64      `json:"montant"`
	Date         string       `json:"date"`
	ModePaiement ModePaiement `json:"modePaiement"`
	DateCreation time.Time    `json:"dateCreation,omitzero"`
}

// Facture is a vehicle sales invoice. Tranches and paiements are embedded:
// they move and are deleted atomically with the invoice record.
type Facture struct {
	ID           string `json:"id"`
	DossierID    string `json:"dossierId"`
	ClientID     string `json:"clientId,omitempty"`
	NomClient    string `json:"nomClient,omitempty"`
	PrenomClient string `json:"prenomClient,omitempty"`
	Telephone    string `json:"telephone,omitempty"`
	Adresse      string `json:"adresse,omitempty"`
	Email        string `json:"email,omitempty"`

	ReferenceVehicule string `json:"referenceVehicule"`
	TypeVehiculeID    string `json:"typeVehiculeId,omitempty"`
	TypeVehicule      string `json:"typeVehicule,omitempty"`
	VIN               string `json:"vin"`

	DateFacture  string  `json:"dateFacture"`
	PrixTotalTTC float64 `json:"prixTotalTTC"`
	PrixAchat    float64 `json:"prixAchat,omitempty"`
	Dedouanement float64 `json:"dedouanement,omitempty"`

	// Depenses is the legacy aggregated expense amount, superseded by
	// DepensesLignes whenever any itemized lines exist.
	Depenses       float64        `json:"depenses,omitempty"`
	DepensesLignes []DepenseLigne `json:"depensesLignes,omitempty"`

	// MontantPaye, MontantRestant and Statut are derived from Paiements by
	// Recalculate, the single legal writer of these fields.
	MontantPaye    float64       `json:"montantPaye"`
	MontantRestant float64       `json:"montantRestant"`
	Statut         StatutFacture `json:"statut"`

	ModePaiement    ModePaiement `json:"modePaiement"`
	PaysDestination string       `json:"paysDestination,omitempty"`

	Tranches  []Tranche  `json:"tranches"`
	Paiements []Paiement `json:"paiements"`

	DateCreation     time.Time `json:"dateCreation,omitzero"`
	DateModification time.Time `json:"dateModification,omitzero"`
}
