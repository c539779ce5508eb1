package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecalculateStatutTransitions(t *testing.T) {
	f := &Facture{ID: "INV-1", PrixTotalTTC: 1000000}

	Recalculate(f)
	assert.Equal(t, FactureEnAttente, f.Statut)
	assert.Equal(t, 0.0, f.MontantPaye)
	assert.Equal(t, 1000000.0, f.MontantRestant)

	f.Paiements = append(f.Paiements, Paiement{ID: "p1", FactureID: f.ID, Montant: 400000})
	Recalculate(f)
	assert.Equal(t, FacturePartiellementPayee, f.Statut)
	assert.Equal(t, 400000.0, f.MontantPaye)
	assert.Equal(t, 600000.0, f.MontantRestant)

	f.Paiements = append(f.Paiements, Paiement{ID: "p2", FactureID: f.ID, Montant: 600000})
	Recalculate(f)
	assert.Equal(t, FactureSoldee, f.Statut)
	assert.Equal(t, 1000000.0, f.MontantPaye)
	assert.Equal(t, 0.0, f.MontantRestant)
}

func TestRecalculateOverpaymentIsSoldee(t *testing.T) {
	f := &Facture{ID: "INV-1", PrixTotalTTC: 100}
	f.Paiements = []Paiement{{Montant: 150}}
	Recalculate(f)
	assert.Equal(t, FactureSoldee, f.Statut)
	assert.Equal(t, -50.0, f.MontantRestant)
}

func TestCanPayTrancheEnforcesOrder(t *testing.T) {
	f := &Facture{
		ID:           "INV-1",
		PrixTotalTTC: 100000,
		Tranches: []Tranche{
			{ID: "INV-1_T01", NumeroTranche: 1, Montant: 50000, Statut: TrancheEnAttente},
			{ID: "INV-1_T02", NumeroTranche: 2, Montant: 50000, Statut: TrancheEnAttente},
		},
	}

	assert.True(t, CanPayTranche(f, &f.Tranches[0]))
	assert.False(t, CanPayTranche(f, &f.Tranches[1]), "la tranche 2 ne doit pas être payable avant la 1")

	f.Tranches[0].Statut = TranchePayee
	assert.False(t, CanPayTranche(f, &f.Tranches[0]), "une tranche payée ne se repaye pas")
	assert.True(t, CanPayTranche(f, &f.Tranches[1]))
}

func TestCanPayTrancheOverdueStillBlocksOrder(t *testing.T) {
	f := &Facture{
		Tranches: []Tranche{
			{ID: "t1", NumeroTranche: 1, Statut: TrancheEnRetard},
			{ID: "t2", NumeroTranche: 2, Statut: TrancheEnAttente},
		},
	}
	// En_retard is not Payee, so tranche 2 stays blocked.
	assert.False(t, CanPayTranche(f, &f.Tranches[1]))
	assert.True(t, CanPayTranche(f, &f.Tranches[0]))
}

func TestFlagOverdueTranches(t *testing.T) {
	f := &Facture{
		Tranches: []Tranche{
			{ID: "t1", NumeroTranche: 1, DateEcheance: "2024-01-01", Statut: TrancheEnAttente},
			{ID: "t2", NumeroTranche: 2, DateEcheance: "2024-06-01", Statut: TrancheEnAttente},
			{ID: "t3", NumeroTranche: 3, DateEcheance: "2024-06-01", Statut: TranchePayee},
			{ID: "t4", NumeroTranche: 4, DateEcheance: "", Statut: TrancheEnAttente},
		},
	}

	changed := FlagOverdueTranches(f, "2024-07-15")
	assert.True(t, changed)
	assert.Equal(t, TrancheEnRetard, f.Tranches[0].Statut)
	assert.Equal(t, TrancheEnRetard, f.Tranches[1].Statut)
	assert.Equal(t, TranchePayee, f.Tranches[2].Statut, "une tranche payée n'est jamais retouchée")
	assert.Equal(t, TrancheEnAttente, f.Tranches[3].Statut, "sans échéance, pas de retard")

	assert.False(t, FlagOverdueTranches(f, "2024-07-15"), "deuxième passage sans changement")
}

func TestFlagOverdueTranchesDueTodayIsNotOverdue(t *testing.T) {
	f := &Facture{
		Tranches: []Tranche{{NumeroTranche: 1, DateEcheance: "2024-07-15", Statut: TrancheEnAttente}},
	}
	assert.False(t, FlagOverdueTranches(f, "2024-07-15"))
	assert.Equal(t, TrancheEnAttente, f.Tranches[0].Statut)
}

func TestBenefice(t *testing.T) {
	f := &Facture{
		PrixTotalTTC: 1000000,
		PrixAchat:    600000,
		Dedouanement: 100000,
		DepensesLignes: []DepenseLigne{
			{ID: "d1", Libelle: "Transport", Montant: 20000},
		},
	}
	assert.Equal(t, 280000.0, Benefice(f))
}

func TestDepensesTotalLegacyFallback(t *testing.T) {
	f := &Facture{Depenses: 15000}
	assert.Equal(t, 15000.0, DepensesTotal(f))

	// Itemized lines supersede the legacy scalar entirely.
	f.DepensesLignes = []DepenseLigne{{Montant: 5000}}
	assert.Equal(t, 5000.0, DepensesTotal(f))
}

func TestNormalizeDepenses(t *testing.T) {
	f := &Facture{Depenses: 30000}
	migrated := NormalizeDepenses(f, func() string { return "gen-1" })
	assert.True(t, migrated)
	assert.Len(t, f.DepensesLignes, 1)
	assert.Equal(t, "gen-1", f.DepensesLignes[0].ID)
	assert.Equal(t, 30000.0, f.DepensesLignes[0].Montant)

	assert.False(t, NormalizeDepenses(f, func() string { return "gen-2" }), "migration unique")

	empty := &Facture{}
	assert.False(t, NormalizeDepenses(empty, func() string { return "x" }))
	assert.Empty(t, empty.DepensesLignes)
}

func TestValidateTrancheSum(t *testing.T) {
	tranches := []Tranche{{Montant: 500000}, {Montant: 500000}}
	assert.NoError(t, ValidateTrancheSum(1000000, tranches))

	// Within the 0.01 tolerance.
	assert.NoError(t, ValidateTrancheSum(1000000.005, tranches))

	err := ValidateTrancheSum(1100000, tranches)
	assert.ErrorIs(t, err, ErrSommeTranches)

	assert.NoError(t, ValidateTrancheSum(1000000, nil), "sans tranches, pas de contrainte")
}

func TestNewTrancheID(t *testing.T) {
	assert.Equal(t, "INV-20240101-abcd1234_T01", NewTrancheID("INV-20240101-abcd1234", 1))
	assert.Equal(t, "INV-20240101-abcd1234_T12", NewTrancheID("INV-20240101-abcd1234", 12))
}
