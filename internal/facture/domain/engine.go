package domain

import "fmt"

// TrancheSumTolerance absorbs floating-point drift when checking that
// installment amounts add up to the invoice total.
const TrancheSumTolerance = 0.01

// Recalculate derives montantPaye, montantRestant and statut from the payment
// list. It is the only code allowed to write these fields; they are stored
// for fast reads but never hand-edited.
func Recalculate(f *Facture) {
	total := 0.0
	for _, p := range f.Paiements {
		total += p.Montant
	}
	f.MontantPaye = total
	f.MontantRestant = f.PrixTotalTTC - total
	switch {
	case total >= f.PrixTotalTTC:
		f.Statut = FactureSoldee
	case total > 0:
		f.Statut = FacturePartiellementPayee
	default:
		f.Statut = FactureEnAttente
	}
}

// CanPayTranche reports whether the tranche is payable: not already paid, and
// every tranche with a strictly lower number already is. Installments are
// forced into chronological order.
func CanPayTranche(f *Facture, t *Tranche) bool {
	if t.Statut == TranchePayee {
		return false
	}
	for i := range f.Tranches {
		prev := &f.Tranches[i]
		if prev.NumeroTranche < t.NumeroTranche && prev.Statut != TranchePayee {
			return false
		}
	}
	return true
}

// FindTranche returns the tranche with the given id, nil when absent.
func FindTranche(f *Facture, trancheID string) *Tranche {
	for i := range f.Tranches {
		if f.Tranches[i].ID == trancheID {
			return &f.Tranches[i]
		}
	}
	return nil
}

// FlagOverdueTranches flips every pending tranche whose due date is strictly
// before today (ISO yyyy-mm-dd) to En_retard, reporting whether anything
// changed. Paid tranches are never touched.
func FlagOverdueTranches(f *Facture, today string) bool {
	changed := false
	for i := range f.Tranches {
		t := &f.Tranches[i]
		if t.Statut == TrancheEnAttente && t.DateEcheance != "" && t.DateEcheance < today {
			t.Statut = TrancheEnRetard
			changed = true
		}
	}
	return changed
}

// DepensesTotal sums the itemized expense lines; the legacy scalar only
// counts while no itemized lines exist.
func DepensesTotal(f *Facture) float64 {
	if len(f.DepensesLignes) > 0 {
		total := 0.0
		for _, l := range f.DepensesLignes {
			total += l.Montant
		}
		return total
	}
	return f.Depenses
}

// Benefice computes the profit: sale price minus acquisition cost, clearance
// cost and miscellaneous expenses.
func Benefice(f *Facture) float64 {
	return f.PrixTotalTTC - f.PrixAchat - f.Dedouanement - DepensesTotal(f)
}

// NormalizeDepenses upgrades the legacy scalar expense field to one itemized
// line when no lines exist yet. Returns whether a migration happened.
func NormalizeDepenses(f *Facture, newID func() string) bool {
	if len(f.DepensesLignes) > 0 || f.Depenses <= 0 {
		return false
	}
	f.DepensesLignes = []DepenseLigne{{
		ID:      newID(),
		Libelle: "Dépenses diverses",
		Montant: f.Depenses,
	}}
	return true
}

// ValidateTrancheSum checks that installment amounts add up to the invoice
// total, within tolerance. Only enforced when the schedule is created.
func ValidateTrancheSum(prixTotalTTC float64, tranches []Tranche) error {
	if len(tranches) == 0 {
		return nil
	}
	total := 0.0
	for _, t := range tranches {
		total += t.Montant
	}
	diff := total - prixTotalTTC
	if diff < -TrancheSumTolerance || diff > TrancheSumTolerance {
		return fmt.Errorf("%w: tranches %.2f, facture %.2f", ErrSommeTranches, total, prixTotalTTC)
	}
	return nil
}

// NewTrancheID derives the installment id from its parent invoice id and
// 1-based number.
func NewTrancheID(factureID string, numero int) string {
	return fmt.Sprintf("%s_T%02d", factureID, numero)
}
