package service

import (
	"context"
	"math"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	clientdomain "github.com/hscdigital/douanapp/internal/client/domain"
	"github.com/hscdigital/douanapp/internal/clock"
	dossierdomain "github.com/hscdigital/douanapp/internal/dossier/domain"
	"github.com/hscdigital/douanapp/internal/facture/domain"
	"github.com/hscdigital/douanapp/internal/format"
	tvdomain "github.com/hscdigital/douanapp/internal/typevehicule/domain"
)

type service struct {
	repo     domain.Repository
	dossiers dossierdomain.Repository
	clients  clientdomain.Repository
	types    tvdomain.Repository
	clk      clock.Clock
	log      *zap.Logger
}

func Provide(
	repo domain.Repository,
	dossiers dossierdomain.Repository,
	clients clientdomain.Repository,
	types tvdomain.Repository,
	clk clock.Clock,
	log *zap.Logger,
) domain.Service {
	return &service{
		repo:     repo,
		dossiers: dossiers,
		clients:  clients,
		types:    types,
		clk:      clk,
		log:      log,
	}
}

func (s *service) today() string {
	return s.clk.Now().Format(format.DateISO)
}

// refresh applies the lazy read-time transitions to one invoice: overdue
// installment flagging (persisted once) and the legacy expense migration
// (in-memory only, persisted on the next write).
func (s *service) refresh(ctx context.Context, f *domain.Facture) {
	if domain.FlagOverdueTranches(f, s.today()) {
		if err := s.repo.Save(ctx, f); err != nil {
			s.log.Warn("facture: échec de la persistance des tranches en retard",
				zap.String("facture_id", f.ID), zap.Error(err))
		}
	}
	domain.NormalizeDepenses(f, uuid.NewString)
}

func (s *service) List(ctx context.Context) []domain.Facture {
	factures := s.repo.List(ctx)
	for i := range factures {
		s.refresh(ctx, &factures[i])
	}
	return factures
}

func (s *service) GetByID(ctx context.Context, id string) (domain.Facture, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Facture{}, err
	}
	s.refresh(ctx, f)
	return *f, nil
}

func (s *service) GetByDossier(ctx context.Context, dossierID string) []domain.Facture {
	factures := s.repo.GetByDossier(ctx, dossierID)
	for i := range factures {
		s.refresh(ctx, &factures[i])
	}
	return factures
}

func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (s *service) Create(ctx context.Context, req domain.CreateFactureRequest) (domain.Facture, error) {
	if strings.TrimSpace(req.DossierID) == "" {
		return domain.Facture{}, domain.ErrDossierRequis
	}
	if req.PrixTotalTTC <= 0 || !validAmount(req.PrixTotalTTC) {
		return domain.Facture{}, domain.ErrPrixInvalide
	}
	if req.PrixAchat < 0 || req.Dedouanement < 0 || !validAmount(req.PrixAchat) || !validAmount(req.Dedouanement) {
		return domain.Facture{}, domain.ErrMontantInvalide
	}
	if req.ModePaiement != "" && !req.ModePaiement.Valid() {
		return domain.Facture{}, domain.ErrModeInvalide
	}

	dossier, err := s.dossiers.GetByID(ctx, req.DossierID)
	if err != nil {
		return domain.Facture{}, err
	}

	now := s.clk.Now()
	f := domain.Facture{
		ID:                newFactureID(now),
		DossierID:         dossier.ID,
		ReferenceVehicule: dossier.ReferenceVehicule,
		TypeVehiculeID:    dossier.TypeVehiculeID,
		VIN:               req.VIN,
		DateFacture:       req.DateFacture,
		PrixTotalTTC:      req.PrixTotalTTC,
		PrixAchat:         req.PrixAchat,
		Dedouanement:      req.Dedouanement,
		ModePaiement:      req.ModePaiement,
		PaysDestination:   req.PaysDestination,
	}
	if f.VIN == "" {
		f.VIN = dossier.ChassisCH
	}
	if f.DateFacture == "" {
		f.DateFacture = now.Format(format.DateISO)
	}
	if f.TypeVehiculeID != "" {
		if t, err := s.types.GetByID(ctx, f.TypeVehiculeID); err == nil {
			f.TypeVehicule = t.Label
		}
	}

	s.denormalizeClient(ctx, &f, req.ClientID, dossier)

	if len(req.Tranches) > 0 {
		tranches := make([]domain.Tranche, 0, len(req.Tranches))
		for i, in := range req.Tranches {
			if in.Montant <= 0 || !validAmount(in.Montant) {
				return domain.Facture{}, domain.ErrMontantInvalide
			}
			tranches = append(tranches, domain.Tranche{
				ID:            domain.NewTrancheID(f.ID, i+1),
				FactureID:     f.ID,
				NumeroTranche: i + 1,
				Montant:       in.Montant,
				DateEcheance:  in.DateEcheance,
				Statut:        domain.TrancheEnAttente,
			})
		}
		if err := domain.ValidateTrancheSum(f.PrixTotalTTC, tranches); err != nil {
			return domain.Facture{}, err
		}
		f.Tranches = tranches
	}

	domain.Recalculate(&f)
	if err := s.repo.Save(ctx, &f); err != nil {
		return domain.Facture{}, err
	}
	s.log.Info("facture créée",
		zap.String("facture_id", f.ID),
		zap.String("dossier_id", f.DossierID),
		zap.Float64("prix_total_ttc", f.PrixTotalTTC),
		zap.Int("tranches", len(f.Tranches)))
	return f, nil
}

// denormalizeClient copies the client identity onto the invoice so printed
// documents survive later directory edits. The explicit request client wins
// over the dossier's, and the dossier's legacy inline fields are the fallback.
func (s *service) denormalizeClient(ctx context.Context, f *domain.Facture, clientID string, dossier *dossierdomain.Dossier) {
	if clientID == "" {
		clientID = dossier.ClientID
	}
	if clientID != "" {
		if c, err := s.clients.GetByID(ctx, clientID); err == nil {
			f.ClientID = c.ID
			f.NomClient = c.Nom
			f.PrenomClient = c.Prenom
			f.Telephone = c.Telephone
			f.Adresse = c.Adresse
			f.Email = c.Email
			return
		}
	}
	f.NomClient = dossier.NomClient
	f.PrenomClient = dossier.PrenomClient
	f.Telephone = dossier.TelephoneClient
}

func (s *service) RecordPaiement(ctx context.Context, req domain.RecordPaiementRequest) (domain.Facture, error) {
	if req.Montant <= 0 || !validAmount(req.Montant) {
		return domain.Facture{}, domain.ErrMontantInvalide
	}
	if !req.ModePaiement.Valid() {
		return domain.Facture{}, domain.ErrModeInvalide
	}

	f, err := s.repo.GetByID(ctx, req.FactureID)
	if err != nil {
		return domain.Facture{}, err
	}
	domain.FlagOverdueTranches(f, s.today())

	date := req.Date
	if date == "" {
		date = s.today()
	}

	paiement := domain.Paiement{
		ID:           uuid.NewString(),
		FactureID:    f.ID,
		Montant:      req.Montant,
		Date:         date,
		ModePaiement: req.ModePaiement,
		DateCreation: s.clk.Now(),
	}

	if req.TrancheID != "" {
		tranche := domain.FindTranche(f, req.TrancheID)
		if tranche == nil {
			return domain.Facture{}, domain.ErrTrancheNotFound
		}
		if !domain.CanPayTranche(f, tranche) {
			return domain.Facture{}, domain.ErrOrdreTranches
		}
		mode := req.ModePaiement
		tranche.Statut = domain.TranchePayee
		tranche.DatePaiement = &date
		tranche.ModePaiement = &mode
		paiement.TrancheID = &tranche.ID
	}

	f.Paiements = append(f.Paiements, paiement)
	domain.Recalculate(f)

	if err := s.repo.Save(ctx, f); err != nil {
		return domain.Facture{}, err
	}
	s.log.Info("paiement enregistré",
		zap.String("facture_id", f.ID),
		zap.Float64("montant", req.Montant),
		zap.String("statut", string(f.Statut)))
	return *f, nil
}

func (s *service) UpdateCouts(ctx context.Context, req domain.UpdateCoutsRequest) (domain.Facture, error) {
	if req.PrixAchat < 0 || req.Dedouanement < 0 || !validAmount(req.PrixAchat) || !validAmount(req.Dedouanement) {
		return domain.Facture{}, domain.ErrMontantInvalide
	}

	f, err := s.repo.GetByID(ctx, req.FactureID)
	if err != nil {
		return domain.Facture{}, err
	}

	lignes := make([]domain.DepenseLigne, 0, len(req.DepensesLignes))
	for _, in := range req.DepensesLignes {
		if in.Montant < 0 || !validAmount(in.Montant) {
			return domain.Facture{}, domain.ErrMontantInvalide
		}
		id := in.ID
		if id == "" {
			id = uuid.NewString()
		}
		lignes = append(lignes, domain.DepenseLigne{
			ID:      id,
			Libelle: in.Libelle,
			Montant: in.Montant,
		})
	}

	f.PrixAchat = req.PrixAchat
	f.Dedouanement = req.Dedouanement
	f.DepensesLignes = lignes
	if len(lignes) > 0 {
		f.Depenses = 0
	}

	if err := s.repo.Save(ctx, f); err != nil {
		return domain.Facture{}, err
	}
	return *f, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("facture supprimée", zap.String("facture_id", id))
	return nil
}
