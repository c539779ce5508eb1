package server

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	facturedomain "github.com/hscdigital/douanapp/internal/facture/domain"
)

type trancheInput struct {
	Montant      float64 `json:"montant"`
	DateEcheance string  `json:"dateEcheance"`
}

type depenseLigneInput struct {
	ID      string  `json:"id"`
	Libelle string  `json:"libelle"`
	Montant float64 `json:"montant"`
}

type createFactureRequest struct {
	DossierID       string         `json:"dossierId"`
	ClientID        string         `json:"clientId"`
	VIN             string         `json:"vin"`
	DateFacture     string         `json:"dateFacture"`
	PrixTotalTTC    float64        `json:"prixTotalTTC"`
	PrixAchat       float64        `json:"prixAchat"`
	Dedouanement    float64        `json:"dedouanement"`
	ModePaiement    string         `json:"modePaiement"`
	PaysDestination string         `json:"paysDestination"`
	Tranches        []trancheInput `json:"tranches"`
}

func (s *Server) ListFactures(c *gin.Context) {
	ctx := c.Request.Context()
	if dossierID := strings.TrimSpace(c.Query("dossier_id")); dossierID != "" {
		c.JSON(http.StatusOK, gin.H{"data": s.factureSvc.GetByDossier(ctx, dossierID)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": s.factureSvc.List(ctx)})
}

func (s *Server) GetFactureByID(c *gin.Context) {
	resp, err := s.factureSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CreateFacture(c *gin.Context) {
	var req createFactureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	tranches := make([]facturedomain.TrancheInput, 0, len(req.Tranches))
	for _, t := range req.Tranches {
		tranches = append(tranches, facturedomain.TrancheInput{
			Montant:      t.Montant,
			DateEcheance: t.DateEcheance,
		})
	}

	resp, err := s.factureSvc.Create(c.Request.Context(), facturedomain.CreateFactureRequest{
		DossierID:       req.DossierID,
		ClientID:        req.ClientID,
		VIN:             req.VIN,
		DateFacture:     req.DateFacture,
		PrixTotalTTC:    req.PrixTotalTTC,
		PrixAchat:       req.PrixAchat,
		Dedouanement:    req.Dedouanement,
		ModePaiement:    facturedomain.ModePaiement(req.ModePaiement),
		PaysDestination: req.PaysDestination,
		Tranches:        tranches,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) RecordPaiement(c *gin.Context) {
	var req struct {
		TrancheID    string  `json:"trancheId"`
		Montant      float64 `json:"montant"`
		Date         string  `json:"date"`
		ModePaiement string  `json:"modePaiement"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.factureSvc.RecordPaiement(c.Request.Context(), facturedomain.RecordPaiementRequest{
		FactureID:    strings.TrimSpace(c.Param("id")),
		TrancheID:    req.TrancheID,
		Montant:      req.Montant,
		Date:         req.Date,
		ModePaiement: facturedomain.ModePaiement(req.ModePaiement),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateFactureCouts(c *gin.Context) {
	var req struct {
		PrixAchat      float64             `json:"prixAchat"`
		Dedouanement   float64             `json:"dedouanement"`
		DepensesLignes []depenseLigneInput `json:"depensesLignes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	lignes := make([]facturedomain.DepenseLigneInput, 0, len(req.DepensesLignes))
	for _, l := range req.DepensesLignes {
		lignes = append(lignes, facturedomain.DepenseLigneInput{
			ID:      l.ID,
			Libelle: l.Libelle,
			Montant: l.Montant,
		})
	}

	resp, err := s.factureSvc.UpdateCouts(c.Request.Context(), facturedomain.UpdateCoutsRequest{
		FactureID:      strings.TrimSpace(c.Param("id")),
		PrixAchat:      req.PrixAchat,
		Dedouanement:   req.Dedouanement,
		DepensesLignes: lignes,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteFacture(c *gin.Context) {
	if err := s.factureSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

func (s *Server) FacturePDF(c *gin.Context) {
	ctx := c.Request.Context()
	id := strings.TrimSpace(c.Param("id"))

	f, err := s.factureSvc.GetByID(ctx, id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	doc, err := s.pdfProvider.FactureDocument(ctx, f, s.entrepriseSvc.Get(ctx))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename=facture_"+f.ID+".pdf")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, doc); err != nil {
		s.log.Warn("facture pdf write failed", zap.Error(err))
	}
}
