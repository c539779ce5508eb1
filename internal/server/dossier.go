package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	dossierdomain "github.com/hscdigital/douanapp/internal/dossier/domain"
)

type dossierRequest struct {
	NumeroCH          string `json:"numeroCH"`
	ChassisCH         string `json:"chassisCH"`
	Annee             string `json:"annee"`
	ReferenceVehicule string `json:"referenceVehicule"`
	TypeVehiculeID    string `json:"typeVehiculeId"`
	ClientID          string `json:"clientId"`
	Statut            string `json:"statut"`
	Notes             string `json:"notes"`
}

func (s *Server) ListDossiers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": s.dossierSvc.List(c.Request.Context())})
}

func (s *Server) GetDossierByID(c *gin.Context) {
	resp, err := s.dossierSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CreateDossier(c *gin.Context) {
	var req dossierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.dossierSvc.Create(c.Request.Context(), dossierdomain.CreateDossierRequest{
		NumeroCH:          req.NumeroCH,
		ChassisCH:         req.ChassisCH,
		Annee:             req.Annee,
		ReferenceVehicule: req.ReferenceVehicule,
		TypeVehiculeID:    req.TypeVehiculeID,
		ClientID:          req.ClientID,
		Statut:            dossierdomain.StatutDossier(req.Statut),
		Notes:             req.Notes,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateDossier(c *gin.Context) {
	var req dossierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.dossierSvc.Update(c.Request.Context(), dossierdomain.UpdateDossierRequest{
		ID:                strings.TrimSpace(c.Param("id")),
		NumeroCH:          req.NumeroCH,
		ChassisCH:         req.ChassisCH,
		Annee:             req.Annee,
		ReferenceVehicule: req.ReferenceVehicule,
		TypeVehiculeID:    req.TypeVehiculeID,
		ClientID:          req.ClientID,
		Statut:            dossierdomain.StatutDossier(req.Statut),
		Notes:             req.Notes,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ChangeDossierStatut(c *gin.Context) {
	var req struct {
		Statut string `json:"statut"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.dossierSvc.ChangeStatut(c.Request.Context(),
		strings.TrimSpace(c.Param("id")), dossierdomain.StatutDossier(req.Statut))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteDossier(c *gin.Context) {
	if err := s.dossierSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}
