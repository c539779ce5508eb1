package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	locationdomain "github.com/hscdigital/douanapp/internal/location/domain"
)

type locationRequest struct {
	ReferenceCamion string              `json:"referenceCamion"`
	TypeCamionID    string              `json:"typeCamionId"`
	ClientID        string              `json:"clientId"`
	DateDebut       string              `json:"dateDebut"`
	DateFin         string              `json:"dateFin"`
	MontantTotal    float64             `json:"montantTotal"`
	Statut          string              `json:"statut"`
	Notes           string              `json:"notes"`
	DepensesLignes  []depenseLigneInput `json:"depensesLignes"`
}

func locationLignes(inputs []depenseLigneInput) []locationdomain.DepenseLigneInput {
	lignes := make([]locationdomain.DepenseLigneInput, 0, len(inputs))
	for _, l := range inputs {
		lignes = append(lignes, locationdomain.DepenseLigneInput{
			ID:      l.ID,
			Libelle: l.Libelle,
			Montant: l.Montant,
		})
	}
	return lignes
}

func (s *Server) ListLocations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": s.locationSvc.List(c.Request.Context())})
}

func (s *Server) GetLocationByID(c *gin.Context) {
	resp, err := s.locationSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CreateLocation(c *gin.Context) {
	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.locationSvc.Create(c.Request.Context(), locationdomain.CreateLocationRequest{
		ReferenceCamion: req.ReferenceCamion,
		TypeCamionID:    req.TypeCamionID,
		ClientID:        req.ClientID,
		DateDebut:       req.DateDebut,
		DateFin:         req.DateFin,
		MontantTotal:    req.MontantTotal,
		Statut:          locationdomain.StatutLocation(req.Statut),
		Notes:           req.Notes,
		DepensesLignes:  locationLignes(req.DepensesLignes),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateLocation(c *gin.Context) {
	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.locationSvc.Update(c.Request.Context(), locationdomain.UpdateLocationRequest{
		ID:              strings.TrimSpace(c.Param("id")),
		ReferenceCamion: req.ReferenceCamion,
		TypeCamionID:    req.TypeCamionID,
		ClientID:        req.ClientID,
		DateDebut:       req.DateDebut,
		DateFin:         req.DateFin,
		MontantTotal:    req.MontantTotal,
		Statut:          locationdomain.StatutLocation(req.Statut),
		Notes:           req.Notes,
		DepensesLignes:  locationLignes(req.DepensesLignes),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteLocation(c *gin.Context) {
	if err := s.locationSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}
