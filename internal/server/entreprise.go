package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	entreprisedomain "github.com/hscdigital/douanapp/internal/entreprise/domain"
)

func (s *Server) GetEntreprise(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": s.entrepriseSvc.Get(c.Request.Context())})
}

func (s *Server) UpdateEntreprise(c *gin.Context) {
	var req struct {
		Nom       string `json:"nom"`
		Adresse   string `json:"adresse"`
		Telephone string `json:"telephone"`
		Email     string `json:"email"`
		Logo      string `json:"logo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.entrepriseSvc.Update(c.Request.Context(), entreprisedomain.UpdateEntrepriseRequest{
		Nom:       req.Nom,
		Adresse:   req.Adresse,
		Telephone: req.Telephone,
		Email:     req.Email,
		Logo:      req.Logo,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}
