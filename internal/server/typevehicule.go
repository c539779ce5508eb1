package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	tvdomain "github.com/hscdigital/douanapp/internal/typevehicule/domain"
)

type typeVehiculeRequest struct {
	Label string `json:"label"`
}

func (s *Server) ListTypesVehicule(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": s.typeSvc.List(c.Request.Context())})
}

func (s *Server) GetTypeVehiculeByID(c *gin.Context) {
	resp, err := s.typeSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CreateTypeVehicule(c *gin.Context) {
	var req typeVehiculeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.typeSvc.Create(c.Request.Context(), tvdomain.CreateTypeVehiculeRequest{Label: req.Label})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateTypeVehicule(c *gin.Context) {
	var req typeVehiculeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.typeSvc.Update(c.Request.Context(), tvdomain.UpdateTypeVehiculeRequest{
		ID:    strings.TrimSpace(c.Param("id")),
		Label: req.Label,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteTypeVehicule(c *gin.Context) {
	if err := s.typeSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}
