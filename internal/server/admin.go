package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hscdigital/douanapp/internal/exporter"
)

// WipeData removes every stored collection and the singleton, irreversibly.
func (s *Server) WipeData(c *gin.Context) {
	if err := s.store.Clear(c.Request.Context()); err != nil {
		AbortWithError(c, err)
		return
	}
	s.log.Warn("toutes les données ont été effacées")
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"wiped": true}})
}

func (s *Server) ExportEcheancier(c *gin.Context) {
	id := c.Param("id")
	s.exportWorkbook(c, exporter.FilenameEcheancier(id), func() error {
		return s.exporterSvc.Echeancier(c.Request.Context(), id, c.Writer)
	})
}
