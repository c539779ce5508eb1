package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": s.dashboardSvc.Stats(c.Request.Context())})
}
