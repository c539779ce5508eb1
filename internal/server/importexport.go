package server

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// readUpload pulls the uploaded file out of the multipart form field "file".
func readUpload(c *gin.Context) (string, []byte, error) {
	header, err := c.FormFile("file")
	if err != nil {
		return "", nil, err
	}
	f, err := header.Open()
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", nil, err
	}
	return header.Filename, data, nil
}

func (s *Server) PreviewImport(c *gin.Context) {
	filename, data, err := readUpload(c)
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	dossiers, err := s.importerSvc.Parse(filename, data)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dossiers})
}

// CommitImport parses the file again server-side and stores the result, so a
// tampered preview can never be written back.
func (s *Server) CommitImport(c *gin.Context) {
	filename, data, err := readUpload(c)
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	replace, _ := strconv.ParseBool(c.Query("replace"))

	dossiers, err := s.importerSvc.Parse(filename, data)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	stored, err := s.importerSvc.Commit(c.Request.Context(), dossiers, replace)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"imported": stored, "replace": replace}})
}

func (s *Server) exportWorkbook(c *gin.Context, filename string, write func() error) {
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	if err := write(); err != nil {
		AbortWithError(c, err)
	}
}

func (s *Server) ExportClients(c *gin.Context) {
	s.exportWorkbook(c, "clients.xlsx", func() error {
		return s.exporterSvc.Clients(c.Request.Context(), c.Writer)
	})
}

func (s *Server) ExportDossiers(c *gin.Context) {
	s.exportWorkbook(c, "dossiers.xlsx", func() error {
		return s.exporterSvc.Dossiers(c.Request.Context(), c.Writer)
	})
}

func (s *Server) ExportLocations(c *gin.Context) {
	s.exportWorkbook(c, "locations.xlsx", func() error {
		return s.exporterSvc.Locations(c.Request.Context(), c.Writer)
	})
}

func (s *Server) ExportFactures(c *gin.Context) {
	s.exportWorkbook(c, "factures.xlsx", func() error {
		return s.exporterSvc.Factures(c.Request.Context(), c.Writer)
	})
}

func (s *Server) ExportTemplate(c *gin.Context) {
	s.exportWorkbook(c, "template_dossiers.xlsx", func() error {
		return s.exporterSvc.Template(c.Writer)
	})
}

func (s *Server) ExportRapport(c *gin.Context) {
	s.exportWorkbook(c, "rapport_complet.xlsx", func() error {
		return s.exporterSvc.RapportComplet(c.Request.Context(), c.Writer)
	})
}
