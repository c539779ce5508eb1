package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/hscdigital/douanapp/internal/client"
	clientdomain "github.com/hscdigital/douanapp/internal/client/domain"
	"github.com/hscdigital/douanapp/internal/clock"
	"github.com/hscdigital/douanapp/internal/config"
	"github.com/hscdigital/douanapp/internal/dashboard"
	"github.com/hscdigital/douanapp/internal/dossier"
	dossierdomain "github.com/hscdigital/douanapp/internal/dossier/domain"
	"github.com/hscdigital/douanapp/internal/entreprise"
	entreprisedomain "github.com/hscdigital/douanapp/internal/entreprise/domain"
	"github.com/hscdigital/douanapp/internal/exporter"
	"github.com/hscdigital/douanapp/internal/facture"
	facturedomain "github.com/hscdigital/douanapp/internal/facture/domain"
	"github.com/hscdigital/douanapp/internal/importer"
	"github.com/hscdigital/douanapp/internal/integrity"
	"github.com/hscdigital/douanapp/internal/location"
	locationdomain "github.com/hscdigital/douanapp/internal/location/domain"
	"github.com/hscdigital/douanapp/internal/providers/pdf"
	"github.com/hscdigital/douanapp/internal/seed"
	"github.com/hscdigital/douanapp/internal/storage"
	"github.com/hscdigital/douanapp/internal/typevehicule"
	tvdomain "github.com/hscdigital/douanapp/internal/typevehicule/domain"
)

var Module = fx.Module("http.server",
	config.Module,
	clock.Module,
	storage.Module,
	client.Module,
	typevehicule.Module,
	dossier.Module,
	facture.Module,
	location.Module,
	entreprise.Module,
	integrity.Module,
	dashboard.Module,
	importer.Module,
	exporter.Module,
	pdf.Module,
	seed.Module,
	fx.Provide(registerGin),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLoggingMiddleware(log))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

func registerGin(log *zap.Logger) *gin.Engine {
	return NewEngine(log)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine *gin.Engine
	cfg    config.Config
	store  storage.Store
	log    *zap.Logger

	clientSvc     clientdomain.Service
	typeSvc       tvdomain.Service
	dossierSvc    dossierdomain.Service
	factureSvc    facturedomain.Service
	locationSvc   locationdomain.Service
	entrepriseSvc entreprisedomain.Service
	dashboardSvc  dashboard.Service
	importerSvc   importer.Service
	exporterSvc   exporter.Service
	pdfProvider   pdf.Provider
}

type ServerParams struct {
	fx.In

	Gin           *gin.Engine
	Cfg           config.Config
	Store         storage.Store
	Log           *zap.Logger
	ClientSvc     clientdomain.Service
	TypeSvc       tvdomain.Service
	DossierSvc    dossierdomain.Service
	FactureSvc    facturedomain.Service
	LocationSvc   locationdomain.Service
	EntrepriseSvc entreprisedomain.Service
	DashboardSvc  dashboard.Service
	ImporterSvc   importer.Service
	ExporterSvc   exporter.Service
	PDFProvider   pdf.Provider
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:        p.Gin,
		cfg:           p.Cfg,
		store:         p.Store,
		log:           p.Log,
		clientSvc:     p.ClientSvc,
		typeSvc:       p.TypeSvc,
		dossierSvc:    p.DossierSvc,
		factureSvc:    p.FactureSvc,
		locationSvc:   p.LocationSvc,
		entrepriseSvc: p.EntrepriseSvc,
		dashboardSvc:  p.DashboardSvc,
		importerSvc:   p.ImporterSvc,
		exporterSvc:   p.ExporterSvc,
		pdfProvider:   p.PDFProvider,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.engine.Group("/api/v1")

	clients := api.Group("/clients")
	clients.GET("", s.ListClients)
	clients.GET("/:id", s.GetClientByID)
	clients.POST("", s.CreateClient)
	clients.PUT("/:id", s.UpdateClient)
	clients.DELETE("/:id", s.DeleteClient)

	types := api.Group("/types-vehicule")
	types.GET("", s.ListTypesVehicule)
	types.GET("/:id", s.GetTypeVehiculeByID)
	types.POST("", s.CreateTypeVehicule)
	types.PUT("/:id", s.UpdateTypeVehicule)
	types.DELETE("/:id", s.DeleteTypeVehicule)

	dossiers := api.Group("/dossiers")
	dossiers.GET("", s.ListDossiers)
	dossiers.GET("/:id", s.GetDossierByID)
	dossiers.POST("", s.CreateDossier)
	dossiers.PUT("/:id", s.UpdateDossier)
	dossiers.PATCH("/:id/statut", s.ChangeDossierStatut)
	dossiers.DELETE("/:id", s.DeleteDossier)

	factures := api.Group("/factures")
	factures.GET("", s.ListFactures)
	factures.GET("/:id", s.GetFactureByID)
	factures.POST("", s.CreateFacture)
	factures.POST("/:id/paiements", s.RecordPaiement)
	factures.PUT("/:id/couts", s.UpdateFactureCouts)
	factures.DELETE("/:id", s.DeleteFacture)
	factures.GET("/:id/pdf", s.FacturePDF)
	factures.GET("/:id/echeancier.xlsx", s.ExportEcheancier)

	locations := api.Group("/locations")
	locations.GET("", s.ListLocations)
	locations.GET("/:id", s.GetLocationByID)
	locations.POST("", s.CreateLocation)
	locations.PUT("/:id", s.UpdateLocation)
	locations.DELETE("/:id", s.DeleteLocation)

	api.GET("/entreprise", s.GetEntreprise)
	api.PUT("/entreprise", s.UpdateEntreprise)

	api.GET("/dashboard", s.GetDashboard)

	api.POST("/imports/dossiers/preview", s.PreviewImport)
	api.POST("/imports/dossiers", s.CommitImport)

	exports := api.Group("/exports")
	exports.GET("/clients.xlsx", s.ExportClients)
	exports.GET("/dossiers.xlsx", s.ExportDossiers)
	exports.GET("/locations.xlsx", s.ExportLocations)
	exports.GET("/factures.xlsx", s.ExportFactures)
	exports.GET("/template.xlsx", s.ExportTemplate)
	exports.GET("/rapport.xlsx", s.ExportRapport)

	api.DELETE("/admin/data", s.WipeData)
}
