package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	clientrepo "github.com/hscdigital/douanapp/internal/client/repository"
	clientservice "github.com/hscdigital/douanapp/internal/client/service"
	"github.com/hscdigital/douanapp/internal/clock"
	"github.com/hscdigital/douanapp/internal/config"
	"github.com/hscdigital/douanapp/internal/dashboard"
	dossierrepo "github.com/hscdigital/douanapp/internal/dossier/repository"
	dossierservice "github.com/hscdigital/douanapp/internal/dossier/service"
	entrepriserepo "github.com/hscdigital/douanapp/internal/entreprise/repository"
	entrepriseservice "github.com/hscdigital/douanapp/internal/entreprise/service"
	"github.com/hscdigital/douanapp/internal/exporter"
	facturerepo "github.com/hscdigital/douanapp/internal/facture/repository"
	factureservice "github.com/hscdigital/douanapp/internal/facture/service"
	"github.com/hscdigital/douanapp/internal/importer"
	"github.com/hscdigital/douanapp/internal/integrity"
	locationrepo "github.com/hscdigital/douanapp/internal/location/repository"
	locationservice "github.com/hscdigital/douanapp/internal/location/service"
	"github.com/hscdigital/douanapp/internal/providers/pdf"
	"github.com/hscdigital/douanapp/internal/storage"
	tvrepo "github.com/hscdigital/douanapp/internal/typevehicule/repository"
	tvservice "github.com/hscdigital/douanapp/internal/typevehicule/service"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.NewMemoryStore()
	log := zap.NewNop()
	clk := clock.NewFakeClock(time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC))

	factureRepo := facturerepo.Provide(store, log, clk)
	dossierRepo := dossierrepo.Provide(store, factureRepo, log, clk)
	locationRepo := locationrepo.Provide(store, log, clk)
	clientRepo := clientrepo.Provide(store, log, clk)
	typeRepo := tvrepo.Provide(store, log, clk)
	entrepriseRepo := entrepriserepo.Provide(store, log)
	guard := integrity.Provide(dossierRepo, factureRepo, locationRepo)

	clientSvc := clientservice.Provide(clientRepo, guard, log)
	typeSvc := tvservice.Provide(typeRepo, guard, log)
	dossierSvc := dossierservice.Provide(dossierRepo, clientRepo, typeRepo, log)
	factureSvc := factureservice.Provide(factureRepo, dossierRepo, clientRepo, typeRepo, clk, log)
	locationSvc := locationservice.Provide(locationRepo, clientRepo, typeRepo, clk, log)
	entrepriseSvc := entrepriseservice.Provide(entrepriseRepo, log)

	engine := NewEngine(log)
	NewServer(ServerParams{
		Gin:           engine,
		Cfg:           config.Config{},
		Store:         store,
		Log:           log,
		ClientSvc:     clientSvc,
		TypeSvc:       typeSvc,
		DossierSvc:    dossierSvc,
		FactureSvc:    factureSvc,
		LocationSvc:   locationSvc,
		EntrepriseSvc: entrepriseSvc,
		DashboardSvc:  dashboard.Provide(dossierSvc, factureSvc, locationSvc, clientSvc),
		ImporterSvc:   importer.Provide(dossierSvc, typeSvc, log),
		ExporterSvc:   exporter.Provide(dossierSvc, factureSvc, locationSvc, clientSvc),
		PDFProvider:   pdf.New(),
	})
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestValidationErrorMapsTo400(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/clients", `{"telephone":"70000000"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation_error", resp.Error.Type)
	require.Len(t, resp.Error.Errors, 1)
	assert.Equal(t, "nom_requis", resp.Error.Errors[0].Code)
	assert.Equal(t, "nom", resp.Error.Errors[0].Field)
}

func TestUnknownClientMapsTo404(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/clients/inconnu", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "not_found", resp.Error.Type)
}

func TestDeleteReferencedClientMapsTo409(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/clients", `{"nom":"Diallo","telephone":"70000000"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.Data.ID)

	body := fmt.Sprintf(`{"numeroCH":"CH-001","referenceVehicule":"REF-001","clientId":%q}`, created.Data.ID)
	w = doJSON(t, engine, http.MethodPost, "/api/v1/dossiers", body)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodDelete, "/api/v1/clients/"+created.Data.ID, "")
	require.Equal(t, http.StatusConflict, w.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "conflict", resp.Error.Type)
}

func TestDuplicateNumeroCHMapsTo409(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/clients", `{"nom":"Diallo","telephone":"70000000"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	body := fmt.Sprintf(`{"numeroCH":"CH-001","referenceVehicule":"REF-001","clientId":%q}`, created.Data.ID)
	w = doJSON(t, engine, http.MethodPost, "/api/v1/dossiers", body)
	require.Equal(t, http.StatusOK, w.Code)

	// Same business key, different spacing and case.
	body = fmt.Sprintf(`{"numeroCH":" ch-001 ","referenceVehicule":"REF-002","clientId":%q}`, created.Data.ID)
	w = doJSON(t, engine, http.MethodPost, "/api/v1/dossiers", body)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestWipeData(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/clients", `{"nom":"Diallo","telephone":"70000000"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodDelete, "/api/v1/admin/data", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/clients", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Data []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Empty(t, list.Data)
}

func TestGetDashboard(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/dashboard", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data dashboard.Stats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Zero(t, resp.Data.TotalDossiers)
	assert.NotEmpty(t, resp.Data.DossiersParStatut)
}

func TestGetEntrepriseServesDefault(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/entreprise", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Haidara Service Commercial")
}
