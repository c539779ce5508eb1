package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	clientdomain "github.com/hscdigital/douanapp/internal/client/domain"
	dossierdomain "github.com/hscdigital/douanapp/internal/dossier/domain"
	entreprisedomain "github.com/hscdigital/douanapp/internal/entreprise/domain"
	facturedomain "github.com/hscdigital/douanapp/internal/facture/domain"
	"github.com/hscdigital/douanapp/internal/importer"
	locationdomain "github.com/hscdigital/douanapp/internal/location/domain"
	tvdomain "github.com/hscdigital/douanapp/internal/typevehicule/domain"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	if vErr := asValidationErrors(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	if isValidationError(err) {
		code := validationErrorCode(err)
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{
					Field:   validationErrorField(code),
					Code:    code,
					Message: "invalid value",
				},
			},
		}
	}

	switch {
	case isConflictError(err):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: err.Error(),
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func asValidationErrors(err error) *ValidationErrors {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, clientdomain.ErrNomRequis),
		errors.Is(err, clientdomain.ErrTelephoneRequis),
		errors.Is(err, clientdomain.ErrTelephoneInvalide),
		errors.Is(err, tvdomain.ErrLabelRequis),
		errors.Is(err, dossierdomain.ErrNumeroCHRequis),
		errors.Is(err, dossierdomain.ErrReferenceRequise),
		errors.Is(err, dossierdomain.ErrClientRequis),
		errors.Is(err, dossierdomain.ErrStatutInvalide),
		errors.Is(err, facturedomain.ErrDossierRequis),
		errors.Is(err, facturedomain.ErrPrixInvalide),
		errors.Is(err, facturedomain.ErrMontantInvalide),
		errors.Is(err, facturedomain.ErrOrdreTranches),
		errors.Is(err, facturedomain.ErrSommeTranches),
		errors.Is(err, facturedomain.ErrModeInvalide),
		errors.Is(err, locationdomain.ErrReferenceRequise),
		errors.Is(err, locationdomain.ErrClientRequis),
		errors.Is(err, locationdomain.ErrMontantInvalide),
		errors.Is(err, locationdomain.ErrStatutInvalide),
		errors.Is(err, entreprisedomain.ErrNomRequis),
		errors.Is(err, importer.ErrFormatNonSupporte),
		errors.Is(err, importer.ErrFichierVide):
		return true
	default:
		return false
	}
}

// isConflictError covers the referential-integrity guards and the unique
// business key. The operation aborted with no partial change.
func isConflictError(err error) bool {
	switch {
	case errors.Is(err, clientdomain.ErrClientUtilise),
		errors.Is(err, tvdomain.ErrTypeUtilise),
		errors.Is(err, dossierdomain.ErrDossierLieFactures),
		errors.Is(err, dossierdomain.ErrNumeroCHExiste):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, clientdomain.ErrNotFound),
		errors.Is(err, tvdomain.ErrNotFound),
		errors.Is(err, dossierdomain.ErrNotFound),
		errors.Is(err, facturedomain.ErrNotFound),
		errors.Is(err, facturedomain.ErrTrancheNotFound),
		errors.Is(err, locationdomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func validationErrorCode(err error) string {
	return err.Error()
}

func validationErrorField(code string) string {
	switch {
	case strings.HasSuffix(code, "_requis"), strings.HasSuffix(code, "_requise"):
		return strings.TrimSuffix(strings.TrimSuffix(code, "_requis"), "_requise")
	case strings.HasSuffix(code, "_invalide"):
		return strings.TrimSuffix(code, "_invalide")
	default:
		return ""
	}
}
