package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atelier/backend/internal/domain/catalog"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serveError runs HandleError for err and returns the recorded response
func serveError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	engine := gin.New()
	h := &BaseHandler{}
	engine.GET("/boom", func(c *gin.Context) {
		h.HandleError(c, err)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	engine.ServeHTTP(w, req)
	return w
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "not found maps to 404",
			err:        shared.NewDomainError("NOT_FOUND", "Product not found"),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "variant not found maps to 404",
			err:        shared.NewDomainError("VARIANT_NOT_FOUND", "Variant not found"),
			wantStatus: http.StatusNotFound,
			wantCode:   "VARIANT_NOT_FOUND",
		},
		{
			name:       "concurrency conflict maps to 409",
			err:        shared.NewDomainError("CONCURRENCY_CONFLICT", "Stale version"),
			wantStatus: http.StatusConflict,
			wantCode:   "CONCURRENCY_CONFLICT",
		},
		{
			name:       "invalid state maps to 422",
			err:        shared.NewDomainError("INVALID_STATE", "Order is not a draft"),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "INVALID_STATE",
		},
		{
			name:       "missing configuration maps to 422",
			err:        shared.NewDomainError("MISSING_CONFIGURATION", "Company prefix not configured"),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "MISSING_CONFIGURATION",
		},
		{
			name:       "validation codes map to 400",
			err:        shared.NewDomainError("INVALID_NAME", "Name is required"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_NAME",
		},
		{
			name:       "erp submit failure maps to 502",
			err:        shared.NewDomainError("ERP_SUBMIT_FAILED", "Upstream rejected the order"),
			wantStatus: http.StatusBadGateway,
			wantCode:   "ERP_SUBMIT_FAILED",
		},
		{
			name:       "plain errors map to 500",
			err:        errors.New("database exploded"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serveError(t, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)

			var body struct {
				Success bool `json:"success"`
				Error   struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}

	t.Run("duplicate identifiers map to 422 with offenders", func(t *testing.T) {
		dupErr := &catalog.DuplicateIdentifierError{
			SKUs: map[uuid.UUID]string{
				uuid.New(): "ATL-00001",
				uuid.New(): "ATL-00001",
			},
		}

		w := serveError(t, dupErr)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var body struct {
			Error struct {
				Code    string `json:"code"`
				Details struct {
					Offenders []string `json:"offenders"`
				} `json:"details"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "DUPLICATE_IDENTIFIER", body.Error.Code)
		assert.Equal(t, []string{"sku ATL-00001"}, body.Error.Details.Offenders)
	})
}

func TestParseID(t *testing.T) {
	engine := gin.New()
	h := &BaseHandler{}
	engine.GET("/things/:id", func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			h.BadRequest(c, "invalid id")
			return
		}
		h.Success(c, gin.H{"id": id.String()})
	})

	t.Run("accepts a UUID", func(t *testing.T) {
		id := uuid.New()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/things/"+id.String(), nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), id.String())
	})

	t.Run("rejects a malformed id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/things/not-a-uuid", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
