package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGetSwagger(t *testing.T) {
	swagger, err := GetSwagger()
	require.NoError(t, err)

	assert.Equal(t, "Lead Market API", swagger.Info.Title)
	for _, path := range []string{
		"/health",
		"/api/v1/purchases",
		"/api/v1/leads/batches",
		"/api/v1/leads/{leadId}",
		"/api/v1/market",
		"/api/v1/admin/accounts/{accountId}/adjustments",
		"/api/v1/admin/accounts",
		"/api/v1/admin/transactions",
	} {
		assert.NotNil(t, swagger.Paths.Find(path), path)
	}
}

func TestGetSwagger_MatchesDocument(t *testing.T) {
	embedded, err := GetSwagger()
	require.NoError(t, err)

	source, err := openapi3.NewLoader().LoadFromData(openAPIDocument)
	require.NoError(t, err)

	assert.ElementsMatch(t, source.Paths.InMatchingOrder(), embedded.Paths.InMatchingOrder(),
		"api.gen.go is stale, run go generate ./internal/api")
	for name := range source.Components.Schemas {
		assert.Contains(t, embedded.Components.Schemas, name)
	}
}

func TestRequestValidator(t *testing.T) {
	validate, err := RequestValidator(testLogger())
	require.NoError(t, err)

	reached := false
	handler := validate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name        string
		method      string
		target      string
		body        string
		wantReached bool
		wantStatus  int
	}{
		{
			name:        "valid purchase",
			method:      http.MethodPost,
			target:      "/api/v1/purchases",
			body:        `{"leadId":"lead_6f1c2a34-9b8e-4d7a-a1f0-3c5e7d9b2a10"}`,
			wantReached: true,
			wantStatus:  http.StatusNoContent,
		},
		{
			name:       "purchase without lead id",
			method:     http.MethodPost,
			target:     "/api/v1/purchases",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "lead id without prefix",
			method:     http.MethodPost,
			target:     "/api/v1/purchases",
			body:       `{"leadId":"6f1c2a34-9b8e-4d7a-a1f0-3c5e7d9b2a10"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "limit above maximum",
			method:     http.MethodGet,
			target:     "/api/v1/market?limit=500",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown bucket",
			method:     http.MethodGet,
			target:     "/api/v1/market?bucket=third",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:        "market with filters",
			method:      http.MethodGet,
			target:      "/api/v1/market?bucket=secondary&price_max=1.00&date_from=2026-04-01&sort=price_low",
			wantReached: true,
			wantStatus:  http.StatusNoContent,
		},
		{
			name:        "path outside the document",
			method:      http.MethodGet,
			target:      "/docs",
			wantReached: true,
			wantStatus:  http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached = false
			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.target, body)
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantReached, reached)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusBadRequest {
				assert.Contains(t, rec.Body.String(), `"error":"invalid_request"`)
			}
		})
	}
}

func TestWriteRequestError_BodyTooLarge(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteRequestError(rec, &http.MaxBytesError{Limit: 10})

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.JSONEq(t, `{"error":"input_too_large","message":"request body is too large"}`, rec.Body.String())
}

func TestRegisterDocsRoutes(t *testing.T) {
	mux := http.NewServeMux()
	RegisterDocsRoutes(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/openapi", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Lead Market API"`)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/openapi.yaml", nil))
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "openapi: 3.0.3"))

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/docs", rec.Header().Get("Location"))
}

type stubStrictServer struct {
	StrictServerInterface
	gotLead LeadId
}

func (s *stubStrictServer) GetLead(_ context.Context, request GetLeadRequestObject) (GetLeadResponseObject, error) {
	s.gotLead = request.LeadId
	return GetLeaddefaultJSONResponse{
		StatusCode: http.StatusNotFound,
		Body:       Error{Error: ErrorCodeLeadNotFound, Message: "lead not found"},
	}, nil
}

func (s *stubStrictServer) CreatePurchase(_ context.Context, request CreatePurchaseRequestObject) (CreatePurchaseResponseObject, error) {
	return CreatePurchase201JSONResponse{PurchaseId: "pur_1", Lead: Lead{LeadId: request.Body.LeadId}, PurchaseNum: 1}, nil
}

func TestStrictHandler_Routing(t *testing.T) {
	stub := &stubStrictServer{}
	mux := http.NewServeMux()
	HandlerFromMux(NewStrictHandler(stub, nil), mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/leads/lead_abc", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "lead_abc", stub.gotLead)
	assert.JSONEq(t, `{"error":"lead_not_found","message":"lead not found"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/purchases", strings.NewReader(`{"leadId":"lead_abc"}`)))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"leadId":"lead_abc"`)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/purchases", strings.NewReader(`{`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
