package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
)

// RequestValidator rejects requests that do not match the OpenAPI document
// before they reach a handler. Paths the document does not describe, such as
// the docs routes, pass through untouched.
func RequestValidator(logger *slog.Logger) (func(http.Handler) http.Handler, error) {
	swagger, err := GetSwagger()
	if err != nil {
		return nil, err
	}
	// Match on path only, whatever host the API is served from.
	swagger.Servers = nil

	router, err := gorillamux.NewRouter(swagger)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route, pathParams, err := router.FindRoute(r)
			if err != nil {
				if !errors.Is(err, routers.ErrPathNotFound) && !errors.Is(err, routers.ErrMethodNotAllowed) {
					logger.Warn("failed to match request against API document", "error", err, "path", r.URL.Path)
				}
				next.ServeHTTP(w, r)
				return
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
				logger.Debug("request failed validation", "path", r.URL.Path, "error", err)
				WriteRequestError(w, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}

// WriteRequestError writes a malformed request as a JSON error body. Bodies
// over the server limit are reported as 413.
func WriteRequestError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	body := Error{Error: ErrorCodeInvalidRequest, Message: err.Error()}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		status = http.StatusRequestEntityTooLarge
		body = Error{Error: ErrorCodeInputTooLarge, Message: "request body is too large"}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body) //nolint:errcheck // Nothing useful to do if write fails
}
