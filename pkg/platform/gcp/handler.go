// Package gcp adapts benchmark functions to Google Cloud Functions as HTTP
// functions registered with the functions framework.
package gcp

import (
	"encoding/json"
	"net/http"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/serverless-bench/primebench/pkg/domain"
	"github.com/serverless-bench/primebench/pkg/platform"
)

// Handler writes the result of an Invocation as the JSON response body.
// When set, Logger and Stat are installed into the request context before
// the invocation runs.
type Handler struct {
	Invocation domain.Invocation
	Logger     domain.Logger
	Stat       domain.Stat
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := platform.NewContext(r.Context(), h.Logger, h.Stat)
	w.Header().Set("Content-Type", "application/json")
	res, err := h.Invocation.Invoke(ctx)
	if err != nil {
		w.WriteHeader(platform.StatusFromError(err))
		_ = json.NewEncoder(w).Encode(platform.NewErrorResponse(err))
		return
	}
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(res)
}

// Register binds the handler to the function name used as the entry point
// of the deployed function.
func Register(name string, h *Handler) {
	functions.HTTP(name, h.ServeHTTP)
}
