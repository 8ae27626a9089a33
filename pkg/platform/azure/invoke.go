package azure

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/serverless-bench/primebench/pkg/domain"
	"github.com/serverless-bench/primebench/pkg/platform"
)

type invocationFailed struct {
	Function string `logevent:"function"`
	Reason   string `logevent:"reason"`
	Message  string `logevent:"message,default=invocation-failed"`
}

// URLParamFn extracts a named parameter from the request path.
type URLParamFn func(ctx context.Context, name string) string

// Invoke serves a custom handler invocation. The request payload carries
// the trigger data and metadata which the benchmark functions do not use.
type Invoke struct {
	Invocations map[string]domain.Invocation
	LogFn       domain.LogFn
	URLParamFn  URLParamFn
}

func (h *Invoke) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	_, _ = io.Copy(io.Discard, r.Body)
	w.Header().Set("Content-Type", "application/json")

	fnName := h.URLParamFn(r.Context(), "functionName")
	inv, ok := h.Invocations[fnName]
	if !ok {
		err := domain.NotFoundError{ID: fnName}
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(platform.NewErrorResponse(err))
		return
	}
	res, err := inv.Invoke(r.Context())
	if err != nil {
		h.LogFn(r.Context()).Error(invocationFailed{Function: fnName, Reason: err.Error()})
		// A non-2xx status fails the invocation on the host and drops
		// Outputs, so the error status only travels in the response binding.
		statusCode := platform.StatusFromError(err)
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(newInvocationResponse(statusCode, platform.NewErrorResponse(err)))
		return
	}
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(newInvocationResponse(http.StatusOK, res))
}
