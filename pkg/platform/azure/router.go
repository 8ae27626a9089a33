package azure

import (
	"context"
	"net/http"

	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/settings/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/serverless-bench/primebench/pkg/domain"
)

// RouterConfig is used to alter the behavior of the default router.
type RouterConfig struct {
	// HealthCheck defines the route on which the service will respond
	// with automatic 200s. The default value is /healthcheck
	HealthCheck string

	// Invocations maps function names to their implementations. The
	// names must match the function directories of the Functions app.
	Invocations map[string]domain.Invocation

	// LogFn is used to extract the request logger from the request
	// context. The default value is runhttp.LoggerFromContext.
	LogFn domain.LogFn
	// URLParamFn is used to extract URL parameters from the request.
	// The default value is chi.URLParamFromCtx.
	URLParamFn URLParamFn
}

func applyDefaults(conf *RouterConfig) *RouterConfig {
	if conf.HealthCheck == "" {
		conf.HealthCheck = "/healthcheck"
	}
	if conf.LogFn == nil {
		conf.LogFn = runhttp.LoggerFromContext
	}
	if conf.URLParamFn == nil {
		conf.URLParamFn = chi.URLParamFromCtx
	}
	return conf
}

// NewRouter generates a mux with the custom handler routes bound. The
// request context must carry a logger, as installed by the runhttp
// runtime that New builds.
func NewRouter(conf *RouterConfig) *chi.Mux {
	conf = applyDefaults(conf)
	router := chi.NewMux()
	router.Use(middleware.Heartbeat(conf.HealthCheck))

	invokeHandler := &Invoke{
		Invocations: conf.Invocations,
		LogFn:       conf.LogFn,
		URLParamFn:  conf.URLParamFn,
	}
	router.Method(http.MethodPost, "/{functionName}", invokeHandler)
	return router
}

// New generates a runtime serving the given functions. The listening
// address is read from the source like any other runtime setting.
func New(ctx context.Context, s settings.Source, invocations map[string]domain.Invocation) (*runhttp.Runtime, error) {
	router := NewRouter(&RouterConfig{Invocations: invocations})
	rtC := runhttp.NewComponent().WithHandler(router)
	rt := new(runhttp.Runtime)
	err := settings.NewComponent(ctx, s, rtC, rt)
	return rt, err
}
