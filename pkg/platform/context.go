package platform

import (
	"context"

	"github.com/asecurityteam/logevent/v2"
	"github.com/rs/xstats"
	"github.com/serverless-bench/primebench/pkg/domain"
)

// NewContext installs the logger and stat client that invocations read
// through runhttp.LoggerFromContext and runhttp.StatFromContext. Each
// invocation gets its own copy of the logger. Nil values are skipped.
func NewContext(ctx context.Context, logger domain.Logger, stat domain.Stat) context.Context {
	if logger != nil {
		ctx = logevent.NewContext(ctx, logger.Copy())
	}
	if stat != nil {
		ctx = xstats.NewContext(ctx, stat)
	}
	return ctx
}
