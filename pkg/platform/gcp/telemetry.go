package gcp

import (
	"context"

	log "github.com/asecurityteam/component-log"
	stat "github.com/asecurityteam/component-stat"
	"github.com/asecurityteam/settings/v2"
	"github.com/serverless-bench/primebench/pkg/domain"
)

// TelemetryComponents lists the settings components LoadTelemetry reads,
// for use in help output.
func TelemetryComponents() []interface{} {
	return []interface{}{log.NewComponent(), stat.NewComponent()}
}

// LoadTelemetry builds the logger and stat client installed by every
// Handler. The functions framework has no runtime of its own to provide
// them, so they are read from the LOGGER and STATS groups of the source.
func LoadTelemetry(ctx context.Context, s settings.Source) (domain.Logger, domain.Stat, error) {
	logger, err := log.Load(ctx, s, log.NewComponent())
	if err != nil {
		return nil, nil, err
	}
	st, err := stat.Load(ctx, s, stat.NewComponent())
	if err != nil {
		return nil, nil, err
	}
	return logger, st, nil
}
