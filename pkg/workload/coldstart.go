package workload

import (
	"context"

	"github.com/serverless-bench/primebench/pkg/domain"
)

type coldStartProbed struct {
	TimestampMillis int64  `logevent:"timestamp_ms"`
	Message         string `logevent:"message,default=cold-start-probed"`
}

// ColdStart reports the invocation time without doing any work.
type ColdStart struct {
	Clock domain.Clock
	LogFn domain.LogFn
}

// Invoke returns a domain.ColdStartResult.
func (c *ColdStart) Invoke(ctx context.Context) (interface{}, error) {
	res := c.Clock.Now()
	c.LogFn(ctx).Debug(coldStartProbed{TimestampMillis: res.TimestampMillis})
	return res, nil
}
