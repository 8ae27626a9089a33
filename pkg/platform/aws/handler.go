// Package aws adapts benchmark functions to AWS Lambda behind an API
// Gateway proxy integration.
package aws

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/serverless-bench/primebench/pkg/domain"
)

// Handler shapes the result of an Invocation as an API Gateway proxy
// response. Handle is the function given to the lambda SDK.
type Handler struct {
	Invocation domain.Invocation
}

// Handle runs the invocation. The trigger event is ignored. Errors are
// returned to the Lambda runtime as function errors.
func (h *Handler) Handle(ctx context.Context) (events.APIGatewayProxyResponse, error) {
	res, err := h.Invocation.Invoke(ctx)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	body, err := json.Marshal(res)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}, nil
}
