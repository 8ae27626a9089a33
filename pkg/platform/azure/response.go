package azure

const outputBinding = "res"

// invocationResponse is the body returned to the Functions host.
type invocationResponse struct {
	Outputs     map[string]interface{} `json:"Outputs"`
	Logs        []string               `json:"Logs"`
	ReturnValue interface{}            `json:"ReturnValue"`
}

// httpOutput is the value of an HTTP output binding.
type httpOutput struct {
	StatusCode int               `json:"statusCode"`
	Body       interface{}       `json:"body"`
	Headers    map[string]string `json:"headers"`
}

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

func newInvocationResponse(statusCode int, body interface{}) invocationResponse {
	return invocationResponse{
		Outputs: map[string]interface{}{
			outputBinding: httpOutput{
				StatusCode: statusCode,
				Body:       body,
				Headers:    jsonHeaders,
			},
		},
		Logs: []string{},
	}
}
