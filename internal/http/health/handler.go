// Package health serves the liveness probe.
package health

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Status is the exact body of a healthy response.
const Status = "OK"

var body = []byte(Status)

// Output is a raw text response; huma writes []byte bodies verbatim.
type Output struct {
	ContentType string `header:"Content-Type"`
	Body        []byte `contentType:"text/plain"`
}

// Register wires GET /health into api.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health-get",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Liveness probe",
		Tags:        []string{"health"},
	}, get)
}

// The process answering at all is the health signal; there are no
// dependencies to check.
func get(context.Context, *struct{}) (*Output, error) {
	return &Output{ContentType: "text/plain; charset=utf-8", Body: body}, nil
}
