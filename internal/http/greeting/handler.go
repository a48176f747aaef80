// Package greeting serves the service's root greeting.
package greeting

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Message is the greeting body served at the root path.
const Message = "Hello DevOps World!"

const contentType = "text/plain; charset=utf-8"

var body = []byte(Message)

// Output is a raw text response; huma writes []byte bodies verbatim.
type Output struct {
	ContentType string `header:"Content-Type"`
	Body        []byte `contentType:"text/plain"`
}

// Register wires GET / into api.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "greeting-get",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Return the greeting",
		Tags:        []string{"greeting"},
	}, get)
}

func get(context.Context, *struct{}) (*Output, error) {
	return &Output{ContentType: contentType, Body: body}, nil
}
