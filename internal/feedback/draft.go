package feedback

import (
	"context"
	"strings"
)

// Draft is a point-in-time copy of the controller's draft.
type Draft struct {
	AppName string
	Text    string
}

// Blank reports whether the text is empty once surrounding whitespace is removed.
func (d Draft) Blank() bool {
	return strings.TrimSpace(d.Text) == ""
}

// Payload is the request body sent to the collection endpoint.
type Payload struct {
	Feedback string `json:"feedback"`
	App      string `json:"app"`
}

func (d Draft) Payload() Payload {
	return Payload{Feedback: d.Text, App: d.AppName}
}

// Sender delivers one payload. A nil error means the endpoint accepted it.
type Sender interface {
	Send(ctx context.Context, p Payload) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, p Payload) error

func (f SenderFunc) Send(ctx context.Context, p Payload) error {
	return f(ctx, p)
}
