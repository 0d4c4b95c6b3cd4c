package feedback

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrAppNameRequired = errors.New("feedback: app name required")
	ErrSenderRequired  = errors.New("feedback: sender required")
	ErrEmptyDraft      = errors.New("feedback: draft is empty")
	ErrInFlight        = errors.New("feedback: submission already in flight")
)

// Observer is told about every resolved attempt.
type Observer interface {
	ObserveSubmission(app string, status Status, took time.Duration)
}

// Attempt is one submission that has moved the controller to Sending.
type Attempt struct {
	ID      string
	Payload Payload
}

// Outcome is the result of running an Attempt.
type Outcome struct {
	AttemptID string
	Err       error
	Took      time.Duration
}

func (o Outcome) OK() bool { return o.Err == nil }

// Controller owns the draft text and the submission status.
//
// Transitions happen only in Submit (to Sending) and Resolve (to Sent or
// Error). Send performs the network call and leaves state alone, so a UI can
// run it off its event loop and apply the Outcome back on it.
type Controller struct {
	mu       sync.Mutex
	appName  string
	text     string
	status   Status
	inflight string
	attempts int

	sender   Sender
	logger   zerolog.Logger
	observer Observer
}

type Option func(*Controller)

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

func WithObserver(o Observer) Option {
	return func(c *Controller) {
		if o != nil {
			c.observer = o
		}
	}
}

// NewController builds an idle controller for appName. The name is used
// verbatim in every payload.
func NewController(appName string, sender Sender, opts ...Option) (*Controller, error) {
	if strings.TrimSpace(appName) == "" {
		return nil, ErrAppNameRequired
	}
	if sender == nil {
		return nil, ErrSenderRequired
	}
	c := &Controller{
		appName: appName,
		sender:  sender,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With().Str("app", appName).Logger()
	return c, nil
}

func (c *Controller) AppName() string { return c.appName }

func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

func (c *Controller) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

// SetText replaces the draft text. Editing is allowed in every state.
func (c *Controller) SetText(text string) {
	c.mu.Lock()
	c.text = text
	c.mu.Unlock()
}

func (c *Controller) Snapshot() Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Draft{AppName: c.appName, Text: c.text}
}

// Submit validates the draft and moves to Sending. It returns ErrInFlight
// while another attempt is pending and ErrEmptyDraft for blank text; in both
// cases nothing changes.
func (c *Controller) Submit() (Attempt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status == Sending {
		return Attempt{}, ErrInFlight
	}
	draft := Draft{AppName: c.appName, Text: c.text}
	if draft.Blank() {
		return Attempt{}, ErrEmptyDraft
	}

	c.attempts++
	c.inflight = uuid.NewString()
	c.status = Sending
	c.logger.Debug().
		Str("attempt", c.inflight).
		Int("n", c.attempts).
		Int("chars", len(draft.Text)).
		Msg("feedback: submission started")

	return Attempt{ID: c.inflight, Payload: draft.Payload()}, nil
}

// Send runs the attempt against the sender exactly once. A panicking sender
// is reported as a failed outcome.
func (c *Controller) Send(ctx context.Context, a Attempt) (out Outcome) {
	start := time.Now()
	out.AttemptID = a.ID
	defer func() {
		if r := recover(); r != nil {
			out.Err = fmt.Errorf("feedback: sender panic: %v", r)
		}
		out.Took = time.Since(start)
	}()
	out.Err = c.sender.Send(ctx, a.Payload)
	return out
}

// Resolve applies an outcome. Outcomes for an attempt that is not the one in
// flight are dropped and the current status is returned unchanged.
func (c *Controller) Resolve(o Outcome) Status {
	c.mu.Lock()
	if c.status != Sending || o.AttemptID != c.inflight {
		st := c.status
		c.mu.Unlock()
		c.logger.Debug().Str("attempt", o.AttemptID).Stringer("status", st).Msg("feedback: stale outcome dropped")
		return st
	}
	c.inflight = ""
	if o.Err == nil {
		c.status = Sent
		c.text = ""
	} else {
		c.status = Error
	}
	st := c.status
	c.mu.Unlock()

	ev := c.logger.Info()
	if o.Err != nil {
		ev = c.logger.Warn().Err(o.Err)
	}
	ev.Str("attempt", o.AttemptID).Stringer("status", st).Dur("took", o.Took).Msg("feedback: submission finished")

	if c.observer != nil {
		c.observer.ObserveSubmission(c.appName, st, o.Took)
	}
	return st
}

// SubmitAndWait runs Submit, Send and Resolve in one call. The returned error
// is only ever a validation error from Submit; delivery failures show up as
// the Error status.
func (c *Controller) SubmitAndWait(ctx context.Context) (Status, error) {
	a, err := c.Submit()
	if err != nil {
		return c.Status(), err
	}
	return c.Resolve(c.Send(ctx, a)), nil
}

// Acknowledge returns a finished controller to Idle. The text is kept.
func (c *Controller) Acknowledge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status.Terminal() {
		c.status = Idle
	}
}
