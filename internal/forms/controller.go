package forms

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Status is the submission state of a form.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

var (
	// ErrInFlight is returned when Submit is called while a submission is outstanding.
	ErrInFlight = errors.New("forms: submission in flight")
	// ErrInvalid is returned when validation fails; no submission is made.
	ErrInvalid = errors.New("forms: invalid values")
)

// Submitter delivers validated values to the form's endpoint.
type Submitter interface {
	Submit(ctx context.Context, v Values) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, v Values) error

func (f SubmitterFunc) Submit(ctx context.Context, v Values) error { return f(ctx, v) }

// State is a copy of a controller's values, field errors and status.
type State[T Values] struct {
	Values T
	Errors FieldErrors
	Status Status
}

// Submitting reports whether the submit control should be disabled.
func (s State[T]) Submitting() bool { return s.Status == StatusSubmitting }

// Controller owns one form instance. At most one submission is outstanding at a time.
type Controller[T Values] struct {
	submitter Submitter

	mu       sync.Mutex
	values   T
	errors   FieldErrors
	status   Status
	inFlight bool
}

// NewController returns an idle controller with empty values.
func NewController[T Values](s Submitter) *Controller[T] {
	return &Controller[T]{submitter: s, status: StatusIdle}
}

// Edit replaces the values. A settled success or error status returns to idle.
func (c *Controller[T]) Edit(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = v
	if c.status == StatusSuccess || c.status == StatusError {
		c.status = StatusIdle
	}
}

// Submit validates the current values and, when they pass, sends them through the submitter
// exactly once. On success the values are cleared; on failure they are kept.
func (c *Controller[T]) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return ErrInFlight
	}
	c.status = StatusIdle
	c.errors = nil
	values := Normalize(c.values)
	if fe := Validate(values); len(fe) > 0 {
		c.errors = fe
		c.mu.Unlock()
		return ErrInvalid
	}
	c.inFlight = true
	c.status = StatusSubmitting
	c.mu.Unlock()

	err := c.submitter.Submit(ctx, values)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight = false
	if err != nil {
		c.status = StatusError
		return fmt.Errorf("forms: submit %s: %w", values.Kind(), err)
	}
	var zero T
	c.values = zero
	c.status = StatusSuccess
	return nil
}

// Snapshot returns the current state.
func (c *Controller[T]) Snapshot() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	var fe FieldErrors
	if len(c.errors) > 0 {
		fe = make(FieldErrors, len(c.errors))
		for k, v := range c.errors {
			fe[k] = v
		}
	}
	return State[T]{Values: c.values, Errors: fe, Status: c.status}
}
