package registration

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/gw-webshop-client/internal/models"
)

// StatusClass classifies a rejected submission.
type StatusClass string

const (
	StatusClientError StatusClass = "clientError"
	StatusConflict    StatusClass = "conflict"
	StatusOther       StatusClass = "other"
)

// SubmitError is returned by a Submitter when the storefront API rejects a
// registration.
type SubmitError struct {
	Class      StatusClass
	StatusCode int
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("registration rejected: %s (status %d)", e.Class, e.StatusCode)
}

// Top-level messages shown after a failed submission.
const (
	MsgInvalidData  = "the submitted data is invalid"
	MsgUserExists   = "user already exists"
	MsgSubmitFailed = "registration failed, please try again later"
)

// Submitter transmits a registration to the storefront API. Implementations
// must return promptly once ctx is cancelled.
type Submitter interface {
	SubmitRegistration(ctx context.Context, form models.RegistrationForm) error
}

// EventPublisher is notified after a registration was accepted.
type EventPublisher interface {
	PublishRegistered(ctx context.Context, sessionID string, form models.RegistrationForm)
}

// Recorder observes submit outcomes.
type Recorder interface {
	ObserveSubmit(outcome string)
}

// Outcome is the result of a submit attempt.
type Outcome string

const (
	// OutcomeSubmitted means the API accepted the registration.
	OutcomeSubmitted Outcome = "submitted"
	// OutcomeRejected means the API answered with a client error or conflict.
	OutcomeRejected Outcome = "rejected"
	// OutcomeFailed means transport failure or an unexpected API answer.
	OutcomeFailed Outcome = "failed"
	// OutcomeWithheld means the form did not pass the gate and nothing was sent.
	OutcomeWithheld Outcome = "withheld"
)

func submitMessage(class StatusClass) (string, Outcome) {
	switch class {
	case StatusClientError:
		return MsgInvalidData, OutcomeRejected
	case StatusConflict:
		return MsgUserExists, OutcomeRejected
	}
	return MsgSubmitFailed, OutcomeFailed
}
