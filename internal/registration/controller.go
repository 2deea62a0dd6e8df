package registration

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-webshop-client/internal/logger"
	"github.com/sbilibin2017/gw-webshop-client/internal/models"
)

// Status is the submission lifecycle state of a controller.
type Status int

const (
	StatusEditing Status = iota
	StatusSubmitting
	StatusSucceeded
)

func (s Status) String() string {
	switch s {
	case StatusSubmitting:
		return "submitting"
	case StatusSucceeded:
		return "succeeded"
	}
	return "editing"
}

var (
	ErrSubmitInFlight    = errors.New("a submission is already in progress")
	ErrAwaitingDismissal = errors.New("registration succeeded, dismiss the confirmation first")
	ErrClosed            = errors.New("registration form is closed")
)

// Option configures a Controller.
type Option func(*Controller)

// WithPublisher sets the publisher notified after accepted registrations.
func WithPublisher(p EventPublisher) Option {
	return func(c *Controller) { c.publisher = p }
}

// WithRecorder sets the submit outcome recorder.
func WithRecorder(r Recorder) Option {
	return func(c *Controller) { c.recorder = r }
}

// WithConfirmRevalidation re-runs the password confirmation rule whenever the
// password changes and a confirmation has already been typed.
func WithConfirmRevalidation(on bool) Option {
	return func(c *Controller) { c.revalidateConfirm = on }
}

// WithClock overrides the time source used for idle tracking.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// Controller owns one registration form for one client session and serializes
// every event applied to it.
type Controller struct {
	mu sync.Mutex

	sessionID string
	form      Form
	status    Status

	submitError string
	showSuccess bool

	submitter         Submitter
	publisher         EventPublisher
	recorder          Recorder
	revalidateConfirm bool

	ctx        context.Context
	cancel     context.CancelFunc
	closed     bool
	now        func() time.Time
	lastActive time.Time
}

// NewController creates a controller in the Editing state with a blank form.
func NewController(sessionID string, submitter Submitter, opts ...Option) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		sessionID: sessionID,
		form:      NewForm(),
		status:    StatusEditing,
		submitter: submitter,
		ctx:       ctx,
		cancel:    cancel,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.lastActive = c.now()
	return c
}

// ChangeField applies one keystroke or blur to the form. Edits are accepted
// in every state, including while a submission is in flight.
func (c *Controller) ChangeField(target Target, field Field, raw string) (models.RegistrationState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return models.RegistrationState{}, ErrClosed
	}
	c.touch()

	if err := c.form.ApplyFieldChange(target, field, raw); err != nil {
		return c.viewLocked(), err
	}

	switch {
	case target == TargetShipping:
		SyncAddresses(&c.form)
	case target == TargetAccount && field == FieldPassword && c.revalidateConfirm && c.form.PasswordConfirm.Value != "":
		confirm := c.form.PasswordConfirm.Value
		_ = c.form.ApplyFieldChange(TargetAccount, FieldPasswordConfirm, confirm)
	}

	return c.viewLocked(), nil
}

// SetSameAddress toggles billing mirroring.
func (c *Controller) SetSameAddress(on bool) (models.RegistrationState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return models.RegistrationState{}, ErrClosed
	}
	c.touch()
	c.form.SetSameAddress(on)
	return c.viewLocked(), nil
}

// Submit runs the submit gate and, when it passes, transmits the form. The
// network call runs without holding the controller lock, so edits stay
// possible; a second Submit while one is in flight returns ErrSubmitInFlight.
func (c *Controller) Submit(ctx context.Context) (Outcome, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return "", ErrClosed
	}
	c.touch()
	switch c.status {
	case StatusSubmitting:
		c.mu.Unlock()
		return "", ErrSubmitInFlight
	case StatusSucceeded:
		c.mu.Unlock()
		return "", ErrAwaitingDismissal
	}

	c.submitError = ""
	if !CanSubmit(c.form.Errors()) || markMissing(&c.form) > 0 {
		c.mu.Unlock()
		c.observe(OutcomeWithheld)
		return OutcomeWithheld, nil
	}

	c.status = StatusSubmitting
	form := c.form.Values()
	c.mu.Unlock()

	submitCtx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(c.ctx, cancel)
	err := c.submitter.SubmitRegistration(submitCtx, form)
	stop()
	cancel()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		logger.Log.Infow("discarding registration result after teardown", "session_id", c.sessionID, "err", err)
		return "", ErrClosed
	}
	outcome := c.finishLocked(err)
	c.mu.Unlock()

	c.observe(outcome)
	if outcome == OutcomeSubmitted && c.publisher != nil {
		c.publisher.PublishRegistered(ctx, c.sessionID, form)
	}
	return outcome, nil
}

func (c *Controller) finishLocked(err error) Outcome {
	if err == nil {
		Reset(&c.form)
		c.status = StatusSucceeded
		c.showSuccess = true
		logger.Log.Infow("registration accepted", "session_id", c.sessionID)
		return OutcomeSubmitted
	}

	c.status = StatusEditing

	var submitErr *SubmitError
	class := StatusOther
	if errors.As(err, &submitErr) {
		class = submitErr.Class
	}
	msg, outcome := submitMessage(class)
	c.submitError = msg

	if outcome == OutcomeFailed {
		logger.Log.Errorw("registration submission failed", "session_id", c.sessionID, "err", err)
	} else {
		logger.Log.Infow("registration rejected", "session_id", c.sessionID, "class", class)
	}
	return outcome
}

// DismissSuccess hides the success indicator and returns to Editing.
func (c *Controller) DismissSuccess() models.RegistrationState {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.touch()
	if c.status == StatusSucceeded {
		c.status = StatusEditing
	}
	c.showSuccess = false
	return c.viewLocked()
}

// Reset discards every value and message, including the submit error.
func (c *Controller) Reset() (models.RegistrationState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return models.RegistrationState{}, ErrClosed
	}
	if c.status == StatusSubmitting {
		return c.viewLocked(), ErrSubmitInFlight
	}
	c.touch()
	Reset(&c.form)
	c.submitError = ""
	return c.viewLocked(), nil
}

// State returns a consistent snapshot of the form.
func (c *Controller) State() models.RegistrationState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

// Status returns the current lifecycle state.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Close tears the controller down. An in-flight submission is cancelled and
// its result is discarded.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.cancel()
}

// idleSince reports when the controller was last used and whether it is
// safe to evict.
func (c *Controller) idleSince() (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastActive, c.status != StatusSubmitting
}

func (c *Controller) touch() {
	c.lastActive = c.now()
}

func (c *Controller) observe(outcome Outcome) {
	if c.recorder != nil {
		c.recorder.ObserveSubmit(string(outcome))
	}
}

func (c *Controller) viewLocked() models.RegistrationState {
	errs := c.form.Errors()
	return models.RegistrationState{
		Form:        c.form.Values(),
		Errors:      errs,
		SameAddress: c.form.SameAddress,
		Status:      c.status.String(),
		SubmitError: c.submitError,
		ShowSuccess: c.showSuccess,
		CanSubmit:   CanSubmit(errs),
	}
}
