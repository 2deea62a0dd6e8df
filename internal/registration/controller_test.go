package registration

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-webshop-client/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillValid(t *testing.T, c *Controller) {
	t.Helper()
	edits := []struct {
		target Target
		field  Field
		value  string
	}{
		{TargetAccount, FieldUsername, "a@b.c"},
		{TargetAccount, FieldPassword, "abc12345"},
		{TargetAccount, FieldPasswordConfirm, "abc12345"},
		{TargetAccount, FieldFirstName, "John"},
		{TargetAccount, FieldLastName, "Doe"},
		{TargetShipping, FieldName, "John Doe"},
		{TargetShipping, FieldCountry, "Hungary"},
		{TargetShipping, FieldCity, "Budapest"},
		{TargetShipping, FieldStreet, "Fo utca 1."},
		{TargetShipping, FieldZip, "1011"},
		{TargetShipping, FieldPhoneNumber, "+36301234567"},
	}
	for _, e := range edits {
		_, err := c.ChangeField(e.target, e.field, e.value)
		require.NoError(t, err)
	}
}

func TestController_SubmitWithSameAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	submitter := NewMockSubmitter(ctrl)
	publisher := NewMockEventPublisher(ctrl)
	recorder := NewMockRecorder(ctrl)

	c := NewController("sid-1", submitter, WithPublisher(publisher), WithRecorder(recorder))
	fillValid(t, c)
	state, err := c.SetSameAddress(true)
	require.NoError(t, err)
	require.True(t, state.CanSubmit)

	var sent models.RegistrationForm
	submitter.EXPECT().
		SubmitRegistration(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, form models.RegistrationForm) error {
			sent = form
			return nil
		}).
		Times(1)
	publisher.EXPECT().PublishRegistered(gomock.Any(), "sid-1", gomock.Any()).Times(1)
	recorder.EXPECT().ObserveSubmit("submitted").Times(1)

	outcome, err := c.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeSubmitted, outcome)

	assert.Equal(t, "a@b.c", sent.Username)
	assert.Equal(t, mirrored(sent.ShippingAddress, models.DefaultTaxNumber), sent.BillingAddress)

	after := c.State()
	assert.Equal(t, "succeeded", after.Status)
	assert.True(t, after.ShowSuccess)
	assert.Equal(t, NewForm().Values(), after.Form)
	assert.False(t, after.SameAddress)

	after = c.DismissSuccess()
	assert.Equal(t, "editing", after.Status)
	assert.False(t, after.ShowSuccess)
}

func TestController_SubmitRejections(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantOutcome Outcome
		wantMessage string
	}{
		{"conflict", &SubmitError{Class: StatusConflict, StatusCode: 409}, OutcomeRejected, MsgUserExists},
		{"client error", &SubmitError{Class: StatusClientError, StatusCode: 400}, OutcomeRejected, MsgInvalidData},
		{"other status", &SubmitError{Class: StatusOther, StatusCode: 502}, OutcomeFailed, MsgSubmitFailed},
		{"transport failure", errors.New("connection refused"), OutcomeFailed, MsgSubmitFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			submitter := NewMockSubmitter(ctrl)
			submitter.EXPECT().SubmitRegistration(gomock.Any(), gomock.Any()).Return(tt.err)

			c := NewController("sid", submitter)
			fillValid(t, c)
			_, err := c.ChangeField(TargetBilling, FieldTaxNumber, "123")
			require.NoError(t, err)
			_, err = c.ChangeField(TargetBilling, FieldTaxNumber, "")
			require.NoError(t, err)
			_, err = c.SetSameAddress(true)
			require.NoError(t, err)
			before := c.State()

			outcome, err := c.Submit(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantOutcome, outcome)

			after := c.State()
			assert.Equal(t, tt.wantMessage, after.SubmitError)
			assert.Equal(t, "editing", after.Status)
			assert.Equal(t, before.Errors, after.Errors)
			assert.Equal(t, before.Form, after.Form)
		})
	}
}

func TestController_SubmitClearsPreviousError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	submitter := NewMockSubmitter(ctrl)
	gomock.InOrder(
		submitter.EXPECT().SubmitRegistration(gomock.Any(), gomock.Any()).Return(&SubmitError{Class: StatusConflict, StatusCode: 409}),
		submitter.EXPECT().SubmitRegistration(gomock.Any(), gomock.Any()).Return(nil),
	)

	c := NewController("sid", submitter)
	fillValid(t, c)
	_, _ = c.SetSameAddress(true)

	_, err := c.Submit(context.Background())
	require.NoError(t, err)
	require.Equal(t, MsgUserExists, c.State().SubmitError)

	outcome, err := c.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeSubmitted, outcome)
	assert.Empty(t, c.State().SubmitError)
}

func TestController_GateWithholdsSubmission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no SubmitRegistration expectation: any call fails the test
	submitter := NewMockSubmitter(ctrl)
	recorder := NewMockRecorder(ctrl)
	recorder.EXPECT().ObserveSubmit("withheld").Times(2)

	c := NewController("sid", submitter, WithRecorder(recorder))

	t.Run("known field error", func(t *testing.T) {
		fillValid(t, c)
		_, _ = c.SetSameAddress(true)
		_, err := c.ChangeField(TargetAccount, FieldPassword, "short")
		require.NoError(t, err)

		outcome, err := c.Submit(context.Background())
		require.NoError(t, err)
		assert.Equal(t, OutcomeWithheld, outcome)
		assert.Equal(t, MsgWeakPassword, c.State().Errors.Password)
	})

	t.Run("untouched required fields", func(t *testing.T) {
		_, err := c.Reset()
		require.NoError(t, err)
		require.True(t, c.State().CanSubmit)

		outcome, err := c.Submit(context.Background())
		require.NoError(t, err)
		assert.Equal(t, OutcomeWithheld, outcome)

		state := c.State()
		assert.False(t, state.CanSubmit)
		assert.Equal(t, MsgRequired, state.Errors.Username)
		assert.Equal(t, MsgRequired, state.Errors.BillingAddress.Street)
		assert.Equal(t, "editing", state.Status)
	})
}

func TestController_PasswordChangeDoesNotRecheckConfirmation(t *testing.T) {
	c := NewController("sid", nil)
	_, _ = c.ChangeField(TargetAccount, FieldPassword, "abc12345")
	_, _ = c.ChangeField(TargetAccount, FieldPasswordConfirm, "abc12345")

	state, err := c.ChangeField(TargetAccount, FieldPassword, "short")
	require.NoError(t, err)

	assert.Equal(t, MsgWeakPassword, state.Errors.Password)
	assert.Empty(t, state.Errors.PasswordConfirm)
}

func TestController_ConfirmRevalidation(t *testing.T) {
	c := NewController("sid", nil, WithConfirmRevalidation(true))

	state, err := c.ChangeField(TargetAccount, FieldPassword, "abc12345")
	require.NoError(t, err)
	assert.Empty(t, state.Errors.PasswordConfirm, "untyped confirmation stays quiet")

	_, _ = c.ChangeField(TargetAccount, FieldPasswordConfirm, "abc12345")
	state, _ = c.ChangeField(TargetAccount, FieldPassword, "abc123456")
	assert.Equal(t, MsgPasswordsDiffer, state.Errors.PasswordConfirm)

	state, _ = c.ChangeField(TargetAccount, FieldPassword, "abc12345")
	assert.Empty(t, state.Errors.PasswordConfirm)
}

func TestController_ChangeFieldUnknown(t *testing.T) {
	c := NewController("sid", nil)

	_, err := c.ChangeField(TargetShipping, FieldUsername, "john@example.com")
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.Equal(t, NewForm().Values(), c.State().Form)
}

type blockingSubmitter struct {
	calls   int32
	started chan struct{}
	release chan error
}

func newBlockingSubmitter() *blockingSubmitter {
	return &blockingSubmitter{
		started: make(chan struct{}, 1),
		release: make(chan error, 1),
	}
}

func (b *blockingSubmitter) SubmitRegistration(ctx context.Context, _ models.RegistrationForm) error {
	atomic.AddInt32(&b.calls, 1)
	b.started <- struct{}{}
	select {
	case err := <-b.release:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

type submitResult struct {
	outcome Outcome
	err     error
}

func startSubmit(t *testing.T, c *Controller, b *blockingSubmitter) <-chan submitResult {
	t.Helper()
	done := make(chan submitResult, 1)
	go func() {
		outcome, err := c.Submit(context.Background())
		done <- submitResult{outcome, err}
	}()
	select {
	case <-b.started:
	case <-time.After(2 * time.Second):
		t.Fatal("submission did not start")
	}
	return done
}

func TestController_SingleInFlightSubmission(t *testing.T) {
	b := newBlockingSubmitter()
	c := NewController("sid", b)
	fillValid(t, c)
	_, _ = c.SetSameAddress(true)

	done := startSubmit(t, c, b)
	assert.Equal(t, StatusSubmitting, c.Status())

	_, err := c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	_, err = c.Reset()
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	state, err := c.ChangeField(TargetAccount, FieldFirstName, "Jane")
	require.NoError(t, err, "edits stay possible during a submission")
	assert.Equal(t, "Jane", state.Form.FirstName)
	assert.Equal(t, "submitting", state.Status)

	b.release <- nil

	select {
	case res := <-done:
		require.NoError(t, res.err)
		assert.Equal(t, OutcomeSubmitted, res.outcome)
	case <-time.After(2 * time.Second):
		t.Fatal("submission did not finish")
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&b.calls))
	assert.Equal(t, StatusSucceeded, c.Status())

	_, err = c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrAwaitingDismissal)
}

func TestController_CloseDiscardsLateResult(t *testing.T) {
	b := newBlockingSubmitter()
	c := NewController("sid", b)
	fillValid(t, c)
	_, _ = c.SetSameAddress(true)

	done := startSubmit(t, c, b)
	c.Close()

	select {
	case res := <-done:
		assert.ErrorIs(t, res.err, ErrClosed)
	case <-time.After(2 * time.Second):
		t.Fatal("closing did not cancel the submission")
	}

	state := c.State()
	assert.False(t, state.ShowSuccess)
	assert.Empty(t, state.SubmitError)

	_, err := c.ChangeField(TargetAccount, FieldFirstName, "Jane")
	assert.ErrorIs(t, err, ErrClosed)
}

func TestController_ResetIdempotent(t *testing.T) {
	c := NewController("sid", nil)
	fillValid(t, c)
	_, _ = c.SetSameAddress(true)
	_, _ = c.ChangeField(TargetAccount, FieldPassword, "short")

	once, err := c.Reset()
	require.NoError(t, err)
	twice, err := c.Reset()
	require.NoError(t, err)

	assert.Equal(t, once, twice)
	assert.Equal(t, NewForm().Values(), twice.Form)
	assert.Equal(t, models.ErrorSnapshot{}, twice.Errors)
	assert.False(t, twice.SameAddress)
}
