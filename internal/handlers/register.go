package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-webshop-client/internal/logger"
	"github.com/sbilibin2017/gw-webshop-client/internal/models"
	"github.com/sbilibin2017/gw-webshop-client/internal/registration"
)

// RegistrationForm is the per-session registration form engine.
type RegistrationForm interface {
	ChangeField(target registration.Target, field registration.Field, raw string) (models.RegistrationState, error)
	SetSameAddress(on bool) (models.RegistrationState, error)
	Submit(ctx context.Context) (registration.Outcome, error)
	DismissSuccess() models.RegistrationState
	Reset() (models.RegistrationState, error)
	State() models.RegistrationState
}

// FormGetter returns the registration form of a client session, creating it on first use.
type FormGetter func(sessionID string) RegistrationForm

// SessionGetter extracts the client session id from the request context.
type SessionGetter func(ctx context.Context) (string, bool)

const msgRegistrationSuccess = "Registration successful"

// NewRegistrationStateHandler returns the current registration form.
// @Summary Registration form state
// @Description Returns values, per-field errors and submit state of the session's registration form
// @Tags registration
// @Produce json
// @Success 200 {object} models.RegistrationState "Form state"
// @Failure 401 {object} models.RegistrationErrorResponse "No client session"
// @Router /registration [get]
func NewRegistrationStateHandler(forms FormGetter, sessionGetter SessionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, ok := resolveForm(w, r, forms, sessionGetter)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, form.State())
	}
}

// NewFieldChangeHandler returns an HTTP handler applying one field edit.
// @Summary Edit a registration field
// @Description Stores the raw value and its validation message. Shipping edits are mirrored to billing while sameAddress is on.
// @Tags registration
// @Accept json
// @Produce json
// @Param fieldChangeRequest body models.FieldChangeRequest true "Field edit"
// @Success 200 {object} models.RegistrationState "Form state"
// @Failure 400 {object} models.RegistrationErrorResponse "Unknown target or field / invalid request"
// @Failure 409 {object} models.RegistrationErrorResponse "Form closed"
// @Router /registration/fields [post]
func NewFieldChangeHandler(forms FormGetter, sessionGetter SessionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, ok := resolveForm(w, r, forms, sessionGetter)
		if !ok {
			return
		}

		var req models.FieldChangeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.RegistrationErrorResponse{Error: "invalid request body"})
			return
		}

		target, err := registration.ParseTarget(req.Target)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, models.RegistrationErrorResponse{Error: err.Error()})
			return
		}

		state, err := form.ChangeField(target, registration.Field(req.Field), req.Value)
		if err != nil {
			writeRegistrationError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, state)
	}
}

// NewSameAddressHandler returns an HTTP handler toggling billing mirroring.
// @Summary Toggle "billing same as shipping"
// @Tags registration
// @Accept json
// @Produce json
// @Param sameAddressRequest body models.SameAddressRequest true "Toggle"
// @Success 200 {object} models.RegistrationState "Form state"
// @Failure 400 {object} models.RegistrationErrorResponse "Invalid request"
// @Router /registration/same-address [post]
func NewSameAddressHandler(forms FormGetter, sessionGetter SessionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, ok := resolveForm(w, r, forms, sessionGetter)
		if !ok {
			return
		}

		var req models.SameAddressRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.RegistrationErrorResponse{Error: "invalid request body"})
			return
		}

		state, err := form.SetSameAddress(req.SameAddress)
		if err != nil {
			writeRegistrationError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, state)
	}
}

// NewRegisterHandler returns an HTTP handler submitting the registration.
// @Summary Submit the registration
// @Description Runs the submit gate and sends the form to the storefront API
// @Tags registration
// @Produce json
// @Success 200 {object} models.RegisterResponse "Registration accepted"
// @Failure 409 {object} models.RegistrationErrorResponse "Submission in progress or success not dismissed"
// @Failure 422 {object} models.RegisterResponse "Form withheld or rejected by the API"
// @Failure 502 {object} models.RegisterResponse "Storefront API failure"
// @Router /registration/submit [post]
func NewRegisterHandler(forms FormGetter, sessionGetter SessionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, ok := resolveForm(w, r, forms, sessionGetter)
		if !ok {
			return
		}

		outcome, err := form.Submit(r.Context())
		if err != nil {
			writeRegistrationError(w, err)
			return
		}

		state := form.State()
		resp := models.RegisterResponse{
			Outcome: string(outcome),
			Message: state.SubmitError,
			State:   state,
		}

		switch outcome {
		case registration.OutcomeSubmitted:
			resp.Message = msgRegistrationSuccess
			writeJSON(w, http.StatusOK, resp)
		case registration.OutcomeFailed:
			writeJSON(w, http.StatusBadGateway, resp)
		default:
			writeJSON(w, http.StatusUnprocessableEntity, resp)
		}
	}
}

// NewResetHandler returns an HTTP handler clearing the registration form.
// @Summary Reset the registration form
// @Tags registration
// @Produce json
// @Success 200 {object} models.RegistrationState "Fresh form"
// @Failure 409 {object} models.RegistrationErrorResponse "Submission in progress"
// @Router /registration/reset [post]
func NewResetHandler(forms FormGetter, sessionGetter SessionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, ok := resolveForm(w, r, forms, sessionGetter)
		if !ok {
			return
		}

		state, err := form.Reset()
		if err != nil {
			writeRegistrationError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, state)
	}
}

// NewDismissHandler returns an HTTP handler hiding the success message.
// @Summary Dismiss the success message
// @Tags registration
// @Produce json
// @Success 200 {object} models.RegistrationState "Form state"
// @Router /registration/dismiss [post]
func NewDismissHandler(forms FormGetter, sessionGetter SessionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, ok := resolveForm(w, r, forms, sessionGetter)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, form.DismissSuccess())
	}
}

// NewCloseFormHandler returns an HTTP handler discarding the session's form.
// A submission still in flight is cancelled.
// @Summary Close the registration form
// @Tags registration
// @Success 204 "Form discarded"
// @Router /registration [delete]
func NewCloseFormHandler(remove func(sessionID string), sessionGetter SessionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := sessionGetter(r.Context())
		if !ok {
			writeJSON(w, http.StatusUnauthorized, models.RegistrationErrorResponse{Error: "no client session"})
			return
		}
		remove(sid)
		w.WriteHeader(http.StatusNoContent)
	}
}

func resolveForm(w http.ResponseWriter, r *http.Request, forms FormGetter, sessionGetter SessionGetter) (RegistrationForm, bool) {
	sid, ok := sessionGetter(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.RegistrationErrorResponse{Error: "no client session"})
		return nil, false
	}
	return forms(sid), true
}

func writeRegistrationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, registration.ErrUnknownField), errors.Is(err, registration.ErrUnknownTarget):
		writeJSON(w, http.StatusBadRequest, models.RegistrationErrorResponse{Error: err.Error()})
	case errors.Is(err, registration.ErrSubmitInFlight):
		writeJSON(w, http.StatusConflict, models.RegistrationErrorResponse{Error: "a submission is already in progress"})
	case errors.Is(err, registration.ErrAwaitingDismissal):
		writeJSON(w, http.StatusConflict, models.RegistrationErrorResponse{Error: "dismiss the success message first"})
	case errors.Is(err, registration.ErrClosed):
		writeJSON(w, http.StatusConflict, models.RegistrationErrorResponse{Error: "the form was closed"})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeJSON(w, http.StatusInternalServerError, models.RegistrationErrorResponse{Error: "Internal server error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
