package usecase

import "context"

// ResetState is the position of a password-reset flow.
type ResetState int

const (
	// StateAwaitingEmail means the flow has not yet verified an email.
	StateAwaitingEmail ResetState = iota
	// StateAwaitingNewPassword means the email was verified and the flow is
	// waiting for the replacement password.
	StateAwaitingNewPassword
	// StateDone means the password was changed. The state is terminal.
	StateDone
)

// String returns a readable name for the state.
func (s ResetState) String() string {
	switch s {
	case StateAwaitingEmail:
		return "awaiting_email"
	case StateAwaitingNewPassword:
		return "awaiting_new_password"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// PasswordResetter is the slice of the auth usecase the reset flow drives.
type PasswordResetter interface {
	VerifyEmail(ctx context.Context, email string) (bool, error)
	ChangePassword(ctx context.Context, email, newPassword string) error
}

// PasswordResetFlow is the two-step password recovery state machine:
// AwaitingEmail -> AwaitingNewPassword -> Done. A failed step leaves the
// state unchanged; Done is one-shot and accepts no further transitions.
//
// The HTTP surface drives the reset statelessly through the two auth
// endpoints and keeps the step it is on client-side. This flow is for
// callers that hold the whole recovery in one place, such as a CLI or an
// embedding program.
type PasswordResetFlow struct {
	auth  PasswordResetter
	state ResetState
	email string
}

// NewPasswordResetFlow creates a flow in the AwaitingEmail state.
func NewPasswordResetFlow(auth PasswordResetter) *PasswordResetFlow {
	return &PasswordResetFlow{auth: auth, state: StateAwaitingEmail}
}

// State returns the current position of the flow.
func (f *PasswordResetFlow) State() ResetState {
	return f.state
}

// VerifyEmail checks that the email belongs to a registered user and, on
// success, advances the flow to AwaitingNewPassword. On failure the flow
// stays in AwaitingEmail.
func (f *PasswordResetFlow) VerifyEmail(ctx context.Context, email string) error {
	switch f.state {
	case StateDone:
		return ErrResetCompleted
	case StateAwaitingNewPassword:
		return ErrResetOutOfOrder
	}

	exists, err := f.auth.VerifyEmail(ctx, email)
	if err != nil {
		return err
	}
	if !exists {
		return ErrEmailNotFound
	}

	f.email = email
	f.state = StateAwaitingNewPassword
	return nil
}

// ChangePassword sets the new password for the previously verified email
// and, on success, advances the flow to its terminal Done state. On failure
// (weak password, storage error) the flow stays in AwaitingNewPassword.
func (f *PasswordResetFlow) ChangePassword(ctx context.Context, newPassword string) error {
	switch f.state {
	case StateDone:
		return ErrResetCompleted
	case StateAwaitingEmail:
		return ErrResetOutOfOrder
	}

	if err := f.auth.ChangePassword(ctx, f.email, newPassword); err != nil {
		return err
	}

	f.state = StateDone
	return nil
}
