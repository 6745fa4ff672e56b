package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"folio/internal/domain/staff"
)

// StaffStoreForLogin defines the store interface needed by Login.
type StaffStoreForLogin interface {
	GetByUsername(ctx context.Context, username string) (staff.Account, error)
	Save(ctx context.Context, a staff.Account) error
}

// LoginInput carries input for the login orchestrator.
type LoginInput struct {
	Username string
	Password string
}

// LoginResult carries the result of a successful login.
type LoginResult struct {
	AccountID   string
	Username    string
	IsSuperuser bool
}

// LoginDeps holds dependencies for Login.
type LoginDeps struct {
	StaffStore StaffStoreForLogin
}

var (
	// ErrInvalidCredentials deliberately covers unknown usernames, wrong
	// passwords AND valid non-staff accounts, so a caller cannot tell which
	// check failed.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountLocked      = errors.New("account is locked due to too many failed attempts")
)

// ExecuteLogin validates credentials and returns account info for session creation.
// Credential validity alone is not enough: the account must also carry the
// staff flag, and a non-staff account fails with the same generic error.
// PRE: Valid username and password provided
// POST: Returns account info on success, records failed login on failure
// INVARIANT: Account must not be locked
func ExecuteLogin(ctx context.Context, input LoginInput, deps LoginDeps) (LoginResult, error) {
	if input.Username == "" || input.Password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	acct, err := deps.StaffStore.GetByUsername(ctx, input.Username)
	if err != nil {
		slog.Info("auth_event", "event", "login_failed", "username", input.Username, "reason", "not_found")
		return LoginResult{}, ErrInvalidCredentials
	}

	if acct.IsLocked() {
		slog.Info("auth_event", "event", "login_blocked", "username", input.Username, "reason", "locked")
		return LoginResult{}, ErrAccountLocked
	}

	if err := acct.CheckPassword(input.Password); err != nil {
		acct.RecordFailedLogin()
		_ = deps.StaffStore.Save(ctx, acct)
		slog.Info("auth_event", "event", "login_failed", "username", input.Username, "reason", "wrong_password", "failed_logins", acct.FailedLogins)
		return LoginResult{}, ErrInvalidCredentials
	}

	// Staff gate. The reason is logged but never surfaced to the caller.
	if !acct.IsStaff {
		slog.Info("auth_event", "event", "login_rejected", "username", input.Username, "reason", "not_staff")
		return LoginResult{}, ErrInvalidCredentials
	}

	acct.ResetFailedLogins()
	_ = deps.StaffStore.Save(ctx, acct)

	slog.Info("auth_event", "event", "login_success", "username", input.Username)

	return LoginResult{
		AccountID:   acct.ID,
		Username:    acct.Username,
		IsSuperuser: acct.IsSuperuser,
	}, nil
}
