package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"folio/internal/domain/staff"
)

// StaffStoreForOrchestrator defines the store interface needed by staff orchestrators.
type StaffStoreForOrchestrator interface {
	GetByID(ctx context.Context, id string) (staff.Account, error)
	GetByUsername(ctx context.Context, username string) (staff.Account, error)
	Save(ctx context.Context, a staff.Account) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// ErrSelfDeletion is returned when a staff principal tries to delete the
// account it is logged in as. The check runs before any confirmation logic.
var ErrSelfDeletion = errors.New("you cannot delete your own account")

// CreateStaffInput carries submitted fields for a new staff account.
// This is the only place a password is accepted.
type CreateStaffInput struct {
	Username    string
	Email       string
	Password    string
	IsStaff     bool
	IsSuperuser bool
}

// UpdateStaffInput carries submitted fields for an account update.
// There is deliberately no password field: password rotation is a separate
// flow and an update must never touch the stored hash.
type UpdateStaffInput struct {
	Username    string
	Email       string
	IsStaff     bool
	IsSuperuser bool
}

// StaffDeps holds dependencies for the staff orchestrators.
type StaffDeps struct {
	StaffStore StaffStoreForOrchestrator
	GenerateID func() string
	Now        func() time.Time
}

// ExecuteCreateStaff creates a new dashboard account.
// PRE: input fields are as submitted
// POST: Account persisted with hashed password, or no change on error
func ExecuteCreateStaff(ctx context.Context, input CreateStaffInput, deps StaffDeps) (staff.Account, error) {
	a := staff.Account{
		ID:          deps.GenerateID(),
		Username:    input.Username,
		Email:       input.Email,
		IsStaff:     input.IsStaff,
		IsSuperuser: input.IsSuperuser,
		CreatedAt:   deps.Now(),
	}
	if err := a.Validate(); err != nil {
		return staff.Account{}, err
	}
	if _, err := deps.StaffStore.GetByUsername(ctx, a.Username); err == nil {
		return staff.Account{}, staff.ErrDuplicateUsername
	}
	if err := a.SetPassword(input.Password); err != nil {
		return staff.Account{}, err
	}
	if err := deps.StaffStore.Save(ctx, a); err != nil {
		return staff.Account{}, err
	}
	slog.Info("staff_created", "id", a.ID, "username", a.Username, "is_staff", a.IsStaff)
	return a, nil
}

// ExecuteUpdateStaff updates an account's identity fields and flags.
// PRE: id resolves to an existing account
// POST: Account reflects the input; PasswordHash is unchanged
func ExecuteUpdateStaff(ctx context.Context, id string, input UpdateStaffInput, deps StaffDeps) (staff.Account, error) {
	a, err := deps.StaffStore.GetByID(ctx, id)
	if err != nil {
		return staff.Account{}, err
	}
	a.Username = input.Username
	a.Email = input.Email
	a.IsStaff = input.IsStaff
	a.IsSuperuser = input.IsSuperuser
	if err := a.Validate(); err != nil {
		return staff.Account{}, err
	}
	if existing, err := deps.StaffStore.GetByUsername(ctx, a.Username); err == nil && existing.ID != a.ID {
		return staff.Account{}, staff.ErrDuplicateUsername
	}
	if err := deps.StaffStore.Save(ctx, a); err != nil {
		return staff.Account{}, err
	}
	slog.Info("staff_updated", "id", a.ID, "username", a.Username)
	return a, nil
}

// ExecuteDeleteStaff removes an account, refusing self-deletion.
// PRE: actorID is the id of the authenticated principal
// POST: Target account is gone, unless it is the actor's own
func ExecuteDeleteStaff(ctx context.Context, actorID, targetID string, deps StaffDeps) error {
	if actorID == targetID {
		slog.Info("staff_delete_refused", "id", targetID, "reason", "self_deletion")
		return ErrSelfDeletion
	}
	if _, err := deps.StaffStore.GetByID(ctx, targetID); err != nil {
		return err
	}
	if err := deps.StaffStore.Delete(ctx, targetID); err != nil {
		return err
	}
	slog.Info("staff_deleted", "id", targetID, "by", actorID)
	return nil
}

// ExecuteSeedAdmin creates the initial superuser when no accounts exist.
// Runs at startup and is idempotent.
// POST: At least one staff account exists
func ExecuteSeedAdmin(ctx context.Context, username, password string, deps StaffDeps) error {
	count, err := deps.StaffStore.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err = ExecuteCreateStaff(ctx, CreateStaffInput{
		Username:    username,
		Password:    password,
		IsStaff:     true,
		IsSuperuser: true,
	}, deps)
	if err != nil {
		return err
	}
	slog.Info("admin_seeded", "username", username)
	return nil
}
