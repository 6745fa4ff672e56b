package staff

import (
	"errors"
	"strings"
	"time"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// Max length constants for user-editable fields.
const (
	MaxUsernameLength = 150
	MaxEmailLength    = 254
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// Domain errors
var (
	ErrEmptyUsername     = errors.New("username cannot be empty")
	ErrUsernameTooLong   = errors.New("username cannot exceed 150 characters")
	ErrDuplicateUsername = errors.New("an account with this username already exists")
	ErrInvalidEmail      = errors.New("email must contain '@'")
	ErrEmptyPassword     = errors.New("password cannot be empty")
	ErrPasswordTooShort  = errors.New("password must be at least 8 characters")
	ErrPasswordNumeric   = errors.New("password cannot be entirely numeric")
	ErrPasswordCommon    = errors.New("password is too common")
	ErrPasswordSimilar   = errors.New("password is too similar to the username or email")
	ErrWrongPassword     = errors.New("incorrect password")
)

// commonPasswords is a short deny-list of the most frequently breached
// passwords. Matching is case-insensitive.
var commonPasswords = map[string]struct{}{
	"password":   {},
	"password1":  {},
	"passw0rd":   {},
	"12345678":   {},
	"123456789":  {},
	"1234567890": {},
	"qwerty123":  {},
	"qwertyuiop": {},
	"letmein1":   {},
	"iloveyou":   {},
	"admin123":   {},
	"welcome1":   {},
	"sunshine":   {},
	"princess":   {},
	"football":   {},
	"baseball":   {},
	"dragon123":  {},
	"monkey123":  {},
	"abc12345":   {},
	"trustno1":   {},
}

// Account is a dashboard login account. PasswordHash is write-only: it is
// never rendered back into a form, and account updates never touch it.
type Account struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	IsStaff      bool
	IsSuperuser  bool
	CreatedAt    time.Time
	FailedLogins int
	LockedUntil  time.Time
}

// Validate checks if the Account has valid data.
// PRE: Account struct is populated
// POST: Returns nil if valid, error otherwise
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Username) == "" {
		return ErrEmptyUsername
	}
	if len(a.Username) > MaxUsernameLength {
		return ErrUsernameTooLong
	}
	if a.Email != "" {
		if len(a.Email) > MaxEmailLength {
			return errors.New("email cannot exceed 254 characters")
		}
		if !strings.Contains(a.Email, "@") {
			return ErrInvalidEmail
		}
	}
	return nil
}

// SetPassword checks the plaintext against the password policy, then hashes
// and stores it using bcrypt with cost 12.
// PRE: plaintext satisfies CheckPasswordPolicy against this account
// POST: PasswordHash is set to bcrypt hash
func (a *Account) SetPassword(plaintext string) error {
	if err := CheckPasswordPolicy(plaintext, a.Username, a.Email); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), 12)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash.
// PRE: PasswordHash is set
// INVARIANT: Account fields are not mutated
func (a *Account) CheckPassword(plaintext string) error {
	if a.PasswordHash == "" {
		return ErrWrongPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(plaintext)); err != nil {
		return ErrWrongPassword
	}
	return nil
}

// IsLocked returns true if the account is currently locked out.
// INVARIANT: Account fields are not mutated
func (a *Account) IsLocked() bool {
	if a.LockedUntil.IsZero() {
		return false
	}
	return time.Now().Before(a.LockedUntil)
}

// RecordFailedLogin increments the failed login counter and locks the account after 5 failures.
// PRE: Account exists
// POST: FailedLogins incremented; LockedUntil set if >= 5 failures
func (a *Account) RecordFailedLogin() {
	a.FailedLogins++
	if a.FailedLogins >= 5 {
		a.LockedUntil = time.Now().Add(15 * time.Minute)
	}
}

// ResetFailedLogins clears the failed login counter and lock.
// PRE: Account exists
// POST: FailedLogins is 0, LockedUntil is zero
func (a *Account) ResetFailedLogins() {
	a.FailedLogins = 0
	a.LockedUntil = time.Time{}
}

// CheckPasswordPolicy validates a candidate password: minimum length, not
// entirely numeric, not on the common-password list, and not too similar to
// the username or email local part.
// POST: Returns nil if the password is acceptable
func CheckPasswordPolicy(plaintext, username, email string) error {
	if plaintext == "" {
		return ErrEmptyPassword
	}
	if len(plaintext) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if isAllDigits(plaintext) {
		return ErrPasswordNumeric
	}
	if _, ok := commonPasswords[strings.ToLower(plaintext)]; ok {
		return ErrPasswordCommon
	}
	lower := strings.ToLower(plaintext)
	if username != "" && strings.Contains(lower, strings.ToLower(username)) {
		return ErrPasswordSimilar
	}
	if local, _, found := strings.Cut(email, "@"); found && local != "" {
		if strings.Contains(lower, strings.ToLower(local)) {
			return ErrPasswordSimilar
		}
	}
	return nil
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
