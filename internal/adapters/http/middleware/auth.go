package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"sync"
	"time"
)

// contextKey is an unexported type for context keys in this package.
type contextKey string

const sessionContextKey contextKey = "session"

// Session represents an authenticated dashboard session.
type Session struct {
	AccountID   string
	Username    string
	IsSuperuser bool
	CreatedAt   time.Time

	// LastSeenMessageAt is the newest contact-message timestamp this session
	// has viewed. Zero until the message list is first rendered; the polled
	// new-message check compares against it.
	LastSeenMessageAt time.Time
}

// SessionStore is an in-memory session store.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewSessionStore creates a new in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]Session),
	}
}

// Create stores a new session and returns the token.
// PRE: accountID and username are non-empty
// POST: Session is stored, token is returned
func (ss *SessionStore) Create(accountID, username string, isSuperuser bool) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.sessions[token] = Session{
		AccountID:   accountID,
		Username:    username,
		IsSuperuser: isSuperuser,
		CreatedAt:   time.Now(),
	}
	return token, nil
}

// Get retrieves a session by token.
// PRE: token is non-empty
// POST: Returns session if valid and not expired
func (ss *SessionStore) Get(token string) (Session, bool) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	session, ok := ss.sessions[token]
	if !ok {
		return Session{}, false
	}
	// Sessions expire after 24 hours
	if time.Since(session.CreatedAt) > 24*time.Hour {
		delete(ss.sessions, token)
		return Session{}, false
	}
	return session, true
}

// Delete removes a session by token.
// PRE: token is non-empty
// POST: Session with given token is removed
func (ss *SessionStore) Delete(token string) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	delete(ss.sessions, token)
}

// DeleteByAccountID removes every session belonging to an account. Used when
// the account itself is deleted so the principal does not stay logged in.
// POST: No session for accountID remains
func (ss *SessionStore) DeleteByAccountID(accountID string) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	for token, s := range ss.sessions {
		if s.AccountID == accountID {
			delete(ss.sessions, token)
		}
	}
}

// UpdateLastSeen advances the session's message watermark. The watermark
// only moves forward.
// PRE: token exists in the store
// POST: LastSeenMessageAt >= its previous value
func (ss *SessionStore) UpdateLastSeen(token string, seenAt time.Time) bool {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	s, ok := ss.sessions[token]
	if !ok {
		return false
	}
	if seenAt.After(s.LastSeenMessageAt) {
		s.LastSeenMessageAt = seenAt
		ss.sessions[token] = s
	}
	return true
}

const sessionCookieName = "folio_session"

// SecureCookies controls the Secure flag on session cookies. Set true in
// production behind TLS.
var SecureCookies = false

// Auth returns middleware that extracts the session from the cookie and sets
// it in the request context. It does NOT block unauthenticated requests —
// use RequireStaff for that.
func Auth(sessions *SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookieName)
			if err == nil && cookie.Value != "" {
				if session, ok := sessions.Get(cookie.Value); ok {
					ctx := context.WithValue(r.Context(), sessionContextKey, session)
					ctx = context.WithValue(ctx, tokenContextKey, cookie.Value)
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

const tokenContextKey contextKey = "session_token"

// RequireStaff returns middleware that blocks unauthenticated requests.
// Page navigations are redirected to the login form; fragment requests get
// a bare 401 so the client-side swap does not paint a login page into a
// dashboard panel.
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetSessionFromContext(r.Context()); !ok {
			if isFragmentRequest(r) {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			http.Redirect(w, r, "/dashboard/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// isFragmentRequest reports whether the request came from the client-side
// partial-refresh machinery rather than a full page navigation.
func isFragmentRequest(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// GetSessionFromContext extracts the session from the request context.
func GetSessionFromContext(ctx context.Context) (Session, bool) {
	session, ok := ctx.Value(sessionContextKey).(Session)
	return session, ok
}

// GetTokenFromContext extracts the raw session token from the request
// context. Handlers need it to update the session in the store.
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey).(string)
	return token, ok
}

// IsSuperuser checks if the current session belongs to a superuser.
func IsSuperuser(ctx context.Context) bool {
	session, ok := GetSessionFromContext(ctx)
	return ok && session.IsSuperuser
}

// SetSessionCookie sets the session cookie on the response.
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		HttpOnly: true,
		Secure:   SecureCookies,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   86400, // 24 hours
	})
}

// ClearSessionCookie removes the session cookie.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		HttpOnly: true,
		Secure:   SecureCookies,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   -1,
	})
}

// ContextWithSession returns a context with the given session set.
// Intended for use in tests.
func ContextWithSession(ctx context.Context, sess Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, sess)
}

// ContextWithToken returns a context with the given raw token set.
// Intended for use in tests.
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey, token)
}

func generateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
