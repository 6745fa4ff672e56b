package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"folio/internal/adapters/email"
	"folio/internal/adapters/files"
	"folio/internal/adapters/http/middleware"
	"folio/internal/adapters/http/perf"
	contactStore "folio/internal/adapters/storage/contact"
	experienceStore "folio/internal/adapters/storage/experience"
	profileStore "folio/internal/adapters/storage/profile"
	projectStore "folio/internal/adapters/storage/project"
	skillStore "folio/internal/adapters/storage/skill"
	staffStore "folio/internal/adapters/storage/staff"
)

// Stores holds all storage dependencies.
type Stores struct {
	ProfileStore    profileStore.Store
	SkillStore      skillStore.Store
	ProjectStore    projectStore.Store
	ExperienceStore experienceStore.Store
	ContactStore    contactStore.Store
	StaffStore      staffStore.Store
}

// loadCSRFKey reads the CSRF secret from FOLIO_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("FOLIO_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("FOLIO_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("FOLIO_ENV") == "production" {
		log.Fatal("FOLIO_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set FOLIO_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// Global media file store (set by NewMux)
var media files.Store

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global perf collector (set by NewMux)
var perfCollector *perf.Collector

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// ownerEmail receives contact-form notifications.
var ownerEmail string

// SetEmailSender sets the global email sender and the notification recipient.
func SetEmailSender(sender email.Sender, owner string) {
	emailSender = sender
	ownerEmail = owner
}

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir, mediaDir string, s *Stores, collector *perf.Collector) http.Handler {
	stores = s
	perfCollector = collector
	sessions = middleware.NewSessionStore()
	middleware.SecureCookies = os.Getenv("FOLIO_ENV") == "production"

	store, err := files.NewLocalStore(mediaDir)
	if err != nil {
		log.Fatalf("failed to open media dir: %v", err)
	}
	media = store

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	mux.Handle("/media/", http.StripPrefix("/media/", http.FileServer(http.Dir(mediaDir))))
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: Timing -> RateLimit -> Auth -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
		middleware.Timing(collector),
	)
}
