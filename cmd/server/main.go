package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	emailPkg "folio/internal/adapters/email"
	web "folio/internal/adapters/http"
	"folio/internal/adapters/http/perf"
	"folio/internal/adapters/storage"
	contactStore "folio/internal/adapters/storage/contact"
	experienceStore "folio/internal/adapters/storage/experience"
	profileStore "folio/internal/adapters/storage/profile"
	projectStore "folio/internal/adapters/storage/project"
	skillStore "folio/internal/adapters/storage/skill"
	staffStore "folio/internal/adapters/storage/staff"
	"folio/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func newID() string { return uuid.New().String() }

func now() time.Time { return time.Now() }

func main() {
	// .env is optional; real environments set variables directly.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	// Initialize database with WAL mode, foreign keys, and busy timeout
	dbPath := envOrDefault("FOLIO_DB", "folio.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Performance instrumentation: wrap DB with timing, create collector
	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db, collector)

	profStore := profileStore.NewSQLiteStore(timedDB)
	acctStore := staffStore.NewSQLiteStore(timedDB)
	stores := &web.Stores{
		ProfileStore:    profStore,
		SkillStore:      skillStore.NewSQLiteStore(timedDB),
		ProjectStore:    projectStore.NewSQLiteStore(timedDB),
		ExperienceStore: experienceStore.NewSQLiteStore(timedDB),
		ContactStore:    contactStore.NewSQLiteStore(timedDB),
		StaffStore:      acctStore,
	}

	// Seed default admin account if no accounts exist
	adminUsername := envOrDefault("FOLIO_ADMIN_USERNAME", "admin")
	adminPassword := envOrDefault("FOLIO_ADMIN_PASSWORD", "Umami monster")
	seedDeps := orchestrators.StaffDeps{
		StaffStore: acctStore,
		GenerateID: newID,
		Now:        now,
	}
	if err := orchestrators.ExecuteSeedAdmin(context.Background(), adminUsername, adminPassword, seedDeps); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	// Seed a placeholder profile so the dashboard always has one to edit
	profDeps := orchestrators.ProfileDeps{ProfileStore: profStore, GenerateID: newID}
	if err := orchestrators.ExecuteSeedProfile(context.Background(), profDeps); err != nil {
		log.Fatalf("failed to seed profile: %v", err)
	}

	// Configure email sender for contact-form notifications
	resendKey := os.Getenv("FOLIO_RESEND_KEY")
	owner := envOrDefault("FOLIO_OWNER_EMAIL", "")
	emailFrom := envOrDefault("FOLIO_RESEND_FROM", "Portfolio <noreply@localhost>")
	if resendKey != "" && owner != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), owner)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), owner)
		log.Println("Email sender configured (noop - set FOLIO_RESEND_KEY and FOLIO_OWNER_EMAIL for real delivery)")
	}

	mux := web.NewMux(envOrDefault("FOLIO_STATIC_DIR", "static"), envOrDefault("FOLIO_MEDIA_DIR", "media"), stores, collector)

	addr := envOrDefault("FOLIO_ADDR", ":8080")
	log.Printf("folio %s starting on %s (env=%s)", version, addr, envOrDefault("FOLIO_ENV", "development"))

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
