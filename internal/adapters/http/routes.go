package web

import (
	"net/http"

	"folio/internal/adapters/http/middleware"
)

// registerRoutes wires every handler onto the mux. Dashboard routes are
// wrapped in RequireStaff; public routes are not. Dispatch is a closed
// per-entity table: each entity's paths name their handlers explicitly.
func registerRoutes(mux *http.ServeMux) {
	staff := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireStaff(h)
	}

	// Public site. POST / is the contact-form submission.
	mux.HandleFunc("/", handleHome)

	// Auth
	mux.HandleFunc("/dashboard/login", handleLogin)
	mux.HandleFunc("/dashboard/logout", handleLogout)

	// Dashboard shell
	mux.Handle("/dashboard", staff(handleDashboard))

	// Dashboard panels
	mux.Handle("/fragments/personal-info", staff(handlePersonalInfoFragment))
	mux.Handle("/fragments/skills", staff(handleSkillsFragment))
	mux.Handle("/fragments/projects", staff(handleProjectsFragment))
	mux.Handle("/fragments/experiences", staff(handleExperiencesFragment))
	mux.Handle("/fragments/messages", staff(handleMessagesFragment))
	mux.Handle("/fragments/admins", staff(handleAdminsFragment))
	mux.Handle("/fragments/check-new-messages", staff(handleCheckNewMessages))
	mux.Handle("/fragments/perf", staff(handlePerfFragment))

	// Personal info (singleton: update only)
	mux.Handle("/personal-info/{id}/update", staff(handlePersonalInfoUpdate))

	// Skills
	mux.Handle("/skills/create", staff(handleSkillCreate))
	mux.Handle("/skills/{id}/update", staff(handleSkillUpdate))
	mux.Handle("/skills/{id}/delete", staff(handleSkillDelete))

	// Projects
	mux.Handle("/projects/create", staff(handleProjectCreate))
	mux.Handle("/projects/{id}/update", staff(handleProjectUpdate))
	mux.Handle("/projects/{id}/delete", staff(handleProjectDelete))

	// Experiences
	mux.Handle("/experiences/create", staff(handleExperienceCreate))
	mux.Handle("/experiences/{id}/update", staff(handleExperienceUpdate))
	mux.Handle("/experiences/{id}/delete", staff(handleExperienceDelete))

	// Messages (immutable: delete only)
	mux.Handle("/messages/{id}/delete", staff(handleMessageDelete))

	// Dashboard accounts
	mux.Handle("/admins/create", staff(handleAdminCreate))
	mux.Handle("/admins/{id}/update", staff(handleAdminUpdate))
	mux.Handle("/admins/{id}/delete", staff(handleAdminDelete))
}
