package web

import (
	"net/http"
	"time"

	"folio/internal/adapters/http/middleware"
	"folio/internal/application/listutil"
	"folio/internal/application/orchestrators"
	"folio/internal/domain/experience"
)

// handleSkillsFragment handles GET /fragments/skills.
func handleSkillsFragment(w http.ResponseWriter, r *http.Request) {
	skills, err := stores.SkillStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	renderPartial(w, r, "skills_list.html", map[string]any{"Skills": skills})
}

// handleProjectsFragment handles GET /fragments/projects.
func handleProjectsFragment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projects, err := stores.ProjectStore.List(ctx)
	if err != nil {
		internalError(w, err)
		return
	}
	skills, err := stores.SkillStore.List(ctx)
	if err != nil {
		internalError(w, err)
		return
	}
	skillNames := make(map[string]string, len(skills))
	for _, s := range skills {
		skillNames[s.ID] = s.Name
	}
	renderPartial(w, r, "projects_list.html", map[string]any{
		"Projects":   projects,
		"SkillNames": skillNames,
	})
}

// handleExperiencesFragment handles GET /fragments/experiences.
func handleExperiencesFragment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	work, err := stores.ExperienceStore.ListByCategory(ctx, experience.CategoryWork)
	if err != nil {
		internalError(w, err)
		return
	}
	education, err := stores.ExperienceStore.ListByCategory(ctx, experience.CategoryEducation)
	if err != nil {
		internalError(w, err)
		return
	}
	renderPartial(w, r, "experiences_list.html", map[string]any{
		"Work":      work,
		"Education": education,
	})
}

// handlePersonalInfoFragment handles GET /fragments/personal-info.
func handlePersonalInfoFragment(w http.ResponseWriter, r *http.Request) {
	prof, err := stores.ProfileStore.Get(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	renderPartial(w, r, "personal_info_card.html", map[string]any{"Profile": prof})
}

// handleAdminsFragment handles GET /fragments/admins.
func handleAdminsFragment(w http.ResponseWriter, r *http.Request) {
	accounts, err := stores.StaffStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	sess, _ := middleware.GetSessionFromContext(r.Context())
	renderPartial(w, r, "admins_list.html", map[string]any{
		"Accounts":  accounts,
		"CurrentID": sess.AccountID,
	})
}

// handleMessagesFragment handles GET /fragments/messages.
// Rendering the list marks everything as seen: the session's watermark
// advances to the newest message, so the poller goes quiet until something
// newer arrives. Viewing any page counts; the watermark tracks the mailbox,
// not the page.
func handleMessagesFragment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	messages, err := stores.ContactStore.List(ctx)
	if err != nil {
		internalError(w, err)
		return
	}

	pp := listutil.ParsePageParams(r.URL.Query())
	page := listutil.NewPageInfo(pp.Page, pp.PerPage, len(messages))
	messages = messages[page.Offset():page.End()]

	if token, ok := middleware.GetTokenFromContext(ctx); ok {
		newest, err := stores.ContactStore.NewestSentAt(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		if !newest.IsZero() {
			sessions.UpdateLastSeen(token, newest)
		}
	}

	renderPartial(w, r, "messages_list.html", map[string]any{
		"Messages": messages,
		"Page":     page,
	})
}

// handleCheckNewMessages handles GET /fragments/check-new-messages, the
// dashboard's polling endpoint. The response never has a body; a new-message
// marker rides in the HX-Trigger header when something unseen exists.
func handleCheckNewMessages(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.GetSessionFromContext(r.Context())

	hasNew, err := orchestrators.ExecuteCheckNewMessages(r.Context(), sess.LastSeenMessageAt, orchestrators.ContactDeps{
		ContactStore: stores.ContactStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	if hasNew {
		// 200 distinguishes "new content" from the quiet 204; the marker
		// carries the notification, and the messages panel listens for it.
		w.Header().Set("HX-Trigger", "newMessage")
		w.WriteHeader(http.StatusOK)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handlePerfFragment handles GET /fragments/perf, a superuser-only panel
// with request and query timings from the last hour.
func handlePerfFragment(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsSuperuser(r.Context()) {
		w.WriteHeader(http.StatusForbidden)
		return
	}
	snap := perfCollector.Snapshot(timeNow().Add(-time.Hour), 10)
	renderPartial(w, r, "perf_stats.html", map[string]any{"Snapshot": snap})
}
