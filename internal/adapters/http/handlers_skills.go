package web

import (
	"database/sql"
	"errors"
	"net/http"

	"folio/internal/application/orchestrators"
	"folio/internal/domain/skill"
)

// mutationError maps an orchestrator failure onto the wire: a missing record
// is a 404, anything else re-renders the given form with the error in its
// slot.
func mutationError(w http.ResponseWriter, r *http.Request, err error, formTemplate string, data map[string]any) {
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	formError(w, r, formTemplate, data, err)
}

// lookupError answers a failed record fetch: 404 for a missing id, generic
// 500 otherwise.
func lookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	internalError(w, err)
}

func skillDeps() orchestrators.SkillDeps {
	return orchestrators.SkillDeps{
		SkillStore: stores.SkillStore,
		GenerateID: generateID,
	}
}

// handleSkillCreate handles GET (blank form) and POST (create) for /skills/create.
func handleSkillCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		renderPartial(w, r, "skill_form.html", map[string]any{"Skill": skill.Skill{}})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		name := r.FormValue("name")
		if _, err := orchestrators.ExecuteCreateSkill(ctx, name, skillDeps()); err != nil {
			mutationError(w, r, err, "skill_form.html", map[string]any{
				"Skill": skill.Skill{Name: name},
			})
			return
		}
		signalChanged(w, "skills-changed")
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleSkillUpdate handles GET (pre-filled form) and POST (rename) for
// /skills/{id}/update.
func handleSkillUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	if r.Method == "GET" {
		s, err := stores.SkillStore.GetByID(ctx, id)
		if err != nil {
			lookupError(w, err)
			return
		}
		renderPartial(w, r, "skill_form.html", map[string]any{"Skill": s})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		if _, err := orchestrators.ExecuteUpdateSkill(ctx, id, r.FormValue("name"), skillDeps()); err != nil {
			// The form comes back against the stored record, untouched.
			orig, gerr := stores.SkillStore.GetByID(ctx, id)
			if gerr != nil {
				lookupError(w, gerr)
				return
			}
			mutationError(w, r, err, "skill_form.html", map[string]any{"Skill": orig})
			return
		}
		// Projects render skill names, so a rename touches them too.
		signalChanged(w, "skills-changed", "projects-changed")
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleSkillDelete handles GET (confirmation) and POST (delete) for
// /skills/{id}/delete.
func handleSkillDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	if r.Method == "GET" {
		s, err := stores.SkillStore.GetByID(ctx, id)
		if err != nil {
			lookupError(w, err)
			return
		}
		renderPartial(w, r, "skill_confirm_delete.html", map[string]any{"Skill": s})
		return
	}

	if r.Method == "POST" {
		if err := orchestrators.ExecuteDeleteSkill(ctx, id, skillDeps()); err != nil {
			lookupError(w, err)
			return
		}
		// Deleting a skill drops it from any project that referenced it.
		signalChanged(w, "skills-changed", "projects-changed")
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}
