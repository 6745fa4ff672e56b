package web

import (
	"net/http"
	"time"

	"folio/internal/application/orchestrators"
	"folio/internal/domain/experience"
)

func experienceDeps() orchestrators.ExperienceDeps {
	return orchestrators.ExperienceDeps{
		ExperienceStore: stores.ExperienceStore,
		GenerateID:      generateID,
	}
}

const formDateLayout = "2006-01-02"

// parseExperienceInput reads the shared create/update form fields. An empty
// end date means the position is current.
// PRE: the form has been parsed
func parseExperienceInput(r *http.Request) (orchestrators.ExperienceInput, error) {
	input := orchestrators.ExperienceInput{
		Category:     r.FormValue("category"),
		Title:        r.FormValue("title"),
		Organization: r.FormValue("organization"),
		Description:  r.FormValue("description"),
	}
	start, err := time.Parse(formDateLayout, r.FormValue("start_date"))
	if err != nil {
		return input, err
	}
	input.StartDate = start
	if v := r.FormValue("end_date"); v != "" {
		end, err := time.Parse(formDateLayout, v)
		if err != nil {
			return input, err
		}
		input.EndDate = end
	}
	return input, nil
}

// experienceFromInput rebuilds a form-shaped record from submitted values so
// a failed create comes back populated.
func experienceFromInput(input orchestrators.ExperienceInput) experience.Experience {
	return experience.Experience{
		Category:     input.Category,
		Title:        input.Title,
		Organization: input.Organization,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Description:  input.Description,
	}
}

// experienceUpdateError re-renders the edit form against the stored,
// unmodified record with the failure in its error slot.
func experienceUpdateError(w http.ResponseWriter, r *http.Request, id string, cause error) {
	orig, err := stores.ExperienceStore.GetByID(r.Context(), id)
	if err != nil {
		lookupError(w, err)
		return
	}
	formError(w, r, "experience_form.html", map[string]any{"Experience": orig}, cause)
}

// handleExperienceCreate handles GET (blank form) and POST (create) for
// /experiences/create.
func handleExperienceCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		renderPartial(w, r, "experience_form.html", map[string]any{"Experience": experience.Experience{}})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		input, err := parseExperienceInput(r)
		if err != nil {
			formError(w, r, "experience_form.html", map[string]any{
				"Experience": experienceFromInput(input),
			}, err)
			return
		}
		if _, err := orchestrators.ExecuteCreateExperience(ctx, input, experienceDeps()); err != nil {
			formError(w, r, "experience_form.html", map[string]any{
				"Experience": experienceFromInput(input),
			}, err)
			return
		}
		signalChanged(w, "experiences-changed")
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleExperienceUpdate handles GET (pre-filled form) and POST (update) for
// /experiences/{id}/update.
func handleExperienceUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	if r.Method == "GET" {
		e, err := stores.ExperienceStore.GetByID(ctx, id)
		if err != nil {
			lookupError(w, err)
			return
		}
		renderPartial(w, r, "experience_form.html", map[string]any{"Experience": e})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		input, err := parseExperienceInput(r)
		if err != nil {
			experienceUpdateError(w, r, id, err)
			return
		}
		if _, err := orchestrators.ExecuteUpdateExperience(ctx, id, input, experienceDeps()); err != nil {
			experienceUpdateError(w, r, id, err)
			return
		}
		signalChanged(w, "experiences-changed")
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleExperienceDelete handles GET (confirmation) and POST (delete) for
// /experiences/{id}/delete.
func handleExperienceDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	if r.Method == "GET" {
		e, err := stores.ExperienceStore.GetByID(ctx, id)
		if err != nil {
			lookupError(w, err)
			return
		}
		renderPartial(w, r, "experience_confirm_delete.html", map[string]any{"Experience": e})
		return
	}

	if r.Method == "POST" {
		if err := orchestrators.ExecuteDeleteExperience(ctx, id, experienceDeps()); err != nil {
			lookupError(w, err)
			return
		}
		signalChanged(w, "experiences-changed")
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}
