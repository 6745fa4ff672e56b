package web

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"folio/internal/application/orchestrators"
	"folio/internal/domain/project"
)

func projectDeps() orchestrators.ProjectDeps {
	return orchestrators.ProjectDeps{
		ProjectStore: stores.ProjectStore,
		SkillStore:   stores.SkillStore,
		GenerateID:   generateID,
	}
}

var errBadDisplayOrder = errors.New("display order must be a whole number")

// parseProjectInput reads the shared create/update form fields. A display
// order that does not parse as an integer is a validation failure, not a
// silent zero.
// PRE: the form has been parsed
func parseProjectInput(r *http.Request) (orchestrators.ProjectInput, error) {
	input := orchestrators.ProjectInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		SkillIDs:    r.Form["skills"],
		RepoURL:     r.FormValue("repo_url"),
		LiveURL:     r.FormValue("live_url"),
	}
	order, err := strconv.Atoi(r.FormValue("display_order"))
	if err != nil {
		return input, errBadDisplayOrder
	}
	input.DisplayOrder = order
	return input, nil
}

// projectFormData assembles the render context for project_form.html: the
// record, the full skill list, and which skills are ticked.
func projectFormData(ctx context.Context, p project.Project) (map[string]any, error) {
	skills, err := stores.SkillStore.List(ctx)
	if err != nil {
		return nil, err
	}
	selected := make(map[string]bool, len(p.SkillIDs))
	for _, id := range p.SkillIDs {
		selected[id] = true
	}
	return map[string]any{
		"Project":   p,
		"AllSkills": skills,
		"Selected":  selected,
	}, nil
}

// projectFromInput rebuilds a form-shaped record from submitted values so a
// failed create comes back populated.
func projectFromInput(input orchestrators.ProjectInput) project.Project {
	return project.Project{
		Title:        input.Title,
		Description:  input.Description,
		SkillIDs:     input.SkillIDs,
		RepoURL:      input.RepoURL,
		LiveURL:      input.LiveURL,
		DisplayOrder: input.DisplayOrder,
	}
}

// projectCreateError re-renders the create form with the submitted values
// and the failure in its error slot.
func projectCreateError(w http.ResponseWriter, r *http.Request, input orchestrators.ProjectInput, cause error) {
	data, err := projectFormData(r.Context(), projectFromInput(input))
	if err != nil {
		internalError(w, err)
		return
	}
	formError(w, r, "project_form.html", data, cause)
}

// projectUpdateError re-renders the edit form against the stored, unmodified
// record with the failure in its error slot. A record that no longer exists
// is a 404.
func projectUpdateError(w http.ResponseWriter, r *http.Request, id string, cause error) {
	ctx := r.Context()
	orig, err := stores.ProjectStore.GetByID(ctx, id)
	if err != nil {
		lookupError(w, err)
		return
	}
	data, err := projectFormData(ctx, orig)
	if err != nil {
		internalError(w, err)
		return
	}
	formError(w, r, "project_form.html", data, cause)
}

// handleProjectCreate handles GET (blank form) and POST (create) for
// /projects/create.
func handleProjectCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		data, err := projectFormData(ctx, project.Project{})
		if err != nil {
			internalError(w, err)
			return
		}
		renderPartial(w, r, "project_form.html", data)
		return
	}

	if r.Method == "POST" {
		if err := parseUploadForm(w, r); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		input, err := parseProjectInput(r)
		if err != nil {
			projectCreateError(w, r, input, err)
			return
		}

		var uploads uploadSet
		imagePath, err := uploads.add(r, "image", "projects")
		if err != nil {
			internalError(w, err)
			return
		}
		input.Image = imagePath

		if _, err := orchestrators.ExecuteCreateProject(ctx, input, projectDeps()); err != nil {
			uploads.discard()
			projectCreateError(w, r, input, err)
			return
		}
		signalChanged(w, "projects-changed")
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleProjectUpdate handles GET (pre-filled form) and POST (update) for
// /projects/{id}/update.
func handleProjectUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	if r.Method == "GET" {
		p, err := stores.ProjectStore.GetByID(ctx, id)
		if err != nil {
			lookupError(w, err)
			return
		}
		data, err := projectFormData(ctx, p)
		if err != nil {
			internalError(w, err)
			return
		}
		renderPartial(w, r, "project_form.html", data)
		return
	}

	if r.Method == "POST" {
		if err := parseUploadForm(w, r); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		input, err := parseProjectInput(r)
		if err != nil {
			projectUpdateError(w, r, id, err)
			return
		}

		var uploads uploadSet
		imagePath, err := uploads.add(r, "image", "projects")
		if err != nil {
			internalError(w, err)
			return
		}
		input.Image = imagePath // empty keeps the stored image

		if _, err := orchestrators.ExecuteUpdateProject(ctx, id, input, projectDeps()); err != nil {
			uploads.discard()
			projectUpdateError(w, r, id, err)
			return
		}
		signalChanged(w, "projects-changed")
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleProjectDelete handles GET (confirmation) and POST (delete) for
// /projects/{id}/delete.
func handleProjectDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	if r.Method == "GET" {
		p, err := stores.ProjectStore.GetByID(ctx, id)
		if err != nil {
			lookupError(w, err)
			return
		}
		renderPartial(w, r, "project_confirm_delete.html", map[string]any{"Project": p})
		return
	}

	if r.Method == "POST" {
		if err := orchestrators.ExecuteDeleteProject(ctx, id, projectDeps()); err != nil {
			lookupError(w, err)
			return
		}
		signalChanged(w, "projects-changed")
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}
