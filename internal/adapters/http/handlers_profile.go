package web

import (
	"net/http"

	"folio/internal/application/orchestrators"
)

// handlePersonalInfoUpdate handles GET (pre-filled form) and POST (update)
// for /personal-info/{id}/update. Unlike the other mutations, a successful
// POST renders the refreshed info card inline: the form sits inside the
// panel it updates, so the response replaces it directly. The info-updated
// marker still fires for any other listener.
func handlePersonalInfoUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	if r.Method == "GET" {
		p, err := stores.ProfileStore.GetByID(ctx, id)
		if err != nil {
			lookupError(w, err)
			return
		}
		renderPartial(w, r, "personal_info_form.html", map[string]any{"Profile": p})
		return
	}

	if r.Method == "POST" {
		if err := parseUploadForm(w, r); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := orchestrators.UpdateProfileInput{
			Name:        r.FormValue("name"),
			Title:       r.FormValue("title"),
			Bio:         r.FormValue("bio"),
			Email:       r.FormValue("email"),
			GitHubURL:   r.FormValue("github_url"),
			LinkedInURL: r.FormValue("linkedin_url"),
		}

		var uploads uploadSet
		imagePath, err := uploads.add(r, "profile_image", "profile")
		if err != nil {
			internalError(w, err)
			return
		}
		input.ProfileImage = imagePath
		cvPath, err := uploads.add(r, "cv_file", "cv")
		if err != nil {
			uploads.discard()
			internalError(w, err)
			return
		}
		input.CVFile = cvPath

		p, err := orchestrators.ExecuteUpdateProfile(ctx, id, input, orchestrators.ProfileDeps{
			ProfileStore: stores.ProfileStore,
			GenerateID:   generateID,
		})
		if err != nil {
			uploads.discard()
			// The form comes back against the stored record, untouched.
			orig, gerr := stores.ProfileStore.GetByID(ctx, id)
			if gerr != nil {
				lookupError(w, gerr)
				return
			}
			mutationError(w, r, err, "personal_info_form.html", map[string]any{"Profile": orig})
			return
		}

		w.Header().Set("HX-Trigger", "info-updated")
		renderPartial(w, r, "personal_info_card.html", map[string]any{"Profile": p})
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}
