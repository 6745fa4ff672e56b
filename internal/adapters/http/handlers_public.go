package web

import (
	"net/http"

	"folio/internal/application/orchestrators"
	"folio/internal/domain/experience"
)

// handleHome handles the public portfolio page: GET / renders it, POST /
// submits the contact form.
func handleHome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method == "POST" {
		handleContact(w, r)
		return
	}
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	prof, err := stores.ProfileStore.Get(ctx)
	if err != nil {
		internalError(w, err)
		return
	}
	skills, err := stores.SkillStore.List(ctx)
	if err != nil {
		internalError(w, err)
		return
	}
	projects, err := stores.ProjectStore.List(ctx)
	if err != nil {
		internalError(w, err)
		return
	}
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

	// Projects render their skills by name, so build a lookup once.
	skillNames := make(map[string]string, len(skills))
	for _, s := range skills {
		skillNames[s.ID] = s.Name
	}

	renderTemplate(w, r, "index.html", map[string]any{
		"Profile":    prof,
		"Skills":     skills,
		"Projects":   projects,
		"Work":       work,
		"Education":  education,
		"SkillNames": skillNames,
	})
}

// handleContact processes the public contact-form submission (POST /).
func handleContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.SubmitMessageInput{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Message: r.FormValue("message"),
	}
	deps := orchestrators.ContactDeps{
		ContactStore: stores.ContactStore,
		EmailSender:  emailSender,
		OwnerEmail:   ownerEmail,
		GenerateID:   generateID,
		Now:          timeNow,
	}
	if _, err := orchestrators.ExecuteSubmitMessage(ctx, input, deps); err != nil {
		formError(w, r, "contact_form.html", map[string]any{
			"Name":    input.Name,
			"Email":   input.Email,
			"Message": input.Message,
		}, err)
		return
	}

	renderPartial(w, r, "contact_thanks.html", nil)
}
