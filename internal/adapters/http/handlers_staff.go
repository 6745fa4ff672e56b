package web

import (
	"errors"
	"net/http"

	"folio/internal/adapters/http/middleware"
	"folio/internal/application/orchestrators"
	"folio/internal/domain/staff"
)

func staffDeps() orchestrators.StaffDeps {
	return orchestrators.StaffDeps{
		StaffStore: stores.StaffStore,
		GenerateID: generateID,
		Now:        timeNow,
	}
}

// handleAdminCreate handles GET (blank form) and POST (create) for
// /admins/create.
func handleAdminCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		renderPartial(w, r, "admin_form.html", map[string]any{
			"Account": staff.Account{IsStaff: true},
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		input := orchestrators.CreateStaffInput{
			Username:    r.FormValue("username"),
			Email:       r.FormValue("email"),
			Password:    r.FormValue("password"),
			IsStaff:     r.FormValue("is_staff") == "on",
			IsSuperuser: r.FormValue("is_superuser") == "on",
		}
		if _, err := orchestrators.ExecuteCreateStaff(ctx, input, staffDeps()); err != nil {
			// The password never travels back; the rest of the fields do.
			mutationError(w, r, err, "admin_form.html", map[string]any{
				"Account": staff.Account{
					Username:    input.Username,
					Email:       input.Email,
					IsStaff:     input.IsStaff,
					IsSuperuser: input.IsSuperuser,
				},
			})
			return
		}
		signalChanged(w, "admins-changed")
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleAdminUpdate handles GET (pre-filled form) and POST (update) for
// /admins/{id}/update. The form has no password field; the stored hash
// survives every update untouched.
func handleAdminUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	if r.Method == "GET" {
		a, err := stores.StaffStore.GetByID(ctx, id)
		if err != nil {
			lookupError(w, err)
			return
		}
		renderPartial(w, r, "admin_form.html", map[string]any{"Account": a})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		input := orchestrators.UpdateStaffInput{
			Username:    r.FormValue("username"),
			Email:       r.FormValue("email"),
			IsStaff:     r.FormValue("is_staff") == "on",
			IsSuperuser: r.FormValue("is_superuser") == "on",
		}
		if _, err := orchestrators.ExecuteUpdateStaff(ctx, id, input, staffDeps()); err != nil {
			// The form comes back against the stored record, untouched.
			orig, gerr := stores.StaffStore.GetByID(ctx, id)
			if gerr != nil {
				lookupError(w, gerr)
				return
			}
			mutationError(w, r, err, "admin_form.html", map[string]any{"Account": orig})
			return
		}
		signalChanged(w, "admins-changed")
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleAdminDelete handles GET (confirmation) and POST (delete) for
// /admins/{id}/delete. The self-deletion guard runs on BOTH methods: asking
// for the confirmation of your own account already answers with the refusal,
// so the destructive question is never posed.
func handleAdminDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")
	sess, _ := middleware.GetSessionFromContext(ctx)

	if r.Method == "GET" {
		if sess.AccountID == id {
			renderPartial(w, r, "admin_self_delete.html", nil)
			return
		}
		a, err := stores.StaffStore.GetByID(ctx, id)
		if err != nil {
			lookupError(w, err)
			return
		}
		renderPartial(w, r, "admin_confirm_delete.html", map[string]any{"Account": a})
		return
	}

	if r.Method == "POST" {
		err := orchestrators.ExecuteDeleteStaff(ctx, sess.AccountID, id, staffDeps())
		if errors.Is(err, orchestrators.ErrSelfDeletion) {
			renderPartial(w, r, "admin_self_delete.html", nil)
			return
		}
		if err != nil {
			lookupError(w, err)
			return
		}
		// The deleted account's sessions die with it.
		sessions.DeleteByAccountID(id)
		signalChanged(w, "admins-changed")
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}
