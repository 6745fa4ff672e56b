package web

import (
	"errors"
	"net/http"

	"folio/internal/adapters/http/middleware"
	"folio/internal/application/orchestrators"
)

// handleLogin handles GET (form) and POST (authenticate) for /dashboard/login.
func handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		if _, ok := middleware.GetSessionFromContext(ctx); ok {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "login.html", map[string]any{})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := orchestrators.LoginInput{
			Username: r.FormValue("username"),
			Password: r.FormValue("password"),
		}
		result, err := orchestrators.ExecuteLogin(ctx, input, orchestrators.LoginDeps{
			StaffStore: stores.StaffStore,
		})
		if err != nil {
			msg := "Invalid username or password"
			if errors.Is(err, orchestrators.ErrAccountLocked) {
				msg = "Account temporarily locked. Try again later."
			}
			renderTemplate(w, r, "login.html", map[string]any{
				"Error":    msg,
				"Username": input.Username,
			})
			return
		}

		token, err := sessions.Create(result.AccountID, result.Username, result.IsSuperuser)
		if err != nil {
			internalError(w, err)
			return
		}
		middleware.SetSessionCookie(w, token)
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleLogout handles GET /dashboard/logout. Tearing down the session and
// returning to the public page.
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if token, ok := middleware.GetTokenFromContext(r.Context()); ok {
		sessions.Delete(token)
	}
	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleDashboard handles GET /dashboard (the staff landing page).
// The panels load themselves through the fragment endpoints.
func handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	renderTemplate(w, r, "dashboard.html", map[string]any{})
}
