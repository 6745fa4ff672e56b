package web

import (
	"net/http"

	"folio/internal/application/orchestrators"
)

// handleMessageDelete handles GET (confirmation) and POST (delete) for
// /messages/{id}/delete. Messages are immutable, so delete is the only
// mutation they ever see.
func handleMessageDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")
	deps := orchestrators.ContactDeps{
		ContactStore: stores.ContactStore,
		GenerateID:   generateID,
		Now:          timeNow,
	}

	if r.Method == "GET" {
		m, err := stores.ContactStore.GetByID(ctx, id)
		if err != nil {
			lookupError(w, err)
			return
		}
		renderPartial(w, r, "message_confirm_delete.html", map[string]any{"Message": m})
		return
	}

	if r.Method == "POST" {
		if err := orchestrators.ExecuteDeleteMessage(ctx, id, deps); err != nil {
			lookupError(w, err)
			return
		}
		signalChanged(w, "messages-changed")
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}
