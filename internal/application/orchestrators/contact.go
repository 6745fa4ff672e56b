package orchestrators

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"time"

	"folio/internal/adapters/email"
	"folio/internal/domain/contact"
)

// ContactStoreForOrchestrator defines the store interface needed by contact orchestrators.
type ContactStoreForOrchestrator interface {
	GetByID(ctx context.Context, id string) (contact.Message, error)
	Insert(ctx context.Context, m contact.Message) error
	Delete(ctx context.Context, id string) error
	HasNewerThan(ctx context.Context, t time.Time) (bool, error)
}

// SubmitMessageInput carries a public contact-form submission.
type SubmitMessageInput struct {
	Name    string
	Email   string
	Message string
}

// ContactDeps holds dependencies for the contact orchestrators.
type ContactDeps struct {
	ContactStore ContactStoreForOrchestrator
	EmailSender  email.Sender // optional; nil disables notification
	OwnerEmail   string       // notification recipient
	GenerateID   func() string
	Now          func() time.Time
}

// ExecuteSubmitMessage validates and stores a contact-form submission, then
// notifies the portfolio owner by email. The notification is best-effort:
// a send failure is logged and does not fail the submission.
// PRE: input fields are as submitted by the visitor
// POST: Message persisted with a server-assigned SentAt, or no change on error
func ExecuteSubmitMessage(ctx context.Context, input SubmitMessageInput, deps ContactDeps) (contact.Message, error) {
	m := contact.Message{
		ID:      deps.GenerateID(),
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
		SentAt:  deps.Now(),
	}
	if err := m.Validate(); err != nil {
		return contact.Message{}, err
	}
	if err := deps.ContactStore.Insert(ctx, m); err != nil {
		return contact.Message{}, err
	}
	slog.Info("contact_message_received", "id", m.ID, "from", m.Email)

	if deps.EmailSender != nil && deps.OwnerEmail != "" {
		_, err := deps.EmailSender.Send(ctx, email.SendRequest{
			To:      []string{deps.OwnerEmail},
			Subject: fmt.Sprintf("New portfolio message from %s", m.Name),
			HTML: fmt.Sprintf("<p><strong>%s</strong> (%s) wrote:</p><p>%s</p>",
				html.EscapeString(m.Name), html.EscapeString(m.Email), html.EscapeString(m.Message)),
			ReplyTo: m.Email,
		})
		if err != nil {
			slog.Error("contact_notify_failed", "id", m.ID, "error", err)
		}
	}

	return m, nil
}

// ExecuteDeleteMessage removes a contact message.
// PRE: id resolves to an existing message
// POST: Message is gone
func ExecuteDeleteMessage(ctx context.Context, id string, deps ContactDeps) error {
	if _, err := deps.ContactStore.GetByID(ctx, id); err != nil {
		return err
	}
	if err := deps.ContactStore.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("contact_message_deleted", "id", id)
	return nil
}

// ExecuteCheckNewMessages answers the dashboard's polled "anything new?"
// query. An unset lastSeen (zero time) always answers false: the session has
// never viewed the message list, so there is nothing to compare against.
// POST: Returns true only when a message is strictly newer than lastSeen
func ExecuteCheckNewMessages(ctx context.Context, lastSeen time.Time, deps ContactDeps) (bool, error) {
	if lastSeen.IsZero() {
		return false, nil
	}
	return deps.ContactStore.HasNewerThan(ctx, lastSeen)
}
