package orchestrators

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"folio/internal/adapters/email"
	"folio/internal/domain/contact"
)

// mockContactStore implements ContactStoreForOrchestrator for testing.
type mockContactStore struct {
	messages map[string]contact.Message
}

func newMockContactStore() *mockContactStore {
	return &mockContactStore{messages: make(map[string]contact.Message)}
}

func (m *mockContactStore) GetByID(_ context.Context, id string) (contact.Message, error) {
	msg, ok := m.messages[id]
	if !ok {
		return contact.Message{}, errors.New("not found")
	}
	return msg, nil
}

func (m *mockContactStore) Insert(_ context.Context, msg contact.Message) error {
	m.messages[msg.ID] = msg
	return nil
}

func (m *mockContactStore) Delete(_ context.Context, id string) error {
	delete(m.messages, id)
	return nil
}

func (m *mockContactStore) HasNewerThan(_ context.Context, t time.Time) (bool, error) {
	for _, msg := range m.messages {
		if msg.SentAt.After(t) {
			return true, nil
		}
	}
	return false, nil
}

// recordingSender captures sent emails; fails when failWith is set.
type recordingSender struct {
	sent     []email.SendRequest
	failWith error
}

func (r *recordingSender) Send(_ context.Context, req email.SendRequest) (email.SendResult, error) {
	if r.failWith != nil {
		return email.SendResult{}, r.failWith
	}
	r.sent = append(r.sent, req)
	return email.SendResult{MessageID: "sent-1"}, nil
}

// TestExecuteSubmitMessage tests storing a submission and notifying the owner.
func TestExecuteSubmitMessage(t *testing.T) {
	store := newMockContactStore()
	sender := &recordingSender{}
	deps := ContactDeps{
		ContactStore: store,
		EmailSender:  sender,
		OwnerEmail:   "owner@example.com",
		GenerateID:   seqID(),
		Now:          fixedNow,
	}

	m, err := ExecuteSubmitMessage(context.Background(), SubmitMessageInput{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "Hello there",
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.SentAt.Equal(fixedNow()) {
		t.Errorf("SentAt = %v, want server clock", m.SentAt)
	}
	if len(store.messages) != 1 {
		t.Fatalf("got %d stored messages, want 1", len(store.messages))
	}
	if len(sender.sent) != 1 {
		t.Fatalf("got %d notification emails, want 1", len(sender.sent))
	}
	if sender.sent[0].To[0] != "owner@example.com" || sender.sent[0].ReplyTo != "visitor@example.com" {
		t.Errorf("notification addressing wrong: %+v", sender.sent[0])
	}
}

// TestExecuteSubmitMessage_EscapesHTML tests that visitor input is escaped
// before landing in the notification body.
func TestExecuteSubmitMessage_EscapesHTML(t *testing.T) {
	sender := &recordingSender{}
	deps := ContactDeps{
		ContactStore: newMockContactStore(),
		EmailSender:  sender,
		OwnerEmail:   "owner@example.com",
		GenerateID:   seqID(),
		Now:          fixedNow,
	}

	_, err := ExecuteSubmitMessage(context.Background(), SubmitMessageInput{
		Name:    "<script>alert(1)</script>",
		Email:   "visitor@example.com",
		Message: "hi",
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(sender.sent[0].HTML, "<script>") {
		t.Error("notification body contains unescaped input")
	}
}

// TestExecuteSubmitMessage_SendFailureIsNotFatal tests that a broken mailer
// does not lose the message.
func TestExecuteSubmitMessage_SendFailureIsNotFatal(t *testing.T) {
	store := newMockContactStore()
	sender := &recordingSender{failWith: errors.New("smtp down")}
	deps := ContactDeps{
		ContactStore: store,
		EmailSender:  sender,
		OwnerEmail:   "owner@example.com",
		GenerateID:   seqID(),
		Now:          fixedNow,
	}

	if _, err := ExecuteSubmitMessage(context.Background(), SubmitMessageInput{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "Hello",
	}, deps); err != nil {
		t.Fatalf("submission failed because of mailer: %v", err)
	}
	if len(store.messages) != 1 {
		t.Error("message was not stored")
	}
}

// TestExecuteSubmitMessage_NoSender tests that a nil sender disables
// notification without error.
func TestExecuteSubmitMessage_NoSender(t *testing.T) {
	store := newMockContactStore()
	deps := ContactDeps{ContactStore: store, GenerateID: seqID(), Now: fixedNow}

	if _, err := ExecuteSubmitMessage(context.Background(), SubmitMessageInput{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "Hello",
	}, deps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.messages) != 1 {
		t.Error("message was not stored")
	}
}

// TestExecuteSubmitMessage_Invalid tests that validation failures reach the
// caller and nothing is stored or sent.
func TestExecuteSubmitMessage_Invalid(t *testing.T) {
	store := newMockContactStore()
	sender := &recordingSender{}
	deps := ContactDeps{
		ContactStore: store,
		EmailSender:  sender,
		OwnerEmail:   "owner@example.com",
		GenerateID:   seqID(),
		Now:          fixedNow,
	}

	_, err := ExecuteSubmitMessage(context.Background(), SubmitMessageInput{
		Name:    "Visitor",
		Email:   "not-an-address",
		Message: "Hello",
	}, deps)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(store.messages) != 0 || len(sender.sent) != 0 {
		t.Error("invalid submission had side effects")
	}
}

// TestExecuteCheckNewMessages tests the polled new-message check against a
// session's last-seen watermark.
func TestExecuteCheckNewMessages(t *testing.T) {
	store := newMockContactStore()
	deps := ContactDeps{ContactStore: store, GenerateID: seqID(), Now: fixedNow}

	base := fixedNow()
	store.messages["m1"] = contact.Message{ID: "m1", SentAt: base}

	tests := []struct {
		name     string
		lastSeen time.Time
		want     bool
	}{
		{"zero watermark never reports", time.Time{}, false},
		{"older watermark sees the message", base.Add(-time.Hour), true},
		{"equal watermark is not newer", base, false},
		{"sub-second gap still counts", base.Add(-time.Millisecond), true},
		{"newer watermark sees nothing", base.Add(time.Hour), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExecuteCheckNewMessages(context.Background(), tt.lastSeen, deps)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

// TestExecuteDeleteMessage tests removal and the missing-id path.
func TestExecuteDeleteMessage(t *testing.T) {
	store := newMockContactStore()
	deps := ContactDeps{ContactStore: store, GenerateID: seqID(), Now: fixedNow}

	store.messages["m1"] = contact.Message{ID: "m1", SentAt: fixedNow()}
	if err := ExecuteDeleteMessage(context.Background(), "m1", deps); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(store.messages) != 0 {
		t.Error("message still present")
	}
	if err := ExecuteDeleteMessage(context.Background(), "m1", deps); err == nil {
		t.Error("expected not-found error")
	}
}
