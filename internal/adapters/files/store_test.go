package files

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestLocalStore_SaveAndRemove tests the upload round trip.
func TestLocalStore_SaveAndRemove(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	rel, err := store.Save("profile_images", "avatar.PNG", strings.NewReader("fake image bytes"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(rel, "profile_images/") {
		t.Errorf("relative path = %q, want profile_images/ prefix", rel)
	}
	if !strings.HasSuffix(rel, ".png") {
		t.Errorf("extension should be lowercased: %q", rel)
	}

	data, err := os.ReadFile(filepath.Join(store.Root(), rel))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "fake image bytes" {
		t.Errorf("content mismatch: %q", data)
	}

	if err := store.Remove(rel); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := os.Stat(filepath.Join(store.Root(), rel)); !os.IsNotExist(err) {
		t.Error("file should be gone after Remove")
	}

	// Removing again is not an error.
	if err := store.Remove(rel); err != nil {
		t.Errorf("second remove: %v", err)
	}
}

// TestLocalStore_RejectsTraversal tests path hygiene.
func TestLocalStore_RejectsTraversal(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := store.Save("../escape", "x.txt", strings.NewReader("x")); err == nil {
		t.Error("expected error for subdir with separators")
	}
	if err := store.Remove("../../etc/passwd"); err == nil {
		t.Error("expected error for traversal in Remove")
	}
}
