package email

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeBundle(t *testing.T, dir, name, html, text string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name+".html"), []byte(html), 0o644); err != nil {
		t.Fatalf("write %s.html: %v", name, err)
	}
	if err := os.WriteFile(filepath.Join(dir, name+".txt"), []byte(text), 0o644); err != nil {
		t.Fatalf("write %s.txt: %v", name, err)
	}
}

func TestStoreGetCachesCompiledPair(t *testing.T) {
	dir := t.TempDir()
	writeBundle(t, dir, "welcome", "<p>Hola {{.FirstName}}</p>", "Hola {{.FirstName}}")

	store := NewStore(dir)

	first, err := store.Get("welcome")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	// Borramos los archivos: si Get vuelve a tocar el disco, falla.
	if err := os.Remove(filepath.Join(dir, "welcome.html")); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := os.Remove(filepath.Join(dir, "welcome.txt")); err != nil {
		t.Fatalf("remove: %v", err)
	}

	second, err := store.Get("welcome")
	if err != nil {
		t.Fatalf("Get cached: %v", err)
	}
	if first != second {
		t.Fatal("expected the same cached *CompiledPair on the second Get")
	}
}

func TestStoreGetMissingBundle(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.Get("nope")
	if err == nil {
		t.Fatal("expected error for missing bundle")
	}
	if !errors.Is(err, ErrTemplateLoad) {
		t.Fatalf("expected ErrTemplateLoad, got %v", err)
	}
}

func TestStoreGetInvalidTemplate(t *testing.T) {
	dir := t.TempDir()
	writeBundle(t, dir, "broken", "{{.Unclosed", "texto")

	store := NewStore(dir)
	if _, err := store.Get("broken"); !errors.Is(err, ErrTemplateLoad) {
		t.Fatalf("expected ErrTemplateLoad, got %v", err)
	}
}

func TestStoreClearAndStatus(t *testing.T) {
	dir := t.TempDir()
	writeBundle(t, dir, "welcome", "<p>w</p>", "w")
	writeBundle(t, dir, "subscription", "<p>s</p>", "s")

	store := NewStore(dir)
	if _, err := store.Get("welcome"); err != nil {
		t.Fatalf("Get welcome: %v", err)
	}
	if _, err := store.Get("subscription"); err != nil {
		t.Fatalf("Get subscription: %v", err)
	}

	st := store.Status()
	if st.Size != 2 {
		t.Fatalf("Status.Size = %d, want 2", st.Size)
	}
	if len(st.Names) != 2 || st.Names[0] != "subscription" || st.Names[1] != "welcome" {
		t.Fatalf("Status.Names = %v, want sorted [subscription welcome]", st.Names)
	}

	store.Clear()
	st = store.Status()
	if st.Size != 0 || len(st.Names) != 0 {
		t.Fatalf("after Clear, Status = %+v, want empty", st)
	}

	// Después del clear, Get vuelve a cargar de disco.
	if _, err := store.Get("welcome"); err != nil {
		t.Fatalf("Get after Clear: %v", err)
	}
	if store.Status().Size != 1 {
		t.Fatalf("Status.Size after reload = %d, want 1", store.Status().Size)
	}
}
