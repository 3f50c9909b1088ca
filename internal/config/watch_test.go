package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
)

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("movement:\n  maxSpeed: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	log, _ := test.NewNullLogger()
	w, err := Watch(path, log)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("movement:\n  maxSpeed: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case f := <-w.Updates:
		if f.Movement.MaxSpeed != 7 {
			t.Errorf("Expected maxSpeed 7, got %f", f.Movement.MaxSpeed)
		}
	case err := <-w.Errors:
		t.Fatalf("Unexpected error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for reload")
	}
}

func TestWatcherReportsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	log, _ := test.NewNullLogger()
	w, err := Watch(path, log)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	// Unrelated files in the same directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("movement: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("movement:\n  jumpHeight: 50\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case f := <-w.Updates:
		t.Fatalf("Invalid file should not be published, got %+v", f)
	case err := <-w.Errors:
		if err == nil {
			t.Error("Expected a non-nil error")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for the rejection")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	log, _ := test.NewNullLogger()

	w, err := Watch(path, log)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Second Close: %v", err)
	}
	if _, ok := <-w.Updates; ok {
		t.Error("Updates should be closed")
	}
}
