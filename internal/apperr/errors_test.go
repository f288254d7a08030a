package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	err := New(Validation, "bad payload")
	if KindOf(err) != Validation {
		t.Fatalf("expect validation kind, got %q", KindOf(err))
	}
	if KindOf(errors.New("plain")) != "" {
		t.Fatal("plain error must carry no kind")
	}
}

func TestWrapUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(StorageWrite, "put photo object failed", cause)

	if !errors.Is(err, cause) {
		t.Fatal("wrapped cause must survive errors.Is")
	}
	if !IsKind(err, StorageWrite) {
		t.Fatalf("expect storage_write kind, got %q", KindOf(err))
	}
	if !IsKind(fmt.Errorf("op: %w", err), StorageWrite) {
		t.Fatal("kind must survive further wrapping")
	}
}

func TestErrorMessage(t *testing.T) {
	if got := New(Authorization, "missing subject claim").Error(); got != "missing subject claim" {
		t.Fatalf("unexpected message: %q", got)
	}
	wrapped := Wrap(MetadataWrite, "create photo record failed", errors.New("duplicate key"))
	if got := wrapped.Error(); got != "create photo record failed: duplicate key" {
		t.Fatalf("unexpected message: %q", got)
	}
}
