package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestConflictf(t *testing.T) {
	err := Conflictf("Table already reserved.")

	if err.Error() != "Table already reserved." {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if !errors.Is(err, ErrConflict) {
		t.Error("expected error to wrap ErrConflict")
	}
	if !IsConflict(err) {
		t.Error("IsConflict should return true")
	}
	if IsNotFound(err) {
		t.Error("IsNotFound should return false for a conflict")
	}
}

func TestNotFoundf(t *testing.T) {
	err := NotFoundf("reservation %d not found", 42)

	if err.Error() != "reservation 42 not found" {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound should return true")
	}
}

func TestWrappedKindSurvivesFurtherWrapping(t *testing.T) {
	err := fmt.Errorf("create reservation: %w", InvalidStatef("already cancelled"))

	if !IsInvalidState(err) {
		t.Error("IsInvalidState should see through fmt.Errorf wrapping")
	}
}
