package errors

import (
	"errors"
	"os"
	"testing"
)

func TestCollectionNotFoundError(t *testing.T) {
	err := NewCollectionNotFoundError("commit_region")

	expectedMsg := "collection named 'commit_region' not found"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrCollectionNotFound) {
		t.Error("Expected error to match ErrCollectionNotFound sentinel")
	}

	if errors.Is(err, ErrInvalidInput) {
		t.Error("Error should not match ErrInvalidInput")
	}
}

func TestCollectionAlreadyExistsError(t *testing.T) {
	err := NewCollectionAlreadyExistsError("profile")

	expectedMsg := "collection named 'profile' already exists"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrCollectionAlreadyExists) {
		t.Error("Expected error to match ErrCollectionAlreadyExists sentinel")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("query", "must not be empty")
	expectedMsg := "validation error for field 'query': must not be empty"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	err2 := NewValidationError("", "bad request")
	if err2.Error() != "validation error: bad request" {
		t.Errorf("Unexpected error message '%s'", err2.Error())
	}

	if !errors.Is(err, ErrInvalidInput) {
		t.Error("Expected error to match ErrInvalidInput sentinel")
	}
}

func TestQueryTooLongError(t *testing.T) {
	err := NewQueryTooLongError(4001, 4000)

	expectedMsg := "query length 4001 exceeds maximum of 4000 characters"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}
	if !errors.Is(err, ErrQueryTooLong) {
		t.Error("Expected error to match ErrQueryTooLong sentinel")
	}
}

func TestSourceError(t *testing.T) {
	err := NewSourceError("tabular", os.ErrNotExist)

	if !errors.Is(err, ErrSourceFailed) {
		t.Error("Expected error to match ErrSourceFailed sentinel")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("Expected wrapped error to be reachable")
	}
}

func TestWrappedErrors(t *testing.T) {
	wrapped := errors.Join(errors.New("lookup failed"), NewCollectionNotFoundError("profile"))

	if !errors.Is(wrapped, ErrCollectionNotFound) {
		t.Error("Expected joined error to match ErrCollectionNotFound")
	}

	var target *CollectionNotFoundError
	if !errors.As(wrapped, &target) {
		t.Fatal("Expected errors.As to extract CollectionNotFoundError")
	}
	if target.CollectionName != "profile" {
		t.Errorf("Expected collection name 'profile', got '%s'", target.CollectionName)
	}
}
