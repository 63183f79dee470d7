package api

import (
	"errors"
	"strings"
	"testing"

	apperrors "github.com/gcbaptista/geoquery/internal/errors"
	"github.com/gcbaptista/geoquery/model"
)

func TestValidationResult_AddError(t *testing.T) {
	result := &ValidationResult{Valid: true}

	result.AddError("field1", "error message")

	if result.Valid {
		t.Error("Expected Valid to be false after adding error")
	}

	if len(result.Errors) != 1 {
		t.Errorf("Expected 1 error, got %d", len(result.Errors))
	}

	if result.Errors[0].Field != "field1" {
		t.Errorf("Expected field 'field1', got '%s'", result.Errors[0].Field)
	}

	if result.Errors[0].Message != "error message" {
		t.Errorf("Expected message 'error message', got '%s'", result.Errors[0].Message)
	}
}

func TestValidationResult_HasErrors(t *testing.T) {
	result := &ValidationResult{Valid: true}

	if result.HasErrors() {
		t.Error("Expected HasErrors to be false for empty result")
	}

	result.AddError("field", "message")

	if !result.HasErrors() {
		t.Error("Expected HasErrors to be true after adding error")
	}
}

func TestValidateQuery(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		maxLength int
		wantErr   error
	}{
		{name: "valid query", query: "Saudi Arabia wildfires", maxLength: 4000},
		{name: "empty query", query: "", maxLength: 4000, wantErr: apperrors.ErrInvalidInput},
		{name: "whitespace only", query: " \t\n", maxLength: 4000, wantErr: apperrors.ErrInvalidInput},
		{name: "at limit", query: strings.Repeat("a", 10), maxLength: 10},
		{name: "over limit", query: strings.Repeat("a", 11), maxLength: 10, wantErr: apperrors.ErrQueryTooLong},
		{name: "limit counts characters not bytes", query: strings.Repeat("沙", 10), maxLength: 10},
		{name: "no limit", query: strings.Repeat("a", 10000), maxLength: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuery(tt.query, tt.maxLength)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateCollectionName(t *testing.T) {
	tests := []struct {
		name       string
		collection string
		wantValid  bool
		wantError  string
	}{
		{
			name:       "valid collection name",
			collection: "profile",
			wantValid:  true,
		},
		{
			name:       "empty collection name",
			collection: "",
			wantValid:  false,
			wantError:  "Collection name is required",
		},
		{
			name:       "collection name with whitespace",
			collection: " profile ",
			wantValid:  false,
			wantError:  "Collection name cannot have leading or trailing whitespace",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateCollectionName(tt.collection)

			if result.Valid != tt.wantValid {
				t.Errorf("Expected Valid=%v, got %v", tt.wantValid, result.Valid)
			}

			if tt.wantError != "" {
				if len(result.Errors) == 0 {
					t.Error("Expected error but got none")
				} else if result.Errors[0].Message != tt.wantError {
					t.Errorf("Expected error '%s', got '%s'", tt.wantError, result.Errors[0].Message)
				}
			}
		})
	}
}

func TestValidateSlots(t *testing.T) {
	tests := []struct {
		name      string
		slots     model.Slots
		wantValid bool
	}{
		{"empty slots", model.Slots{}, true},
		{"known domain", model.Slots{Domain: model.DomainCommitment, Targets: []string{"china"}}, true},
		{"unknown domain", model.Slots{Domain: "weather"}, false},
		{"blank target", model.Slots{Targets: []string{"china", ""}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateSlots(tt.slots)
			if result.Valid != tt.wantValid {
				t.Errorf("Expected Valid=%v, got %v (errors: %v)", tt.wantValid, result.Valid, result.Errors)
			}
		})
	}
}
