// Package api provides validation utilities for API request handling.
package api

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	apperrors "github.com/gcbaptista/geoquery/internal/errors"
	"github.com/gcbaptista/geoquery/model"
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// ValidateQuery checks the query text. It returns apperrors.ErrInvalidInput
// for blank text and apperrors.ErrQueryTooLong when the text has more than
// maxLength characters. Length is counted in runes.
func ValidateQuery(query string, maxLength int) error {
	if strings.TrimSpace(query) == "" {
		return apperrors.NewValidationError("q", "query text is required")
	}
	if length := utf8.RuneCountInString(query); maxLength > 0 && length > maxLength {
		return apperrors.NewQueryTooLongError(length, maxLength)
	}
	return nil
}

// ValidateCollectionName validates a collection name parameter
func ValidateCollectionName(name string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if name == "" {
		result.AddError("name", "Collection name is required")
		return result
	}

	if strings.TrimSpace(name) != name {
		result.AddError("name", "Collection name cannot have leading or trailing whitespace")
	}

	return result
}

// ValidateSlots validates a pre-resolved slot request
func ValidateSlots(slots model.Slots) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if slots.Domain != "" && !slots.Domain.Valid() {
		result.AddError("domain", "Domain must be one of country_profile, commitment, legislation")
	}

	for _, target := range slots.Targets {
		if strings.TrimSpace(target) == "" {
			result.AddError("targets", "Targets cannot contain empty values")
			break
		}
	}

	return result
}

// SendValidationError sends a standardized validation error response
func SendValidationError(c *gin.Context, result *ValidationResult) {
	SendStructuredValidationError(c, result)
}

// SendQueryError maps a ValidateQuery error onto its HTTP response.
func SendQueryError(c *gin.Context, err error, maxLength int) {
	switch {
	case errors.Is(err, apperrors.ErrQueryTooLong):
		SendQueryTooLongError(c, maxLength)
	case errors.Is(err, apperrors.ErrInvalidInput):
		SendQueryRequiredError(c)
	default:
		SendInternalError(c, "query validation", err)
	}
}

// ValidateJSONBinding validates JSON binding and returns a standardized error
func ValidateJSONBinding(c *gin.Context, target interface{}) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if err := c.ShouldBindJSON(target); err != nil {
		result.AddError("request_body", "Invalid request body: "+err.Error())
	}

	return result
}
