// Package validation validates incoming analysis requests before they reach
// the scoring core.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// AnalyzeRequest is the request body of POST /analyze. Exactly one of
// JobDescription and JobURL must be supplied.
type AnalyzeRequest struct {
	CVText         string `json:"cv_text" validate:"required,min=50"`
	JobDescription string `json:"job_description" validate:"required_without=JobURL,omitempty,min=20"`
	JobURL         string `json:"job_url" validate:"omitempty,url"`
	TargetRole     string `json:"target_role" validate:"omitempty,max=120"`
	TierToken      string `json:"tier_token" validate:"omitempty"`
	Strategy       string `json:"strategy" validate:"omitempty,oneof=enhanced legacy"`
}

// Error represents a request validation failure with per-field messages.
type Error struct {
	Fields []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid request: %s", strings.Join(e.Fields, "; "))
}

// RequestValidator validates analyze requests.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a validator with struct tag checks registered.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate checks the request shape, returning an *Error listing every
// violated field.
func (v *RequestValidator) Validate(req *AnalyzeRequest) error {
	if req.JobDescription != "" && req.JobURL != "" {
		return &Error{Fields: []string{"job_description and job_url are mutually exclusive"}}
	}

	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("request validation failed: %w", err)
	}

	out := &Error{}
	for _, fe := range validationErrs {
		out.Fields = append(out.Fields, fieldMessage(fe))
	}
	return out
}

// fieldMessage renders one violation as a caller-facing message.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "CVText":
		if fe.Tag() == "min" {
			return "cv_text is too short to analyze (minimum 50 characters)"
		}
		return "cv_text is required"
	case "JobDescription":
		if fe.Tag() == "min" {
			return "job_description is too short to analyze (minimum 20 characters)"
		}
		return "one of job_description or job_url is required"
	case "JobURL":
		return "job_url must be a valid URL"
	case "TargetRole":
		return "target_role is too long"
	case "Strategy":
		return "strategy must be 'enhanced' or 'legacy'"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
