// CineVerse - Movie Discovery and Recommendation Backend
// Copyright 2026 CineVerse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cineverse-app/cineverse

package validation

import (
	"strings"
	"testing"
)

type sampleRequest struct {
	MovieName string `validate:"required,min=1,max=200"`
	TopK      int    `validate:"omitempty,gte=1,lte=20"`
}

func TestValidateStructPasses(t *testing.T) {
	req := sampleRequest{MovieName: "Inception", TopK: 5}
	if err := ValidateStruct(&req); err != nil {
		t.Errorf("Expected valid struct to pass, got: %v", err)
	}
}

func TestValidateStructRequiredField(t *testing.T) {
	req := sampleRequest{}
	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("Expected validation error for missing MovieName")
	}
	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Expected VALIDATION_ERROR code, got %q", apiErr.Code)
	}
	if !strings.Contains(apiErr.Message, "MovieName") {
		t.Errorf("Expected message to name the field, got %q", apiErr.Message)
	}
}

func TestValidateStructRangeError(t *testing.T) {
	req := sampleRequest{MovieName: "Inception", TopK: 99}
	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("Expected validation error for out-of-range TopK")
	}
	if len(err.Errors()) != 1 {
		t.Fatalf("Expected 1 error, got %d", len(err.Errors()))
	}
	if err.Errors()[0].Field() != "TopK" {
		t.Errorf("Expected TopK field error, got %q", err.Errors()[0].Field())
	}
}

func TestValidateStructMultipleErrors(t *testing.T) {
	req := sampleRequest{MovieName: "", TopK: 99}
	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("Expected validation errors")
	}
	if len(err.Errors()) != 2 {
		t.Fatalf("Expected 2 errors, got %d", len(err.Errors()))
	}
	apiErr := err.ToAPIError()
	if !strings.Contains(apiErr.Message, ";") {
		t.Errorf("Expected combined message, got %q", apiErr.Message)
	}
}
