package validators

import (
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/salescampus/salescampus-backend/pkg/errors"
)

type loginBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func TestDecodeJSONBodyValid(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"max@beispiel.de","password":"demo123"}`))
	var body loginBody
	if err := DecodeJSONBody(r, &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body.Email != "max@beispiel.de" {
		t.Fatalf("unexpected email %q", body.Email)
	}
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"max@beispiel.de","password":"x","extra":1}`))
	var body loginBody
	err := DecodeJSONBody(r, &body)
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %v", err)
	}
}

func TestDecodeJSONBodyValidationDetails(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"not-an-email","password":""}`))
	var body loginBody
	err := DecodeJSONBody(r, &body)
	if err == nil {
		t.Fatal("expected validation error")
	}
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected details map, got %T", typed.Details())
	}
	if details["email"] != "must be a valid email" {
		t.Fatalf("unexpected email detail %q", details["email"])
	}
	if details["password"] != "is required" {
		t.Fatalf("unexpected password detail %q", details["password"])
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString("  hallo  ", 0); got != "hallo" {
		t.Fatalf("unexpected %q", got)
	}
	if got := SanitizeString("abcdef", 3); got != "abc" {
		t.Fatalf("unexpected %q", got)
	}
	if got := SanitizeString("hallo\x00welt", 0); got != "hallowelt" {
		t.Fatalf("expected control chars stripped, got %q", got)
	}
	if got := SanitizeString("äöüß", 2); got != "äö" {
		t.Fatalf("expected rune-safe truncation, got %q", got)
	}
}
