package validators

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/Soloken19/shapewear-dev/pkg/errors"
)

type promoPayload struct {
	Code  string `json:"code" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
}

func decodeRequest(t *testing.T, body string, dest any) error {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	return DecodeJSONBody(req, dest)
}

func TestDecodeJSONBodyValid(t *testing.T) {
	t.Parallel()

	var payload promoPayload
	if err := decodeRequest(t, `{"code":"WELCOME10"}`, &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.Code != "WELCOME10" {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	var payload promoPayload
	err := decodeRequest(t, `{"code":"WELCOME10","discount":15}`, &payload)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeJSONBodyReportsJSONTagNames(t *testing.T) {
	t.Parallel()

	var payload promoPayload
	err := decodeRequest(t, `{"email":"not-an-email"}`, &payload)
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected validation error, got %v", err)
	}

	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field details, got %v", typed.Details())
	}
	if details["code"] != "is required" {
		t.Fatalf("expected code field detail, got %v", details)
	}
	if details["email"] != "must be a valid email" {
		t.Fatalf("expected email field detail, got %v", details)
	}
}

func TestDecodeJSONBodyRejectsOversizedBody(t *testing.T) {
	t.Parallel()

	big := `{"code":"` + strings.Repeat("x", maxBodyBytes) + `"}`
	var payload promoPayload
	err := decodeRequest(t, big, &payload)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for oversized body, got %v", err)
	}
}

func TestDecodeJSONBodyRejectsNonJSON(t *testing.T) {
	t.Parallel()

	var payload promoPayload
	err := decodeRequest(t, `code=WELCOME10`, &payload)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
