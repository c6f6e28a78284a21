package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusCodes(t *testing.T) {
	cases := []struct {
		err  *Error
		code string
		want int
	}{
		{Validation("bad input"), "VALIDATION_ERROR", http.StatusBadRequest},
		{NotFound("order %s not found", "x"), "NOT_FOUND", http.StatusNotFound},
		{BusinessRule("cannot delete"), "BUSINESS_LOGIC_ERROR", http.StatusUnprocessableEntity},
		{Conflict("duplicate"), "CONFLICT", http.StatusConflict},
		{Database("query failed", errors.New("boom")), "DATABASE_ERROR", http.StatusInternalServerError},
		{Internal(errors.New("boom")), "INTERNAL_ERROR", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := tc.err.StatusCode(); got != tc.want {
			t.Errorf("%s: status = %d, want %d", tc.code, got, tc.want)
		}
		if tc.err.Code != tc.code {
			t.Errorf("code = %s, want %s", tc.err.Code, tc.code)
		}
	}
}

func TestFromWrapped(t *testing.T) {
	base := NotFound("import order %s not found", "abc")
	wrapped := fmt.Errorf("service: %w", base)

	got := From(wrapped)
	if got != base {
		t.Fatalf("From did not unwrap application error")
	}
	if !Is(wrapped, KindNotFound) {
		t.Error("Is(KindNotFound) = false")
	}
	if Is(wrapped, KindValidation) {
		t.Error("Is(KindValidation) = true")
	}
}

func TestFromUnknownIsInternal(t *testing.T) {
	cause := errors.New("socket closed")
	got := From(cause)
	if got.Kind != KindInternal {
		t.Fatalf("kind = %v, want internal", got.Kind)
	}
	if !errors.Is(got, cause) {
		t.Error("internal error should unwrap to its cause")
	}
	if From(nil) != nil {
		t.Error("From(nil) should be nil")
	}
}
