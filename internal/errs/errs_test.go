package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Validation("bad input"), http.StatusBadRequest},
		{Conflict("already there"), http.StatusConflict},
		{NotFound("missing"), http.StatusNotFound},
		{Auth("who are you"), http.StatusUnauthorized},
		{errors.New("plain error"), http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", NotFound("missing")), http.StatusNotFound},
	}

	for _, tc := range cases {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("sql: no rows")
	err := Wrap(KindNotFound, cause, "Flight with ID %s not found", "f1")

	if !IsKind(err, KindNotFound) {
		t.Error("Expected the not found kind")
	}
	if !errors.Is(err, cause) {
		t.Error("Expected the cause to survive wrapping")
	}
	if err.Error() == cause.Error() {
		t.Error("Expected the wrap message to be visible")
	}
}

func TestIsKindMismatch(t *testing.T) {
	if IsKind(Validation("nope"), KindConflict) {
		t.Error("Validation error must not match the conflict kind")
	}
	if IsKind(errors.New("plain"), KindValidation) {
		t.Error("Plain errors carry no kind")
	}
}
