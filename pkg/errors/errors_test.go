package errors

import (
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"username required", ErrUsernameRequired, http.StatusBadRequest},
		{"user not found", ErrUserNotFound, http.StatusNotFound},
		{"rate limited", ErrRateLimited, http.StatusTooManyRequests},
		{"missing credential", ErrMissingCredential, http.StatusInternalServerError},
		{"wrapped user not found", Wrap(ErrUserNotFound, "resolving handle"), http.StatusNotFound},
		{"plain error", New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HTTPStatus(tc.err); got != tc.want {
				t.Fatalf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}

func TestWrapPreservesChain(t *testing.T) {
	err := WrapWithCode(ErrUserNotFound, "NOT_FOUND", "resolving handle")
	if !Is(err, ErrUserNotFound) {
		t.Fatal("wrapped error lost its cause")
	}
	if got := GetMessage(err); got != "resolving handle" {
		t.Fatalf("GetMessage = %q", got)
	}

	var e *Error
	if !As(err, &e) || e.Code != "NOT_FOUND" {
		t.Fatalf("expected coded *Error, got %v", err)
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, "anything") != nil {
		t.Fatal("wrapping nil must stay nil")
	}
}
