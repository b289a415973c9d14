package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ktuclinic/portal-auth/internal/core/domain"
)

func serveError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.GET("/fail", func(echo.Context) error { return err })

	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error envelope: %v", err)
	}
	return rec.Code, body.Error
}

func TestErrorHandler_AuthTaxonomy(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"account not found", domain.ErrAccountNotFound, http.StatusNotFound,
			"User not found. Please check your email or register first."},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized,
			"Invalid credentials. Please check your email and password."},
		{"role mismatch", &domain.RoleMismatchError{Actual: domain.RoleAdmin}, http.StatusUnauthorized,
			"Invalid role selected. This account is registered as Administrator."},
		{"email taken", domain.ErrEmailTaken, http.StatusConflict,
			"Email already exists. Please use a different email or try logging in."},
		{"invalid phone", domain.ErrInvalidPhone, http.StatusBadRequest,
			"Please enter a valid phone number."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := serveError(t, tc.err)
			if code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, code)
			}
			// Messages are surfaced verbatim: the client displays them as-is.
			if msg != tc.wantMsg {
				t.Fatalf("expected %q, got %q", tc.wantMsg, msg)
			}
		})
	}
}

func TestErrorHandler_UnexpectedErrorIsGeneric(t *testing.T) {
	code, msg := serveError(t, echo.NewHTTPError(http.StatusTeapot, "teapot"))
	if code != http.StatusTeapot || msg != "teapot" {
		t.Fatalf("echo errors pass through: got %d %q", code, msg)
	}

	code, msg = serveError(t, assertableError("registry exploded"))
	if code != http.StatusInternalServerError || msg != "internal server error" {
		t.Fatalf("unexpected errors must not leak details: got %d %q", code, msg)
	}
}

type assertableError string

func (e assertableError) Error() string { return string(e) }
