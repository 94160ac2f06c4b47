package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestStatusFor(t *testing.T) {
	cases := map[string]int{
		CodeInvalidInput:       http.StatusBadRequest,
		CodeProviderNotFound:   http.StatusNotFound,
		CodeAppointmentMissing: http.StatusNotFound,
		CodeWaitlistMissing:    http.StatusNotFound,
		CodeSlotTaken:          http.StatusConflict,
		CodeInvalidState:       http.StatusConflict,
		CodeTooLateToCancel:    http.StatusUnprocessableEntity,
		CodeStoreUnavailable:   http.StatusServiceUnavailable,
		"something_else":       http.StatusInternalServerError,
	}
	for code, want := range cases {
		if got := StatusFor(code); got != want {
			t.Errorf("%s: expected %d, got %d", code, want, got)
		}
	}
}

func TestUnavailable(t *testing.T) {
	cause := errors.New("connection refused")

	err := Unavailable(cause)
	if !IsBusiness(err, CodeStoreUnavailable) {
		t.Fatalf("expected store_unavailable, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatal("cause lost")
	}

	taken := fmt.Errorf("insert: %w", ErrBusiness(CodeSlotTaken))
	if got := CodeOf(Unavailable(taken)); got != CodeSlotTaken {
		t.Fatalf("business error rewrapped as %q", got)
	}

	if Unavailable(nil) != nil {
		t.Fatal("expected nil")
	}
}

func TestFromError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(err error) (*httptest.ResponseRecorder, HTTPError) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		FromError(c, err)

		var body HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		return w, body
	}

	w, body := run(Invalid("date must be %s", "YYYY-MM-DD"))
	if w.Code != http.StatusBadRequest || body.Code != CodeInvalidInput || body.Message != "date must be YYYY-MM-DD" {
		t.Fatalf("unexpected %d %+v", w.Code, body)
	}

	w, body = run(Unavailable(errors.New("dial tcp 10.0.0.5:5432: timeout")))
	if w.Code != http.StatusServiceUnavailable || strings.Contains(body.Message, "10.0.0.5") {
		t.Fatalf("cause leaked: %d %+v", w.Code, body)
	}

	w, body = run(ErrBusiness(CodeSlotTaken))
	if w.Code != http.StatusConflict || body.Message != CodeSlotTaken {
		t.Fatalf("unexpected %d %+v", w.Code, body)
	}

	w, body = run(errors.New("boom"))
	if w.Code != http.StatusInternalServerError || body.Code != "internal_error" {
		t.Fatalf("unexpected %d %+v", w.Code, body)
	}
}

func TestIsExclusionConflict(t *testing.T) {
	err := fmt.Errorf("create: %w", &pgconn.PgError{Code: "23P01"})
	if !IsExclusionConflict(err) {
		t.Fatal("expected exclusion conflict")
	}
	if IsExclusionConflict(&pgconn.PgError{Code: "23505"}) {
		t.Fatal("unique violation is not an exclusion conflict")
	}
	if IsExclusionConflict(errors.New("plain")) {
		t.Fatal("plain error is not an exclusion conflict")
	}
}
