package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pawcare/vetmarket/internal/core/ports"
)

type stubAppointmentService struct {
	bookFn    func(ctx context.Context, input ports.BookAppointmentInput) (*ports.BookingResult, error)
	historyFn func(ctx context.Context, userID string) ([]ports.AppointmentEntry, error)
}

func (s *stubAppointmentService) Book(ctx context.Context, input ports.BookAppointmentInput) (*ports.BookingResult, error) {
	return s.bookFn(ctx, input)
}

func (s *stubAppointmentService) History(ctx context.Context, userID string) ([]ports.AppointmentEntry, error) {
	return s.historyFn(ctx, userID)
}

func TestAppointmentHandler_Book_UsesAuthenticatedIdentity(t *testing.T) {
	stub := &stubAppointmentService{
		bookFn: func(_ context.Context, input ports.BookAppointmentInput) (*ports.BookingResult, error) {
			if input.UserID != "user_1" {
				t.Fatalf("booking user must come from the token, got %q", input.UserID)
			}
			if input.VetID != "vet_1" || input.ServiceID != "svc_1" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.BookingResult{AppointmentID: "appt_1", Cost: 50.00, CreatedAt: time.Now()}, nil
		},
	}
	h := NewAppointmentHandler(stub)

	body := `{"vet_id":"vet_1","service_id":"svc_1","user_id":"spoofed"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/appointments", body)
	c.Set("user_id", "user_1")
	c.Set("role", "user")

	if err := h.Book(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "appt_1" {
		t.Fatalf("appointment id missing: %+v", resp)
	}
	if resp["cost"] != 50.00 {
		t.Fatalf("cost missing: %+v", resp)
	}
}

func TestAppointmentHandler_Book_MissingFields(t *testing.T) {
	stub := &stubAppointmentService{
		bookFn: func(context.Context, ports.BookAppointmentInput) (*ports.BookingResult, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}
	h := NewAppointmentHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/appointments", `{"vet_id":"vet_1"}`)
	c.Set("user_id", "user_1")

	err := h.Book(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAppointmentHandler_History_OwnHistoryOnly(t *testing.T) {
	stub := &stubAppointmentService{
		historyFn: func(context.Context, string) ([]ports.AppointmentEntry, error) {
			t.Fatal("service must not be called for another user's history")
			return nil, nil
		},
	}
	h := NewAppointmentHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/appointments/user_2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("user_id")
	c.SetParamValues("user_2")
	c.Set("user_id", "user_1")

	err := h.History(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403 HTTPError, got %v", err)
	}
}

func TestAppointmentHandler_History_EmptyIsJSONArray(t *testing.T) {
	stub := &stubAppointmentService{
		historyFn: func(_ context.Context, userID string) ([]ports.AppointmentEntry, error) {
			if userID != "user_1" {
				t.Fatalf("unexpected user %q", userID)
			}
			return []ports.AppointmentEntry{}, nil
		},
	}
	h := NewAppointmentHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/appointments/user_1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("user_id")
	c.SetParamValues("user_1")
	c.Set("user_id", "user_1")

	if err := h.History(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := rec.Body.String(); got != "[]\n" {
		t.Fatalf("empty history must render as [], got %q", got)
	}
}
