package service

import (
	"context"
	"errors"
	"testing"

	"github.com/pawcare/vetmarket/internal/core/domain"
	"github.com/pawcare/vetmarket/internal/core/ports"
)

type bookingFixture struct {
	svc      *AppointmentService
	appts    *stubAppointmentRepo
	user     *domain.User
	vet      *domain.Vet
	service  *domain.Service
	otherVet *domain.Vet
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	ctx := context.Background()

	users := newStubUserRepo()
	vets := newStubVetRepo()
	services := newStubServiceRepo()
	appts := newStubAppointmentRepo()

	user, _ := users.Create(ctx, &domain.User{Name: "Rahim", Email: "rahim@example.com", Role: domain.RoleUser})
	vet, _ := vets.Create(ctx, &domain.Vet{Name: "Dr. Khan", Location: "Dhaka", UserID: "u_vet"})
	otherVet, _ := vets.Create(ctx, &domain.Vet{Name: "Dr. Sultana", Location: "Chittagong", UserID: "u_vet2"})
	svcRecord, _ := services.Create(ctx, &domain.Service{Name: "Vaccination", Description: "Annual shots", Cost: 50.00, VetID: vet.ID})

	return &bookingFixture{
		svc:      NewAppointmentService(appts, vets, users, services, discardLogger),
		appts:    appts,
		user:     user,
		vet:      vet,
		service:  svcRecord,
		otherVet: otherVet,
	}
}

func TestAppointmentService_Book_Success(t *testing.T) {
	f := newBookingFixture(t)

	result, err := f.svc.Book(context.Background(), ports.BookAppointmentInput{
		VetID:     f.vet.ID,
		UserID:    f.user.ID,
		ServiceID: f.service.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.AppointmentID == "" {
		t.Error("expected a generated appointment id")
	}
	if result.Cost != 50.00 {
		t.Errorf("expected cost 50.00, got %v", result.Cost)
	}
	if result.CreatedAt.IsZero() {
		t.Error("CreatedAt must not be zero")
	}

	if len(f.appts.ordered) != 1 {
		t.Fatalf("expected exactly 1 stored appointment, got %d", len(f.appts.ordered))
	}
	stored := f.appts.ordered[0]
	if stored.UserID != f.user.ID || stored.VetID != f.vet.ID || stored.ServiceID != f.service.ID {
		t.Errorf("stored record does not resolve back to its parties: %+v", stored)
	}
}

func TestAppointmentService_Book_ServiceOfDifferentVet(t *testing.T) {
	f := newBookingFixture(t)

	// The service exists but belongs to another vet.
	_, err := f.svc.Book(context.Background(), ports.BookAppointmentInput{
		VetID:     f.otherVet.ID,
		UserID:    f.user.ID,
		ServiceID: f.service.ID,
	})
	if !errors.Is(err, domain.ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
	if len(f.appts.ordered) != 0 {
		t.Errorf("a failed booking must not write a record, got %d", len(f.appts.ordered))
	}
}

func TestAppointmentService_Book_UnknownUser(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.Book(context.Background(), ports.BookAppointmentInput{
		VetID:     f.vet.ID,
		UserID:    "ghost",
		ServiceID: f.service.ID,
	})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAppointmentService_Book_UnknownVet(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.Book(context.Background(), ports.BookAppointmentInput{
		VetID:     "ghost",
		UserID:    f.user.ID,
		ServiceID: f.service.ID,
	})
	if !errors.Is(err, domain.ErrVetNotFound) {
		t.Fatalf("expected ErrVetNotFound, got %v", err)
	}
}

func TestAppointmentService_Book_RepoError(t *testing.T) {
	f := newBookingFixture(t)
	f.appts.createErr = errors.New("db unavailable")

	_, err := f.svc.Book(context.Background(), ports.BookAppointmentInput{
		VetID:     f.vet.ID,
		UserID:    f.user.ID,
		ServiceID: f.service.ID,
	})
	if err == nil {
		t.Fatal("expected error when repo fails, got nil")
	}
}

func TestAppointmentService_History_Enriched(t *testing.T) {
	f := newBookingFixture(t)

	result, err := f.svc.Book(context.Background(), ports.BookAppointmentInput{
		VetID:     f.vet.ID,
		UserID:    f.user.ID,
		ServiceID: f.service.ID,
	})
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	entries, err := f.svc.History(context.Background(), f.user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	e := entries[0]
	if e.ID != result.AppointmentID {
		t.Errorf("entry id: got %q, want %q", e.ID, result.AppointmentID)
	}
	if e.Vet.Name != "Dr. Khan" {
		t.Errorf("vet name not enriched, got %q", e.Vet.Name)
	}
	if e.Service.Name != "Vaccination" || e.Service.Cost != 50.00 {
		t.Errorf("service not enriched: %+v", e.Service)
	}
}

func TestAppointmentService_History_EmptyIsNotAnError(t *testing.T) {
	f := newBookingFixture(t)

	entries, err := f.svc.History(context.Background(), f.user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", entries)
	}
}

func TestAppointmentService_History_DanglingServiceKeepsID(t *testing.T) {
	f := newBookingFixture(t)

	_, _ = f.svc.Book(context.Background(), ports.BookAppointmentInput{
		VetID:     f.vet.ID,
		UserID:    f.user.ID,
		ServiceID: f.service.ID,
	})

	// Simulate the known race: the service is deleted after booking.
	services := f.svc.services.(*stubServiceRepo)
	_ = services.Delete(context.Background(), f.service.ID)

	entries, err := f.svc.History(context.Background(), f.user.ID)
	if err != nil {
		t.Fatalf("history must tolerate dangling references: %v", err)
	}
	if entries[0].Service.ID != f.service.ID {
		t.Errorf("dangling reference must keep its id, got %q", entries[0].Service.ID)
	}
	if entries[0].Service.Name != "" {
		t.Errorf("dangling reference must have blank display fields, got %q", entries[0].Service.Name)
	}
}
