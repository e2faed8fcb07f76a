package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pawcare/vetmarket/internal/core/domain"
	"github.com/pawcare/vetmarket/internal/core/ports"
)

func completePetInput(ownerID string) ports.RegisterPetInput {
	return ports.RegisterPetInput{
		Name:                "Tommy",
		Picture:             "https://example.com/tommy.jpg",
		Species:             "Dog",
		Breed:               "Labrador",
		Age:                 3,
		Sex:                 "Male",
		VaccinationStatus:   string(domain.VaccinationUpToDate),
		LastVaccinationDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		HealthStatus:        string(domain.HealthHealthy),
		OwnerID:             ownerID,
	}
}

func TestPetService_Register_Success(t *testing.T) {
	pets := newStubPetRepo()
	svc := NewPetService(pets, discardLogger)

	pet, err := svc.Register(context.Background(), completePetInput("user_1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pet.ID == "" {
		t.Error("expected a generated id")
	}
	if pet.OwnerID != "user_1" {
		t.Errorf("expected owner user_1, got %q", pet.OwnerID)
	}
	if pet.VaccinationStatus != domain.VaccinationUpToDate {
		t.Errorf("unexpected vaccination status %q", pet.VaccinationStatus)
	}
}

func TestPetService_Register_NoPartialRecords(t *testing.T) {
	svc := NewPetService(newStubPetRepo(), discardLogger)

	cases := map[string]func(*ports.RegisterPetInput){
		"missing name":     func(in *ports.RegisterPetInput) { in.Name = "" },
		"missing picture":  func(in *ports.RegisterPetInput) { in.Picture = "" },
		"missing breed":    func(in *ports.RegisterPetInput) { in.Breed = "" },
		"zero vaccination": func(in *ports.RegisterPetInput) { in.LastVaccinationDate = time.Time{} },
		"negative age":     func(in *ports.RegisterPetInput) { in.Age = -1 },
		"bad vacc status":  func(in *ports.RegisterPetInput) { in.VaccinationStatus = "Partially" },
		"bad health":       func(in *ports.RegisterPetInput) { in.HealthStatus = "Unwell" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			input := completePetInput("user_1")
			mutate(&input)
			_, err := svc.Register(context.Background(), input)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestPetService_Update_OwnershipEnforced(t *testing.T) {
	pets := newStubPetRepo()
	svc := NewPetService(pets, discardLogger)

	pet, _ := svc.Register(context.Background(), completePetInput("user_1"))

	input := completePetInput("intruder")
	_, err := svc.Update(context.Background(), ports.UpdatePetInput{ID: pet.ID, RegisterPetInput: input})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestPetService_Update_ReplacesRecord(t *testing.T) {
	pets := newStubPetRepo()
	svc := NewPetService(pets, discardLogger)

	pet, _ := svc.Register(context.Background(), completePetInput("user_1"))

	input := completePetInput("user_1")
	input.Age = 4
	input.HealthStatus = string(domain.HealthSick)

	updated, err := svc.Update(context.Background(), ports.UpdatePetInput{ID: pet.ID, RegisterPetInput: input})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Age != 4 {
		t.Errorf("expected age 4, got %d", updated.Age)
	}
	if updated.HealthStatus != domain.HealthSick {
		t.Errorf("expected health Sick, got %q", updated.HealthStatus)
	}
	if updated.CreatedAt != pet.CreatedAt {
		t.Error("update must preserve the original creation time")
	}
}

func TestPetService_Delete_OwnershipEnforced(t *testing.T) {
	pets := newStubPetRepo()
	svc := NewPetService(pets, discardLogger)

	pet, _ := svc.Register(context.Background(), completePetInput("user_1"))

	if err := svc.Delete(context.Background(), pet.ID, "intruder"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), pet.ID, "user_1"); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), pet.ID); !errors.Is(err, domain.ErrPetNotFound) {
		t.Fatalf("expected ErrPetNotFound after delete, got %v", err)
	}
}

func TestPetService_ListByOwner_ScopedToOwner(t *testing.T) {
	pets := newStubPetRepo()
	svc := NewPetService(pets, discardLogger)

	_, _ = svc.Register(context.Background(), completePetInput("user_1"))
	_, _ = svc.Register(context.Background(), completePetInput("user_2"))

	mine, err := svc.ListByOwner(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("expected 1 pet for user_1, got %d", len(mine))
	}
	if mine[0].OwnerID != "user_1" {
		t.Errorf("listing leaked another owner's pet: %+v", mine[0])
	}
}
