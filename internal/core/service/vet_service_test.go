package service

import (
	"context"
	"errors"
	"testing"

	"github.com/pawcare/vetmarket/internal/core/domain"
	"github.com/pawcare/vetmarket/internal/core/ports"
)

func seedUser(users *stubUserRepo, email string) *domain.User {
	u, _ := users.Create(context.Background(), &domain.User{
		Name:  "Rahim",
		Email: email,
		Role:  domain.RoleVet,
	})
	return u
}

func TestVetService_CreateProfile_Success(t *testing.T) {
	users := newStubUserRepo()
	vets := newStubVetRepo()
	svc := NewVetService(vets, users, discardLogger)

	owner := seedUser(users, "drkhan@example.com")

	vet, err := svc.CreateProfile(context.Background(), ports.CreateVetInput{
		Name:           "Dr. Khan",
		Location:       "Dhanmondi, Dhaka",
		Specialization: "Surgery",
		Certifications: []string{"DVM"},
		UserID:         owner.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vet.ID == "" {
		t.Error("expected a generated id")
	}
	if vet.UserID != owner.ID {
		t.Errorf("profile must reference its owner, got %q", vet.UserID)
	}
}

func TestVetService_CreateProfile_OnePerAccount(t *testing.T) {
	users := newStubUserRepo()
	vets := newStubVetRepo()
	svc := NewVetService(vets, users, discardLogger)

	owner := seedUser(users, "drkhan@example.com")
	input := ports.CreateVetInput{Name: "Dr. Khan", Location: "Dhaka", Specialization: "Surgery", UserID: owner.ID}

	if _, err := svc.CreateProfile(context.Background(), input); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	_, err := svc.CreateProfile(context.Background(), input)
	if !errors.Is(err, domain.ErrVetProfileExists) {
		t.Fatalf("expected ErrVetProfileExists, got %v", err)
	}
}

func TestVetService_CreateProfile_UnknownUser(t *testing.T) {
	svc := NewVetService(newStubVetRepo(), newStubUserRepo(), discardLogger)

	_, err := svc.CreateProfile(context.Background(), ports.CreateVetInput{
		Name: "Dr. Khan", Location: "Dhaka", Specialization: "Surgery", UserID: "ghost",
	})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestVetService_GetVet_EmbedsOwner(t *testing.T) {
	users := newStubUserRepo()
	vets := newStubVetRepo()
	svc := NewVetService(vets, users, discardLogger)

	owner := seedUser(users, "drkhan@example.com")
	vet, _ := vets.Create(context.Background(), &domain.Vet{Name: "Dr. Khan", Location: "Dhaka", UserID: owner.ID})

	profile, err := svc.GetVet(context.Background(), vet.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Owner.ID != owner.ID {
		t.Errorf("expected owner %q, got %q", owner.ID, profile.Owner.ID)
	}
	if profile.Owner.Email != "drkhan@example.com" {
		t.Errorf("owner email missing, got %q", profile.Owner.Email)
	}
}

func TestVetService_GetVet_NotFound(t *testing.T) {
	svc := NewVetService(newStubVetRepo(), newStubUserRepo(), discardLogger)

	_, err := svc.GetVet(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrVetNotFound) {
		t.Fatalf("expected ErrVetNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Emergency lookup
// ---------------------------------------------------------------------------

func seedDirectory(vets *stubVetRepo) {
	ctx := context.Background()
	_, _ = vets.Create(ctx, &domain.Vet{Name: "Dr. Khan", Location: "Dhanmondi, Dhaka", Specialization: "Surgery", UserID: "u1"})
	_, _ = vets.Create(ctx, &domain.Vet{Name: "Dr. Sultana", Location: "Chittagong", Specialization: "Dermatology", UserID: "u2"})
	_, _ = vets.Create(ctx, &domain.Vet{Name: "Dr. Alam", Location: "Uttara, Dhaka", Specialization: "Dentistry", UserID: "u3"})
}

func TestVetService_Emergency_MatchesByContainment(t *testing.T) {
	vets := newStubVetRepo()
	seedDirectory(vets)
	svc := NewVetService(vets, newStubUserRepo(), discardLogger)

	matches, err := svc.FindEmergencyVets(context.Background(), "House 7, Dhanmondi, Dhaka")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Name != "Dr. Khan" {
		t.Errorf("expected Dr. Khan, got %q", matches[0].Name)
	}
}

func TestVetService_Emergency_BroadAddressMatchesCityWide(t *testing.T) {
	vets := newStubVetRepo()
	seedDirectory(vets)
	svc := NewVetService(vets, newStubUserRepo(), discardLogger)

	// A bare city name is contained by every location naming that city.
	matches, err := svc.FindEmergencyVets(context.Background(), "dhaka")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches for dhaka, got %d", len(matches))
	}
	// Directory order: the first match is the one callers present first.
	if matches[0].Name != "Dr. Khan" {
		t.Errorf("expected first match to be Dr. Khan, got %q", matches[0].Name)
	}
}

func TestVetService_Emergency_NoMatchIsNotAnError(t *testing.T) {
	vets := newStubVetRepo()
	seedDirectory(vets)
	svc := NewVetService(vets, newStubUserRepo(), discardLogger)

	matches, err := svc.FindEmergencyVets(context.Background(), "Sylhet")
	if err != nil {
		t.Fatalf("an empty match set must not be an error: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("expected no matches, got %d", len(matches))
	}
}

func TestVetService_Emergency_EmptyAddress(t *testing.T) {
	svc := NewVetService(newStubVetRepo(), newStubUserRepo(), discardLogger)

	_, err := svc.FindEmergencyVets(context.Background(), "   ")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for blank address, got %v", err)
	}
}

func TestVetService_Emergency_Idempotent(t *testing.T) {
	vets := newStubVetRepo()
	seedDirectory(vets)
	svc := NewVetService(vets, newStubUserRepo(), discardLogger)

	first, _ := svc.FindEmergencyVets(context.Background(), "Chittagong")
	second, _ := svc.FindEmergencyVets(context.Background(), "Chittagong")

	if len(first) != len(second) {
		t.Fatalf("repeated lookups must agree: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("match %d differs between lookups", i)
		}
	}
}

func TestLocationMatches(t *testing.T) {
	cases := []struct {
		address  string
		location string
		want     bool
	}{
		{"House 7, Dhanmondi, Dhaka", "Dhanmondi, Dhaka", true},
		{"dhaka", "Uttara, Dhaka", true},
		{"DHAKA", "dhaka", true},
		{"Chittagong", "Dhaka", false},
		{"Dhaka", "", false},
	}
	for _, tc := range cases {
		if got := locationMatches(tc.address, tc.location); got != tc.want {
			t.Errorf("locationMatches(%q, %q) = %v, want %v", tc.address, tc.location, got, tc.want)
		}
	}
}
