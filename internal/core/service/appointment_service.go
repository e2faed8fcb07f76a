package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pawcare/vetmarket/internal/core/domain"
	"github.com/pawcare/vetmarket/internal/core/ports"
)

// AppointmentService implements the booking workflow and the history query.
type AppointmentService struct {
	appointments ports.AppointmentRepository
	vets         ports.VetRepository
	users        ports.UserRepository
	services     ports.ServiceRepository
	logger       zerolog.Logger
}

func NewAppointmentService(
	appointments ports.AppointmentRepository,
	vets ports.VetRepository,
	users ports.UserRepository,
	services ports.ServiceRepository,
	logger zerolog.Logger,
) *AppointmentService {
	return &AppointmentService{
		appointments: appointments,
		vets:         vets,
		users:        users,
		services:     services,
		logger:       logger,
	}
}

// Book validates all three references and writes exactly one appointment.
// The validation reads and the insert are not wrapped in a transaction; a
// service deleted in between is a known race of the marketplace design.
func (s *AppointmentService) Book(ctx context.Context, input ports.BookAppointmentInput) (*ports.BookingResult, error) {
	if input.VetID == "" || input.UserID == "" || input.ServiceID == "" {
		return nil, fmt.Errorf("%w: vet id, user id and service id are required", domain.ErrValidation)
	}

	if _, err := s.users.FindByID(ctx, input.UserID); err != nil {
		return nil, err
	}
	if _, err := s.vets.FindByID(ctx, input.VetID); err != nil {
		return nil, err
	}
	svc, err := s.services.FindByID(ctx, input.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc.VetID != input.VetID {
		// The service exists but under a different vet; from the caller's
		// point of view this vet has no such service.
		return nil, domain.ErrServiceNotFound
	}

	appt := &domain.Appointment{
		VetID:     input.VetID,
		UserID:    input.UserID,
		ServiceID: input.ServiceID,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.appointments.Create(ctx, appt)
	if err != nil {
		s.logger.Error().Err(err).Str("service_id", input.ServiceID).Msg("failed to create appointment")
		return nil, err
	}

	s.logger.Info().
		Str("appointment_id", created.ID).
		Str("vet_id", input.VetID).
		Str("user_id", input.UserID).
		Msg("appointment booked")

	return &ports.BookingResult{
		AppointmentID: created.ID,
		Cost:          svc.Cost,
		CreatedAt:     created.CreatedAt,
	}, nil
}

// History returns the user's appointments enriched with vet and service data.
// Entries whose references no longer resolve keep their ids with blank
// display fields rather than failing the whole query.
func (s *AppointmentService) History(ctx context.Context, userID string) ([]ports.AppointmentEntry, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrValidation)
	}

	appts, err := s.appointments.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]ports.AppointmentEntry, 0, len(appts))
	for _, appt := range appts {
		entry := ports.AppointmentEntry{
			ID:        appt.ID,
			Vet:       ports.VetRef{ID: appt.VetID},
			Service:   ports.ServiceRef{ID: appt.ServiceID},
			CreatedAt: appt.CreatedAt,
		}

		if vet, err := s.vets.FindByID(ctx, appt.VetID); err == nil {
			entry.Vet.Name = vet.Name
		}
		if svc, err := s.services.FindByID(ctx, appt.ServiceID); err == nil {
			entry.Service.Name = svc.Name
			entry.Service.Cost = svc.Cost
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
