package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pawcare/vetmarket/internal/api/metrics"
	"github.com/pawcare/vetmarket/internal/core/ports"
)

// AppointmentHandler handles booking and history.
type AppointmentHandler struct {
	appointments ports.AppointmentService
}

func NewAppointmentHandler(appointments ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments}
}

type bookAppointmentRequest struct {
	VetID     string `json:"vet_id"     validate:"required"`
	ServiceID string `json:"service_id" validate:"required"`
}

type bookAppointmentResponse struct {
	ID        string    `json:"id"`
	Cost      float64   `json:"cost"`
	CreatedAt time.Time `json:"created_at"`
}

type historyVetResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type historyServiceResponse struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
}

type historyEntryResponse struct {
	ID        string                 `json:"id"`
	Vet       historyVetResponse     `json:"vet"`
	Service   historyServiceResponse `json:"service"`
	CreatedAt time.Time              `json:"created_at"`
}

// Book handles POST /api/appointments. The booking user is always the
// authenticated caller; the body carries only the vet and service ids.
//
// @Summary      Book an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bookAppointmentRequest  true  "Vet and service"
// @Success      200   {object}  bookAppointmentResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/appointments [post]
func (h *AppointmentHandler) Book(c echo.Context) error {
	var req bookAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	result, err := h.appointments.Book(c.Request().Context(), ports.BookAppointmentInput{
		VetID:     req.VetID,
		UserID:    userID,
		ServiceID: req.ServiceID,
	})
	if err != nil {
		return err
	}

	metrics.AppointmentsBookedTotal.Inc()
	return c.JSON(http.StatusOK, bookAppointmentResponse{
		ID:        result.AppointmentID,
		Cost:      result.Cost,
		CreatedAt: result.CreatedAt,
	})
}

// History handles GET /api/appointments/:user_id. Callers may only read
// their own history.
//
// @Summary      Appointment history for a user
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  path      string  true  "User id"
// @Success      200      {array}   historyEntryResponse
// @Failure      403      {object}  map[string]string
// @Router       /api/appointments/{user_id} [get]
func (h *AppointmentHandler) History(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if c.Param("user_id") != userID {
		return echo.NewHTTPError(http.StatusForbidden, "cannot read another user's appointments")
	}

	entries, err := h.appointments.History(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	resp := make([]historyEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, historyEntryResponse{
			ID:        e.ID,
			Vet:       historyVetResponse{ID: e.Vet.ID, Name: e.Vet.Name},
			Service:   historyServiceResponse{ID: e.Service.ID, Name: e.Service.Name, Cost: e.Service.Cost},
			CreatedAt: e.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, resp)
}
