package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pawcare/vetmarket/internal/api/metrics"
	"github.com/pawcare/vetmarket/internal/core/ports"
)

// VetHandler handles vet-profile endpoints and the emergency lookup.
type VetHandler struct {
	vetService ports.VetService
}

func NewVetHandler(vetService ports.VetService) *VetHandler {
	return &VetHandler{vetService: vetService}
}

type createVetRequest struct {
	Name           string   `json:"name"           validate:"required"`
	Location       string   `json:"location"       validate:"required"`
	Specialization string   `json:"specialization" validate:"required"`
	Certifications []string `json:"certifications"`
}

type vetOwnerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type vetResponse struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Location       string           `json:"location"`
	Specialization string           `json:"specialization"`
	Certifications []string         `json:"certifications"`
	CreatedAt      time.Time        `json:"created_at"`
	User           vetOwnerResponse `json:"user"`
}

type emergencyVetResponse struct {
	Name           string `json:"name"`
	Location       string `json:"location"`
	Specialization string `json:"specialization"`
}

type emergencyResponse struct {
	Vets []emergencyVetResponse `json:"vets"`
}

// Create handles POST /api/vets — one profile per vet account.
//
// @Summary      Create a vet profile
// @Tags         vets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createVetRequest  true  "Profile details"
// @Success      201   {object}  vetResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/vets [post]
func (h *VetHandler) Create(c echo.Context) error {
	var req createVetRequest
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

	vet, err := h.vetService.CreateProfile(c.Request().Context(), ports.CreateVetInput{
		Name:           req.Name,
		Location:       req.Location,
		Specialization: req.Specialization,
		Certifications: req.Certifications,
		UserID:         userID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, vetResponse{
		ID:             vet.ID,
		Name:           vet.Name,
		Location:       vet.Location,
		Specialization: vet.Specialization,
		Certifications: vet.Certifications,
		CreatedAt:      vet.CreatedAt,
	})
}

// Emergency handles GET /api/vets/emergency?address=<text>.
//
// A domain-level empty match set is a valid outcome; this endpoint presents
// it as 404 with a message so the client shows its fallback guidance, per
// the public contract.
//
// @Summary      Find emergency vets near a free-text address
// @Tags         vets
// @Produce      json
// @Param        address  query     string  true  "Free-text address"
// @Success      200      {object}  emergencyResponse
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /api/vets/emergency [get]
func (h *VetHandler) Emergency(c echo.Context) error {
	matches, err := h.vetService.FindEmergencyVets(c.Request().Context(), c.QueryParam("address"))
	if err != nil {
		return err
	}

	if len(matches) == 0 {
		metrics.EmergencyLookupsTotal.WithLabelValues("none").Inc()
		return c.JSON(http.StatusNotFound, map[string]string{"message": "no vets found in your area"})
	}
	metrics.EmergencyLookupsTotal.WithLabelValues("found").Inc()

	vets := make([]emergencyVetResponse, 0, len(matches))
	for _, m := range matches {
		vets = append(vets, emergencyVetResponse{
			Name:           m.Name,
			Location:       m.Location,
			Specialization: m.Specialization,
		})
	}
	return c.JSON(http.StatusOK, emergencyResponse{Vets: vets})
}

// Get handles GET /api/vets/:id.
//
// @Summary      Get a vet profile
// @Tags         vets
// @Produce      json
// @Param        id   path      string  true  "Vet id"
// @Success      200  {object}  vetResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/vets/{id} [get]
func (h *VetHandler) Get(c echo.Context) error {
	profile, err := h.vetService.GetVet(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, vetResponse{
		ID:             profile.ID,
		Name:           profile.Name,
		Location:       profile.Location,
		Specialization: profile.Specialization,
		Certifications: profile.Certifications,
		CreatedAt:      profile.CreatedAt,
		User: vetOwnerResponse{
			ID:    profile.Owner.ID,
			Name:  profile.Owner.Name,
			Email: profile.Owner.Email,
		},
	})
}
