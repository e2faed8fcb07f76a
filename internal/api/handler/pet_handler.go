package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pawcare/vetmarket/internal/core/domain"
	"github.com/pawcare/vetmarket/internal/core/ports"
)

// PetHandler handles owner-scoped pet CRUD.
type PetHandler struct {
	petService ports.PetService
}

func NewPetHandler(petService ports.PetService) *PetHandler {
	return &PetHandler{petService: petService}
}

type petRequest struct {
	Name                string    `json:"name"                  validate:"required"`
	Picture             string    `json:"picture"               validate:"required"`
	Species             string    `json:"species"               validate:"required"`
	Breed               string    `json:"breed"                 validate:"required"`
	Age                 int       `json:"age"                   validate:"gte=0"`
	Sex                 string    `json:"sex"                   validate:"required"`
	VaccinationStatus   string    `json:"vaccination_status"    validate:"required,oneof='Up to Date' 'Not Vaccinated'"`
	LastVaccinationDate time.Time `json:"last_vaccination_date" validate:"required"`
	HealthStatus        string    `json:"health_status"         validate:"required,oneof=Healthy Sick"`
}

type updatePetRequest struct {
	ID string `json:"id" validate:"required"`
	petRequest
}

func (r petRequest) toInput(ownerID string) ports.RegisterPetInput {
	return ports.RegisterPetInput{
		Name:                r.Name,
		Picture:             r.Picture,
		Species:             r.Species,
		Breed:               r.Breed,
		Age:                 r.Age,
		Sex:                 r.Sex,
		VaccinationStatus:   r.VaccinationStatus,
		LastVaccinationDate: r.LastVaccinationDate,
		HealthStatus:        r.HealthStatus,
		OwnerID:             ownerID,
	}
}

// Register handles POST /api/pets.
//
// @Summary      Register a pet
// @Tags         pets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      petRequest  true  "Pet record, all fields required"
// @Success      201   {object}  domain.Pet
// @Failure      400   {object}  map[string]string
// @Router       /api/pets [post]
func (h *PetHandler) Register(c echo.Context) error {
	var req petRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ownerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	pet, err := h.petService.Register(c.Request().Context(), req.toInput(ownerID))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, pet)
}

// Get handles GET /api/pets/:id.
func (h *PetHandler) Get(c echo.Context) error {
	pet, err := h.petService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pet)
}

// Mine handles POST /api/mypets. The owner is always the authenticated
// caller; any id in the body is ignored.
func (h *PetHandler) Mine(c echo.Context) error {
	ownerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	pets, err := h.petService.ListByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}
	if pets == nil {
		pets = []*domain.Pet{}
	}
	return c.JSON(http.StatusOK, pets)
}

// Update handles PUT /api/pets.
func (h *PetHandler) Update(c echo.Context) error {
	var req updatePetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ownerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	pet, err := h.petService.Update(c.Request().Context(), ports.UpdatePetInput{
		ID:               req.ID,
		RegisterPetInput: req.toInput(ownerID),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pet)
}

// Delete handles DELETE /api/pets/:id.
func (h *PetHandler) Delete(c echo.Context) error {
	ownerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.petService.Delete(c.Request().Context(), c.Param("id"), ownerID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "pet deleted"})
}
