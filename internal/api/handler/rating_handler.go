package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pawcare/vetmarket/internal/core/ports"
)

// RatingHandler handles vet ratings.
type RatingHandler struct {
	ratings ports.RatingService
}

func NewRatingHandler(ratings ports.RatingService) *RatingHandler {
	return &RatingHandler{ratings: ratings}
}

type rateVetRequest struct {
	VetID  string `json:"vet_id" validate:"required"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Review string `json:"review"`
}

type ratingsByVetRequest struct {
	VetID string `json:"vet_id" validate:"required"`
}

type ratingUserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ratingResponse struct {
	Rating    int                `json:"rating"`
	Review    string             `json:"review"`
	CreatedAt time.Time          `json:"created_at"`
	User      ratingUserResponse `json:"user"`
}

// Rate handles POST /api/rate. The rating user is the caller.
//
// @Summary      Rate a vet
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      rateVetRequest  true  "Rating"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/rate [post]
func (h *RatingHandler) Rate(c echo.Context) error {
	var req rateVetRequest
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

	rating, err := h.ratings.Rate(c.Request().Context(), ports.RateVetInput{
		VetID:  req.VetID,
		UserID: userID,
		Rating: req.Rating,
		Review: req.Review,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]string{"id": rating.ID, "message": "rating submitted"})
}

// ListByVet handles POST /api/ratings.
//
// @Summary      List a vet's ratings
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Param        body  body      ratingsByVetRequest  true  "Vet id"
// @Success      200   {array}   ratingResponse
// @Router       /api/ratings [post]
func (h *RatingHandler) ListByVet(c echo.Context) error {
	var req ratingsByVetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entries, err := h.ratings.ListByVet(c.Request().Context(), req.VetID)
	if err != nil {
		return err
	}

	resp := make([]ratingResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, ratingResponse{
			Rating:    e.Rating,
			Review:    e.Review,
			CreatedAt: e.CreatedAt,
			User: ratingUserResponse{
				ID:    e.User.ID,
				Name:  e.User.Name,
				Email: e.User.Email,
			},
		})
	}
	return c.JSON(http.StatusOK, resp)
}
