package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawcare/vetmarket/internal/api/metrics"
	"github.com/pawcare/vetmarket/internal/core/domain"
	"github.com/pawcare/vetmarket/internal/core/ports"
)

// ServiceHandler handles the care-service catalog: vet-owned CRUD and the
// public search.
type ServiceHandler struct {
	catalog ports.CatalogService
}

func NewServiceHandler(catalog ports.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalog: catalog}
}

type addServiceRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description" validate:"required"`
	Cost        float64 `json:"cost"        validate:"gte=0"`
}

type myServicesRequest struct {
	VetID string `json:"vet_id" validate:"required"`
}

type searchRequest struct {
	SearchText string `json:"search_text"`
	// Legacy clients send camelCase.
	SearchTextCamel string `json:"searchText"`
}

type serviceVetResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type serviceMatchResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Cost        float64            `json:"cost"`
	Vet         serviceVetResponse `json:"vet"`
}

// Add handles POST /api/services.
//
// @Summary      Publish a care service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addServiceRequest  true  "Service details"
// @Success      201   {object}  domain.Service
// @Failure      400   {object}  map[string]string
// @Router       /api/services [post]
func (h *ServiceHandler) Add(c echo.Context) error {
	var req addServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	vetID, err := ctxVetID(c)
	if err != nil {
		return err
	}

	svc, err := h.catalog.Add(c.Request().Context(), ports.AddServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Cost:        req.Cost,
		VetID:       vetID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, svc)
}

// Mine handles POST /api/myservices — a vet's public service list.
func (h *ServiceHandler) Mine(c echo.Context) error {
	var req myServicesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	services, err := h.catalog.ListByVet(c.Request().Context(), req.VetID)
	if err != nil {
		return err
	}
	if services == nil {
		services = []*domain.Service{}
	}
	return c.JSON(http.StatusOK, services)
}

// Delete handles DELETE /api/services/:id.
func (h *ServiceHandler) Delete(c echo.Context) error {
	vetID, err := ctxVetID(c)
	if err != nil {
		return err
	}

	if err := h.catalog.Delete(c.Request().Context(), c.Param("id"), vetID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "service deleted"})
}

// Search handles POST /api/services/search.
//
// @Summary      Free-text search across service name and description
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        body  body      searchRequest  true  "Search text"
// @Success      200   {array}   serviceMatchResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/services/search [post]
func (h *ServiceHandler) Search(c echo.Context) error {
	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	text := req.SearchText
	if text == "" {
		text = req.SearchTextCamel
	}

	matches, err := h.catalog.Search(c.Request().Context(), text)
	if err != nil {
		return err
	}

	metrics.ServiceSearchesTotal.Inc()
	resp := make([]serviceMatchResponse, 0, len(matches))
	for _, m := range matches {
		resp = append(resp, serviceMatchResponse{
			ID:          m.ID,
			Name:        m.Name,
			Description: m.Description,
			Cost:        m.Cost,
			Vet: serviceVetResponse{
				ID:       m.Vet.ID,
				Name:     m.Vet.Name,
				Location: m.Vet.Location,
			},
		})
	}
	return c.JSON(http.StatusOK, resp)
}
