package handler

import (
	"net/http"

	"github.com/AlpeshT/event-booking-backend/internal/dto"
	"github.com/AlpeshT/event-booking-backend/internal/models"
	"github.com/AlpeshT/event-booking-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type ResourceHandler struct {
	svc service.ResourceService
}

func NewResourceHandler(svc service.ResourceService) *ResourceHandler {
	return &ResourceHandler{svc: svc}
}

func (h *ResourceHandler) RegisterRoutes(e *echo.Echo) {
	resources := e.Group("/api/v1/resources")
	resources.POST("", h.CreateResource)
	resources.GET("", h.ListResources)
	resources.GET("/:id", h.GetResource)
	resources.PUT("/:id", h.UpdateResource)
	resources.DELETE("/:id", h.DeleteResource)

	events := e.Group("/api/v1/events")
	events.GET("/:id/resources", h.ListEventAllocations)
	events.POST("/:id/resources/:resourceId", h.AllocateResource)
	events.DELETE("/:id/resources/:resourceId", h.RemoveResource)
}

func (h *ResourceHandler) CreateResource(c echo.Context) error {
	var req dto.CreateResourceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	resource := &models.Resource{
		Name:           req.Name,
		Description:    req.Description,
		Type:           models.ResourceType(req.Type),
		OrganizationID: req.OrganizationID,
		MaxConcurrent:  req.MaxConcurrent,
		TotalQuantity:  req.TotalQuantity,
	}

	if err := h.svc.CreateResource(c.Request().Context(), resource); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToResourceResponse(resource))
}

func (h *ResourceHandler) GetResource(c echo.Context) error {
	resource, err := h.svc.GetResource(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToResourceResponse(resource))
}

func (h *ResourceHandler) ListResources(c echo.Context) error {
	var orgID *string
	if v := c.QueryParam("organizationId"); v != "" {
		orgID = &v
	}

	resources, err := h.svc.ListResources(c.Request().Context(), orgID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.ResourceResponse, len(resources))
	for i, r := range resources {
		resp[i] = dto.ToResourceResponse(&r)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *ResourceHandler) UpdateResource(c echo.Context) error {
	var req dto.UpdateResourceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	resource, err := h.svc.UpdateResource(c.Request().Context(), c.Param("id"), service.ResourceUpdate{
		Name:          req.Name,
		Description:   req.Description,
		MaxConcurrent: req.MaxConcurrent,
		TotalQuantity: req.TotalQuantity,
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToResourceResponse(resource))
}

func (h *ResourceHandler) DeleteResource(c echo.Context) error {
	if err := h.svc.DeleteResource(c.Request().Context(), c.Param("id")); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ResourceHandler) AllocateResource(c echo.Context) error {
	eventID := c.Param("id")
	resourceID := c.Param("resourceId")

	var req dto.AllocateResourceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	allocation, err := h.svc.AllocateResource(c.Request().Context(), eventID, resourceID, req.Quantity)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToAllocationResponse(allocation))
}

func (h *ResourceHandler) RemoveResource(c echo.Context) error {
	err := h.svc.RemoveResource(c.Request().Context(), c.Param("id"), c.Param("resourceId"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ResourceHandler) ListEventAllocations(c echo.Context) error {
	allocations, err := h.svc.GetEventAllocations(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.AllocationResponse, len(allocations))
	for i, a := range allocations {
		resp[i] = dto.ToAllocationResponse(&a)
	}

	return c.JSON(http.StatusOK, resp)
}
