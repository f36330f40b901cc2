package handler

import (
	"net/http"

	"github.com/AlpeshT/event-booking-backend/internal/dto"
	"github.com/AlpeshT/event-booking-backend/internal/models"
	"github.com/AlpeshT/event-booking-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type OrganizationHandler struct {
	svc service.OrganizationService
}

func NewOrganizationHandler(svc service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{svc: svc}
}

func (h *OrganizationHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *OrganizationHandler) Create(c echo.Context) error {
	var req dto.CreateOrganizationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	org := &models.Organization{Name: req.Name, Domain: req.Domain}
	if err := h.svc.CreateOrganization(c.Request().Context(), org); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, org)
}

func (h *OrganizationHandler) Get(c echo.Context) error {
	org, err := h.svc.GetOrganization(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, org)
}

func (h *OrganizationHandler) List(c echo.Context) error {
	orgs, err := h.svc.ListOrganizations(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, orgs)
}

func (h *OrganizationHandler) Update(c echo.Context) error {
	var req dto.UpdateOrganizationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	org, err := h.svc.UpdateOrganization(c.Request().Context(), c.Param("id"), req.Name, req.Domain)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, org)
}

func (h *OrganizationHandler) Delete(c echo.Context) error {
	if err := h.svc.DeleteOrganization(c.Request().Context(), c.Param("id")); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
