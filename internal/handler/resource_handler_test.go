package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/AlpeshT/event-booking-backend/internal/dto"
	"github.com/AlpeshT/event-booking-backend/internal/models"
	"github.com/AlpeshT/event-booking-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// --- Mock ResourceService ---

type mockResourceService struct {
	createFn   func(ctx context.Context, resource *models.Resource) error
	allocateFn func(ctx context.Context, eventID, resourceID string, quantity int) (*models.Allocation, error)
	removeFn   func(ctx context.Context, eventID, resourceID string) error
}

func (m *mockResourceService) CreateResource(ctx context.Context, resource *models.Resource) error {
	return m.createFn(ctx, resource)
}
func (m *mockResourceService) UpdateResource(ctx context.Context, id string, upd service.ResourceUpdate) (*models.Resource, error) {
	return nil, nil
}
func (m *mockResourceService) DeleteResource(ctx context.Context, id string) error { return nil }
func (m *mockResourceService) GetResource(ctx context.Context, id string) (*models.Resource, error) {
	return nil, nil
}
func (m *mockResourceService) ListResources(ctx context.Context, organizationID *string) ([]models.Resource, error) {
	return nil, nil
}
func (m *mockResourceService) AllocateResource(ctx context.Context, eventID, resourceID string, quantity int) (*models.Allocation, error) {
	return m.allocateFn(ctx, eventID, resourceID, quantity)
}
func (m *mockResourceService) RemoveResource(ctx context.Context, eventID, resourceID string) error {
	return m.removeFn(ctx, eventID, resourceID)
}
func (m *mockResourceService) GetEventAllocations(ctx context.Context, eventID string) ([]models.Allocation, error) {
	return nil, nil
}

// --- Tests ---

func allocContext(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	if body == "" {
		body = "{}"
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/events/evt-1/resources/res-1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id", "resourceId")
	c.SetParamValues("evt-1", "res-1")
	return c, rec
}

func TestAllocateResource_Handler_Success(t *testing.T) {
	svc := &mockResourceService{
		allocateFn: func(ctx context.Context, eventID, resourceID string, quantity int) (*models.Allocation, error) {
			return &models.Allocation{
				ID:         "alloc-1",
				EventID:    eventID,
				ResourceID: resourceID,
				Quantity:   quantity,
				CreatedAt:  time.Now(),
			}, nil
		},
	}

	e := echo.New()
	c, rec := allocContext(e, `{"quantity": 3}`)

	h := NewResourceHandler(svc)
	err := h.AllocateResource(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.AllocationResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "evt-1", resp.EventID)
	assert.Equal(t, "res-1", resp.ResourceID)
	assert.Equal(t, 3, resp.Quantity)
}

func TestAllocateResource_Handler_DefaultQuantity(t *testing.T) {
	var gotQuantity int
	svc := &mockResourceService{
		allocateFn: func(ctx context.Context, eventID, resourceID string, quantity int) (*models.Allocation, error) {
			gotQuantity = quantity
			return &models.Allocation{ID: "alloc-1", EventID: eventID, ResourceID: resourceID, Quantity: quantity}, nil
		},
	}

	e := echo.New()
	c, _ := allocContext(e, "")

	h := NewResourceHandler(svc)
	err := h.AllocateResource(c)

	assert.NoError(t, err)
	assert.Equal(t, 1, gotQuantity)
}

func TestAllocateResource_Handler_Conflict(t *testing.T) {
	svc := &mockResourceService{
		allocateFn: func(ctx context.Context, eventID, resourceID string, quantity int) (*models.Allocation, error) {
			return nil, &service.ResourceConflictError{
				EventID: "evt-x",
				Title:   "Board Meeting",
				Start:   time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
				End:     time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC),
			}
		},
	}

	e := echo.New()
	c, _ := allocContext(e, `{"quantity": 1}`)

	h := NewResourceHandler(svc)
	err := h.AllocateResource(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
	assert.Contains(t, he.Message, "Board Meeting")
}

func TestAllocateResource_Handler_Duplicate(t *testing.T) {
	svc := &mockResourceService{
		allocateFn: func(ctx context.Context, eventID, resourceID string, quantity int) (*models.Allocation, error) {
			return nil, service.ErrDuplicateAllocation
		},
	}

	e := echo.New()
	c, _ := allocContext(e, `{"quantity": 1}`)

	h := NewResourceHandler(svc)
	err := h.AllocateResource(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
}

func TestRemoveResource_Handler_Success(t *testing.T) {
	svc := &mockResourceService{
		removeFn: func(ctx context.Context, eventID, resourceID string) error { return nil },
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/events/evt-1/resources/res-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id", "resourceId")
	c.SetParamValues("evt-1", "res-1")

	h := NewResourceHandler(svc)
	err := h.RemoveResource(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCreateResource_Handler_InvalidType(t *testing.T) {
	svc := &mockResourceService{
		createFn: func(ctx context.Context, resource *models.Resource) error {
			return service.ErrInvalidResourceType
		},
	}

	e := echo.New()
	body := `{"name": "Van", "type": "timeshare"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resources", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewResourceHandler(svc)
	err := h.CreateResource(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}
