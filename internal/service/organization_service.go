package service

import (
	"context"

	"github.com/AlpeshT/event-booking-backend/internal/models"
	"github.com/AlpeshT/event-booking-backend/internal/repository"
)

type OrganizationService interface {
	CreateOrganization(ctx context.Context, org *models.Organization) error
	GetOrganization(ctx context.Context, id string) (*models.Organization, error)
	ListOrganizations(ctx context.Context) ([]models.Organization, error)
	UpdateOrganization(ctx context.Context, id string, name, domain *string) (*models.Organization, error)
	DeleteOrganization(ctx context.Context, id string) error
}

type organizationService struct {
	orgRepo repository.OrganizationRepository
}

func NewOrganizationService(orgRepo repository.OrganizationRepository) OrganizationService {
	return &organizationService{orgRepo: orgRepo}
}

func (s *organizationService) CreateOrganization(ctx context.Context, org *models.Organization) error {
	return s.orgRepo.Create(ctx, org)
}

func (s *organizationService) GetOrganization(ctx context.Context, id string) (*models.Organization, error) {
	org, err := s.orgRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrOrganizationNotFound
	}
	return org, nil
}

func (s *organizationService) ListOrganizations(ctx context.Context) ([]models.Organization, error) {
	return s.orgRepo.FindAll(ctx)
}

func (s *organizationService) UpdateOrganization(ctx context.Context, id string, name, domain *string) (*models.Organization, error) {
	org, err := s.orgRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrOrganizationNotFound
	}
	if name != nil {
		org.Name = *name
	}
	if domain != nil {
		org.Domain = *domain
	}
	if err := s.orgRepo.Update(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}

func (s *organizationService) DeleteOrganization(ctx context.Context, id string) error {
	if _, err := s.orgRepo.FindByID(ctx, id); err != nil {
		return ErrOrganizationNotFound
	}
	return s.orgRepo.Delete(ctx, id)
}
