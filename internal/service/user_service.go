package service

import (
	"context"

	"github.com/AlpeshT/event-booking-backend/internal/models"
	"github.com/AlpeshT/event-booking-backend/internal/repository"
)

type UserService interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context, organizationID *string) ([]models.User, error)
	UpdateUser(ctx context.Context, id string, name, email *string) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(ctx context.Context, user *models.User) error {
	if user.OrganizationID == "" {
		return ErrOrganizationRequired
	}
	return s.userRepo.Create(ctx, user)
}

func (s *userService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, organizationID *string) ([]models.User, error) {
	return s.userRepo.FindAll(ctx, organizationID)
}

func (s *userService) UpdateUser(ctx context.Context, id string, name, email *string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if name != nil {
		user.Name = *name
	}
	if email != nil {
		user.Email = *email
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		return ErrUserNotFound
	}
	return s.userRepo.Delete(ctx, id)
}
