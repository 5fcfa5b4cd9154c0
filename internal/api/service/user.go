package service

import (
	"context"
	"errors"
	"time"

	"github.com/officemate/backend/internal/api/domain"
	"github.com/officemate/backend/internal/api/store"
)

var ErrUserNotFound = errors.New("user_not_found")

type BootstrapInput struct {
	Email        string
	Name         string
	BusinessName string
	Location     string
	Phone        string
}

type UserService struct {
	Store store.Store
}

func (s *UserService) GetByID(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return u, nil
}

// Bootstrap upserts the profile record for the authenticated subject. The
// frontend calls it after every fresh login, so empty incoming fields keep
// whatever the record already holds rather than blanking it.
func (s *UserService) Bootstrap(ctx context.Context, userID string, in BootstrapInput) (domain.User, error) {
	now := time.Now().UTC()

	u := domain.User{
		ID:           userID,
		Email:        in.Email,
		Name:         in.Name,
		BusinessName: in.BusinessName,
		Location:     in.Location,
		Phone:        in.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	existing, err := s.Store.Users().GetUserByID(ctx, userID)
	switch {
	case err == nil:
		u.CreatedAt = existing.CreatedAt
		u.DefaultBusinessID = existing.DefaultBusinessID
		if u.Email == "" {
			u.Email = existing.Email
		}
		if u.Name == "" {
			u.Name = existing.Name
		}
		if u.BusinessName == "" {
			u.BusinessName = existing.BusinessName
		}
		if u.Location == "" {
			u.Location = existing.Location
		}
		if u.Phone == "" {
			u.Phone = existing.Phone
		}
	case errors.Is(err, store.ErrNotFound):
		// first login, fresh record
	default:
		return domain.User{}, err
	}

	if err := s.Store.Users().UpsertUser(ctx, u); err != nil {
		return domain.User{}, err
	}
	return u, nil
}
