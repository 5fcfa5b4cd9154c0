package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/officemate/backend/internal/api/domain"
	"github.com/officemate/backend/internal/api/store"
	"github.com/officemate/backend/pkg/idx"
)

type CreateBusinessInput struct {
	Name     string
	Location string
}

type BusinessService struct {
	Store store.Store
}

// CreateForUser registers a business and makes it the owner's default, both
// in one transaction so a crash can't leave the user pointing nowhere.
func (s *BusinessService) CreateForUser(ctx context.Context, userID string, in CreateBusinessInput) (domain.Business, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return domain.Business{}, ErrInvalidInput
	}

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Business{}, ErrUserNotFound
		}
		return domain.Business{}, err
	}

	location := strings.TrimSpace(in.Location)
	if location == "" {
		location = user.Location
	}

	now := time.Now().UTC()
	biz := domain.Business{
		ID:          string(idx.New()),
		OwnerUserID: userID,
		Name:        in.Name,
		Location:    location,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Businesses().CreateBusiness(ctx, biz); err != nil {
			return err
		}
		return tx.Users().SetDefaultBusiness(ctx, userID, biz.ID, now)
	})
	if err != nil {
		return domain.Business{}, err
	}

	return biz, nil
}

func (s *BusinessService) ListForUser(ctx context.Context, userID string) ([]domain.Business, error) {
	return s.Store.Businesses().ListBusinessesForOwner(ctx, userID)
}
