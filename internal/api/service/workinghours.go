package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/officemate/backend/internal/api/domain"
	"github.com/officemate/backend/internal/api/store"
)

type WorkingHoursService struct {
	Store store.Store
}

// Get returns the user's schedule, falling back to the default week when
// nothing has been saved yet. The default is not persisted on read.
func (s *WorkingHoursService) Get(ctx context.Context, userID string) (domain.WorkingHours, error) {
	wh, err := s.Store.WorkingHours().GetWorkingHours(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.DefaultWorkingHours(), nil
		}
		return domain.WorkingHours{}, err
	}
	return wh, nil
}

// Save validates and persists the schedule document.
func (s *WorkingHoursService) Save(ctx context.Context, userID string, wh domain.WorkingHours) (domain.WorkingHours, error) {
	if err := wh.Validate(); err != nil {
		return domain.WorkingHours{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	err := s.Store.WorkingHours().SaveWorkingHours(ctx, userID, wh, time.Now().UTC())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.WorkingHours{}, ErrUserNotFound
		}
		return domain.WorkingHours{}, err
	}
	return wh, nil
}
