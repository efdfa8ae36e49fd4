package service

import (
	"context"

	"github.com/paperstack/backend/internal/model"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type UserService struct {
	store AccountStore
}

func NewUserService(store AccountStore) *UserService {
	return &UserService{store: store}
}

// List returns one page of users, newest first. Out-of-range paging
// inputs reset to defaults: page < 1 becomes 1, and a page size outside
// [1, 100] becomes 10 rather than clamping to the nearest bound.
func (s *UserService) List(ctx context.Context, page, perPage int) (*model.UserPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > maxPageSize {
		perPage = defaultPageSize
	}

	total, err := s.store.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	offset := (page - 1) * perPage
	users, err := s.store.PageUsers(ctx, offset, perPage)
	if err != nil {
		return nil, err
	}

	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}

	data := make([]model.UserSummary, 0, len(users))
	for i := range users {
		data = append(data, users[i].Summary())
	}

	return &model.UserPage{
		Data:            data,
		TotalItems:      total,
		CurrentPage:     page,
		TotalPages:      totalPages,
		ItemsPerPage:    perPage,
		HasNextPage:     total > 0 && page < totalPages,
		HasPreviousPage: total > 0 && page > 1,
	}, nil
}
