package service

import (
	"context"

	"legal-letter-be/internal/dto"
	"legal-letter-be/internal/entity"
	"legal-letter-be/internal/pkg/apperror"
	"legal-letter-be/internal/repository/specification"
	"legal-letter-be/internal/repository/unitofwork"
)

type IAdminService interface {
	// ListUsers returns every account newest first, optionally narrowed to one role.
	ListUsers(ctx context.Context, role string) (*dto.AdminUsersResponse, error)
	ListLetters(ctx context.Context) (*dto.AdminLettersResponse, error)
	Stats(ctx context.Context) (*dto.AdminStatsResponse, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory) IAdminService {
	return &adminService{uowFactory: uowFactory}
}

func (s *adminService) ListUsers(ctx context.Context, role string) (*dto.AdminUsersResponse, error) {
	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if role != "" {
		if !entity.UserRole(role).Valid() {
			return nil, apperror.Validation("Invalid role")
		}
		specs = append(specs, specification.ByRole{Role: role})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	users, err := uow.UserRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	res := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		res = append(res, toUserDTO(u))
	}
	return &dto.AdminUsersResponse{Users: res}, nil
}

func (s *adminService) ListLetters(ctx context.Context) (*dto.AdminLettersResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	letters, err := uow.LetterRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &dto.AdminLettersResponse{Letters: toLetterDTOs(letters)}, nil
}

func (s *adminService) Stats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	users := uow.UserRepository()
	letters := uow.LetterRepository()

	res := &dto.AdminStatsResponse{LettersByStatus: map[string]int64{}}
	counts := []struct {
		dst   *int64
		count func() (int64, error)
	}{
		{&res.TotalUsers, func() (int64, error) { return users.Count(ctx) }},
		{&res.Contractors, func() (int64, error) {
			return users.Count(ctx, specification.ByRole{Role: string(entity.UserRoleContractor)})
		}},
		{&res.Admins, func() (int64, error) {
			return users.Count(ctx, specification.ByRole{Role: string(entity.UserRoleAdmin)})
		}},
		{&res.PaidSubscribers, func() (int64, error) {
			return users.Count(ctx, specification.Where("subscription_status", string(entity.SubscriptionStatusPaid)))
		}},
		{&res.TotalLetters, func() (int64, error) { return letters.Count(ctx) }},
	}
	for _, c := range counts {
		n, err := c.count()
		if err != nil {
			return nil, apperror.Internal(err)
		}
		*c.dst = n
	}

	for _, status := range []entity.LetterStatus{entity.LetterStatusSubmitted, entity.LetterStatusReady, entity.LetterStatusSent} {
		n, err := letters.Count(ctx, specification.ByStatus{Status: string(status)})
		if err != nil {
			return nil, apperror.Internal(err)
		}
		res.LettersByStatus[string(status)] = n
	}
	return res, nil
}
