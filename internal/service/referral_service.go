package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"legal-letter-be/internal/dto"
	"legal-letter-be/internal/entity"
	"legal-letter-be/internal/pkg/apperror"
	"legal-letter-be/internal/pkg/logger"
	"legal-letter-be/internal/repository/contract"
	"legal-letter-be/internal/repository/memory"
	"legal-letter-be/internal/repository/specification"
	"legal-letter-be/internal/repository/unitofwork"
	"legal-letter-be/pkg/events"

	"github.com/google/uuid"
)

const (
	couponCodeLength     = 9
	couponCodeAlphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	couponCodeAttempts   = 3
	defaultCouponMaxUses = 100
	defaultCouponDays    = 30
)

var errReferralNotFound = errors.New("referral code not found")

type IReferralService interface {
	ValidateCode(ctx context.Context, req *dto.ValidateCouponRequest) (*dto.ValidateCouponResponse, error)
	CreateCoupon(ctx context.Context, contractorId uuid.UUID, req *dto.CreateCouponRequest) (*dto.CouponResponse, error)
	ListCoupons(ctx context.Context, contractorId uuid.UUID) (*dto.CouponsResponse, error)
	ContractorStats(ctx context.Context, contractorId uuid.UUID) (*dto.ContractorStatsResponse, error)
}

type referralService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *memory.ReferralCache
	events     IPublisherService
	logger     logger.ILogger
}

func NewReferralService(uowFactory unitofwork.RepositoryFactory, cache *memory.ReferralCache, publisher IPublisherService, log logger.ILogger) IReferralService {
	return &referralService{
		uowFactory: uowFactory,
		cache:      cache,
		events:     publisher,
		logger:     log,
	}
}

// resolveReferral turns a discount code into a referral. Contractor usernames
// win over coupon codes; coupons must still be redeemable at now.
func resolveReferral(ctx context.Context, uow unitofwork.UnitOfWork, cache *memory.ReferralCache, code string, now time.Time) (*entity.Referral, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, errReferralNotFound
	}

	if cache != nil {
		if ref, ok := cache.Get(code); ok {
			return &ref, nil
		}
	}

	profile, err := uow.ContractorProfileRepository().FindOne(ctx, specification.ByUsername{Username: strings.ToLower(code)})
	if err != nil {
		return nil, err
	}
	if profile != nil {
		ref := entity.Referral{
			ContractorUserId: profile.UserId,
			DiscountPercent:  entity.ReferralDiscountPercent,
		}
		if cache != nil {
			cache.Save(code, ref)
		}
		return &ref, nil
	}

	coupon, err := uow.CouponRepository().FindOne(ctx,
		specification.ByCode{Code: code},
		specification.RedeemableAt{Now: now},
	)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, errReferralNotFound
	}
	couponId := coupon.Id
	return &entity.Referral{
		ContractorUserId: coupon.ContractorId,
		DiscountPercent:  coupon.DiscountPercent,
		CouponId:         &couponId,
	}, nil
}

func (s *referralService) ValidateCode(ctx context.Context, req *dto.ValidateCouponRequest) (*dto.ValidateCouponResponse, error) {
	if strings.TrimSpace(req.CouponCode) == "" {
		return nil, apperror.Validation("Referral code is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	ref, err := resolveReferral(ctx, uow, s.cache, req.CouponCode, time.Now())
	if errors.Is(err, errReferralNotFound) {
		return nil, apperror.NotFound("Invalid coupon code")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &dto.ValidateCouponResponse{
		Valid:           true,
		DiscountPercent: ref.DiscountPercent,
		Message:         fmt.Sprintf("Valid referral code - %d%% discount will be applied", ref.DiscountPercent),
	}, nil
}

func generateCouponCode() (string, error) {
	var sb strings.Builder
	max := big.NewInt(int64(len(couponCodeAlphabet)))
	for i := 0; i < couponCodeLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		sb.WriteByte(couponCodeAlphabet[n.Int64()])
	}
	return sb.String(), nil
}

func (s *referralService) CreateCoupon(ctx context.Context, contractorId uuid.UUID, req *dto.CreateCouponRequest) (*dto.CouponResponse, error) {
	if req.DiscountPercent < 1 || req.DiscountPercent > 100 {
		return nil, apperror.Validation("Discount percent must be between 1 and 100")
	}
	maxUses := req.MaxUses
	if maxUses <= 0 {
		maxUses = defaultCouponMaxUses
	}
	days := req.ExpiresInDays
	if days <= 0 {
		days = defaultCouponDays
	}

	now := time.Now()
	coupon := &entity.Coupon{
		Id:              uuid.New(),
		ContractorId:    contractorId,
		DiscountPercent: req.DiscountPercent,
		MaxUses:         maxUses,
		ExpiresAt:       now.Add(time.Duration(days) * 24 * time.Hour),
		CreatedAt:       now,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	var err error
	for attempt := 0; attempt < couponCodeAttempts; attempt++ {
		if coupon.Code, err = generateCouponCode(); err != nil {
			return nil, apperror.Internal(err)
		}
		err = uow.CouponRepository().Create(ctx, coupon)
		if !errors.Is(err, contract.ErrDuplicate) {
			break
		}
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}

	s.logger.Info("REFERRAL", "Coupon created", map[string]interface{}{
		"contractor_id": contractorId.String(),
		"code":          coupon.Code,
	})
	s.events.Publish(ctx, events.CouponCreated, map[string]interface{}{
		"coupon_id":     coupon.Id.String(),
		"contractor_id": contractorId.String(),
		"discount":      coupon.DiscountPercent,
	})

	return &dto.CouponResponse{Coupon: toCouponDTO(coupon)}, nil
}

func (s *referralService) ListCoupons(ctx context.Context, contractorId uuid.UUID) (*dto.CouponsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	coupons, err := uow.CouponRepository().FindAll(ctx,
		specification.ByContractor{ContractorID: contractorId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	res := make([]dto.CouponDTO, 0, len(coupons))
	for _, c := range coupons {
		res = append(res, toCouponDTO(c))
	}
	return &dto.CouponsResponse{Coupons: res}, nil
}

func (s *referralService) ContractorStats(ctx context.Context, contractorId uuid.UUID) (*dto.ContractorStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	profile, err := uow.ContractorProfileRepository().FindOne(ctx, specification.UserOwnedBy{UserID: contractorId})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("Contractor profile not found")
	}

	total, err := uow.CouponRepository().Count(ctx, specification.ByContractor{ContractorID: contractorId})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	active, err := uow.CouponRepository().Count(ctx,
		specification.ByContractor{ContractorID: contractorId},
		specification.RedeemableAt{Now: time.Now()},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &dto.ContractorStatsResponse{
		Points:          profile.Points,
		TotalSignups:    profile.TotalSignups,
		Username:        profile.Username,
		DiscountPercent: entity.ReferralDiscountPercent,
		TotalCoupons:    total,
		ActiveCoupons:   active,
	}, nil
}
