package unitofwork

import (
	"context"

	"legal-letter-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ContractorProfileRepository() contract.ContractorProfileRepository
	AdminProfileRepository() contract.AdminProfileRepository
	LetterRepository() contract.LetterRepository
	EmailLogRepository() contract.EmailLogRepository
	CouponRepository() contract.CouponRepository
	PaymentSessionRepository() contract.PaymentSessionRepository
	WebhookLogRepository() contract.WebhookLogRepository
}
