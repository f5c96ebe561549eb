package unitofwork

import (
	"context"
	"fmt"

	"legal-letter-be/internal/repository/contract"
	"legal-letter-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ContractorProfileRepository() contract.ContractorProfileRepository {
	return implementation.NewContractorProfileRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AdminProfileRepository() contract.AdminProfileRepository {
	return implementation.NewAdminProfileRepository(u.getDB())
}

func (u *UnitOfWorkImpl) LetterRepository() contract.LetterRepository {
	return implementation.NewLetterRepository(u.getDB())
}

func (u *UnitOfWorkImpl) EmailLogRepository() contract.EmailLogRepository {
	return implementation.NewEmailLogRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CouponRepository() contract.CouponRepository {
	return implementation.NewCouponRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PaymentSessionRepository() contract.PaymentSessionRepository {
	return implementation.NewPaymentSessionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) WebhookLogRepository() contract.WebhookLogRepository {
	return implementation.NewWebhookLogRepository(u.getDB())
}
