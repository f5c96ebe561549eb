package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleUser       UserRole = "user"
	UserRoleContractor UserRole = "contractor"
	UserRoleAdmin      UserRole = "admin"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleUser, UserRoleContractor, UserRoleAdmin:
		return true
	}
	return false
}

type User struct {
	Id               uuid.UUID
	Email            string
	PasswordHash     string
	Name             string
	Role             UserRole
	Subscription     Subscription
	StripeCustomerId *string
	IsActive         bool
	LastLogin        *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// CanManage reports whether the user may mutate a resource owned by ownerId.
func (u *User) CanManage(ownerId uuid.UUID) bool {
	return u.Id == ownerId || u.IsAdmin()
}

// ContractorProfile is the referral side-record of a contractor account. Its
// username doubles as a discount code.
type ContractorProfile struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	Username     string
	Points       int
	TotalSignups int
	CreatedAt    time.Time
}

type AdminProfile struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Permissions []string
	CreatedAt   time.Time
}

var DefaultAdminPermissions = []string{"manage_users", "manage_contractors", "manage_letters"}
