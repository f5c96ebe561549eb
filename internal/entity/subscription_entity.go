package entity

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionStatus string

const (
	SubscriptionStatusFree SubscriptionStatus = "free"
	SubscriptionStatusPaid SubscriptionStatus = "paid"
)

// SubscriptionPeriod is how long a purchased package stays valid.
const SubscriptionPeriod = 365 * 24 * time.Hour

// Subscription is the per-account ledger record.
type Subscription struct {
	Status           SubscriptionStatus
	PlanId           *string
	PackageType      *string
	LettersRemaining int
	CurrentPeriodEnd *time.Time
	DiscountPercent  int
	ReferredBy       *uuid.UUID
}

func NewFreeSubscription() Subscription {
	return Subscription{Status: SubscriptionStatusFree}
}

// CanGenerate reports whether a letter may be produced against this ledger.
func (s Subscription) CanGenerate() bool {
	return s.Status == SubscriptionStatusPaid && s.LettersRemaining > 0
}

// Activate overwrites the ledger with a freshly purchased package.
func (s *Subscription) Activate(planId string, pkg Package, now time.Time) {
	packageType := pkg.Code
	periodEnd := now.Add(SubscriptionPeriod)

	s.Status = SubscriptionStatusPaid
	s.PlanId = &planId
	s.PackageType = &packageType
	s.LettersRemaining = pkg.Letters
	s.CurrentPeriodEnd = &periodEnd
}

type Package struct {
	Code        string
	Name        string
	Letters     int
	AmountCents int64
}

var Packages = map[string]Package{
	"4letters": {Code: "4letters", Name: "4 Letters Package", Letters: 4, AmountCents: 19999},
	"6letters": {Code: "6letters", Name: "6 Letters Package", Letters: 6, AmountCents: 49999},
	"8letters": {Code: "8letters", Name: "8 Letters Package", Letters: 8, AmountCents: 99999},
}

func LookupPackage(code string) (Package, bool) {
	pkg, ok := Packages[code]
	return pkg, ok
}
