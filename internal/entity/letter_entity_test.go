package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewLetterEntryStages(t *testing.T) {
	now := time.Now()

	generated := NewLetter(uuid.New(), LetterOriginGenerated, "Demand", "Dear Sir", now)
	assert.Equal(t, StageReady, generated.Stage)
	assert.Equal(t, LetterStatusReady, generated.Status)
	assert.True(t, generated.ProfessionalGenerated)

	manual := NewLetter(uuid.New(), LetterOriginManual, "Demand", "", now)
	assert.Equal(t, StageSubmitted, manual.Stage)
	assert.Equal(t, LetterStatusSubmitted, manual.Status)
	assert.False(t, manual.ProfessionalGenerated)
}

func TestAdvanceTo(t *testing.T) {
	tests := []struct {
		name       string
		from       LetterStage
		sent       bool
		to         LetterStage
		wantErr    error
		wantStatus LetterStatus
	}{
		{"forward one", StageSubmitted, false, StageDrafting, nil, LetterStatusSubmitted},
		{"jump to ready", StageSubmitted, false, StageReady, nil, LetterStatusReady},
		{"same stage", StageReview, false, StageReview, nil, LetterStatusSubmitted},
		{"backwards", StageReview, false, StageDrafting, ErrBackwardStage, ""},
		{"out of range high", StageSubmitted, false, 9, ErrInvalidStage, ""},
		{"out of range zero", StageSubmitted, false, 0, ErrInvalidStage, ""},
		{"sent is frozen", StageReady, true, StageReady, ErrLetterSent, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLetter(uuid.New(), LetterOriginManual, "t", "", time.Now())
			l.applyStage(tt.from)
			if tt.sent {
				l.MarkSent(time.Now())
			}

			err := l.AdvanceTo(tt.to, time.Now())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.to, l.Stage)
			assert.Equal(t, tt.wantStatus, l.Status)
		})
	}
}

func TestCheckSendable(t *testing.T) {
	now := time.Now()

	manual := NewLetter(uuid.New(), LetterOriginManual, "t", "", now)
	assert.ErrorIs(t, manual.CheckSendable(), ErrLetterNotReady)

	assert.NoError(t, manual.AdvanceTo(StageReady, now))
	assert.ErrorIs(t, manual.CheckSendable(), ErrLetterHasNoContent)

	generated := NewLetter(uuid.New(), LetterOriginGenerated, "t", "body", now)
	assert.NoError(t, generated.CheckSendable())

	generated.MarkSent(now)
	assert.Equal(t, LetterStatusSent, generated.Status)
	assert.NotNil(t, generated.SentAt)
}

func TestSubscriptionActivate(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	sub := NewFreeSubscription()
	sub.LettersRemaining = 2
	assert.False(t, sub.CanGenerate())

	pkg, ok := LookupPackage("6letters")
	assert.True(t, ok)

	sub.Activate("pi_123", pkg, now)
	assert.Equal(t, SubscriptionStatusPaid, sub.Status)
	assert.Equal(t, 6, sub.LettersRemaining)
	assert.Equal(t, "pi_123", *sub.PlanId)
	assert.Equal(t, "6letters", *sub.PackageType)
	assert.Equal(t, now.Add(365*24*time.Hour), *sub.CurrentPeriodEnd)
	assert.True(t, sub.CanGenerate())

	_, ok = LookupPackage("10letters")
	assert.False(t, ok)
}

func TestCouponRedeemable(t *testing.T) {
	now := time.Now()
	c := Coupon{MaxUses: 2, CurrentUses: 1, ExpiresAt: now.Add(time.Hour)}
	assert.True(t, c.Redeemable(now))

	c.CurrentUses = 2
	assert.False(t, c.Redeemable(now))

	c.CurrentUses = 0
	c.ExpiresAt = now.Add(-time.Second)
	assert.False(t, c.Redeemable(now))
}

func TestUserCanManage(t *testing.T) {
	owner := uuid.New()
	u := User{Id: owner, Role: UserRoleUser}
	assert.True(t, u.CanManage(owner))
	assert.False(t, u.CanManage(uuid.New()))

	admin := User{Id: uuid.New(), Role: UserRoleAdmin}
	assert.True(t, admin.CanManage(owner))
}
