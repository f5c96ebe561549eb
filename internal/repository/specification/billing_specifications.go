package specification

import "gorm.io/gorm"

type ByStripeSessionID struct {
	SessionID string
}

func (s ByStripeSessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("stripe_session_id = ?", s.SessionID)
}

type ByEventID struct {
	EventID string
}

func (s ByEventID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("event_id = ?", s.EventID)
}

type AppliedOnly struct{}

func (s AppliedOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("applied = ?", true)
}

// ByStatus matches the status column of letters and payment sessions.
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}
