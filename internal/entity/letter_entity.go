package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type LetterStatus string

const (
	LetterStatusSubmitted LetterStatus = "submitted"
	LetterStatusReady     LetterStatus = "ready"
	LetterStatusSent      LetterStatus = "sent"
)

type LetterStage int

const (
	StageSubmitted LetterStage = 1
	StageDrafting  LetterStage = 2
	StageReview    LetterStage = 3
	StageReady     LetterStage = 4
)

func (s LetterStage) Valid() bool {
	return s >= StageSubmitted && s <= StageReady
}

// LetterOrigin tags which request variant produced the letter.
type LetterOrigin string

const (
	LetterOriginGenerated LetterOrigin = "generated"
	LetterOriginManual    LetterOrigin = "manual"
)

// EntryStage is where each request variant joins the pipeline.
func (o LetterOrigin) EntryStage() LetterStage {
	if o == LetterOriginGenerated {
		return StageReady
	}
	return StageSubmitted
}

var (
	ErrInvalidStage       = errors.New("invalid stage number")
	ErrBackwardStage      = errors.New("letter stage cannot move backwards")
	ErrLetterSent         = errors.New("letter has already been sent")
	ErrLetterNotReady     = errors.New("letter is not ready to send")
	ErrLetterHasNoContent = errors.New("letter has no content")
)

const UrgencyStandard = "standard"

type Letter struct {
	Id                    uuid.UUID
	UserId                uuid.UUID
	Title                 string
	Content               string
	LetterType            string
	Category              string
	FormData              map[string]interface{}
	UrgencyLevel          string
	Status                LetterStatus
	Stage                 LetterStage
	Origin                LetterOrigin
	ProfessionalGenerated bool
	SentAt                *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// NewLetter places a request variant at its entry stage. Generated letters
// carry their content from the start.
func NewLetter(userId uuid.UUID, origin LetterOrigin, title, content string, now time.Time) *Letter {
	l := &Letter{
		Id:                    uuid.New(),
		UserId:                userId,
		Title:                 title,
		Content:               content,
		Origin:                origin,
		ProfessionalGenerated: origin == LetterOriginGenerated,
		UrgencyLevel:          UrgencyStandard,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	l.applyStage(origin.EntryStage())
	return l
}

func (l *Letter) applyStage(stage LetterStage) {
	l.Stage = stage
	if stage == StageReady {
		l.Status = LetterStatusReady
	} else {
		l.Status = LetterStatusSubmitted
	}
}

// AdvanceTo moves the letter along the pipeline. Stages only move forward and
// a sent letter is frozen.
func (l *Letter) AdvanceTo(stage LetterStage, now time.Time) error {
	if !stage.Valid() {
		return ErrInvalidStage
	}
	if l.Status == LetterStatusSent {
		return ErrLetterSent
	}
	if stage < l.Stage {
		return ErrBackwardStage
	}
	l.applyStage(stage)
	l.UpdatedAt = now
	return nil
}

// CheckSendable validates that the letter can be delivered.
func (l *Letter) CheckSendable() error {
	if l.Stage != StageReady {
		return ErrLetterNotReady
	}
	if l.Content == "" {
		return ErrLetterHasNoContent
	}
	return nil
}

func (l *Letter) MarkSent(now time.Time) {
	l.Status = LetterStatusSent
	l.SentAt = &now
	l.UpdatedAt = now
}

type EmailLogStatus string

const (
	EmailLogSent   EmailLogStatus = "sent"
	EmailLogFailed EmailLogStatus = "failed"
)

type EmailLog struct {
	Id             uuid.UUID
	LetterId       uuid.UUID
	RecipientEmail string
	Status         EmailLogStatus
	Error          *string
	SentAt         time.Time
}
