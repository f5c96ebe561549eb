package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"legal-letter-be/internal/constant"
	"legal-letter-be/internal/dto"
	"legal-letter-be/internal/entity"
	"legal-letter-be/internal/pkg/apperror"
	"legal-letter-be/internal/pkg/logger"
	"legal-letter-be/internal/pkg/mailer"
	"legal-letter-be/internal/repository/specification"
	"legal-letter-be/internal/repository/unitofwork"
	"legal-letter-be/pkg/events"
	"legal-letter-be/pkg/llm"

	"github.com/google/uuid"
)

const defaultLetterType = "general"

var recipientEmailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// Caller is the authenticated account behind a request.
type Caller struct {
	UserId uuid.UUID
	Role   entity.UserRole
}

func (c Caller) canManage(ownerId uuid.UUID) bool {
	return c.UserId == ownerId || c.Role == entity.UserRoleAdmin
}

type ILetterService interface {
	GenerateDocument(ctx context.Context, userId uuid.UUID, req *dto.GenerateDocumentRequest) (*dto.GenerateDocumentResponse, error)
	GenerateLetter(ctx context.Context, userId uuid.UUID, req *dto.GenerateLetterRequest) (*dto.GenerateLetterResponse, error)
	Submit(ctx context.Context, userId uuid.UUID, req *dto.SubmitLetterRequest) (*dto.LetterResponse, error)
	UpdateStage(ctx context.Context, caller Caller, letterId uuid.UUID, req *dto.UpdateStageRequest) (*dto.LetterResponse, error)
	Send(ctx context.Context, caller Caller, letterId uuid.UUID, req *dto.SendLetterRequest) (*dto.LetterResponse, error)
	List(ctx context.Context, userId uuid.UUID) (*dto.LettersResponse, error)
	Get(ctx context.Context, caller Caller, letterId uuid.UUID) (*dto.LetterResponse, error)
	DocumentTypes() []constant.DocumentCategory
}

type letterService struct {
	uowFactory   unitofwork.RepositoryFactory
	llmProvider  llm.LLMProvider
	emailService mailer.IEmailService
	events       IPublisherService
	logger       logger.ILogger
}

func NewLetterService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	emailService mailer.IEmailService,
	publisher IPublisherService,
	log logger.ILogger,
) ILetterService {
	return &letterService{
		uowFactory:   uowFactory,
		llmProvider:  llmProvider,
		emailService: emailService,
		events:       publisher,
		logger:       log,
	}
}

type generationRequest struct {
	title        string
	letterType   string
	category     string
	formData     map[string]interface{}
	urgencyLevel string
	systemPrompt string
	userPrompt   string
	maxTokens    int
	exhausted    string
	failure      string
}

func (s *letterService) eligibleUser(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, exhausted string) (*entity.User, error) {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId}, specification.ActiveUsers{})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	if !user.Subscription.CanGenerate() {
		return nil, apperror.SubscriptionRequired(exhausted)
	}
	return user, nil
}

// generate calls the model first and only then consumes quota and stores the
// letter, so a failed completion costs nothing.
func (s *letterService) generate(ctx context.Context, userId uuid.UUID, req generationRequest) (*entity.Letter, int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.eligibleUser(ctx, uow, userId, req.exhausted); err != nil {
		return nil, 0, err
	}

	content, err := s.llmProvider.Chat(ctx, []llm.Message{
		{Role: constant.ChatRoleSystem, Content: req.systemPrompt},
		{Role: constant.ChatRoleUser, Content: req.userPrompt},
	},
		llm.WithMaxTokens(req.maxTokens),
		llm.WithTemperature(constant.GenerationTemperature),
	)
	if err != nil {
		s.logger.Error("LETTER", "AI generation failed", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
		return nil, 0, apperror.ExternalService("ai_service_error", req.failure, err)
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, 0, apperror.Internal(err)
	}
	defer uow.Rollback()

	remaining, ok, err := uow.UserRepository().DecrementLettersRemaining(ctx, userId)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	if !ok {
		return nil, 0, apperror.SubscriptionRequired(req.exhausted)
	}

	letter := entity.NewLetter(userId, entity.LetterOriginGenerated, req.title, content, time.Now())
	letter.LetterType = req.letterType
	letter.Category = req.category
	letter.FormData = req.formData
	if req.urgencyLevel != "" {
		letter.UrgencyLevel = req.urgencyLevel
	}

	if err := uow.LetterRepository().Create(ctx, letter); err != nil {
		return nil, 0, apperror.Internal(err)
	}
	if err := uow.Commit(); err != nil {
		return nil, 0, apperror.Internal(err)
	}

	s.events.Publish(ctx, events.LetterGenerated, map[string]interface{}{
		"letter_id":         letter.Id.String(),
		"user_id":           userId.String(),
		"letter_type":       letter.LetterType,
		"letters_remaining": remaining,
	})
	return letter, remaining, nil
}

func (s *letterService) GenerateDocument(ctx context.Context, userId uuid.UUID, req *dto.GenerateDocumentRequest) (*dto.GenerateDocumentResponse, error) {
	urgency := orDefault(req.UrgencyLevel, entity.UrgencyStandard)
	letter, remaining, err := s.generate(ctx, userId, generationRequest{
		title:        orDefault(req.Title, req.DocumentType),
		letterType:   req.DocumentType,
		category:     req.Category,
		formData:     req.FormData,
		urgencyLevel: urgency,
		systemPrompt: documentSystemPrompt(req.Category),
		userPrompt:   buildDocumentPrompt(req.DocumentType, req.Category, req.FormData, urgency),
		maxTokens:    constant.DocumentMaxTokens,
		exhausted:    "No documents remaining. Please subscribe to continue.",
		failure:      "Failed to generate document. Please try again.",
	})
	if err != nil {
		return nil, err
	}
	return &dto.GenerateDocumentResponse{Document: toLetterDTO(letter), LettersRemaining: remaining}, nil
}

func (s *letterService) GenerateLetter(ctx context.Context, userId uuid.UUID, req *dto.GenerateLetterRequest) (*dto.GenerateLetterResponse, error) {
	letterType := orDefault(req.LetterType, defaultLetterType)
	urgency := orDefault(req.UrgencyLevel, entity.UrgencyStandard)
	letter, remaining, err := s.generate(ctx, userId, generationRequest{
		title:        orDefault(req.Title, letterType),
		letterType:   letterType,
		formData:     req.FormData,
		urgencyLevel: urgency,
		systemPrompt: constant.LetterSystemPrompt,
		userPrompt:   buildLetterPrompt(letterType, req.Prompt, req.FormData, urgency),
		maxTokens:    constant.LetterMaxTokens,
		exhausted:    "No letters remaining. Please subscribe to continue.",
		failure:      "Failed to generate letter. Please try again.",
	})
	if err != nil {
		return nil, err
	}
	return &dto.GenerateLetterResponse{Letter: toLetterDTO(letter), LettersRemaining: remaining}, nil
}

func (s *letterService) Submit(ctx context.Context, userId uuid.UUID, req *dto.SubmitLetterRequest) (*dto.LetterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.eligibleUser(ctx, uow, userId, "No letters remaining. Please subscribe to continue."); err != nil {
		return nil, err
	}

	letterType := orDefault(req.LetterType, defaultLetterType)
	letter := entity.NewLetter(userId, entity.LetterOriginManual, orDefault(req.Title, letterType), "", time.Now())
	letter.LetterType = letterType
	letter.FormData = req.FormData
	letter.UrgencyLevel = orDefault(req.UrgencyLevel, entity.UrgencyStandard)

	if err := uow.LetterRepository().Create(ctx, letter); err != nil {
		return nil, apperror.Internal(err)
	}

	s.events.Publish(ctx, events.LetterSubmitted, map[string]interface{}{
		"letter_id": letter.Id.String(),
		"user_id":   userId.String(),
	})
	return &dto.LetterResponse{Letter: toLetterDTO(letter)}, nil
}

// managedLetter loads a letter the caller owns or administers.
func (s *letterService) managedLetter(ctx context.Context, uow unitofwork.UnitOfWork, caller Caller, letterId uuid.UUID) (*entity.Letter, error) {
	letter, err := uow.LetterRepository().FindOne(ctx, specification.ByID{ID: letterId})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if letter == nil {
		return nil, apperror.NotFound("Letter not found")
	}
	if !caller.canManage(letter.UserId) {
		return nil, apperror.Forbidden("You do not have access to this letter")
	}
	return letter, nil
}

func (s *letterService) UpdateStage(ctx context.Context, caller Caller, letterId uuid.UUID, req *dto.UpdateStageRequest) (*dto.LetterResponse, error) {
	stage := entity.LetterStage(req.Stage)
	if !stage.Valid() {
		return nil, apperror.Validation("Invalid stage number")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	letter, err := s.managedLetter(ctx, uow, caller, letterId)
	if err != nil {
		return nil, err
	}

	from := letter.Stage
	if err := letter.AdvanceTo(stage, time.Now()); err != nil {
		return nil, transitionError(err)
	}

	saved, err := uow.LetterRepository().SaveTransition(ctx, letter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if !saved {
		return nil, apperror.Conflict("Letter was changed by another request")
	}

	s.events.Publish(ctx, events.LetterStageChanged, map[string]interface{}{
		"letter_id": letter.Id.String(),
		"from":      int(from),
		"to":        int(stage),
	})
	return &dto.LetterResponse{Letter: toLetterDTO(letter)}, nil
}

func transitionError(err error) error {
	switch {
	case errors.Is(err, entity.ErrInvalidStage):
		return apperror.Validation("Invalid stage number")
	case errors.Is(err, entity.ErrLetterSent):
		return apperror.Conflict("Letter has already been sent")
	case errors.Is(err, entity.ErrBackwardStage):
		return apperror.Conflict("Letter stage cannot move backwards")
	case errors.Is(err, entity.ErrLetterNotReady):
		return apperror.Conflict("Letter is not ready to send")
	case errors.Is(err, entity.ErrLetterHasNoContent):
		return apperror.Conflict("Letter has no content")
	default:
		return apperror.Internal(err)
	}
}

func (s *letterService) Send(ctx context.Context, caller Caller, letterId uuid.UUID, req *dto.SendLetterRequest) (*dto.LetterResponse, error) {
	recipient := strings.TrimSpace(req.RecipientEmail)
	if !recipientEmailPattern.MatchString(recipient) {
		return nil, apperror.Validation("Valid recipient email is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	letter, err := s.managedLetter(ctx, uow, caller, letterId)
	if err != nil {
		return nil, err
	}
	if err := letter.CheckSendable(); err != nil {
		return nil, transitionError(err)
	}

	sendErr := s.emailService.SendLetter(recipient, letter.Title, letter.Content)

	now := time.Now()
	emailLog := &entity.EmailLog{
		Id:             uuid.New(),
		LetterId:       letter.Id,
		RecipientEmail: recipient,
		Status:         entity.EmailLogSent,
		SentAt:         now,
	}
	if sendErr != nil {
		emailLog.Status = entity.EmailLogFailed
		emailLog.Error = errorText(sendErr)
	}
	if err := uow.EmailLogRepository().Create(ctx, emailLog); err != nil {
		s.logger.Error("LETTER", "Failed to write email log", map[string]interface{}{
			"letter_id": letter.Id.String(),
			"error":     err.Error(),
		})
	}

	if sendErr != nil {
		s.logger.Error("LETTER", "Email sending error", map[string]interface{}{
			"letter_id": letter.Id.String(),
			"error":     sendErr.Error(),
		})
		return nil, apperror.ExternalService("email_service_error", "Failed to send email. Please try again.", sendErr)
	}

	// A sent letter may be mailed again to another recipient; only the first
	// delivery moves it to sent.
	if letter.Status != entity.LetterStatusSent {
		letter.MarkSent(now)
		saved, err := uow.LetterRepository().SaveTransition(ctx, letter)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		if !saved {
			return nil, apperror.Conflict("Letter was changed by another request")
		}
	}

	s.events.Publish(ctx, events.LetterSent, map[string]interface{}{
		"letter_id": letter.Id.String(),
		"recipient": recipient,
	})
	return &dto.LetterResponse{Letter: toLetterDTO(letter)}, nil
}

func (s *letterService) List(ctx context.Context, userId uuid.UUID) (*dto.LettersResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	letters, err := uow.LetterRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &dto.LettersResponse{Letters: toLetterDTOs(letters)}, nil
}

func (s *letterService) Get(ctx context.Context, caller Caller, letterId uuid.UUID) (*dto.LetterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	letter, err := s.managedLetter(ctx, uow, caller, letterId)
	if err != nil {
		return nil, err
	}
	return &dto.LetterResponse{Letter: toLetterDTO(letter)}, nil
}

func (s *letterService) DocumentTypes() []constant.DocumentCategory {
	return constant.DocumentCategories
}

func orDefault(v, fallback string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return fallback
}
