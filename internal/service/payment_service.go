// FILE: internal/service/payment_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"legal-letter-be/internal/dto"
	"legal-letter-be/internal/entity"
	"legal-letter-be/internal/pkg/apperror"
	"legal-letter-be/internal/pkg/logger"
	"legal-letter-be/internal/repository/contract"
	"legal-letter-be/internal/repository/specification"
	"legal-letter-be/internal/repository/unitofwork"
	"legal-letter-be/pkg/events"
	"legal-letter-be/pkg/payment"

	"github.com/google/uuid"
)

const (
	checkoutCurrency = "usd"
	webhookLogsLimit = 100

	eventCheckoutCompleted = "checkout.session.completed"
	eventPaymentFailed     = "payment_intent.payment_failed"
)

type IPaymentService interface {
	StartCheckout(ctx context.Context, userId uuid.UUID, req *dto.CreateCheckoutRequest) (*dto.CreateCheckoutResponse, error)
	ReconcileWebhook(ctx context.Context, payload []byte, signature string) (*dto.WebhookAckResponse, error)
	ListWebhookLogs(ctx context.Context) (*dto.WebhookLogsResponse, error)
}

type paymentService struct {
	uowFactory unitofwork.RepositoryFactory
	gateway    payment.Gateway
	clientURL  string
	events     IPublisherService
	logger     logger.ILogger
}

func NewPaymentService(
	uowFactory unitofwork.RepositoryFactory,
	gateway payment.Gateway,
	clientURL string,
	publisher IPublisherService,
	log logger.ILogger,
) IPaymentService {
	return &paymentService{
		uowFactory: uowFactory,
		gateway:    gateway,
		clientURL:  strings.TrimRight(clientURL, "/"),
		events:     publisher,
		logger:     log,
	}
}

func (s *paymentService) StartCheckout(ctx context.Context, userId uuid.UUID, req *dto.CreateCheckoutRequest) (*dto.CreateCheckoutResponse, error) {
	pkg, ok := entity.LookupPackage(req.PackageType)
	if !ok {
		return nil, apperror.Validation("Invalid package type")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId}, specification.ActiveUsers{})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	metadata := map[string]string{
		"userId":      user.Id.String(),
		"packageType": pkg.Code,
	}

	var customerId string
	if user.StripeCustomerId != nil && *user.StripeCustomerId != "" {
		customerId = *user.StripeCustomerId
	} else {
		customerId, err = s.gateway.CreateCustomer(ctx, user.Email, user.Name, map[string]string{"userId": user.Id.String()})
		if err != nil {
			return nil, s.checkoutFailed(user.Id, err)
		}
		if err := uow.UserRepository().SetStripeCustomerId(ctx, user.Id, customerId); err != nil {
			return nil, apperror.Internal(err)
		}
	}

	session, err := s.gateway.CreateCheckoutSession(ctx, payment.CheckoutRequest{
		CustomerId:  customerId,
		ProductName: pkg.Name,
		Description: fmt.Sprintf("Professional legal letters - %s", strings.Replace(pkg.Code, "letters", " letters", 1)),
		AmountCents: pkg.AmountCents,
		Currency:    checkoutCurrency,
		SuccessURL:  s.clientURL + "?session_id={CHECKOUT_SESSION_ID}&success=true",
		CancelURL:   s.clientURL + "?canceled=true",
		Metadata:    metadata,
	})
	if err != nil {
		return nil, s.checkoutFailed(user.Id, err)
	}

	now := time.Now()
	record := &entity.PaymentSession{
		Id:              uuid.New(),
		UserId:          user.Id,
		StripeSessionId: session.Id,
		PackageType:     pkg.Code,
		AmountCents:     pkg.AmountCents,
		Status:          entity.PaymentSessionCreated,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uow.PaymentSessionRepository().Create(ctx, record); err != nil {
		return nil, apperror.Internal(err)
	}

	s.events.Publish(ctx, events.CheckoutStarted, map[string]interface{}{
		"user_id":      user.Id.String(),
		"package_type": pkg.Code,
		"session_id":   session.Id,
	})

	return &dto.CreateCheckoutResponse{SessionId: session.Id, URL: session.URL}, nil
}

func (s *paymentService) checkoutFailed(userId uuid.UUID, err error) error {
	s.logger.Error("PAYMENT", "Stripe checkout error", map[string]interface{}{
		"user_id": userId.String(),
		"error":   err.Error(),
	})
	return apperror.ExternalService("payment_service_error", "Failed to create checkout session. Please try again.", err)
}

// reconcileResult is what an applied event changed, published after commit.
type reconcileResult struct {
	outcome   entity.WebhookOutcome
	eventType string
	data      map[string]interface{}
}

func (s *paymentService) ReconcileWebhook(ctx context.Context, payload []byte, signature string) (*dto.WebhookAckResponse, error) {
	if strings.TrimSpace(signature) == "" {
		s.logger.Warn("WEBHOOK", "Missing stripe-signature header", nil)
		return nil, apperror.Validation("No signature provided")
	}

	evt, verified, err := s.gateway.ParseEvent(payload, signature)
	if err != nil {
		if errors.Is(err, payment.ErrInvalidSignature) {
			s.logger.Error("WEBHOOK", "Webhook signature verification failed", map[string]interface{}{"error": err.Error()})
			s.audit(ctx, &entity.WebhookLog{
				EventType: entity.EventTypeSignatureFailed,
				Status:    entity.WebhookOutcomeFailed,
				Error:     errorText(err),
			})
			return nil, apperror.InvalidSignature("Webhook signature verification failed")
		}
		return nil, apperror.Validation("Invalid webhook payload")
	}
	if !verified {
		s.logger.Warn("WEBHOOK", "Webhook signature verification skipped - using development mode", nil)
	}

	s.logger.Info("WEBHOOK", "Received webhook event", map[string]interface{}{
		"event_id":   evt.Id,
		"event_type": evt.Type,
	})

	ack := &dto.WebhookAckResponse{Received: true, EventType: evt.Type}

	result, err := s.apply(ctx, evt)
	switch {
	case errors.Is(err, contract.ErrDuplicate):
		s.logger.Info("WEBHOOK", "Duplicate webhook event ignored", map[string]interface{}{"event_id": evt.Id})
		s.audit(ctx, &entity.WebhookLog{
			EventId:   eventIdPtr(evt),
			EventType: evt.Type,
			Status:    entity.WebhookOutcomeDuplicate,
			EventData: evt.Object,
		})
		ack.Duplicate = true
	case err != nil:
		s.logger.Error("WEBHOOK", "Webhook processing error", map[string]interface{}{
			"event_id":   evt.Id,
			"event_type": evt.Type,
			"error":      err.Error(),
		})
		s.audit(ctx, &entity.WebhookLog{
			EventId:   eventIdPtr(evt),
			EventType: evt.Type,
			Status:    entity.WebhookOutcomeError,
			Error:     errorText(err),
			EventData: evt.Object,
		})
	default:
		if result.eventType != "" {
			s.events.Publish(ctx, result.eventType, result.data)
		}
	}

	ack.Timestamp = time.Now().UTC()
	return ack, nil
}

// apply runs the ledger mutation and its applied audit row in one transaction.
// A replay of an already applied event id returns contract.ErrDuplicate.
func (s *paymentService) apply(ctx context.Context, evt *payment.Event) (*reconcileResult, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if evt.Id != "" {
		prior, err := uow.WebhookLogRepository().FindOne(ctx,
			specification.ByEventID{EventID: evt.Id},
			specification.AppliedOnly{},
		)
		if err != nil {
			return nil, err
		}
		if prior != nil {
			return nil, contract.ErrDuplicate
		}
	}

	now := time.Now()
	var result *reconcileResult
	var err error
	switch evt.Type {
	case eventCheckoutCompleted:
		result, err = s.applyCheckoutCompleted(ctx, uow, evt, now)
	case eventPaymentFailed:
		result, err = s.applyPaymentFailed(ctx, uow, evt)
	default:
		s.logger.Info("WEBHOOK", "Unhandled event type", map[string]interface{}{"event_type": evt.Type})
		result = &reconcileResult{outcome: entity.WebhookOutcomeUnhandled}
	}
	if err != nil {
		return nil, err
	}

	if err := uow.WebhookLogRepository().Create(ctx, &entity.WebhookLog{
		Id:        uuid.New(),
		EventId:   eventIdPtr(evt),
		EventType: evt.Type,
		Status:    result.outcome,
		EventData: evt.Object,
		Applied:   evt.Id != "",
		CreatedAt: now,
	}); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *paymentService) applyCheckoutCompleted(ctx context.Context, uow unitofwork.UnitOfWork, evt *payment.Event, now time.Time) (*reconcileResult, error) {
	rawUserId := evt.Metadata["userId"]
	packageType := evt.Metadata["packageType"]
	if rawUserId == "" || packageType == "" {
		return nil, errors.New("missing metadata in checkout session")
	}

	userId, err := uuid.Parse(rawUserId)
	if err != nil {
		return nil, fmt.Errorf("user not found: %s", rawUserId)
	}
	pkg, ok := entity.LookupPackage(packageType)
	if !ok {
		return nil, fmt.Errorf("unknown package type: %s", packageType)
	}

	var sub entity.Subscription
	sub.Activate(evt.PaymentIntentId, pkg, now)

	updated, err := uow.UserRepository().ActivateSubscription(ctx, userId, sub)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, fmt.Errorf("user not found: %s", rawUserId)
	}

	if evt.ObjectId != "" {
		session, err := uow.PaymentSessionRepository().FindOne(ctx, specification.ByStripeSessionID{SessionID: evt.ObjectId})
		if err != nil {
			return nil, err
		}
		if session == nil {
			s.logger.Warn("WEBHOOK", "Completed checkout has no payment session record", map[string]interface{}{
				"session_id": evt.ObjectId,
				"user_id":    rawUserId,
			})
		} else if err := uow.PaymentSessionRepository().MarkCompleted(ctx, evt.ObjectId, now); err != nil {
			return nil, err
		}
	}

	s.logger.Info("WEBHOOK", "Successfully processed payment", map[string]interface{}{
		"user_id":      rawUserId,
		"package_type": pkg.Code,
	})

	return &reconcileResult{
		outcome:   entity.WebhookOutcomeSuccess,
		eventType: events.SubscriptionActivated,
		data: map[string]interface{}{
			"user_id":           rawUserId,
			"package_type":      pkg.Code,
			"letters_remaining": pkg.Letters,
		},
	}, nil
}

func (s *paymentService) applyPaymentFailed(ctx context.Context, uow unitofwork.UnitOfWork, evt *payment.Event) (*reconcileResult, error) {
	result := &reconcileResult{outcome: entity.WebhookOutcomeProcessed}

	rawUserId := evt.Metadata["userId"]
	userId, err := uuid.Parse(rawUserId)
	if err != nil {
		return result, nil
	}

	n, err := uow.PaymentSessionRepository().MarkFailedForUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	s.logger.Info("WEBHOOK", "Payment failed", map[string]interface{}{
		"user_id":  rawUserId,
		"sessions": n,
	})

	result.eventType = events.PaymentFailed
	result.data = map[string]interface{}{"user_id": rawUserId}
	return result, nil
}

// audit writes an unapplied audit row. Failures are only logged.
func (s *paymentService) audit(ctx context.Context, log *entity.WebhookLog) {
	log.Id = uuid.New()
	log.CreatedAt = time.Now()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.WebhookLogRepository().Create(ctx, log); err != nil {
		s.logger.Error("WEBHOOK", "Failed to log webhook event", map[string]interface{}{
			"event_type": log.EventType,
			"error":      err.Error(),
		})
	}
}

func (s *paymentService) ListWebhookLogs(ctx context.Context) (*dto.WebhookLogsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	logs, err := uow.WebhookLogRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: webhookLogsLimit},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	res := make([]dto.WebhookLogDTO, 0, len(logs))
	for _, l := range logs {
		res = append(res, toWebhookLogDTO(l))
	}
	return &dto.WebhookLogsResponse{Logs: res}, nil
}

func eventIdPtr(evt *payment.Event) *string {
	if evt.Id == "" {
		return nil
	}
	id := evt.Id
	return &id
}

func errorText(err error) *string {
	msg := err.Error()
	return &msg
}
