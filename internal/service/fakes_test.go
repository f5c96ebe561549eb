package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"legal-letter-be/internal/entity"
	"legal-letter-be/internal/repository/contract"
	"legal-letter-be/internal/repository/specification"
	"legal-letter-be/internal/repository/unitofwork"
	"legal-letter-be/pkg/llm"
	"legal-letter-be/pkg/payment"

	"github.com/google/uuid"
)

// memStore is an in-memory stand-in for the postgres schema. Specifications
// are interpreted by type, so only the ones the services use are supported.
type memStore struct {
	mu          sync.Mutex
	users       map[uuid.UUID]entity.User
	contractors map[uuid.UUID]entity.ContractorProfile
	admins      map[uuid.UUID]entity.AdminProfile
	letters     map[uuid.UUID]entity.Letter
	emailLogs   []entity.EmailLog
	coupons     map[uuid.UUID]entity.Coupon
	sessions    map[uuid.UUID]entity.PaymentSession
	webhookLogs []entity.WebhookLog
}

func newMemStore() *memStore {
	return &memStore{
		users:       map[uuid.UUID]entity.User{},
		contractors: map[uuid.UUID]entity.ContractorProfile{},
		admins:      map[uuid.UUID]entity.AdminProfile{},
		letters:     map[uuid.UUID]entity.Letter{},
		coupons:     map[uuid.UUID]entity.Coupon{},
		sessions:    map[uuid.UUID]entity.PaymentSession{},
	}
}

func (s *memStore) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &memUoW{store: s}
}

func (s *memStore) user(id uuid.UUID) entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users[id]
}

func (s *memStore) putUser(u entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.Id] = u
}

func (s *memStore) letter(id uuid.UUID) entity.Letter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.letters[id]
}

func (s *memStore) putLetter(l entity.Letter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.letters[l.Id] = l
}

func (s *memStore) putCoupon(c entity.Coupon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coupons[c.Id] = c
}

func (s *memStore) putContractor(p entity.ContractorProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contractors[p.Id] = p
}

func (s *memStore) logs() []entity.WebhookLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.WebhookLog(nil), s.webhookLogs...)
}

// memUoW undoes its writes on rollback, so concurrent units of work do not
// clobber each other.
type memUoW struct {
	store *memStore
	inTx  bool
	undo  []func()
}

func (u *memUoW) Begin(ctx context.Context) error {
	u.inTx = true
	u.undo = nil
	return nil
}

func (u *memUoW) Commit() error {
	u.inTx = false
	u.undo = nil
	return nil
}

func (u *memUoW) Rollback() error {
	if !u.inTx {
		return nil
	}
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	for i := len(u.undo) - 1; i >= 0; i-- {
		u.undo[i]()
	}
	u.inTx = false
	u.undo = nil
	return nil
}

// record must be called with the store lock held.
func (u *memUoW) record(fn func()) {
	if u.inTx {
		u.undo = append(u.undo, fn)
	}
}

func (u *memUoW) UserRepository() contract.UserRepository                 { return &memUsers{u} }
func (u *memUoW) ContractorProfileRepository() contract.ContractorProfileRepository {
	return &memContractors{u}
}
func (u *memUoW) AdminProfileRepository() contract.AdminProfileRepository { return &memAdmins{u} }
func (u *memUoW) LetterRepository() contract.LetterRepository             { return &memLetters{u} }
func (u *memUoW) EmailLogRepository() contract.EmailLogRepository         { return &memEmailLogs{u} }
func (u *memUoW) CouponRepository() contract.CouponRepository             { return &memCoupons{u} }
func (u *memUoW) PaymentSessionRepository() contract.PaymentSessionRepository {
	return &memSessions{u}
}
func (u *memUoW) WebhookLogRepository() contract.WebhookLogRepository { return &memWebhookLogs{u} }

type record map[string]interface{}

func matches(rec record, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if rec["id"] != s.ID {
				return false
			}
		case specification.ByEmail:
			if rec["email"] != strings.ToLower(strings.TrimSpace(s.Email)) {
				return false
			}
		case specification.UserOwnedBy:
			if rec["user_id"] != s.UserID {
				return false
			}
		case specification.ActiveUsers:
			if rec["is_active"] != true {
				return false
			}
		case specification.ByRole:
			if rec["role"] != s.Role {
				return false
			}
		case specification.ByUsername:
			if rec["username"] != s.Username {
				return false
			}
		case specification.ByCode:
			if rec["code"] != strings.ToUpper(strings.TrimSpace(s.Code)) {
				return false
			}
		case specification.ByContractor:
			if rec["contractor_id"] != s.ContractorID {
				return false
			}
		case specification.RedeemableAt:
			expires, _ := rec["expires_at"].(time.Time)
			if !s.Now.Before(expires) || rec["current_uses"].(int) >= rec["max_uses"].(int) {
				return false
			}
		case specification.ByEventID:
			if rec["event_id"] != s.EventID {
				return false
			}
		case specification.AppliedOnly:
			if rec["applied"] != true {
				return false
			}
		case specification.ByStatus:
			if rec["status"] != s.Status {
				return false
			}
		case specification.ByStripeSessionID:
			if rec["stripe_session_id"] != s.SessionID {
				return false
			}
		case specification.FieldEquals:
			if rec[s.Field] != s.Value {
				return false
			}
		case specification.OrderBy, specification.Pagination:
		default:
			panic(fmt.Sprintf("memStore: unsupported specification %T", spec))
		}
	}
	return true
}

// arrange orders by created_at (descending when asked) and applies a limit.
func arrange[T any](items []T, createdAt func(T) time.Time, specs []specification.Specification) []T {
	desc := false
	limit := 0
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.OrderBy:
			desc = s.Desc
		case specification.Pagination:
			limit = s.Limit
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return createdAt(items[i]).After(createdAt(items[j]))
		}
		return createdAt(items[i]).Before(createdAt(items[j]))
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

func userRecord(u entity.User) record {
	return record{
		"id":                  u.Id,
		"email":               u.Email,
		"is_active":           u.IsActive,
		"role":                string(u.Role),
		"subscription_status": string(u.Subscription.Status),
	}
}

type memUsers struct{ u *memUoW }

func (r *memUsers) Create(ctx context.Context, user *entity.User) error {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return contract.ErrDuplicate
		}
	}
	s.users[user.Id] = *user
	id := user.Id
	r.u.record(func() { delete(s.users, id) })
	return nil
}

func (r *memUsers) find(specs []specification.Specification) []*entity.User {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.User
	for _, user := range s.users {
		if matches(userRecord(user), specs) {
			c := user
			out = append(out, &c)
		}
	}
	return arrange(out, func(u *entity.User) time.Time { return u.CreatedAt }, specs)
}

func (r *memUsers) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	if res := r.find(specs); len(res) > 0 {
		return res[0], nil
	}
	return nil, nil
}

func (r *memUsers) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	return r.find(specs), nil
}

func (r *memUsers) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.find(specs))), nil
}

func (r *memUsers) DecrementLettersRemaining(ctx context.Context, userId uuid.UUID) (int, bool, error) {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userId]
	if !ok || user.Subscription.Status != entity.SubscriptionStatusPaid || user.Subscription.LettersRemaining <= 0 {
		return 0, false, nil
	}
	prev := user
	user.Subscription.LettersRemaining--
	s.users[userId] = user
	r.u.record(func() { s.users[userId] = prev })
	return user.Subscription.LettersRemaining, true, nil
}

func (r *memUsers) ActivateSubscription(ctx context.Context, userId uuid.UUID, sub entity.Subscription) (bool, error) {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userId]
	if !ok {
		return false, nil
	}
	prev := user
	user.Subscription.Status = sub.Status
	user.Subscription.PlanId = sub.PlanId
	user.Subscription.PackageType = sub.PackageType
	user.Subscription.LettersRemaining = sub.LettersRemaining
	user.Subscription.CurrentPeriodEnd = sub.CurrentPeriodEnd
	s.users[userId] = user
	r.u.record(func() { s.users[userId] = prev })
	return true, nil
}

func (r *memUsers) SetStripeCustomerId(ctx context.Context, userId uuid.UUID, customerId string) error {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()
	user := s.users[userId]
	user.StripeCustomerId = &customerId
	s.users[userId] = user
	return nil
}

func (r *memUsers) TouchLastLogin(ctx context.Context, userId uuid.UUID, at time.Time) error {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()
	user := s.users[userId]
	user.LastLogin = &at
	s.users[userId] = user
	return nil
}

type memContractors struct{ u *memUoW }

func (r *memContractors) Create(ctx context.Context, profile *entity.ContractorProfile) error {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.contractors {
		if p.Username == profile.Username || p.UserId == profile.UserId {
			return contract.ErrDuplicate
		}
	}
	s.contractors[profile.Id] = *profile
	id := profile.Id
	r.u.record(func() { delete(s.contractors, id) })
	return nil
}

func (r *memContractors) find(specs []specification.Specification) []*entity.ContractorProfile {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.ContractorProfile
	for _, p := range s.contractors {
		if matches(record{"id": p.Id, "user_id": p.UserId, "username": p.Username}, specs) {
			c := p
			out = append(out, &c)
		}
	}
	return arrange(out, func(p *entity.ContractorProfile) time.Time { return p.CreatedAt }, specs)
}

func (r *memContractors) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ContractorProfile, error) {
	if res := r.find(specs); len(res) > 0 {
		return res[0], nil
	}
	return nil, nil
}

func (r *memContractors) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.find(specs))), nil
}

func (r *memContractors) IncrementReferral(ctx context.Context, profileId uuid.UUID) error {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.contractors[profileId]
	if !ok {
		return errors.New("profile not found")
	}
	prev := p
	p.Points++
	p.TotalSignups++
	s.contractors[profileId] = p
	r.u.record(func() { s.contractors[profileId] = prev })
	return nil
}

type memAdmins struct{ u *memUoW }

func (r *memAdmins) Create(ctx context.Context, profile *entity.AdminProfile) error {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admins[profile.Id] = *profile
	id := profile.Id
	r.u.record(func() { delete(s.admins, id) })
	return nil
}

func (r *memAdmins) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AdminProfile, error) {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.admins {
		if matches(record{"id": p.Id, "user_id": p.UserId}, specs) {
			c := p
			return &c, nil
		}
	}
	return nil, nil
}

type memLetters struct{ u *memUoW }

func (r *memLetters) Create(ctx context.Context, letter *entity.Letter) error {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.letters[letter.Id] = *letter
	id := letter.Id
	r.u.record(func() { delete(s.letters, id) })
	return nil
}

func (r *memLetters) find(specs []specification.Specification) []*entity.Letter {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.Letter
	for _, l := range s.letters {
		if matches(record{"id": l.Id, "user_id": l.UserId, "status": string(l.Status)}, specs) {
			c := l
			out = append(out, &c)
		}
	}
	return arrange(out, func(l *entity.Letter) time.Time { return l.CreatedAt }, specs)
}

func (r *memLetters) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Letter, error) {
	if res := r.find(specs); len(res) > 0 {
		return res[0], nil
	}
	return nil, nil
}

func (r *memLetters) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Letter, error) {
	return r.find(specs), nil
}

func (r *memLetters) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.find(specs))), nil
}

func (r *memLetters) SaveTransition(ctx context.Context, letter *entity.Letter) (bool, error) {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.letters[letter.Id]
	if !ok || stored.Status == entity.LetterStatusSent || stored.Stage > letter.Stage {
		return false, nil
	}
	prev := stored
	stored.Stage = letter.Stage
	stored.Status = letter.Status
	stored.SentAt = letter.SentAt
	stored.UpdatedAt = letter.UpdatedAt
	s.letters[letter.Id] = stored
	r.u.record(func() { s.letters[prev.Id] = prev })
	return true, nil
}

type memEmailLogs struct{ u *memUoW }

func (r *memEmailLogs) Create(ctx context.Context, log *entity.EmailLog) error {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emailLogs = append(s.emailLogs, *log)
	return nil
}

func couponRecord(c entity.Coupon) record {
	return record{
		"id":            c.Id,
		"code":          c.Code,
		"contractor_id": c.ContractorId,
		"expires_at":    c.ExpiresAt,
		"current_uses":  c.CurrentUses,
		"max_uses":      c.MaxUses,
	}
}

type memCoupons struct{ u *memUoW }

func (r *memCoupons) Create(ctx context.Context, coupon *entity.Coupon) error {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.coupons {
		if c.Code == coupon.Code {
			return contract.ErrDuplicate
		}
	}
	s.coupons[coupon.Id] = *coupon
	id := coupon.Id
	r.u.record(func() { delete(s.coupons, id) })
	return nil
}

func (r *memCoupons) find(specs []specification.Specification) []*entity.Coupon {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.Coupon
	for _, c := range s.coupons {
		if matches(couponRecord(c), specs) {
			cp := c
			out = append(out, &cp)
		}
	}
	return arrange(out, func(c *entity.Coupon) time.Time { return c.CreatedAt }, specs)
}

func (r *memCoupons) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Coupon, error) {
	if res := r.find(specs); len(res) > 0 {
		return res[0], nil
	}
	return nil, nil
}

func (r *memCoupons) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Coupon, error) {
	return r.find(specs), nil
}

func (r *memCoupons) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.find(specs))), nil
}

func (r *memCoupons) Redeem(ctx context.Context, couponId uuid.UUID, now time.Time) (bool, error) {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.coupons[couponId]
	if !ok || !c.Redeemable(now) {
		return false, nil
	}
	prev := c
	c.CurrentUses++
	s.coupons[couponId] = c
	r.u.record(func() { s.coupons[couponId] = prev })
	return true, nil
}

type memSessions struct{ u *memUoW }

func (r *memSessions) Create(ctx context.Context, session *entity.PaymentSession) error {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Id] = *session
	id := session.Id
	r.u.record(func() { delete(s.sessions, id) })
	return nil
}

func (r *memSessions) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PaymentSession, error) {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.sessions {
		if matches(record{"id": p.Id, "user_id": p.UserId, "stripe_session_id": p.StripeSessionId, "status": string(p.Status)}, specs) {
			c := p
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memSessions) MarkCompleted(ctx context.Context, stripeSessionId string, at time.Time) error {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, p := range s.sessions {
		if p.StripeSessionId == stripeSessionId {
			prev := p
			p.Status = entity.PaymentSessionCompleted
			p.CompletedAt = &at
			s.sessions[id] = p
			r.u.record(func() { s.sessions[prev.Id] = prev })
		}
	}
	return nil
}

func (r *memSessions) MarkFailedForUser(ctx context.Context, userId uuid.UUID) (int64, error) {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, p := range s.sessions {
		if p.UserId == userId && p.Status == entity.PaymentSessionCreated {
			prev := p
			p.Status = entity.PaymentSessionFailed
			s.sessions[id] = p
			r.u.record(func() { s.sessions[prev.Id] = prev })
			n++
		}
	}
	return n, nil
}

func webhookRecord(w entity.WebhookLog) record {
	rec := record{"id": w.Id, "applied": w.Applied, "status": string(w.Status)}
	if w.EventId != nil {
		rec["event_id"] = *w.EventId
	}
	return rec
}

type memWebhookLogs struct{ u *memUoW }

func (r *memWebhookLogs) Create(ctx context.Context, log *entity.WebhookLog) error {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if log.Applied && log.EventId != nil {
		for _, w := range s.webhookLogs {
			if w.Applied && w.EventId != nil && *w.EventId == *log.EventId {
				return contract.ErrDuplicate
			}
		}
	}
	s.webhookLogs = append(s.webhookLogs, *log)
	n := len(s.webhookLogs) - 1
	r.u.record(func() { s.webhookLogs = append(s.webhookLogs[:n], s.webhookLogs[n+1:]...) })
	return nil
}

func (r *memWebhookLogs) find(specs []specification.Specification) []*entity.WebhookLog {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.WebhookLog
	for _, w := range s.webhookLogs {
		if matches(webhookRecord(w), specs) {
			c := w
			out = append(out, &c)
		}
	}
	return arrange(out, func(w *entity.WebhookLog) time.Time { return w.CreatedAt }, specs)
}

func (r *memWebhookLogs) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WebhookLog, error) {
	if res := r.find(specs); len(res) > 0 {
		return res[0], nil
	}
	return nil, nil
}

func (r *memWebhookLogs) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WebhookLog, error) {
	return r.find(specs), nil
}

// recordingPublisher captures emitted event types.
type recordingPublisher struct {
	mu    sync.Mutex
	types []string
}

func (p *recordingPublisher) Publish(ctx context.Context, eventType string, data map[string]interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.types = append(p.types, eventType)
}

func (p *recordingPublisher) published() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.types...)
}

type fakeLLM struct {
	mu       sync.Mutex
	content  string
	err      error
	calls    int
	messages []llm.Message
	options  *llm.Options
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.messages = history
	f.options = llm.NewOptions(options...)
	if f.err != nil {
		return "", f.err
	}
	return f.content, nil
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

type fakeMailer struct {
	err    error
	sent   []string
	onSend func()
}

func (m *fakeMailer) SendLetter(toEmail, title, content string) error {
	if m.onSend != nil {
		m.onSend()
	}
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, toEmail)
	return nil
}

type fakeGateway struct {
	customers   int
	customerErr error
	sessionErr  error
	lastReq     payment.CheckoutRequest
	event       *payment.Event
	verified    bool
	parseErr    error
}

func (g *fakeGateway) CreateCustomer(ctx context.Context, email, name string, metadata map[string]string) (string, error) {
	if g.customerErr != nil {
		return "", g.customerErr
	}
	g.customers++
	return fmt.Sprintf("cus_%d", g.customers), nil
}

func (g *fakeGateway) CreateCheckoutSession(ctx context.Context, req payment.CheckoutRequest) (*payment.CheckoutSession, error) {
	g.lastReq = req
	if g.sessionErr != nil {
		return nil, g.sessionErr
	}
	return &payment.CheckoutSession{Id: "cs_test_1", URL: "https://checkout.stripe.com/c/pay/cs_test_1"}, nil
}

func (g *fakeGateway) ParseEvent(payload []byte, signature string) (*payment.Event, bool, error) {
	if g.parseErr != nil {
		return nil, false, g.parseErr
	}
	return g.event, g.verified, nil
}
