package events

const (
	UserRegistered        = "USER_REGISTERED"
	UserLogin             = "USER_LOGIN"
	ReferralRedeemed      = "REFERRAL_REDEEMED"
	CheckoutStarted       = "CHECKOUT_STARTED"
	SubscriptionActivated = "SUBSCRIPTION_ACTIVATED"
	PaymentFailed         = "PAYMENT_FAILED"
	LetterGenerated       = "LETTER_GENERATED"
	LetterSubmitted       = "LETTER_SUBMITTED"
	LetterStageChanged    = "LETTER_STAGE_CHANGED"
	LetterSent            = "LETTER_SENT"
	CouponCreated         = "COUPON_CREATED"
)
