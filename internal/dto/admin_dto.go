package dto

import "legal-letter-be/internal/constant"

type AdminUsersResponse struct {
	Users []UserDTO `json:"users"`
}

type AdminLettersResponse struct {
	Letters []LetterDTO `json:"letters"`
}

type AdminStatsResponse struct {
	TotalUsers      int64            `json:"total_users"`
	Contractors     int64            `json:"contractors"`
	Admins          int64            `json:"admins"`
	PaidSubscribers int64            `json:"paid_subscribers"`
	TotalLetters    int64            `json:"total_letters"`
	LettersByStatus map[string]int64 `json:"letters_by_status"`
}

type WebhookLogsResponse struct {
	Logs []WebhookLogDTO `json:"logs"`
}

type DocumentTypesResponse struct {
	Categories []constant.DocumentCategory `json:"categories"`
}
