package domain

import "time"

type Severity string

const (
	SeverityInfo      Severity = "Info"
	SeverityImportant Severity = "Important"
	SeverityCritical  Severity = "Critical"
)

// Message 是面向全体员工的广播通知，创建后只允许追加确认人。
type Message struct {
	ID             string    `json:"id"`
	SenderID       string    `json:"senderId"`
	SenderName     string    `json:"senderName"`
	Text           string    `json:"text"`
	Severity       Severity  `json:"severity"`
	CreatedAt      time.Time `json:"createdAt"`
	AcknowledgedBy []string  `json:"acknowledgedBy"`
}
