// internal/workers/reporting/send-notification/models.go
package sendnotification

type Input struct {
	BrandName        string                 `json:"brandName"`
	NotificationType string                 `json:"notificationType"`
	ReportID         string                 `json:"reportId,omitempty"`
	Priority         string                 `json:"priority,omitempty"`
	Metadata         map[string]interface{} `json:"metadata,omitempty"`
}

type Output struct {
	NotificationID string `json:"notificationId"`
	Status         string `json:"status"` // "sent", "failed", "disabled"
	SentAt         string `json:"sentAt"` // ISO 8601
}

// Notification types
const (
	TypeReportReady  = "report_ready"
	TypeTopPickAlert = "top_pick_alert"
)

// Statuses
const (
	StatusSent     = "sent"
	StatusFailed   = "failed"
	StatusDisabled = "disabled"
)
