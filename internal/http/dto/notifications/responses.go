package notifications

import "time"

// NotificationResponse is the body for the send endpoints. The endpoints
// always answer 200: failures surface in the Success flag, never as 5xx.
type NotificationResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthResponse is the body for GET /notifications/health.
type HealthResponse struct {
	Status       string    `json:"status"`        // healthy | degraded
	EmailService string    `json:"email_service"` // connected | disconnected
	Timestamp    time.Time `json:"timestamp"`
}
