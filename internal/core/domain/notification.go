package domain

// NotificationStatus is the delivery state reported by the sink.
type NotificationStatus string

const (
	NotificationPending NotificationStatus = "PENDING"
	NotificationSent    NotificationStatus = "SENT"
	NotificationFailed  NotificationStatus = "FAILED"
)

// Notification is the fire-and-forget message enqueued for a parish after a
// decree is published.
type Notification struct {
	DecreeID   string             `json:"decreeID"`
	DecreeType DecreeCategory     `json:"decreeType"`
	ParishID   string             `json:"parishID"`
	CreatedBy  string             `json:"createdBy"`
	Message    string             `json:"message"`
	Status     NotificationStatus `json:"status"`
}
