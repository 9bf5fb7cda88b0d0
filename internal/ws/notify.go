package ws

import (
	"encoding/json"
	"time"

	"job-portal/internal/domain/application"

	"github.com/google/uuid"
)

type StatusEvent struct {
	Type          string    `json:"type"`
	ApplicationID uuid.UUID `json:"applicationId"`
	JobTitle      string    `json:"jobTitle"`
	Status        string    `json:"status"`
	Timestamp     string    `json:"timestamp"`
}

// Notifier adapts the hub to the application usecase's StatusNotifier.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) NotifyStatusChanged(applicantID, applicationID uuid.UUID, jobTitle string, status application.Status) {
	if n == nil || n.hub == nil {
		return
	}

	evt := StatusEvent{
		Type:          "application_status",
		ApplicationID: applicationID,
		JobTitle:      jobTitle,
		Status:        string(status),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.SendToUser(applicantID, b)
}
