package notification

import (
	"context"
	"fmt"
	"log"
)

// Notifier adapts the hub to the notification interfaces the booking and
// floormap services depend on. Events to users without a live socket are
// logged and dropped.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) NotifySuccess(_ context.Context, userID int64, message string) error {
	n.push(userID, NewEvent(SeveritySuccess, message, "booking"))
	return nil
}

func (n *Notifier) NotifyError(_ context.Context, userID int64, message string) error {
	n.push(userID, NewEvent(SeverityError, message, "booking"))
	return nil
}

func (n *Notifier) NotifyInfo(_ context.Context, userID int64, message string) error {
	n.push(userID, NewEvent(SeverityInfo, message, "booking"))
	return nil
}

// NotifyFetchDegraded reports a reconciliation fetch that failed and was
// degraded to an empty contribution.
func (n *Notifier) NotifyFetchDegraded(_ context.Context, userID int64, source string, err error) error {
	msg := fmt.Sprintf("Some floor map data could not be loaded (%s)", source)
	log.Printf("reconciliation degraded for user %d: %s: %v", userID, source, err)
	n.push(userID, NewEvent(SeverityWarning, msg, "floormap"))
	return nil
}

func (n *Notifier) push(userID int64, event Event) {
	if !n.hub.Push(userID, event) {
		log.Printf("notification dropped (no socket): user=%d severity=%s msg=%q", userID, event.Severity, event.Message)
	}
}
