package domain

import "time"

// Notification kinds emitted to the presentation collaborator. They are
// informational only; no core semantics depend on delivery.
const (
	NotifyItemAdded        = "item-added"
	NotifySignedIn         = "signed-in"
	NotifySignedOut        = "signed-out"
	NotifyPaymentSucceeded = "payment-succeeded"
	NotifyAssistantReply   = "assistant-reply"
)

type Notification struct {
	Kind    string    `json:"kind"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}
