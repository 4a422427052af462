package booking

import "time"

// Status is the booking lifecycle state. The legal edges are
// pending -> accepted, pending -> rejected, accepted -> completed;
// rejected and completed are terminal.
type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

// ParseTargetStatus validates a transition target from client input. pending
// is the creation state, never a target.
func ParseTargetStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusAccepted, StatusRejected, StatusCompleted:
		return Status(s), true
	default:
		return "", false
	}
}

// Terminal reports whether no further transition is permitted from s.
func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusCompleted
}

// CanTransitionTo reports whether target is a legal successor of s.
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusAccepted || target == StatusRejected
	case StatusAccepted:
		return target == StatusCompleted
	default:
		return false
	}
}

// Booking is one session request between a sender and a receiver for one
// named skill. Duplicates across the same pair/skill are permitted.
type Booking struct {
	ID          int64      `db:"id"`
	SenderID    int64      `db:"sender_id"`
	ReceiverID  int64      `db:"receiver_id"`
	Skill       string     `db:"skill"`
	SessionDate *time.Time `db:"session_date"`
	Notes       string     `db:"notes"`
	Status      Status     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

// IsParty reports whether userID is the sender or the receiver.
func (b *Booking) IsParty(userID int64) bool {
	return b != nil && (b.SenderID == userID || b.ReceiverID == userID)
}

// View is a booking enriched with both parties' display names for listings.
type View struct {
	Booking
	SenderUsername   string
	ReceiverUsername string
}
