package domain

// Status is the lifecycle state of a campaign.
type Status string

const (
	StatusDraft           Status = "draft"
	StatusPendingApproval Status = "pending_approval"
	StatusApproved        Status = "approved"
	StatusRejected        Status = "rejected"
	StatusActive          Status = "active"
	StatusPaused          Status = "paused"
	StatusCompleted       Status = "completed"
	StatusCancelled       Status = "cancelled"
	StatusDeleted         Status = "deleted"
)

// transitions lists the statuses reachable from each status. Deleted and
// cancelled are soft-delete states and have no way out.
var transitions = map[Status][]Status{
	StatusDraft:           {StatusPendingApproval, StatusDeleted},
	StatusPendingApproval: {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved:        {StatusActive, StatusCancelled},
	StatusRejected:        {StatusDraft, StatusDeleted},
	StatusActive:          {StatusPaused, StatusCompleted, StatusCancelled},
	StatusPaused:          {StatusActive, StatusCompleted, StatusCancelled},
	StatusCompleted:       {StatusDeleted},
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPendingApproval, StatusApproved, StatusRejected,
		StatusActive, StatusPaused, StatusCompleted, StatusCancelled, StatusDeleted:
		return true
	}
	return false
}

// CanTransition reports whether a campaign in status from may move to to.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// RemovalStatus returns the soft-delete status used when a brand removes a
// campaign currently in status s. Campaigns under review or live are
// cancelled; the rest are deleted.
func RemovalStatus(s Status) Status {
	if CanTransition(s, StatusCancelled) {
		return StatusCancelled
	}
	return StatusDeleted
}
