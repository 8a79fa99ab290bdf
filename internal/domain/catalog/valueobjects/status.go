package valueobjects

import "fmt"

// Status is the moderation status controlling public visibility of a tool.
type Status string

const (
	StatusPending  Status = "pending"
	StatusLive     Status = "live"
	StatusRejected Status = "rejected"
)

var validStatuses = map[Status]bool{
	StatusPending:  true,
	StatusLive:     true,
	StatusRejected: true,
}

// Moderation only moves pending submissions; live and rejected are terminal.
var allowedTransitions = map[Status][]Status{
	StatusPending:  {StatusLive, StatusRejected},
	StatusLive:     {},
	StatusRejected: {},
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !validStatuses[st] {
		return "", fmt.Errorf("invalid tool status: %s", s)
	}
	return st, nil
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func (s Status) IsLive() bool {
	return s == StatusLive
}

func (s Status) IsPending() bool {
	return s == StatusPending
}

func (s Status) String() string {
	return string(s)
}
