package valueobjects

import "fmt"

// Decision is a moderator's verdict on a pending entity.
type Decision string

const (
	DecisionApprove        Decision = "approve"
	DecisionReject         Decision = "reject"
	DecisionRequestChanges Decision = "request_changes"
)

var decisionTargets = map[Decision]Status{
	DecisionApprove:        StatusApproved,
	DecisionReject:         StatusRejected,
	DecisionRequestChanges: StatusRequiresChanges,
}

func (d Decision) IsValid() bool {
	_, ok := decisionTargets[d]
	return ok
}

func (d Decision) TargetStatus() Status {
	return decisionTargets[d]
}

func (d Decision) String() string {
	return string(d)
}

func NewDecision(s string) (Decision, error) {
	d := Decision(s)
	if !d.IsValid() {
		return "", fmt.Errorf("invalid moderation decision: %s", s)
	}
	return d, nil
}
