package lifecycle

import (
	"github.com/expohub/expohub/internal/application/lifecycle/usecases"
)

type ReasonRequest struct {
	Reason string `json:"reason" binding:"max=1000"`
}

type SuspendRequest struct {
	Reason string `json:"reason" binding:"required,max=1000"`
}

type ModerateRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approve reject request_changes"`
	Notes    string `json:"notes" binding:"max=2000"`
	Reason   string `json:"reason" binding:"max=1000"`
}

type BulkModerateRequest struct {
	IDs      []uint `json:"ids" binding:"required,min=1,max=200,dive,gt=0"`
	Decision string `json:"decision" binding:"required,oneof=approve reject request_changes"`
	Notes    string `json:"notes" binding:"max=2000"`
	Reason   string `json:"reason" binding:"max=1000"`
}

// TransitionResponse reports one status change. Changed is false when the
// entity already had the requested status.
type TransitionResponse struct {
	EntityType string `json:"entity_type"`
	EntityID   uint   `json:"entity_id"`
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
	Changed    bool   `json:"changed"`
}

func toTransitionResponse(r *usecases.TransitionResult) TransitionResponse {
	return TransitionResponse{
		EntityType: r.Ref.Kind().String(),
		EntityID:   r.Ref.ID(),
		FromStatus: r.FromStatus.String(),
		ToStatus:   r.ToStatus.String(),
		Changed:    r.Changed,
	}
}
