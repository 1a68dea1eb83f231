package review

import (
	appcommon "github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/application/review/usecases"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	"github.com/expohub/expohub/internal/domain/review"
	"github.com/expohub/expohub/internal/domain/user"
)

type SubmitReviewRequest struct {
	Rating  int    `json:"rating" binding:"rating"`
	Quality *int   `json:"quality_rating,omitempty" binding:"omitempty,rating"`
	Service *int   `json:"service_rating,omitempty" binding:"omitempty,rating"`
	Price   *int   `json:"price_rating,omitempty" binding:"omitempty,rating"`
	Title   string `json:"title" binding:"max=200"`
	Text    string `json:"text" binding:"required,max=5000"`
	Pros    string `json:"pros" binding:"max=2000"`
	Cons    string `json:"cons" binding:"max=2000"`
}

func (r *SubmitReviewRequest) ToCommand(actor user.Principal, target lifecycle.EntityRef, meta appcommon.RequestMeta) usecases.SubmitReviewCommand {
	return usecases.SubmitReviewCommand{
		Actor:  actor,
		Target: target,
		Content: review.Content{
			Rating:  r.Rating,
			Quality: r.Quality,
			Service: r.Service,
			Price:   r.Price,
			Title:   r.Title,
			Text:    r.Text,
			Pros:    r.Pros,
			Cons:    r.Cons,
		},
		Meta: meta,
	}
}

type VoteRequest struct {
	Helpful *bool `json:"helpful" binding:"required"`
}

type ModerateReviewRequest struct {
	Action string `json:"action" binding:"required,oneof=approve reject unpublish"`
}
