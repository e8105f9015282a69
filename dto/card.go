package dto

import (
	"time"

	"taskpro/model"
)

// Deadlines may be scheduled at most one day ahead. The original product
// shipped with this window and clients depend on the rejection.
const deadlineGrace = 24 * time.Hour

type CreateCardRequest struct {
	Title       string `json:"title" binding:"required,min=3"`
	Description string `json:"description" binding:"required,min=3"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high none"`
	Deadline    int64  `json:"deadline" binding:"required"`
}

type UpdateCardRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=3"`
	Description *string `json:"description" binding:"omitempty,min=3"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high none"`
	Deadline    *int64  `json:"deadline" binding:"omitempty"`
}

func (r *UpdateCardRequest) Empty() bool {
	return r.Title == nil && r.Description == nil && r.Priority == nil && r.Deadline == nil
}

// ValidDeadline reports whether ms (unix milliseconds) falls inside the
// accepted window: on or after the 2024-01-01 floor and no later than one
// day from now.
func ValidDeadline(ms int64) bool {
	return ms >= model.DeadlineFloor && ms <= time.Now().Add(deadlineGrace).UnixMilli()
}
