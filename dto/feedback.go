package dto

type FeedbackRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Comment string `json:"comment" binding:"required"`
}
