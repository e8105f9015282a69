package dto

type CreateColumnRequest struct {
	Title string `json:"title" binding:"required,min=3"`
}

type UpdateColumnRequest struct {
	Title *string `json:"title" binding:"omitempty,min=3"`
}

func (r *UpdateColumnRequest) Empty() bool {
	return r.Title == nil
}
