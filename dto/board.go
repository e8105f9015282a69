package dto

type CreateBoardRequest struct {
	Title      string `json:"title" binding:"required,min=3"`
	Icon       string `json:"icon" binding:"omitempty"`
	Background string `json:"background" binding:"omitempty"`
}

type UpdateBoardRequest struct {
	Title      *string `json:"title" binding:"omitempty,min=3"`
	Icon       *string `json:"icon" binding:"omitempty"`
	Background *string `json:"background" binding:"omitempty"`
}

func (r *UpdateBoardRequest) Empty() bool {
	return r.Title == nil && r.Icon == nil && r.Background == nil
}
