package dto

type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=8"`
}

func (r *UpdateUserRequest) Empty() bool {
	return r.Name == nil && r.Email == nil && r.Password == nil
}

type UpdateThemeRequest struct {
	Theme string `json:"theme" binding:"required,oneof=dark light violet"`
}
