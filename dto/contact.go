package dto

type CreateContactRequest struct {
	Name  string `json:"name" binding:"required,min=3,max=30"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`
}

type UpdateContactRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=3,max=30"`
	Email *string `json:"email" binding:"omitempty,email"`
	Phone *string `json:"phone" binding:"omitempty"`
}

func (r *UpdateContactRequest) Empty() bool {
	return r.Name == nil && r.Email == nil && r.Phone == nil
}

type UpdateFavoriteRequest struct {
	Favorite *bool `json:"favorite" binding:"required"`
}
