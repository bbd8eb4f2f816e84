package dto

import (
	"hotel/internal/domains/user/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/timezone"
)

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Active    bool   `json:"active"`
	LastLogin string `json:"last_login,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Role = model.Role
	r.Active = model.Active

	if model.LastLogin != nil {
		r.LastLogin = timezone.Format(*model.LastLogin, constant.DateFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}
