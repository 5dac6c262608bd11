package http

import (
	"time"

	"storefront/internal/model"
	"storefront/internal/user"
)

type createReq struct {
	Email string `json:"email" binding:"required,email,max=320"`
	Name  string `json:"name"  binding:"required,min=1,max=255"`
}

func (r createReq) toInput() user.CreateInput {
	return user.CreateInput{
		Email: r.Email,
		Name:  r.Name,
	}
}

type detailReq struct {
	ID int64 `uri:"id" binding:"required,gt=0"`
}

type userResp struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}
