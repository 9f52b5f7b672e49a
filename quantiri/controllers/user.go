// quantiri/controllers/user.go
package controllers

import (
	"context"
	"quantiri/quantiri/sources/psql/dao"
	"quantiri/quantiri/types"

	"github.com/google/uuid"
)

type UserController struct {
	dao *dao.UserDAO
}

func NewUserController(dao *dao.UserDAO) *UserController {
	return &UserController{dao: dao}
}

func (c *UserController) GetProfile(ctx context.Context, id uuid.UUID) (*types.UserResponse, error) {
	user, err := c.dao.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, types.ErrNotFound
	}
	return &types.UserResponse{
		ID:            user.ID.String(),
		Email:         user.Email,
		Name:          user.Name,
		EmailVerified: user.EmailVerified != nil,
	}, nil
}
