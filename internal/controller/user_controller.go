package controller

import (
	"acadplan_backend/internal/model"
	"acadplan_backend/internal/service"
	"acadplan_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// @Summary List users, optionally filtered by role
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param role query string false "teacher, coordinator or admin"
// @Success 200 {object} util.Response
// @Router /users [get]
func (c *UserController) List(ctx *gin.Context) {
	role := model.UserRole(ctx.Query("role"))
	users, err := c.UserService.ListUsers(role)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, users)
}
