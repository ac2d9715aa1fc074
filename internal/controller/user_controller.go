package controller

import (
	"errors"

	"sprint_edu_backend/internal/service"
	"sprint_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// GetUsers godoc
// @Summary List all users (admin)
// @Tags users
// @Produce json
// @Success 200 {array} model.User
// @Failure 403 {object} util.ErrorResponse
// @Router /users [get]
func (c *UserController) GetUsers(ctx *gin.Context) {
	users, err := c.UserService.GetUsers()
	if err != nil {
		util.HandleDBError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

// UpdateRole godoc
// @Summary Change a user's role (admin)
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "user id"
// @Param body body UpdateRoleRequest true "role payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /users/{id}/role [put]
func (c *UserController) UpdateRole(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	var req UpdateRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.UserService.UpdateRole(id, req.Role); err != nil {
		if errors.Is(err, util.ErrInvalidRole) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.HandleDBError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"id": id, "role": req.Role})
}

// DeleteUser godoc
// @Summary Delete a user (admin)
// @Tags users
// @Produce json
// @Param id path int true "user id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} util.ErrorResponse
// @Router /users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	if err := c.UserService.DeleteUser(id); err != nil {
		util.HandleDBError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": id})
}
