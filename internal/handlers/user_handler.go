package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/propease/propease-api/internal/middleware"
	"github.com/propease/propease-api/internal/models"
	"github.com/propease/propease-api/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// @Summary List Users
// @Description Get a paginated list of staff accounts (Admin)
// @Tags Users
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param search_term query string false "Search by name or email"
// @Param role query string false "ADMIN or EMPLOYEE"
// @Param status query string false "active (default), inactive or all"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) Index(c *gin.Context) {
	query := listQuery(c)
	query.Filters["role"] = c.Query("role")

	status := c.Query("status")
	if status == "" {
		status = models.StatusActive
	} else if status == "all" {
		status = ""
	}
	query.Filters["status"] = status

	users, total, err := h.userService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, users[i].ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{"users": responses, "pagination": pagination(query, total)})
}

// @Summary Get User
// @Tags Users
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} models.UserResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /users/{user_id} [get]
func (h *UserHandler) Show(c *gin.Context) {
	id, ok := paramID(c, "user_id")
	if !ok {
		return
	}
	user, err := h.userService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user.ToResponse()})
}

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"required,role"`
}

// @Summary Create User
// @Description Create a staff account (Admin). A welcome email is sent in the background.
// @Tags Users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "User Data"
// @Success 201 {object} models.UserResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.Create(c.Request.Context(), services.UserInput{
		Email:    req.Email,
		FullName: req.FullName,
		Phone:    req.Phone,
		Role:     req.Role,
		Password: req.Password,
	}, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user.ToResponse(), "message": "User created successfully"})
}

// @Summary Update User
// @Description Update name, phone, email and role of a staff account (Admin)
// @Tags Users
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param request body services.UserInput true "User Fields"
// @Success 200 {object} models.UserResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /users/{user_id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "user_id")
	if !ok {
		return
	}
	var in services.UserInput
	if err := BindNestedOrFlat(c, "user", &in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.userService.Update(c.Request.Context(), id, in, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.ToResponse(), "message": "User updated successfully"})
}

// @Summary Delete User
// @Description Soft delete a staff account (Admin)
// @Tags Users
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /users/{user_id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "user_id")
	if !ok {
		return
	}
	if err := h.userService.Delete(c.Request.Context(), id, middleware.GetActor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// @Summary Toggle User Status
// @Description Enable or disable a staff account (Admin)
// @Tags Users
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} models.UserResponse
// @Security BearerAuth
// @Router /users/{user_id}/toggle_status [put]
func (h *UserHandler) ToggleStatus(c *gin.Context) {
	id, ok := paramID(c, "user_id")
	if !ok {
		return
	}
	user, err := h.userService.ToggleStatus(c.Request.Context(), id, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user.ToResponse(), "message": "Status updated"})
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

// @Summary Change Password
// @Description Change the current user's password
// @Tags Users
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param request body ChangePasswordRequest true "Password Data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /users/{user_id}/change_password [patch]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	id, ok := paramID(c, "user_id")
	if !ok {
		return
	}
	if id != middleware.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only change your own password"})
		return
	}
	var req ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), id, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}

// @Summary Reset Password
// @Description Sets a random password, revokes the user's sessions and returns the new password (Admin)
// @Tags Users
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /users/{user_id}/reset_password [post]
func (h *UserHandler) ResetPassword(c *gin.Context) {
	id, ok := paramID(c, "user_id")
	if !ok {
		return
	}
	password, err := h.userService.ResetPassword(c.Request.Context(), id, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"temporary_password": password, "message": "Password reset"})
}

type AssignProjectsRequest struct {
	ProjectIDs []uint `json:"project_ids" binding:"required"`
}

// @Summary Assign Projects
// @Description Replaces the projects an employee may work on (Admin)
// @Tags Users
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param request body AssignProjectsRequest true "Project ids"
// @Success 200 {object} models.UserResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /users/{user_id}/projects [put]
func (h *UserHandler) AssignProjects(c *gin.Context) {
	id, ok := paramID(c, "user_id")
	if !ok {
		return
	}
	var req AssignProjectsRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.userService.AssignProjects(c.Request.Context(), id, req.ProjectIDs, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user.ToResponse(), "message": "Projects assigned"})
}
