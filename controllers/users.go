package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/erickhangati/JobApplicationApp/auth"
	"github.com/erickhangati/JobApplicationApp/models"
	"github.com/erickhangati/JobApplicationApp/utils"
)

// UserController handles registration, profile self-service and the
// admin-only user operations.
type UserController struct {
	db *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{db: db}
}

// Register creates a new user. Email and username must be unique; the
// password is stored hashed and never returned.
func (uc *UserController) Register(c *gin.Context) {
	var req models.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	var existing models.User
	err := uc.db.Where("email = ? OR username = ?", req.Email, req.Username).
		First(&existing).Error
	if err == nil {
		utils.Error(c, http.StatusBadRequest, "Email or username already registered.")
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Error hashing password")
		return
	}

	user := models.User{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashed,
		Role:           models.Role(req.Role),
	}

	if err := uc.db.Create(&user).Error; err != nil {
		utils.Error(c, http.StatusBadRequest, "Email or username already registered.")
		return
	}

	utils.Created(c, "User successfully registered.", user.Public(),
		fmt.Sprintf("/users/%d", user.ID))
}

// Profile returns the authenticated user's profile.
func (uc *UserController) Profile(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}

	var user models.User
	if err := uc.db.First(&user, claims.UserID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "User not found")
		return
	}

	utils.Respond(c, http.StatusOK, "User profile retrieved successfully", user.Public())
}

// UpdateProfile overwrites the authenticated user's profile fields.
func (uc *UserController) UpdateProfile(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}

	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	var user models.User
	if err := uc.db.First(&user, claims.UserID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "User not found")
		return
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Username = req.Username
	user.Email = req.Email
	user.Role = models.Role(req.Role)

	if err := uc.db.Save(&user).Error; err != nil {
		utils.Error(c, http.StatusBadRequest, "Email or username already registered.")
		return
	}

	c.Status(http.StatusNoContent)
}

// ChangePassword verifies the old password and the confirmation before
// storing a new hash.
func (uc *UserController) ChangePassword(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}

	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	var user models.User
	if err := uc.db.First(&user, claims.UserID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "User not found")
		return
	}

	if !auth.VerifyPassword(req.OldPassword, user.HashedPassword) {
		utils.Error(c, http.StatusBadRequest, "Wrong old password")
		return
	}
	if req.NewPassword != req.ConfirmPassword {
		utils.Error(c, http.StatusBadRequest, "Passwords do not match")
		return
	}

	hashed, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Error hashing password")
		return
	}
	user.HashedPassword = hashed

	if err := uc.db.Save(&user).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to update password")
		return
	}

	c.Status(http.StatusNoContent)
}

// ListUsers returns all users. Admin only.
func (uc *UserController) ListUsers(c *gin.Context) {
	if _, ok := requireAdmin(c, uc.db); !ok {
		return
	}

	var users []models.User
	if err := uc.db.Order("id").Find(&users).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Unable to fetch users")
		return
	}

	data := make([]map[string]any, 0, len(users))
	for i := range users {
		data = append(data, users[i].Public())
	}

	utils.Respond(c, http.StatusOK, "Users retrieved successfully", data)
}

// DeleteUser removes a user account and all of its applications. Admin
// only; self-deletion is forbidden.
func (uc *UserController) DeleteUser(c *gin.Context) {
	acting, ok := requireAdmin(c, uc.db)
	if !ok {
		return
	}

	targetID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if targetID == acting.ID {
		utils.Error(c, http.StatusForbidden, "You cannot delete your own account")
		return
	}

	var target models.User
	if err := uc.db.First(&target, targetID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "User not found")
		return
	}

	err := uc.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", target.ID).
			Delete(&models.AppliedJob{}).Error; err != nil {
			return err
		}
		return tx.Delete(&target).Error
	})
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to delete user account")
		return
	}

	c.Status(http.StatusNoContent)
}
