package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/erickhangati/JobApplicationApp/auth"
	"github.com/erickhangati/JobApplicationApp/models"
	"github.com/erickhangati/JobApplicationApp/utils"
)

// AuthController handles login and token issuance.
type AuthController struct {
	db     *gorm.DB
	tokens *auth.TokenManager
}

func NewAuthController(db *gorm.DB, tokens *auth.TokenManager) *AuthController {
	return &AuthController{db: db, tokens: tokens}
}

// Login authenticates a user with form-encoded credentials and returns a
// bearer access token.
func (ac *AuthController) Login(c *gin.Context) {
	var form models.LoginRequest
	if err := c.ShouldBind(&form); err != nil {
		utils.Error(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	var user models.User
	if err := ac.db.Where("username = ?", form.Username).First(&user).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "User not found")
		return
	}

	if !auth.VerifyPassword(form.Password, user.HashedPassword) {
		utils.Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := ac.tokens.Create(user.ID, user.Username, string(user.Role))
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Error generating token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}
