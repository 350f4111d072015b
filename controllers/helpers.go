package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/erickhangati/JobApplicationApp/auth"
	"github.com/erickhangati/JobApplicationApp/middlewares"
	"github.com/erickhangati/JobApplicationApp/models"
	"github.com/erickhangati/JobApplicationApp/utils"
)

// currentClaims pulls the authenticated claims from the context, writing a
// 401 when the request somehow reached a protected handler without them.
func currentClaims(c *gin.Context) (*auth.Claims, bool) {
	claims := middlewares.ClaimsFrom(c)
	if claims == nil {
		utils.Error(c, http.StatusUnauthorized, "Not authenticated")
		return nil, false
	}
	return claims, true
}

// requireAdmin re-fetches the acting user by the claim's id and compares
// the persisted role. The token's embedded role is never trusted for
// privileged operations; the row may have changed since issuance.
func requireAdmin(c *gin.Context, db *gorm.DB) (*models.User, bool) {
	claims, ok := currentClaims(c)
	if !ok {
		return nil, false
	}

	var user models.User
	if err := db.First(&user, claims.UserID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "User not found")
		return nil, false
	}
	if user.Role != models.RoleAdmin {
		utils.Error(c, http.StatusForbidden, "You do not have permission to perform this action")
		return nil, false
	}
	return &user, true
}

// pathID parses a positive integer path parameter, writing a 422 on
// malformed input.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		utils.Error(c, http.StatusUnprocessableEntity, "Path parameter must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

// totalPages is ceil(count / pageSize).
func totalPages(count int64, pageSize int) int64 {
	return (count + int64(pageSize) - 1) / int64(pageSize)
}
