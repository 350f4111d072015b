package controllers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/erickhangati/JobApplicationApp/auth"
	"github.com/erickhangati/JobApplicationApp/middlewares"
)

// NewRouter wires the controllers onto a gin engine. The database handle
// and token manager are constructed by the caller and injected here.
func NewRouter(db *gorm.DB, tokens *auth.TokenManager) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:    []string{"Authorization", "Content-Type"},
	}))

	authCtl := NewAuthController(db, tokens)
	userCtl := NewUserController(db)
	jobCtl := NewJobController(db)

	// Public routes
	r.POST("/auth/login", authCtl.Login)
	r.POST("/users/register", userCtl.Register)
	r.GET("/jobs", jobCtl.ListJobs)
	r.GET("/jobs/:id", jobCtl.GetJob)

	// Bearer-token protected routes
	protected := r.Group("/")
	protected.Use(middlewares.AuthMiddleware(tokens))
	protected.GET("/users/me", userCtl.Profile)
	protected.PUT("/users/me", userCtl.UpdateProfile)
	protected.PUT("/users/me/change-password", userCtl.ChangePassword)
	protected.GET("/users", userCtl.ListUsers)
	protected.DELETE("/users/:id", userCtl.DeleteUser)
	protected.POST("/jobs", jobCtl.CreateJob)
	protected.PUT("/jobs/:id", jobCtl.UpdateJob)
	protected.DELETE("/jobs/:id", jobCtl.DeleteJob)
	protected.POST("/jobs/:id/apply", jobCtl.ApplyJob)
	protected.GET("/jobs/applied", jobCtl.AppliedJobs)

	return r
}
