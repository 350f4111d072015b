package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Respond writes the standard success envelope: {"message": ..., "data": ...}.
func Respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, gin.H{
		"message": message,
		"data":    data,
	})
}

// Created writes the success envelope with a 201 status and a Location
// header pointing at the new resource.
func Created(c *gin.Context, message string, data any, location string) {
	if location != "" {
		c.Header("Location", location)
	}
	Respond(c, http.StatusCreated, message, data)
}

// Error writes the error contract: {"detail": message}.
func Error(c *gin.Context, status int, detail string) {
	c.JSON(status, gin.H{"detail": detail})
}
