package main

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func (s *Server) upsertProfile(c *gin.Context) {
	email := c.Param("email")
	var profile Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	result, err := s.store.UpsertProfile(c.Request.Context(), email, profile)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"result": result})
}

func (s *Server) getProfile(c *gin.Context) {
	email := c.Param("email")
	if email != c.GetString("email") {
		c.JSON(403, gin.H{"message": "forbidden access"})
		return
	}
	profile, err := s.store.GetProfile(c.Request.Context(), email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(404, gin.H{"error": "not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, profile)
}
