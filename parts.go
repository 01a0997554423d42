package main

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func (s *Server) listParts(c *gin.Context) {
	parts, err := s.store.ListParts(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, parts)
}

func (s *Server) getPart(c *gin.Context) {
	part, err := s.store.GetPart(c.Request.Context(), c.Param("partId"))
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(404, gin.H{"error": "not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, part)
}
