package main

import "github.com/gin-gonic/gin"

func (s *Server) listReviews(c *gin.Context) {
	reviews, err := s.store.ListReviews(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, reviews)
}

func (s *Server) createReview(c *gin.Context) {
	var review Review
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	result, err := s.store.InsertReview(c.Request.Context(), review)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"success": true, "result": result})
}
