package main

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func (s *Server) getUser(c *gin.Context) {
	user, err := s.store.GetUser(c.Request.Context(), c.Param("email"))
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(404, gin.H{"error": "not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, user)
}

func (s *Server) listUsers(c *gin.Context) {
	users, err := s.store.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, users)
}

// loginRequest deliberately has no role field: role is only ever
// written through the admin grant route, never through the public
// login upsert.
type loginRequest struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name"`
}

// loginUser upserts the user by the path email and issues a fresh
// token. The derived profile write is best-effort: a failure is logged
// and the login still succeeds, since profile data is denormalized,
// not authoritative.
func (s *Server) loginUser(c *gin.Context) {
	email := c.Param("email")
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	user := User{Email: email, Name: req.Name}
	result, err := s.store.UpsertUser(c.Request.Context(), email, user)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	token, err := signToken(s.secret, email)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if s.features.ProfileRoutes {
		profile := Profile{Email: email, Name: user.Name}
		if _, err := s.store.UpsertProfile(c.Request.Context(), email, profile); err != nil {
			log.Printf("profile upsert for %s failed: %v", email, err)
		}
	}
	c.JSON(200, gin.H{"result": result, "token": token})
}

func (s *Server) getAdmin(c *gin.Context) {
	user, err := s.store.GetUser(c.Request.Context(), c.Param("email"))
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(200, gin.H{"admin": false})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"admin": user.Role == "admin"})
}

func (s *Server) makeAdmin(c *gin.Context) {
	result, err := s.store.SetUserRole(c.Request.Context(), c.Param("email"), "admin")
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"result": result})
}
