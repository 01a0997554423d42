package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

const tokenLifetime = time.Hour

type JWTClaims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

func signToken(secret []byte, email string) (string, error) {
	claims := JWTClaims{
		Email: email,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(tokenLifetime).Unix(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// verifyJWT rejects requests without an Authorization header outright
// (401) and requests whose bearer token fails signature or expiry
// checks (403). On success the email claim is attached to the request
// context; the store is never touched.
func verifyJWT(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(401, gin.H{"message": "unauthorized access"})
			return
		}
		fields := strings.Fields(authHeader)
		if len(fields) != 2 || fields[0] != "Bearer" {
			c.AbortWithStatusJSON(403, gin.H{"message": "forbidden access"})
			return
		}
		token, err := jwt.ParseWithClaims(fields[1], &JWTClaims{}, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(403, gin.H{"message": "forbidden access"})
			return
		}
		claims := token.Claims.(*JWTClaims)
		c.Set("email", claims.Email)
		c.Next()
	}
}

// requireAdmin composes after verifyJWT: one user lookup, then a role
// check against the caller's own document.
func requireAdmin(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := store.GetUser(c.Request.Context(), c.GetString("email"))
		if errors.Is(err, mongo.ErrNoDocuments) || (err == nil && user.Role != "admin") {
			c.AbortWithStatusJSON(403, gin.H{"message": "forbidden access"})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Next()
	}
}
