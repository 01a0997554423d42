package main

import (
	"errors"
	"math"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func (s *Server) createOrder(c *gin.Context) {
	var order Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	result, err := s.store.InsertOrder(c.Request.Context(), order)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"success": true, "result": result})
}

func (s *Server) listOrders(c *gin.Context) {
	userEmail := c.Query("userEmail")
	if userEmail != c.GetString("email") {
		c.JSON(403, gin.H{"message": "forbidden access"})
		return
	}
	orders, err := s.store.ListOrders(c.Request.Context(), userEmail)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, orders)
}

func (s *Server) getOrder(c *gin.Context) {
	order, err := s.store.GetOrder(c.Request.Context(), c.Param("orderId"), c.GetString("email"))
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(404, gin.H{"error": "not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, order)
}

type paymentResult struct {
	TransactionID string `json:"transactionId" binding:"required"`
}

func (s *Server) patchOrderPayment(c *gin.Context) {
	var req paymentResult
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	result, err := s.store.SetOrderPayment(c.Request.Context(), c.Param("orderId"), c.GetString("email"), req.TransactionID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"result": result})
}

func (s *Server) deleteOrder(c *gin.Context) {
	result, err := s.store.DeleteOrder(c.Request.Context(), c.Param("orderId"), c.GetString("email"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"deletedCount": result.DeletedCount})
}

type paymentIntentRequest struct {
	TotalPrice float64 `json:"totalPrice" binding:"required"`
}

func (s *Server) createPaymentIntent(c *gin.Context) {
	var req paymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	amount := int64(math.Round(req.TotalPrice * 100))
	clientSecret, err := s.payments.CreateIntent(c.Request.Context(), amount, "usd")
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"clientSecret": clientSecret})
}
