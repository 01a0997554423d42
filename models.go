// models.go

package main

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is upserted by email on every login; Role is empty or "admin".
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email string             `bson:"email" json:"email" binding:"required"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

// Part documents are loaded by an external admin process; this service
// only reads them.
type Part struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Image        string             `bson:"img,omitempty" json:"img,omitempty"`
	PricePerUnit float64            `bson:"pricePerUnit" json:"pricePerUnit"`
	MinOrderQty  int                `bson:"minOrderQuantity" json:"minOrderQuantity"`
	AvailableQty int                `bson:"availableQuantity" json:"availableQuantity"`
}

type Review struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name    string             `bson:"name,omitempty" json:"name,omitempty"`
	Email   string             `bson:"email" json:"email" binding:"required"`
	Rating  int                `bson:"rating" json:"rating" binding:"required"`
	Comment string             `bson:"comment,omitempty" json:"comment,omitempty"`
}

type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserEmail     string             `bson:"userEmail" json:"userEmail" binding:"required"`
	PartID        string             `bson:"partId,omitempty" json:"partId,omitempty"`
	PartName      string             `bson:"partName,omitempty" json:"partName,omitempty"`
	Quantity      int                `bson:"quantity,omitempty" json:"quantity,omitempty"`
	TotalPrice    float64            `bson:"totalPrice,omitempty" json:"totalPrice,omitempty"`
	Address       string             `bson:"address,omitempty" json:"address,omitempty"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Paid          bool               `bson:"paid,omitempty" json:"paid"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}

// Profile is denormalized, best-effort data keyed by email; login
// refreshes the name/email projection, PUT /profile/:email replaces the
// rest.
type Profile struct {
	Email     string `bson:"email" json:"email" binding:"required"`
	Name      string `bson:"name,omitempty" json:"name,omitempty"`
	Phone     string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address   string `bson:"address,omitempty" json:"address,omitempty"`
	Education string `bson:"education,omitempty" json:"education,omitempty"`
	LinkedIn  string `bson:"linkedIn,omitempty" json:"linkedIn,omitempty"`
	ImageURL  string `bson:"img,omitempty" json:"img,omitempty"`
}
