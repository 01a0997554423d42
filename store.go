package main

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store is the single long-lived handle to the document store. Every
// handler performs exactly one Store call; results are the driver's raw
// acknowledgements so responses can mirror them.
type Store interface {
	ListParts(ctx context.Context) ([]Part, error)
	GetPart(ctx context.Context, id string) (*Part, error)

	ListReviews(ctx context.Context) ([]Review, error)
	InsertReview(ctx context.Context, review Review) (*mongo.InsertOneResult, error)

	GetUser(ctx context.Context, email string) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
	UpsertUser(ctx context.Context, email string, user User) (*mongo.UpdateResult, error)
	SetUserRole(ctx context.Context, email, role string) (*mongo.UpdateResult, error)

	InsertOrder(ctx context.Context, order Order) (*mongo.InsertOneResult, error)
	ListOrders(ctx context.Context, userEmail string) ([]Order, error)
	GetOrder(ctx context.Context, id, userEmail string) (*Order, error)
	SetOrderPayment(ctx context.Context, id, userEmail, transactionID string) (*mongo.UpdateResult, error)
	DeleteOrder(ctx context.Context, id, userEmail string) (*mongo.DeleteResult, error)

	UpsertProfile(ctx context.Context, email string, profile Profile) (*mongo.UpdateResult, error)
	GetProfile(ctx context.Context, email string) (*Profile, error)

	Close(ctx context.Context) error
}

type mongoStore struct {
	client   *mongo.Client
	users    *mongo.Collection
	parts    *mongo.Collection
	reviews  *mongo.Collection
	orders   *mongo.Collection
	profiles *mongo.Collection
}

func newMongoStore(db *mongo.Database) *mongoStore {
	return &mongoStore{
		client:   db.Client(),
		users:    db.Collection("users"),
		parts:    db.Collection("parts"),
		reviews:  db.Collection("reviews"),
		orders:   db.Collection("orders"),
		profiles: db.Collection("profiles"),
	}
}

func (m *mongoStore) ListParts(ctx context.Context) ([]Part, error) {
	cur, err := m.parts.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var parts []Part
	if err := cur.All(ctx, &parts); err != nil {
		return nil, err
	}
	return parts, nil
}

func (m *mongoStore) GetPart(ctx context.Context, id string) (*Part, error) {
	oid, _ := primitive.ObjectIDFromHex(id)
	var part Part
	if err := m.parts.FindOne(ctx, bson.M{"_id": oid}).Decode(&part); err != nil {
		return nil, err
	}
	return &part, nil
}

func (m *mongoStore) ListReviews(ctx context.Context) ([]Review, error) {
	cur, err := m.reviews.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var reviews []Review
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (m *mongoStore) InsertReview(ctx context.Context, review Review) (*mongo.InsertOneResult, error) {
	return m.reviews.InsertOne(ctx, review)
}

func (m *mongoStore) GetUser(ctx context.Context, email string) (*User, error) {
	var user User
	if err := m.users.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (m *mongoStore) ListUsers(ctx context.Context) ([]User, error) {
	cur, err := m.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var users []User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (m *mongoStore) UpsertUser(ctx context.Context, email string, user User) (*mongo.UpdateResult, error) {
	user.Email = email
	return m.users.UpdateOne(ctx, bson.M{"email": email},
		bson.M{"$set": user}, options.Update().SetUpsert(true))
}

func (m *mongoStore) SetUserRole(ctx context.Context, email, role string) (*mongo.UpdateResult, error) {
	return m.users.UpdateOne(ctx, bson.M{"email": email},
		bson.M{"$set": bson.M{"role": role}})
}

func (m *mongoStore) InsertOrder(ctx context.Context, order Order) (*mongo.InsertOneResult, error) {
	return m.orders.InsertOne(ctx, order)
}

func (m *mongoStore) ListOrders(ctx context.Context, userEmail string) ([]Order, error) {
	cur, err := m.orders.Find(ctx, bson.M{"userEmail": userEmail})
	if err != nil {
		return nil, err
	}
	var orders []Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// By-id order operations are scoped to the owner's email, so a foreign
// or unknown id behaves like a missing document.
func (m *mongoStore) GetOrder(ctx context.Context, id, userEmail string) (*Order, error) {
	oid, _ := primitive.ObjectIDFromHex(id)
	var order Order
	if err := m.orders.FindOne(ctx, bson.M{"_id": oid, "userEmail": userEmail}).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (m *mongoStore) SetOrderPayment(ctx context.Context, id, userEmail, transactionID string) (*mongo.UpdateResult, error) {
	oid, _ := primitive.ObjectIDFromHex(id)
	return m.orders.UpdateOne(ctx, bson.M{"_id": oid, "userEmail": userEmail},
		bson.M{"$set": bson.M{"paid": true, "transactionId": transactionID}})
}

func (m *mongoStore) DeleteOrder(ctx context.Context, id, userEmail string) (*mongo.DeleteResult, error) {
	oid, _ := primitive.ObjectIDFromHex(id)
	return m.orders.DeleteOne(ctx, bson.M{"_id": oid, "userEmail": userEmail})
}

func (m *mongoStore) UpsertProfile(ctx context.Context, email string, profile Profile) (*mongo.UpdateResult, error) {
	profile.Email = email
	return m.profiles.UpdateOne(ctx, bson.M{"email": email},
		bson.M{"$set": profile}, options.Update().SetUpsert(true))
}

func (m *mongoStore) GetProfile(ctx context.Context, email string) (*Profile, error) {
	var profile Profile
	if err := m.profiles.FindOne(ctx, bson.M{"email": email}).Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (m *mongoStore) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
