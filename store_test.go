package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var testSecret = []byte("test-token-secret")

func init() {
	gin.SetMode(gin.TestMode)
}

// memStore is an in-memory Store fake. calls counts every store
// operation so tests can assert that rejected requests never reach the
// store.
type memStore struct {
	mu       sync.Mutex
	users    map[string]User
	parts    map[string]Part
	reviews  []Review
	orders   map[string]Order
	profiles map[string]Profile
	calls    int
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[string]User),
		parts:    make(map[string]Part),
		orders:   make(map[string]Order),
		profiles: make(map[string]Profile),
	}
}

func (s *memStore) count() {
	s.calls++
}

func (s *memStore) ListParts(ctx context.Context) ([]Part, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count()
	parts := make([]Part, 0, len(s.parts))
	for _, p := range s.parts {
		parts = append(parts, p)
	}
	return parts, nil
}

func (s *memStore) GetPart(ctx context.Context, id string) (*Part, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count()
	p, ok := s.parts[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &p, nil
}

func (s *memStore) ListReviews(ctx context.Context) ([]Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count()
	return append([]Review(nil), s.reviews...), nil
}

func (s *memStore) InsertReview(ctx context.Context, review Review) (*mongo.InsertOneResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count()
	review.ID = primitive.NewObjectID()
	s.reviews = append(s.reviews, review)
	return &mongo.InsertOneResult{InsertedID: review.ID}, nil
}

func (s *memStore) GetUser(ctx context.Context, email string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count()
	u, ok := s.users[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &u, nil
}

func (s *memStore) ListUsers(ctx context.Context) ([]User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count()
	users := make([]User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	return users, nil
}

func (s *memStore) UpsertUser(ctx context.Context, email string, user User) (*mongo.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count()
	user.Email = email
	existing, ok := s.users[email]
	if ok {
		user.ID = existing.ID
		// role is omitempty in the mongo $set document, so an empty
		// incoming role never clears a stored one
		if user.Role == "" {
			user.Role = existing.Role
		}
		s.users[email] = user
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	user.ID = primitive.NewObjectID()
	s.users[email] = user
	return &mongo.UpdateResult{UpsertedCount: 1, UpsertedID: user.ID}, nil
}

func (s *memStore) SetUserRole(ctx context.Context, email, role string) (*mongo.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count()
	u, ok := s.users[email]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}
	u.Role = role
	s.users[email] = u
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s *memStore) InsertOrder(ctx context.Context, order Order) (*mongo.InsertOneResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count()
	order.ID = primitive.NewObjectID()
	s.orders[order.ID.Hex()] = order
	return &mongo.InsertOneResult{InsertedID: order.ID}, nil
}

func (s *memStore) ListOrders(ctx context.Context, userEmail string) ([]Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count()
	var orders []Order
	for _, o := range s.orders {
		if o.UserEmail == userEmail {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (s *memStore) GetOrder(ctx context.Context, id, userEmail string) (*Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count()
	o, ok := s.orders[id]
	if !ok || o.UserEmail != userEmail {
		return nil, mongo.ErrNoDocuments
	}
	return &o, nil
}

func (s *memStore) SetOrderPayment(ctx context.Context, id, userEmail, transactionID string) (*mongo.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count()
	o, ok := s.orders[id]
	if !ok || o.UserEmail != userEmail {
		return &mongo.UpdateResult{}, nil
	}
	o.Paid = true
	o.TransactionID = transactionID
	s.orders[id] = o
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s *memStore) DeleteOrder(ctx context.Context, id, userEmail string) (*mongo.DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count()
	o, ok := s.orders[id]
	if !ok || o.UserEmail != userEmail {
		return &mongo.DeleteResult{DeletedCount: 0}, nil
	}
	delete(s.orders, id)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

func (s *memStore) UpsertProfile(ctx context.Context, email string, profile Profile) (*mongo.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count()
	profile.Email = email
	_, ok := s.profiles[email]
	s.profiles[email] = profile
	if ok {
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	return &mongo.UpdateResult{UpsertedCount: 1, UpsertedID: email}, nil
}

func (s *memStore) GetProfile(ctx context.Context, email string) (*Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count()
	p, ok := s.profiles[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &p, nil
}

func (s *memStore) Close(ctx context.Context) error {
	return nil
}

type stubPayments struct {
	amount   int64
	currency string
	calls    int
}

func (p *stubPayments) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	p.calls++
	p.amount = amount
	p.currency = currency
	return "pi_test_secret_123", nil
}

func allFeatures() Features {
	return Features{AdminRoutes: true, PaymentRoutes: true, ProfileRoutes: true}
}

func newTestRouter(store Store, payments PaymentIntenter, features Features) *gin.Engine {
	return NewServer(store, payments, testSecret, features).Router()
}

func tokenFor(t *testing.T, email string) string {
	t.Helper()
	token, err := signToken(testSecret, email)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// doRequestRaw sends a request with a verbatim Authorization header
// value, for malformed-header cases.
func doRequestRaw(t *testing.T, r *gin.Engine, method, path, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", authHeader)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

var _ Store = (*memStore)(nil)
var _ PaymentIntenter = (*stubPayments)(nil)
