package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// Features gates the route groups that were added incrementally to the
// service: one route table, three capability flags.
type Features struct {
	AdminRoutes   bool
	PaymentRoutes bool
	ProfileRoutes bool
}

type Server struct {
	store    Store
	payments PaymentIntenter
	secret   []byte
	features Features
}

func NewServer(store Store, payments PaymentIntenter, secret []byte, features Features) *Server {
	return &Server{store: store, payments: payments, secret: secret, features: features}
}

func (s *Server) Router() *gin.Engine {
	// reject unknown fields everywhere instead of merging arbitrary
	// client JSON into stored documents
	binding.EnableDecoderDisallowUnknownFields = true

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(200, "Hello from Robotics parts store!")
	})

	// public reads and the two public writes
	r.GET("/parts", s.listParts)
	r.GET("/parts/:partId", s.getPart)
	r.GET("/reviews", s.listReviews)
	r.PUT("/user/:email", s.loginUser)
	r.POST("/order", s.createOrder)

	auth := r.Group("/", verifyJWT(s.secret))
	{
		auth.POST("/review", s.createReview)
		auth.GET("/user/:email", s.getUser)
		auth.GET("/order", s.listOrders)
		auth.GET("/order/:orderId", s.getOrder)
		auth.PATCH("/order/:orderId", s.patchOrderPayment)
		auth.DELETE("/order/:orderId", s.deleteOrder)
	}

	if s.features.AdminRoutes {
		auth.GET("/user", s.listUsers)
		auth.GET("/admin/:email", s.getAdmin)
		auth.PUT("/user/admin/:email", requireAdmin(s.store), s.makeAdmin)
	}
	if s.features.PaymentRoutes {
		auth.POST("/create-payment-intent", s.createPaymentIntent)
	}
	if s.features.ProfileRoutes {
		r.PUT("/profile/:email", s.upsertProfile)
		auth.GET("/profile/:email", s.getProfile)
	}

	return r
}
