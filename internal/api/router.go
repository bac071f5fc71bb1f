package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/hotel-booking-backend/internal/auth"
	"github.com/nekogravitycat/hotel-booking-backend/internal/booking"
	bookingHttp "github.com/nekogravitycat/hotel-booking-backend/internal/booking/http"
	"github.com/nekogravitycat/hotel-booking-backend/internal/invoice"
	invoiceHttp "github.com/nekogravitycat/hotel-booking-backend/internal/invoice/http"
	"github.com/nekogravitycat/hotel-booking-backend/internal/photo"
	photoHttp "github.com/nekogravitycat/hotel-booking-backend/internal/photo/http"
	"github.com/nekogravitycat/hotel-booking-backend/internal/review"
	reviewHttp "github.com/nekogravitycat/hotel-booking-backend/internal/review/http"
	"github.com/nekogravitycat/hotel-booking-backend/internal/room"
	roomHttp "github.com/nekogravitycat/hotel-booking-backend/internal/room/http"
	"github.com/nekogravitycat/hotel-booking-backend/internal/site"
	siteHttp "github.com/nekogravitycat/hotel-booking-backend/internal/site/http"
	"github.com/nekogravitycat/hotel-booking-backend/internal/user"
	userHttp "github.com/nekogravitycat/hotel-booking-backend/internal/user/http"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService    user.Service
	RoomService    room.Service
	BookingService booking.Service
	InvoiceService invoice.Service
	ReviewService  review.Service
	SiteService    site.Service
	PhotoService   photo.Service

	JWTManager *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Maintenance,
// Auth) and registering routes for the modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// Maintenance mode gate for the whole API.
	r.Use(Maintenance(cfg.SiteService))

	// Health route
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "Hotel Booking API is running"})
	})

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	// adminMiddleware: Further checks if the authenticated user is an administrator.
	adminMiddleware := RequireAdmin(cfg.UserService)

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	roomHandler := roomHttp.NewHandler(cfg.RoomService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService, cfg.UserService)
	invoiceHandler := invoiceHttp.NewHandler(cfg.InvoiceService)
	reviewHandler := reviewHttp.NewHandler(cfg.ReviewService)
	siteHandler := siteHttp.NewHandler(cfg.SiteService)
	photoHandler := photoHttp.NewHandler(cfg.PhotoService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, adminMiddleware)
		roomHttp.RegisterRoutes(v1, roomHandler, authMiddleware, adminMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
		invoiceHttp.RegisterRoutes(v1, invoiceHandler, authMiddleware, adminMiddleware)
		reviewHttp.RegisterRoutes(v1, reviewHandler, authMiddleware, adminMiddleware)
		siteHttp.RegisterRoutes(v1, siteHandler, authMiddleware, adminMiddleware)
		photoHttp.RegisterRoutes(v1, photoHandler, authMiddleware, adminMiddleware)
	}

	return r
}
