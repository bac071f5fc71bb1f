package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nekogravitycat/hotel-booking-backend/internal/api"
	"github.com/nekogravitycat/hotel-booking-backend/internal/auth"
	"github.com/nekogravitycat/hotel-booking-backend/internal/booking"
	"github.com/nekogravitycat/hotel-booking-backend/internal/invoice"
	"github.com/nekogravitycat/hotel-booking-backend/internal/photo"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/storage"
	"github.com/nekogravitycat/hotel-booking-backend/internal/review"
	"github.com/nekogravitycat/hotel-booking-backend/internal/room"
	"github.com/nekogravitycat/hotel-booking-backend/internal/site"
	"github.com/nekogravitycat/hotel-booking-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	Storage      storage.Storage
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Room Module
	roomRepo := room.NewPgxRepository(cfg.DBPool)
	roomService := room.NewService(roomRepo)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo)

	// Invoice Module
	invoiceRepo := invoice.NewPgxRepository(cfg.DBPool)
	invoiceService := invoice.NewService(invoiceRepo, bookingService)

	// Review Module
	reviewRepo := review.NewPgxRepository(cfg.DBPool)
	reviewService := review.NewService(reviewRepo, roomService)

	// Site Module
	siteRepo := site.NewPgxRepository(cfg.DBPool)
	siteService := site.NewService(siteRepo)

	// Photo Module
	photoRepo := photo.NewPgxRepository(cfg.DBPool)
	photoService := photo.NewService(photoRepo, roomService, cfg.Storage)

	// API Router Config
	routerParams := api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		UserService:    userService,
		RoomService:    roomService,
		BookingService: bookingService,
		InvoiceService: invoiceService,
		ReviewService:  reviewService,
		SiteService:    siteService,
		PhotoService:   photoService,
		JWTManager:     jwtManager,
	}

	return &Container{
		Router:     api.NewRouter(routerParams),
		JWTManager: jwtManager,
	}
}
