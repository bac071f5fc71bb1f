package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/hotel-booking-backend/internal/app"
	"github.com/nekogravitycat/hotel-booking-backend/internal/auth"
	"github.com/nekogravitycat/hotel-booking-backend/internal/db"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/storage"
	"github.com/nekogravitycat/hotel-booking-backend/internal/user"
)

var (
	testRouter *gin.Engine
	testPool   *pgxpool.Pool
	jwtManager *auth.JWTManager
)

func TestMain(m *testing.M) {
	// Attempt to load .env from parent directory
	if err := godotenv.Load("../.env"); err != nil {
		log.Printf("No .env file found or failed to load: %v", err)
	}

	// Setup Database Connection
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		log.Println("TEST_DB_DSN is not set, skipping integration tests")
		os.Exit(0)
	}

	ctx := context.Background()
	var err error
	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v\n", err)
	}

	if err := db.Migrate(ctx, testPool); err != nil {
		log.Fatalf("Unable to migrate test database: %v\n", err)
	}

	store, err := storage.NewLocalStorage(os.TempDir())
	if err != nil {
		log.Fatalf("Unable to init test storage: %v\n", err)
	}

	// Initialize App Container using shared logic
	appContainer := app.NewContainer(app.Config{
		DBPool:     testPool,
		Storage:    store,
		JWTSecret:  "test-secret",
		JWTTTL:     30 * time.Minute,
		BcryptCost: 4, // Lower cost for testing purposes
	})

	// Assign global variables for tests to use
	testRouter = appContainer.Router
	jwtManager = appContainer.JWTManager

	// Setup Gin mode
	gin.SetMode(gin.TestMode)

	// Run Tests
	exitCode := m.Run()

	// Teardown
	testPool.Close()
	os.Exit(exitCode)
}

func clearTables() {
	ctx := context.Background()
	queries := []string{
		"TRUNCATE TABLE public.invoices CASCADE",
		"TRUNCATE TABLE public.reviews CASCADE",
		"TRUNCATE TABLE public.room_photos CASCADE",
		"TRUNCATE TABLE public.bookings CASCADE",
		"TRUNCATE TABLE public.room_features CASCADE",
		"TRUNCATE TABLE public.room_services CASCADE",
		"TRUNCATE TABLE public.rooms CASCADE",
		"TRUNCATE TABLE public.users CASCADE",
		"UPDATE public.site_settings SET is_active = true WHERE id = 1",
	}
	for _, q := range queries {
		_, err := testPool.Exec(ctx, q)
		if err != nil {
			log.Printf("Failed to clean table: %v", err)
		}
	}
}

func executeRequest(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req, _ := http.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	testRouter.ServeHTTP(w, req)
	return w
}

func createTestUser(t *testing.T, email, password string, isAdmin bool) *user.User {
	hasher := auth.NewBcryptPasswordHasherWithCost(4)
	hash, err := hasher.Hash(password)
	require.NoError(t, err, "Failed to hash password")

	u := &user.User{
		Name:         email,
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      isAdmin,
	}

	repo := user.NewPgxRepository(testPool)
	err = repo.Create(context.Background(), u)
	require.NoError(t, err, "Failed to create test user in DB")

	return u
}

func generateToken(userID, email string) string {
	token, _ := jwtManager.GenerateAccessToken(userID, email)
	return token
}
