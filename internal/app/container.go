package app

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sewakita/sewakita-backend/internal/api"
	"github.com/sewakita/sewakita-backend/internal/asset"
	"github.com/sewakita/sewakita-backend/internal/auth"
	"github.com/sewakita/sewakita-backend/internal/category"
	"github.com/sewakita/sewakita-backend/internal/file"
	"github.com/sewakita/sewakita-backend/internal/notify"
	"github.com/sewakita/sewakita-backend/internal/organization"
	"github.com/sewakita/sewakita-backend/internal/pkg/ratelimit"
	"github.com/sewakita/sewakita-backend/internal/pkg/storage"
	"github.com/sewakita/sewakita-backend/internal/post"
	"github.com/sewakita/sewakita-backend/internal/promotion"
	"github.com/sewakita/sewakita-backend/internal/reservation"
	"github.com/sewakita/sewakita-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int

	StoragePath           string
	AvailabilityRateLimit string

	AMQPURL      string
	AMQPExchange string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager

	notifier notify.Notifier
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("init storage failed: %w", err)
	}

	availabilityLimiter, err := ratelimit.NewMiddleware(cfg.AvailabilityRateLimit)
	if err != nil {
		return nil, fmt.Errorf("init rate limiter failed: %w", err)
	}

	var notifier notify.Notifier
	if cfg.AMQPURL != "" {
		amqpNotifier, err := notify.NewAMQPNotifier(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			return nil, fmt.Errorf("init amqp notifier failed: %w", err)
		}
		notifier = amqpNotifier
	} else {
		log.Println("AMQP_URL not set, reservation events will not be published")
		notifier = notify.NewNopNotifier()
	}

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Organization Module
	orgRepo := organization.NewPgxRepository(cfg.DBPool)
	orgService := organization.NewService(orgRepo)

	// Category Module
	categoryRepo := category.NewPgxRepository(cfg.DBPool)
	categoryService := category.NewService(categoryRepo)

	// Asset Module
	assetRepo := asset.NewPgxRepository(cfg.DBPool)
	assetService := asset.NewService(assetRepo, categoryService, orgService)

	// Reservation Module
	reservationRepo := reservation.NewPgxRepository(cfg.DBPool)
	reservationService := reservation.NewService(reservationRepo, assetService, orgService, notifier)

	// Post Module
	postRepo := post.NewPgxRepository(cfg.DBPool)
	postService := post.NewService(postRepo)

	// Promotion Module
	promotionRepo := promotion.NewPgxRepository(cfg.DBPool)
	promotionService := promotion.NewService(promotionRepo)

	// File Module
	fileRepo := file.NewPgxRepository(cfg.DBPool)
	fileService := file.NewService(fileRepo, store)

	router := api.NewRouter(api.RouterConfig{
		IsProduction: cfg.IsProduction,
		ProdOrigins:  splitOrigins(cfg.ProdOrigins),

		JWTManager: jwtManager,

		UserService:        userService,
		OrgService:         orgService,
		CategoryService:    categoryService,
		AssetService:       assetService,
		ReservationService: reservationService,
		PostService:        postService,
		PromotionService:   promotionService,
		FileService:        fileService,

		AvailabilityLimiter: availabilityLimiter,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
		notifier:   notifier,
	}, nil
}

// Close releases external resources held by the container.
func (c *Container) Close() {
	if closer, ok := c.notifier.(*notify.AMQPNotifier); ok {
		if err := closer.Close(); err != nil {
			log.Printf("close notifier failed: %v", err)
		}
	}
}

func splitOrigins(origins string) []string {
	if origins == "" {
		return nil
	}
	parts := strings.Split(origins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
