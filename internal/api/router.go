package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sewakita/sewakita-backend/internal/asset"
	assetHttp "github.com/sewakita/sewakita-backend/internal/asset/http"
	"github.com/sewakita/sewakita-backend/internal/auth"
	"github.com/sewakita/sewakita-backend/internal/category"
	categoryHttp "github.com/sewakita/sewakita-backend/internal/category/http"
	"github.com/sewakita/sewakita-backend/internal/file"
	fileHttp "github.com/sewakita/sewakita-backend/internal/file/http"
	"github.com/sewakita/sewakita-backend/internal/organization"
	orgHttp "github.com/sewakita/sewakita-backend/internal/organization/http"
	"github.com/sewakita/sewakita-backend/internal/post"
	postHttp "github.com/sewakita/sewakita-backend/internal/post/http"
	"github.com/sewakita/sewakita-backend/internal/promotion"
	promotionHttp "github.com/sewakita/sewakita-backend/internal/promotion/http"
	"github.com/sewakita/sewakita-backend/internal/reservation"
	reservationHttp "github.com/sewakita/sewakita-backend/internal/reservation/http"
	"github.com/sewakita/sewakita-backend/internal/user"
	userHttp "github.com/sewakita/sewakita-backend/internal/user/http"
)

// RouterConfig carries everything the router assembly needs.
type RouterConfig struct {
	IsProduction bool
	ProdOrigins  []string

	JWTManager *auth.JWTManager

	UserService        user.Service
	OrgService         organization.Service
	CategoryService    category.Service
	AssetService       asset.Service
	ReservationService reservation.Service
	PostService        post.Service
	PromotionService   promotion.Service
	FileService        file.Service

	// AvailabilityLimiter throttles the public availability probe.
	AvailabilityLimiter gin.HandlerFunc
}

// NewRouter assembles middleware (CORS, Logger, Auth) and registers the
// routes of every module under /v1.
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = cfg.ProdOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	sysAdminMiddleware := RequireSystemAdmin(cfg.UserService)

	userHandler := userHttp.NewUserHandler(cfg.UserService, cfg.JWTManager)
	orgHandler := orgHttp.NewHandler(cfg.OrgService, cfg.UserService)
	categoryHandler := categoryHttp.NewHandler(cfg.CategoryService)
	assetHandler := assetHttp.NewHandler(cfg.AssetService, cfg.OrgService, cfg.UserService)
	reservationHandler := reservationHttp.NewHandler(cfg.ReservationService, cfg.OrgService, cfg.UserService, cfg.FileService)
	postHandler := postHttp.NewHandler(cfg.PostService)
	promotionHandler := promotionHttp.NewHandler(cfg.PromotionService)
	fileHandler := fileHttp.NewHandler(cfg.FileService)

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, sysAdminMiddleware)
		orgHttp.RegisterRoutes(v1, orgHandler, authMiddleware, sysAdminMiddleware)
		categoryHttp.RegisterRoutes(v1, categoryHandler, authMiddleware, sysAdminMiddleware)
		assetHttp.RegisterRoutes(v1, assetHandler, authMiddleware)
		reservationHttp.RegisterRoutes(v1, reservationHandler, authMiddleware, sysAdminMiddleware, cfg.AvailabilityLimiter)
		postHttp.RegisterRoutes(v1, postHandler, authMiddleware, sysAdminMiddleware)
		promotionHttp.RegisterRoutes(v1, promotionHandler, authMiddleware, sysAdminMiddleware)
		fileHttp.RegisterRoutes(v1, fileHandler, authMiddleware, sysAdminMiddleware)
	}

	return r
}
