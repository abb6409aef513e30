package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/home-listing/internal/audit"
	"github.com/BruksfildServices01/home-listing/internal/config"
	homedomain "github.com/BruksfildServices01/home-listing/internal/domain/home"
	userdomain "github.com/BruksfildServices01/home-listing/internal/domain/user"
	"github.com/BruksfildServices01/home-listing/internal/handlers"
	infraRepo "github.com/BruksfildServices01/home-listing/internal/infra/repository"
	"github.com/BruksfildServices01/home-listing/internal/infra/storage"
	"github.com/BruksfildServices01/home-listing/internal/middleware"
	"github.com/BruksfildServices01/home-listing/internal/models"
	ucAuth "github.com/BruksfildServices01/home-listing/internal/usecase/auth"
	ucHome "github.com/BruksfildServices01/home-listing/internal/usecase/home"
	ucInquiry "github.com/BruksfildServices01/home-listing/internal/usecase/inquiry"
	"github.com/BruksfildServices01/home-listing/internal/validators"
)

// Options carries the optional collaborators built by the caller.
type Options struct {
	// Audit defaults to discarding events.
	Audit audit.Sink

	// HomeCache defaults to no caching.
	HomeCache homedomain.Cache

	// Uploader enables POST /api/homes/images when set.
	Uploader storage.Uploader
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, opts Options) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.CORSMiddleware(),
	)

	// ======================================================
	// INFRA
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(db)
	homeRepo := infraRepo.NewHomeGormRepository(db)
	messageRepo := infraRepo.NewMessageGormRepository(db)

	if opts.Audit == nil {
		opts.Audit = audit.Discard{}
	}

	homeCache := opts.HomeCache
	if homeCache == nil {
		homeCache = homedomain.NoopCache{}
	}

	hasher := userdomain.NewBcryptHasher(cfg.BcryptCost)
	tokens := userdomain.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiresIn)

	var checkDomain ucAuth.EmailDomainCheck
	if cfg.VerifyEmailDomain {
		checkDomain = validators.IsEmailDomainValid
	}

	// ======================================================
	// USE CASES
	// ======================================================
	signupUC := ucAuth.NewSignup(userRepo, hasher, tokens, opts.Audit, checkDomain)
	loginUC := ucAuth.NewLogin(userRepo, hasher, tokens)

	getHomesUC := ucHome.NewGetHomes(homeRepo)
	getHomeUC := ucHome.NewGetHome(homeRepo, homeCache)
	createHomeUC := ucHome.NewCreateHome(homeRepo, opts.Audit)
	updateHomeUC := ucHome.NewUpdateHome(homeRepo, homeCache, opts.Audit)
	deleteHomeUC := ucHome.NewDeleteHome(homeRepo, homeCache, opts.Audit)
	getRealtorUC := ucHome.NewGetRealtor(homeRepo)

	inquireUC := ucInquiry.NewInquire(messageRepo, getRealtorUC, opts.Audit)
	listMessagesUC := ucInquiry.NewListMessages(messageRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(signupUC, loginUC)

	homeHandler := handlers.NewHomeHandler(
		getHomesUC,
		getHomeUC,
		createHomeUC,
		updateHomeUC,
		deleteHomeUC,
		getRealtorUC,
	)

	inquiryHandler := handlers.NewInquiryHandler(inquireUC, listMessagesUC, getRealtorUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(db))

	// ======================================================
	// GUARDS
	// ======================================================
	authenticated := middleware.AuthMiddleware(tokens)
	realtorOnly := middleware.RequireUserType(userRepo, models.UserTypeRealtor, models.UserTypeAdmin)
	buyerOnly := middleware.RequireUserType(userRepo, models.UserTypeBuyer)
	adminOnly := middleware.RequireUserType(userRepo, models.UserTypeAdmin)

	// ======================================================
	// ROUTES
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/signup/:userType", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/auth/me", authenticated, authHandler.Me)

		// ------------------------------
		// HOMES (public)
		// ------------------------------
		api.GET("/homes", homeHandler.List)
		api.GET("/homes/:id", homeHandler.Get)

		// ------------------------------
		// HOMES (realtor)
		// ------------------------------
		realtor := api.Group("/homes")
		realtor.Use(authenticated, realtorOnly)
		{
			realtor.POST("", homeHandler.Create)
			realtor.PUT("/:id", homeHandler.Update)
			realtor.DELETE("/:id", homeHandler.Delete)
			realtor.GET("/:id/messages", inquiryHandler.Messages)

			if opts.Uploader != nil {
				imageHandler := handlers.NewImageHandler(opts.Uploader, cfg.ImageMaxWidth)
				realtor.POST("/images", imageHandler.Upload)
			}
		}

		api.POST("/homes/:id/inquire", authenticated, buyerOnly, inquiryHandler.Inquire)

		// ------------------------------
		// ADMIN
		// ------------------------------
		api.GET("/audit-logs", authenticated, adminOnly, auditLogsHandler.List)
	}
}
