package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/docs"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/auth"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/cache"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/config"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/db"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/handler"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/model"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/repository"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/router"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/service"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/storage"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/upload"
)

// @title IRM Ministries API
// @version 1.0
// @description Church ministry content management: churches, members, ministers, events, ranks, skills, and contact submissions.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Church{},
		&model.Member{},
		&model.Minister{},
		&model.MinistryRank{},
		&model.MinistrySkill{},
		&model.ChurchEvent{},
		&model.ChurchCoverPhoto{},
		&model.ContactSubmission{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	gateway, err := storage.New(context.Background(), storage.Config{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Bucket:    cfg.S3Bucket,
	})
	if err != nil {
		log.Fatalf("storage init: %v", err)
	}

	// Initialize auth components
	tokens, err := auth.NewTokenService(cfg.JWTSecret)
	if err != nil {
		log.Fatalf("token service: %v", err)
	}
	resolver := auth.NewResolver(tokens, cfg.TrustProxyHeaders)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	churchRepo := repository.NewChurchRepository(gormDB)
	memberRepo := repository.NewMemberRepository(gormDB)
	ministerRepo := repository.NewMinisterRepository(gormDB)
	rankRepo := repository.NewCRUD[model.MinistryRank](gormDB)
	skillRepo := repository.NewCRUD[model.MinistrySkill](gormDB)
	eventRepo := repository.NewCRUD[model.ChurchEvent](gormDB)
	coverRepo := repository.NewCRUD[model.ChurchCoverPhoto](gormDB)
	contactRepo := repository.NewCRUD[model.ContactSubmission](gormDB)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokens)
	churchService := service.NewChurchService(churchRepo, cacheClient)
	memberService := service.NewMemberService(memberRepo)
	ministerService := service.NewMinisterService(ministerRepo)
	rankService := service.NewMinistryRankService(rankRepo)
	skillService := service.NewMinistrySkillService(skillRepo)
	eventService := service.NewChurchEventService(eventRepo, cacheClient)
	coverService := service.NewCoverPhotoService(coverRepo)
	contactService := service.NewContactService(contactRepo)

	// Upload guard
	limiter := upload.NewRateLimiter(cfg.UploadRatePerMinute, time.Minute)
	defer limiter.Stop()

	// Initialize handlers
	handlers := router.Handlers{
		Auth:       handler.NewAuthHandler(authService, resolver),
		Church:     handler.NewChurchHandler(churchService),
		Member:     handler.NewMemberHandler(memberService),
		Minister:   handler.NewMinisterHandler(ministerService),
		Rank:       handler.NewMinistryRankHandler(rankService),
		Skill:      handler.NewMinistrySkillHandler(skillService),
		Event:      handler.NewChurchEventHandler(eventService),
		CoverPhoto: handler.NewCoverPhotoHandler(coverService),
		Contact:    handler.NewContactHandler(contactService),
		Upload:     handler.NewUploadHandler(gateway, limiter, cfg.UploadAllowedTypes, cfg.UploadMaxBytes),
		Proxy:      handler.NewProxyHandler(gateway),
		Export:     handler.NewExportHandler(memberService, ministerService, churchService),
	}

	e := echo.New()
	router.Register(e, cfg, resolver, handlers)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
