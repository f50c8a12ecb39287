package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/utils"

	"rupeess_backend/internals/configs"
	database "rupeess_backend/internals/databases"
	"rupeess_backend/internals/features/education/questions/store"
	quizModel "rupeess_backend/internals/features/education/quiz/model"
	"rupeess_backend/internals/features/education/quiz/session"
	userModel "rupeess_backend/internals/features/users/auth/model"
	helper "rupeess_backend/internals/helpers"
	middlewares "rupeess_backend/internals/middlewares"
	routes "rupeess_backend/internals/route"
	"rupeess_backend/internals/seeds"
)

func main() {
	cfg := configs.Load()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
		// error dari fiber.NewError (middleware auth dsb.) tetap
		// keluar sebagai envelope JSON yang sama
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return helper.FromFiberError(c, err)
		},
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching

	// 🔎 Request-ID + timing (observability ringan)
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		dur := time.Since(start)
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur)
		return err
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + warm-up (boleh gagal → fallback mode)
	database.ConnectDB(cfg)
	if database.DB != nil {
		database.TunePool()
		database.WarmUpQueries()
		if err := database.DB.AutoMigrate(&userModel.UserModel{}, &quizModel.QuizResultModel{}); err != nil {
			log.Printf("[ERROR] AutoMigrate gagal: %v", err)
		}
	}

	// 🌱 flat file soal harus ada sebelum store dipakai
	seeds.EnsureQuestionFiles(cfg.Education)
	questions := store.NewFileStore(
		cfg.Education.BaseFile,
		cfg.Education.CustomFile,
		cfg.Education.ExpandPerSubject,
	)

	// ⏱ session quiz in-memory + sweeper TTL
	sessions := session.NewManager(database.DB)
	stopCleanup := make(chan struct{})
	sessions.StartCleanup(cfg.Education.SessionTTL, time.Minute, stopCleanup)

	// ✅ Routes
	routes.SetupRoutes(app, routes.Deps{
		DB:        database.DB,
		Cfg:       cfg,
		Questions: questions,
		Sessions:  sessions,
	})

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	// Start server non-blocking
	go func() {
		log.Printf("✅ Listening on :%s", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	close(stopCleanup)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if database.DB != nil {
		if sqlDB, err := database.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
