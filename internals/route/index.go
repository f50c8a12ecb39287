package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rupeess_backend/internals/configs"
	questionRoute "rupeess_backend/internals/features/education/questions/route"
	"rupeess_backend/internals/features/education/questions/store"
	quizRoute "rupeess_backend/internals/features/education/quiz/route"
	"rupeess_backend/internals/features/education/quiz/session"
	shopRepository "rupeess_backend/internals/features/shops/directory/repository"
	shopRoute "rupeess_backend/internals/features/shops/directory/route"
	homeRoute "rupeess_backend/internals/features/shops/home/route"
	authRoute "rupeess_backend/internals/features/users/auth/route"
)

var startTime time.Time

// Deps: semua dependency yang dirakit sekali di main.
type Deps struct {
	DB        *gorm.DB
	Cfg       *configs.Config
	Questions store.Store
	Sessions  *session.Manager
}

func SetupRoutes(app *fiber.App, deps Deps) {
	startTime = time.Now()

	BaseRoutes(app)

	api := app.Group("/api")

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(api, deps.DB, deps.Cfg)

	log.Println("[INFO] Setting up ShopRoutes...")
	shopRepo := shopRepository.NewShopRepository(deps.DB, deps.Cfg.Nearby)
	shopRoute.ShopRoutes(api, shopRepo)

	log.Println("[INFO] Setting up HomeRoutes...")
	homeRoute.HomeRoutes(api, shopRepo)

	log.Println("[INFO] Setting up QuestionRoutes...")
	questionRoute.QuestionRoutes(api, deps.Questions, deps.Cfg.JWTSecret)

	log.Println("[INFO] Setting up QuizRoutes...")
	quizRoute.QuizRoutes(api, deps.Sessions, deps.Questions, deps.Cfg.Education)
}
