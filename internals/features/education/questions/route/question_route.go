package route

import (
	"github.com/gofiber/fiber/v2"

	"rupeess_backend/internals/constants"
	"rupeess_backend/internals/features/education/questions/controller"
	"rupeess_backend/internals/features/education/questions/store"
	authMiddleware "rupeess_backend/internals/middlewares/auth"
)

// QuestionRoutes: GET publik (quiz page), mutasi hanya admin.
func QuestionRoutes(api fiber.Router, s store.Store, jwtSecret string) {
	ctrl := controller.NewQuestionController(s)

	questions := api.Group("/questions")
	questions.Get("/", ctrl.GetQuestions)

	adminOnly := []fiber.Handler{
		authMiddleware.AuthMiddleware(jwtSecret),
		authMiddleware.RequireRole(constants.RoleAdmin),
	}
	questions.Post("/", append(adminOnly, ctrl.CreateQuestion)...)
	questions.Put("/", append(adminOnly, ctrl.UpdateQuestion)...)
	questions.Delete("/", append(adminOnly, ctrl.DeleteQuestion)...)
}
