package route

import (
	"github.com/gofiber/fiber/v2"

	"rupeess_backend/internals/configs"
	"rupeess_backend/internals/features/education/questions/store"
	"rupeess_backend/internals/features/education/quiz/controller"
	"rupeess_backend/internals/features/education/quiz/session"
)

func QuizRoutes(api fiber.Router, sessions *session.Manager, questions store.Store, defaults configs.EducationConfig) {
	ctrl := controller.NewQuizController(sessions, questions, defaults)

	quiz := api.Group("/quiz")
	quiz.Post("/start", ctrl.Start)
	quiz.Get("/:id", ctrl.GetState)
	quiz.Post("/:id/answer", ctrl.Answer)
	quiz.Post("/:id/skip", ctrl.Skip)
	quiz.Post("/:id/fifty", ctrl.FiftyFifty)
	quiz.Post("/:id/hint", ctrl.Hint)
	quiz.Post("/:id/restart", ctrl.Restart)
}
