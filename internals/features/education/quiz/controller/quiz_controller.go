package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"rupeess_backend/internals/configs"
	"rupeess_backend/internals/features/education/questions/store"
	"rupeess_backend/internals/features/education/quiz/dto"
	"rupeess_backend/internals/features/education/quiz/engine"
	"rupeess_backend/internals/features/education/quiz/session"
	helper "rupeess_backend/internals/helpers"
)

var validateQuiz = validator.New()

type QuizController struct {
	Sessions  *session.Manager
	Questions store.Store
	Defaults  configs.EducationConfig
}

func NewQuizController(sessions *session.Manager, questions store.Store, defaults configs.EducationConfig) *QuizController {
	return &QuizController{Sessions: sessions, Questions: questions, Defaults: defaults}
}

// =======================
// ▶️ POST /api/quiz/start
// =======================
func (ctrl *QuizController) Start(c *fiber.Ctx) error {
	var body dto.StartQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateQuiz.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	count := body.QuestionCount
	if count <= 0 {
		count = 10
	}
	timePerQuestion := body.TimePerQuestion
	if timePerQuestion <= 0 {
		timePerQuestion = ctrl.Defaults.TimePerQuestion
	}
	lang := "en"
	if body.Lang == "hi" {
		lang = "hi"
	}

	questions, err := ctrl.Questions.List(body.Subject, count, lang)
	if err != nil {
		log.Printf("[ERROR] Gagal load soal untuk quiz: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load questions")
	}
	if len(questions) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No questions available for this subject")
	}

	cfg := engine.Config{
		Subject:         body.Subject,
		QuestionCount:   count,
		TimePerQuestion: timePerQuestion,
		SkipBudget:      ctrl.Defaults.SkipBudget,
	}
	id, st := ctrl.Sessions.Start(cfg, questions)
	return helper.JsonCreated(c, "Quiz started", dto.ToStateView(id, st))
}

// =======================
// 📄 GET /api/quiz/:id
// =======================
func (ctrl *QuizController) GetState(c *fiber.Ctx) error {
	st, err := ctrl.Sessions.Get(c.Params("id"))
	return ctrl.respond(c, st, err)
}

// =======================
// ✅ POST /api/quiz/:id/answer
// =======================
func (ctrl *QuizController) Answer(c *fiber.Ctx) error {
	var body dto.AnswerRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateQuiz.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	st, err := ctrl.Sessions.Apply(c.Params("id"), engine.Answer{Index: *body.Index})
	return ctrl.respond(c, st, err)
}

// ⏭ POST /api/quiz/:id/skip
func (ctrl *QuizController) Skip(c *fiber.Ctx) error {
	st, err := ctrl.Sessions.Apply(c.Params("id"), engine.Skip{})
	return ctrl.respond(c, st, err)
}

// ➗ POST /api/quiz/:id/fifty — lifeline 50:50
func (ctrl *QuizController) FiftyFifty(c *fiber.Ctx) error {
	st, err := ctrl.Sessions.Apply(c.Params("id"), engine.FiftyFifty{})
	return ctrl.respond(c, st, err)
}

// 💡 POST /api/quiz/:id/hint
func (ctrl *QuizController) Hint(c *fiber.Ctx) error {
	st, err := ctrl.Sessions.Apply(c.Params("id"), engine.Hint{})
	return ctrl.respond(c, st, err)
}

// 🔁 POST /api/quiz/:id/restart — hanya legal dari finished
func (ctrl *QuizController) Restart(c *fiber.Ctx) error {
	st, err := ctrl.Sessions.Apply(c.Params("id"), engine.Restart{})
	return ctrl.respond(c, st, err)
}

func (ctrl *QuizController) respond(c *fiber.Ctx, st engine.State, err error) error {
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Quiz session not found")
		}
		log.Printf("[ERROR] Quiz session error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Quiz session error")
	}
	return helper.JsonOK(c, "OK", dto.ToStateView(c.Params("id"), st))
}
