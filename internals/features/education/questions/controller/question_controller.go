package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"rupeess_backend/internals/features/education/questions/dto"
	"rupeess_backend/internals/features/education/questions/model"
	"rupeess_backend/internals/features/education/questions/store"
	helper "rupeess_backend/internals/helpers"
)

var validateQuestion = validator.New()

type QuestionController struct {
	Store store.Store
}

func NewQuestionController(s store.Store) *QuestionController {
	return &QuestionController{Store: s}
}

// =======================
// 📄 GET /api/questions?subject&limit&lang
// =======================
// Response: bare JSON array — client selalu expect collection, bukan envelope.
func (ctrl *QuestionController) GetQuestions(c *fiber.Ctx) error {
	subject := c.Query("subject")
	lang := "en"
	if c.Query("lang") == "hi" {
		lang = "hi"
	}

	limit := 0
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	questions, err := ctrl.Store.List(subject, limit, lang)
	if err != nil {
		log.Printf("[ERROR] Gagal baca question store: %v", err)
		return c.JSON([]model.Question{})
	}
	return c.JSON(questions)
}

// =======================
// ➕ POST /api/questions
// =======================
func (ctrl *QuestionController) CreateQuestion(c *fiber.Ctx) error {
	var body dto.CreateQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateQuestion.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	created, err := ctrl.Store.Create(body.ToModel())
	if err != nil {
		if errors.Is(err, store.ErrValidation) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		log.Printf("[ERROR] Gagal simpan question: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save question")
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// =======================
// ✏️ PUT /api/questions
// =======================
func (ctrl *QuestionController) UpdateQuestion(c *fiber.Ctx) error {
	var body dto.UpdateQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateQuestion.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	updated, err := ctrl.Store.Update(body.ID, body.ToPatch())
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "not found")
		case errors.Is(err, store.ErrValidation):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		default:
			log.Printf("[ERROR] Gagal update question: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update question")
		}
	}
	return c.JSON(updated)
}

// =======================
// 🗑 DELETE /api/questions
// =======================
// Id tidak dikenal tetap sukses (no-op) — behavior lama dipertahankan.
func (ctrl *QuestionController) DeleteQuestion(c *fiber.Ctx) error {
	var body dto.DeleteQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateQuestion.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id required")
	}

	if err := ctrl.Store.Delete(body.ID); err != nil {
		log.Printf("[ERROR] Gagal hapus question: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete question")
	}
	return c.JSON(fiber.Map{"success": true})
}
