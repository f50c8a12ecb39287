package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rupeess_backend/internals/configs"
	"rupeess_backend/internals/constants"
	"rupeess_backend/internals/features/users/auth/dto"
	"rupeess_backend/internals/features/users/auth/model"
	"rupeess_backend/internals/features/users/auth/service"
	helper "rupeess_backend/internals/helpers"
)

var validateAuth = validator.New()

const tokenTTL = 7 * 24 * time.Hour

type AuthController struct {
	DB  *gorm.DB
	Cfg *configs.Config
}

func NewAuthController(db *gorm.DB, cfg *configs.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

// =======================
// 📝 POST /api/auth/signup
// =======================
func (ctrl *AuthController) Signup(c *fiber.Ctx) error {
	if ctrl.DB == nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database not configured")
	}

	var body dto.SignupRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	role := body.Role
	if role == "" {
		role = constants.RoleUser
	}
	email := strings.ToLower(strings.TrimSpace(body.Email))

	// email/phone sudah terdaftar → 400
	dupe := ctrl.DB.Where("user_email = ?", email)
	if body.Phone != "" {
		dupe = dupe.Or("user_phone = ?", body.Phone)
	}
	var existing model.UserModel
	if err := dupe.First(&existing).Error; err == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "User with this email or phone already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[ERROR] Cek duplikat user gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	hashed, err := service.HashPassword(body.Password)
	if err != nil {
		log.Printf("[ERROR] Hash password gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	user := model.UserModel{
		UserName:     body.Name,
		UserEmail:    email,
		UserPassword: hashed,
		UserRole:     role,
		UserIsActive: true,
	}
	if body.Phone != "" {
		user.UserPhone = &body.Phone
	}

	// kode agent/operator sekuensial dari jumlah role yang sudah ada
	switch role {
	case constants.RoleAgent:
		var count int64
		if err := ctrl.DB.Model(&model.UserModel{}).Where("user_role = ?", constants.RoleAgent).Count(&count).Error; err != nil {
			log.Printf("[ERROR] Hitung agent gagal: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
		}
		code := service.NextAgentCode(count)
		user.UserAgentCode = &code
	case constants.RoleOperator:
		var count int64
		if err := ctrl.DB.Model(&model.UserModel{}).Where("user_role = ?", constants.RoleOperator).Count(&count).Error; err != nil {
			log.Printf("[ERROR] Hitung operator gagal: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
		}
		code := service.NextOperatorCode(count)
		user.UserOperatorCode = &code
	}

	if err := ctrl.DB.Create(&user).Error; err != nil {
		log.Printf("[ERROR] Insert user gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, "User created successfully", dto.ToUserResponse(user))
}

// =======================
// 🔐 POST /api/auth/login
// =======================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	if ctrl.DB == nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database not configured")
	}

	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	err := ctrl.DB.Where("user_email = ?", strings.ToLower(strings.TrimSpace(body.Email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		log.Printf("[ERROR] Lookup user gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to login")
	}

	if !service.CheckPassword(user.UserPassword, body.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Account is inactive")
	}

	token, err := helper.SignToken(ctrl.Cfg.JWTSecret, user.UserID.String(), user.UserRole, tokenTTL)
	if err != nil {
		log.Printf("[ERROR] Sign token gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to login")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		Expires:  time.Now().Add(tokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"token": token,
		"user":  dto.ToUserResponse(user),
	})
}

// =======================
// 👤 GET /api/auth/me
// =======================
// 401 tanpa/invalid token; 404 user hilang atau inactive.
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	if ctrl.DB == nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database not configured")
	}

	tokenString, err := helper.ExtractToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not authenticated")
	}
	claims, err := helper.ParseToken(ctrl.Cfg.JWTSecret, tokenString)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token")
	}
	userID, err := helper.UserIDFromClaims(claims)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token")
	}

	var user model.UserModel
	if err := ctrl.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found or inactive")
		}
		log.Printf("[ERROR] Lookup user gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get user")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found or inactive")
	}

	return helper.JsonOK(c, "OK", fiber.Map{"user": dto.ToUserResponse(user)})
}
