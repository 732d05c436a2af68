package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authDTO "mudarris_backend/internals/features/users/auth/dto"
	authModel "mudarris_backend/internals/features/users/auth/model"
	authService "mudarris_backend/internals/features/users/auth/service"
	helper "mudarris_backend/internals/helpers"
	helperAuth "mudarris_backend/internals/helpers/auth"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var count int64
	if err := ctrl.DB.Model(&authModel.UserModel{}).
		Where("user_name = ? OR email = ?", req.UserName, req.Email).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check existing account")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "User name or email already registered")
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := authModel.UserModel{
		UserName: req.UserName,
		Email:    req.Email,
		Password: hashed,
		IsActive: true,
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create account")
	}

	return helper.JsonCreated(c, "Account created", authDTO.NewUserResponse(&user))
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var user authModel.UserModel
	if err := ctrl.DB.
		Where("user_name = ? OR email = ?", req.Identifier, req.Identifier).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up account")
	}

	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
	}
	if !authService.CheckPassword(user.Password, req.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := authService.IssueAccessToken(&user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonOK(c, "Login success", authDTO.AuthResponse{
		AccessToken: token,
		User:        authDTO.NewUserResponse(&user),
	})
}

// POST /api/auth/logout: blacklist the current token until it expires.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	tokenString, _ := c.Locals("token_string").(string)
	if tokenString == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "No token to revoke")
	}

	entry := authModel.TokenBlacklist{
		Token:     tokenString,
		ExpiredAt: time.Now().Add(authService.AccessTokenTTL),
	}
	if err := ctrl.DB.Create(&entry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to revoke token")
	}

	return helper.JsonOK(c, "Logged out", nil)
}

// GET /api/auth/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	var user authModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Account not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load account")
	}

	return helper.JsonOK(c, "OK", authDTO.NewUserResponse(&user))
}
