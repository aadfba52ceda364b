// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"elevencentral_backend/internals/apierr"
	"elevencentral_backend/internals/configs"
	"elevencentral_backend/internals/constants"
	dto "elevencentral_backend/internals/features/users/auth/dto"
	authModel "elevencentral_backend/internals/features/users/auth/model"
	service "elevencentral_backend/internals/features/users/auth/service"
	userModel "elevencentral_backend/internals/features/users/user/model"
	helper "elevencentral_backend/internals/helpers"
	"elevencentral_backend/internals/sessions"
)

type AuthController struct {
	DB       *gorm.DB
	Sessions sessions.Store
}

var validate = validator.New()

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Sessions: sessions.Default}
}

// =========================================================
// REGISTER - POST /api/auth/register
// =========================================================
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apierr.Validation("invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(err)
	}

	var cnt int64
	if err := h.DB.Model(&userModel.UserModel{}).
		Where("user_email = ?", req.UserEmail).
		Count(&cnt).Error; err != nil {
		return apierr.Store(err)
	}
	if cnt > 0 {
		return &apierr.Error{
			Kind:    apierr.KindValidation,
			Status:  fiber.StatusConflict,
			Code:    "EMAIL_TAKEN",
			Message: "an account with this email already exists",
		}
	}

	hash, err := service.HashPassword(req.UserPassword)
	if err != nil {
		return apierr.Unexpected(err)
	}

	u := &userModel.UserModel{
		UserFullName: req.UserFullName,
		UserEmail:    req.UserEmail,
		UserPassword: &hash,
		UserRole:     constants.RoleStaff,
		UserIsActive: true,
	}
	if err := h.DB.Create(u).Error; err != nil {
		return apierr.Store(err)
	}
	return helper.JsonCreated(c, "account created", dto.ToUserResponse(u))
}

// =========================================================
// LOGIN - POST /api/auth/login
// =========================================================
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apierr.Validation("invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(err)
	}

	var u userModel.UserModel
	if err := h.DB.First(&u, "user_email = ?", req.UserEmail).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return unauthorized("invalid email or password")
		}
		return apierr.Store(err)
	}
	if u.UserPassword == nil || !service.CheckPassword(*u.UserPassword, req.UserPassword) {
		return unauthorized("invalid email or password")
	}
	if !u.UserIsActive {
		return forbidden("this account has been deactivated")
	}

	return h.issueTokens(c, &u, "login successful")
}

// =========================================================
// LOGIN (GOOGLE) - POST /api/auth/login-google
// Verifies a Google ID token and provisions the account on first sign-in.
// =========================================================
func (h *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apierr.Validation("invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return unauthorized("invalid Google ID token")
	}
	claims, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil || claims.Email == "" {
		return unauthorized("invalid Google ID token")
	}

	email := strings.ToLower(strings.TrimSpace(claims.Email))
	var u userModel.UserModel
	err = h.DB.First(&u, "user_email = ?", email).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		sub := claims.Sub
		u = userModel.UserModel{
			UserFullName: claims.Name,
			UserEmail:    email,
			UserGoogleID: &sub,
			UserRole:     constants.RoleStaff,
			UserIsActive: true,
		}
		if u.UserFullName == "" {
			u.UserFullName = email
		}
		if err := h.DB.Create(&u).Error; err != nil {
			return apierr.Store(err)
		}
	case err != nil:
		return apierr.Store(err)
	}
	if !u.UserIsActive {
		return forbidden("this account has been deactivated")
	}

	return h.issueTokens(c, &u, "login successful")
}

// =========================================================
// REFRESH - POST /api/auth/refresh
// Rotates the refresh token: the presented one is revoked, a new pair issued.
// =========================================================
func (h *AuthController) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return apierr.Validation("invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(err)
	}

	userID, err := service.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return unauthorized("invalid refresh token")
	}

	var rt authModel.RefreshTokenModel
	if err := h.DB.First(&rt,
		"refresh_token_value = ? AND refresh_token_user_id = ?",
		req.RefreshToken, userID,
	).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return unauthorized("refresh token not recognized")
		}
		return apierr.Store(err)
	}
	if rt.RefreshTokenRevokedAt != nil || time.Now().After(rt.RefreshTokenExpiresAt) {
		return unauthorized("refresh token expired or revoked")
	}

	var u userModel.UserModel
	if err := h.DB.First(&u, "user_id = ?", userID).Error; err != nil {
		return apierr.StoreNotFound(err, "USER_NOT_FOUND", "user no longer exists")
	}
	if !u.UserIsActive {
		return forbidden("this account has been deactivated")
	}

	now := time.Now()
	if err := h.DB.Model(&rt).
		Update("refresh_token_revoked_at", &now).Error; err != nil {
		return apierr.Store(err)
	}
	return h.issueTokens(c, &u, "token refreshed")
}

// =========================================================
// LOGOUT - POST /api/auth/logout
// Blacklists the presented access token and drops the session entry.
// =========================================================
func (h *AuthController) Logout(c *fiber.Ctx) error {
	tokenString, ok := c.Locals("token_string").(string)
	if !ok || tokenString == "" {
		return unauthorized("missing bearer token")
	}

	entry := authModel.TokenBlacklist{
		Token:     tokenString,
		ExpiredAt: time.Now().Add(service.AccessTokenTTL),
	}
	if err := h.DB.Create(&entry).Error; err != nil {
		return apierr.Store(err)
	}

	if uid, ok := c.Locals("user_id").(string); ok && uid != "" {
		now := time.Now()
		if err := h.DB.Model(&authModel.RefreshTokenModel{}).
			Where("refresh_token_user_id = ? AND refresh_token_revoked_at IS NULL", uid).
			Update("refresh_token_revoked_at", &now).Error; err != nil {
			log.Printf("[WARN] revoke refresh tokens on logout: %v", err)
		}
	}

	h.Sessions.Remove(tokenString)
	return helper.JsonOK(c, "logged out", fiber.Map{})
}

// =========================================================
// ME - GET /api/auth/me
// The user fetch is bounded to 5 seconds; on timeout or store error the
// handler falls back to the session entry captured at login.
// =========================================================
func (h *AuthController) Me(c *fiber.Ctx) error {
	uid, ok := c.Locals("user_id").(string)
	if !ok || uid == "" {
		return unauthorized("missing user identity")
	}
	userID, err := uuid.Parse(uid)
	if err != nil {
		return unauthorized("invalid user identity")
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	var u userModel.UserModel
	if err := h.DB.WithContext(ctx).First(&u, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierr.NotFound("USER_NOT_FOUND", "user not found")
		}
		// Slow or unreachable store: answer from the login session instead.
		if tokenString, ok := c.Locals("token_string").(string); ok {
			if s, found := h.Sessions.Get(tokenString); found {
				log.Printf("[WARN] /me user fetch failed, serving session fallback: %v", err)
				return helper.JsonOK(c, "ok (session fallback)", fiber.Map{
					"user_id":        s.UserID,
					"user_full_name": s.FullName,
					"user_role":      s.Role,
				})
			}
		}
		return apierr.Store(err)
	}
	return helper.JsonOK(c, "ok", dto.ToUserResponse(&u))
}

/* =========================
   internals
   ========================= */

func (h *AuthController) issueTokens(c *fiber.Ctx, u *userModel.UserModel, message string) error {
	accessToken, err := service.CreateAccessToken(u)
	if err != nil {
		return apierr.Unexpected(err)
	}
	refreshToken, expiresAt, err := service.CreateRefreshToken(u)
	if err != nil {
		return apierr.Unexpected(err)
	}

	rt := authModel.RefreshTokenModel{
		RefreshTokenUserID:    u.UserID,
		RefreshTokenValue:     refreshToken,
		RefreshTokenExpiresAt: expiresAt,
	}
	if err := h.DB.Create(&rt).Error; err != nil {
		return apierr.Store(err)
	}

	h.Sessions.Set(accessToken, sessions.Session{
		UserID:    u.UserID.String(),
		Role:      u.UserRole,
		FullName:  u.UserFullName,
		ExpiresAt: time.Now().Add(service.AccessTokenTTL),
	})

	return helper.JsonOK(c, message, dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.ToUserResponse(u),
	})
}

func unauthorized(message string) *apierr.Error {
	return &apierr.Error{
		Kind:    apierr.KindValidation,
		Status:  fiber.StatusUnauthorized,
		Code:    "UNAUTHORIZED",
		Message: message,
	}
}

func forbidden(message string) *apierr.Error {
	return &apierr.Error{
		Kind:    apierr.KindValidation,
		Status:  fiber.StatusForbidden,
		Code:    "FORBIDDEN",
		Message: message,
	}
}
