// quantiri/controllers/auth.go
package controllers

import (
	"context"
	"net/mail"
	"quantiri/quantiri/config"
	"quantiri/quantiri/services/verification"
	"quantiri/quantiri/sources/psql/dao"
	"quantiri/quantiri/types"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthController struct {
	users    *dao.UserDAO
	verifier *verification.Service
	cfg      config.Config
}

func NewAuthController(users *dao.UserDAO, verifier *verification.Service, cfg config.Config) *AuthController {
	return &AuthController{
		users:    users,
		verifier: verifier,
		cfg:      cfg,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateSignUp(req types.SignUpRequest) *types.ValidationError {
	var issues []types.FieldError
	if req.Name != nil && len(*req.Name) > 80 {
		issues = append(issues, types.FieldError{Field: "name", Message: "Name must be at most 80 characters"})
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		issues = append(issues, types.FieldError{Field: "email", Message: "Enter a valid email"})
	}
	if len(req.Password) < 8 {
		issues = append(issues, types.FieldError{Field: "password", Message: "Password must be at least 8 characters"})
	}
	if req.Password != req.ConfirmPassword {
		issues = append(issues, types.FieldError{Field: "confirmPassword", Message: "Passwords do not match"})
	}
	if len(issues) > 0 {
		return types.NewValidationError(issues...)
	}
	return nil
}

// SignUp registers a new account and issues the first verification email.
func (c *AuthController) SignUp(ctx context.Context, req types.SignUpRequest) error {
	if verr := validateSignUp(req); verr != nil {
		return verr
	}
	email := normalizeEmail(req.Email)

	existing, err := c.users.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return types.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), 10)
	if err != nil {
		return err
	}
	if _, err := c.users.CreateUser(ctx, req.Name, email, string(hashed)); err != nil {
		return err
	}

	return c.verifier.Issue(ctx, email)
}

// SignIn checks credentials and returns a signed session token. An
// unverified account gets a fresh verification email and a "verify email"
// error instead of an authentication failure.
func (c *AuthController) SignIn(ctx context.Context, req types.SignInRequest) (string, error) {
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return "", types.NewValidationError(types.FieldError{Field: "email", Message: "Enter a valid email"})
	}
	if req.Password == "" {
		return "", types.NewValidationError(types.FieldError{Field: "password", Message: "Password is required"})
	}
	email := normalizeEmail(req.Email)

	user, err := c.users.GetUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", types.ErrBadCredentials
	}

	if user.EmailVerified == nil {
		if err := c.verifier.Issue(ctx, email); err != nil {
			return "", err
		}
		return "", types.ErrEmailNotVerified
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return "", types.ErrBadCredentials
	}

	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(c.cfg.JWTSecret))
}

// Verify consumes a raw verification token from the emailed link.
func (c *AuthController) Verify(ctx context.Context, rawToken, email string) error {
	if rawToken == "" || email == "" {
		return types.NewValidationError(types.FieldError{Field: "token", Message: "Invalid verification link"})
	}
	return c.verifier.Consume(ctx, rawToken, normalizeEmail(email))
}
