package controllers

import (
	"context"
	"errors"
	"strings"
	"testing"

	"quantiri/quantiri/services/verification"
	"quantiri/quantiri/sources/psql/dao"
	"quantiri/quantiri/sources/psql/models"
	"quantiri/quantiri/types"

	"github.com/golang-jwt/jwt/v5"
)

func setupAuthEnv(t *testing.T) (*AuthController, *dao.UserDAO, *fakeMailer) {
	db := setupTestDB(t)
	users := dao.NewUserDAO(db)
	tokens := dao.NewVerificationTokenDAO(db)
	mailer := &fakeMailer{}
	verifier := verification.NewService(users, tokens, mailer, "http://localhost:3000")
	return NewAuthController(users, verifier, testConfig()), users, mailer
}

func signUpReq(email string) types.SignUpRequest {
	return types.SignUpRequest{
		Email:           email,
		Password:        "secret-password",
		ConfirmPassword: "secret-password",
	}
}

func TestSignUpCreatesAccountAndSendsVerification(t *testing.T) {
	ctrl, users, mailer := setupAuthEnv(t)
	ctx := context.Background()

	if err := ctrl.SignUp(ctx, signUpReq("a@x.com")); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	user, err := users.GetUserByEmail(ctx, "a@x.com")
	if err != nil || user == nil {
		t.Fatalf("account not created: %v", err)
	}
	if user.EmailVerified != nil {
		t.Errorf("new account must start unverified")
	}
	if user.HashedPassword == "secret-password" {
		t.Errorf("password must be stored hashed")
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("expected 1 verification email, got %d", len(mailer.sent))
	}
	if mailer.sent[0].To != "a@x.com" {
		t.Errorf("verification sent to wrong address: %q", mailer.sent[0].To)
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	ctrl, users, _ := setupAuthEnv(t)
	ctx := context.Background()

	if err := ctrl.SignUp(ctx, signUpReq("a@x.com")); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	err := ctrl.SignUp(ctx, signUpReq("a@x.com"))
	if !errors.Is(err, types.ErrEmailTaken) {
		t.Fatalf("expected email taken, got %v", err)
	}

	// emails are normalized before the uniqueness check
	err = ctrl.SignUp(ctx, signUpReq("  A@X.COM "))
	if !errors.Is(err, types.ErrEmailTaken) {
		t.Fatalf("expected email taken for case variant, got %v", err)
	}

	var count int64
	if err := users.DB.Model(&models.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("duplicate signup must not create a second account, got %d", count)
	}
}

func TestSignUpValidation(t *testing.T) {
	ctrl, _, mailer := setupAuthEnv(t)
	ctx := context.Background()

	cases := []types.SignUpRequest{
		{Email: "not-an-email", Password: "secret-password", ConfirmPassword: "secret-password"},
		{Email: "a@x.com", Password: "short", ConfirmPassword: "short"},
		{Email: "a@x.com", Password: "secret-password", ConfirmPassword: "different-thing"},
	}
	for _, req := range cases {
		err := ctrl.SignUp(ctx, req)
		var verr *types.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("expected validation error for %+v, got %v", req, err)
		}
		if !errors.Is(err, types.ErrInvalidInput) {
			t.Errorf("validation errors must unwrap to invalid input")
		}
	}
	if len(mailer.sent) != 0 {
		t.Errorf("invalid signups must not send mail")
	}
}

func TestSignInUnverifiedReissuesVerification(t *testing.T) {
	ctrl, _, mailer := setupAuthEnv(t)
	ctx := context.Background()

	if err := ctrl.SignUp(ctx, signUpReq("a@x.com")); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	_, err := ctrl.SignIn(ctx, types.SignInRequest{Email: "a@x.com", Password: "secret-password"})
	if !errors.Is(err, types.ErrEmailNotVerified) {
		t.Fatalf("expected email not verified, got %v", err)
	}
	// signup email plus the fresh one from the sign-in attempt
	if len(mailer.sent) != 2 {
		t.Errorf("unverified sign-in must trigger a fresh verification email, got %d sent", len(mailer.sent))
	}
}

func TestSignInAfterVerification(t *testing.T) {
	ctrl, _, mailer := setupAuthEnv(t)
	ctx := context.Background()

	if err := ctrl.SignUp(ctx, signUpReq("a@x.com")); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	raw := rawTokenFromMail(t, mailer.sent[0].HTML)
	if err := ctrl.Verify(ctx, raw, "a@x.com"); err != nil {
		t.Fatalf("verify failed: %v", err)
	}

	token, err := ctrl.SignIn(ctx, types.SignInRequest{Email: "a@x.com", Password: "secret-password"})
	if err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("session token does not verify: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["user_id"] == "" {
		t.Errorf("token missing user_id claim")
	}
}

func TestSignInBadCredentials(t *testing.T) {
	ctrl, _, mailer := setupAuthEnv(t)
	ctx := context.Background()

	if err := ctrl.SignUp(ctx, signUpReq("a@x.com")); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	raw := rawTokenFromMail(t, mailer.sent[0].HTML)
	if err := ctrl.Verify(ctx, raw, "a@x.com"); err != nil {
		t.Fatalf("verify failed: %v", err)
	}

	_, err := ctrl.SignIn(ctx, types.SignInRequest{Email: "a@x.com", Password: "wrong-password"})
	if !errors.Is(err, types.ErrBadCredentials) {
		t.Errorf("wrong password should read as bad credentials, got %v", err)
	}
	_, err = ctrl.SignIn(ctx, types.SignInRequest{Email: "nobody@x.com", Password: "secret-password"})
	if !errors.Is(err, types.ErrBadCredentials) {
		t.Errorf("unknown email should read as bad credentials, got %v", err)
	}
}

func TestVerifyRejectsBadLink(t *testing.T) {
	ctrl, _, _ := setupAuthEnv(t)
	ctx := context.Background()

	var verr *types.ValidationError
	if err := ctrl.Verify(ctx, "", "a@x.com"); !errors.As(err, &verr) {
		t.Errorf("missing token should be a validation error, got %v", err)
	}
	if err := ctrl.Verify(ctx, "deadbeef", "a@x.com"); !errors.Is(err, types.ErrVerificationInvalid) {
		t.Errorf("unknown token should be invalid, got %v", err)
	}
}

// rawTokenFromMail pulls the raw token out of the emailed link.
func rawTokenFromMail(t *testing.T, html string) string {
	t.Helper()
	idx := strings.Index(html, "token=")
	if idx < 0 {
		t.Fatalf("no token in mail body: %q", html)
	}
	rest := html[idx+len("token="):]
	if end := strings.IndexAny(rest, `&"`); end >= 0 {
		rest = rest[:end]
	}
	return rest
}
