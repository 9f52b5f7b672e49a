// quantiri/services/verification/verification.go
package verification

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"quantiri/quantiri/services/mail"
	"quantiri/quantiri/sources/psql/dao"
	"quantiri/quantiri/types"
	"quantiri/quantiri/utils/logging"
	"time"

	"go.uber.org/zap"
)

// TokenTTL is how long a verification link stays valid.
const TokenTTL = 30 * time.Minute

type Service struct {
	users  *dao.UserDAO
	tokens *dao.VerificationTokenDAO
	mailer mail.Mailer

	baseURL string
	now     func() time.Time
}

func NewService(users *dao.UserDAO, tokens *dao.VerificationTokenDAO, mailer mail.Mailer, baseURL string) *Service {
	return &Service{
		users:   users,
		tokens:  tokens,
		mailer:  mailer,
		baseURL: baseURL,
		now:     time.Now,
	}
}

// HashToken maps a raw token to the form persisted in the store. The raw
// value itself is only ever transmitted in the verification link.
func HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// Issue creates a fresh single-use token for the email and sends the
// verification link. A silent no-op when no account exists for the email,
// so the endpoint never reveals account existence. Any prior tokens for
// the email are invalidated first.
func (s *Service) Issue(ctx context.Context, email string) error {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	if err := s.tokens.DeleteTokensForEmail(ctx, email); err != nil {
		return err
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return err
	}
	rawToken := hex.EncodeToString(buf)

	expires := s.now().Add(TokenTTL)
	if _, err := s.tokens.CreateToken(ctx, HashToken(rawToken), email, expires); err != nil {
		return err
	}

	verifyURL := fmt.Sprintf("%s/auth/verify?token=%s&email=%s",
		s.baseURL, url.QueryEscape(rawToken), url.QueryEscape(email))

	// Delivery failure is logged, not surfaced: the token row already
	// exists and the user can request another link by signing in again.
	msg := mail.Message{
		To:      email,
		Subject: "Verify your Quantiri account",
		HTML: fmt.Sprintf(`<div style="font-family:ui-sans-serif,system-ui">
  <h2 style="margin:0 0 12px">Welcome to Quantiri</h2>
  <p>Verify your email by clicking the link below:</p>
  <p><a href="%s">Verify Email</a></p>
  <p>This link expires in 30 minutes.</p>
</div>`, verifyURL),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		logging.ErrorLogger.Error("verification mail dispatch failed",
			zap.String("email", email), zap.Error(err))
	}
	return nil
}

// Consume validates a raw token for an email and marks the account
// verified. Tokens are deleted on every terminal path, so a second
// attempt with the same token always fails after the first success.
func (s *Service) Consume(ctx context.Context, rawToken, email string) error {
	token, err := s.tokens.FindToken(ctx, HashToken(rawToken), email)
	if err != nil {
		return err
	}
	if token == nil {
		return types.ErrVerificationInvalid
	}

	if s.now().After(token.Expires) {
		if err := s.tokens.DeleteTokensForEmail(ctx, email); err != nil {
			return err
		}
		return types.ErrVerificationExpired
	}

	if err := s.users.MarkEmailVerified(ctx, email, s.now()); err != nil {
		return err
	}
	return s.tokens.DeleteTokensForEmail(ctx, email)
}
