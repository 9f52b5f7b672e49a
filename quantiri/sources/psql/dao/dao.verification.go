package dao

import (
	"context"
	"quantiri/quantiri/sources/psql/models"
	"time"

	"gorm.io/gorm"
)

type VerificationTokenDAO struct {
	DB *gorm.DB
}

func NewVerificationTokenDAO(db *gorm.DB) *VerificationTokenDAO {
	return &VerificationTokenDAO{DB: db}
}

// FindToken looks up a token row by (hashed token, email). Only the hash
// ever reaches this layer.
func (dao *VerificationTokenDAO) FindToken(ctx context.Context, hashedToken, email string) (*models.VerificationToken, error) {
	var token models.VerificationToken
	err := dao.DB.WithContext(ctx).
		Where("token = ? AND identifier = ?", hashedToken, email).
		First(&token).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// DeleteTokensForEmail removes every token row for the identifier. Called
// on issue (invalidate prior tokens) and on every terminal consume path.
func (dao *VerificationTokenDAO) DeleteTokensForEmail(ctx context.Context, email string) error {
	return dao.DB.WithContext(ctx).
		Where("identifier = ?", email).
		Delete(&models.VerificationToken{}).Error
}

func (dao *VerificationTokenDAO) CreateToken(ctx context.Context, hashedToken, email string, expires time.Time) (*models.VerificationToken, error) {
	token := models.VerificationToken{
		Identifier: email,
		Token:      hashedToken,
		Expires:    expires,
	}
	err := dao.DB.WithContext(ctx).Create(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// CountTokensForEmail reports how many token rows exist for an identifier.
func (dao *VerificationTokenDAO) CountTokensForEmail(ctx context.Context, email string) (int64, error) {
	var count int64
	err := dao.DB.WithContext(ctx).
		Model(&models.VerificationToken{}).
		Where("identifier = ?", email).
		Count(&count).Error
	return count, err
}
