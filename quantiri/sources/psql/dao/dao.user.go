package dao

import (
	"context"
	"quantiri/quantiri/sources/psql/models"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserDAO struct {
	DB *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{DB: db}
}

func (dao *UserDAO) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := dao.DB.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (dao *UserDAO) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := dao.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (dao *UserDAO) CreateUser(ctx context.Context, name *string, email, hashedPassword string) (*models.User, error) {
	user := models.User{
		Name:           name,
		Email:          email,
		HashedPassword: hashedPassword,
	}
	err := dao.DB.WithContext(ctx).Create(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// MarkEmailVerified stamps the verification time on the user row.
func (dao *UserDAO) MarkEmailVerified(ctx context.Context, email string, when time.Time) error {
	return dao.DB.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Update("email_verified", when).Error
}
