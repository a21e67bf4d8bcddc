package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/rohits-web03/cellportal/internal/models"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// AddDownloadQuota increments the user's consumed quota in a single UPDATE
// and returns the stored total.
func (r *UserRepository) AddDownloadQuota(ctx context.Context, userID string, bytes int64) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).
			Where("id = ?", userID).
			UpdateColumn("download_quota_used", gorm.Expr("download_quota_used + ?", bytes))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return tx.Model(&models.User{}).
			Where("id = ?", userID).
			Select("download_quota_used").
			Scan(&total).Error
	})
	if err != nil {
		return 0, fmt.Errorf("add download quota for %s: %w", userID, err)
	}
	return total, nil
}

// ResetDownloadQuotas zeroes every user's consumed quota at the start of a
// new quota period.
func (r *UserRepository) ResetDownloadQuotas(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.User{}).
		Where("download_quota_used > ?", 0).
		UpdateColumn("download_quota_used", 0)
	return res.RowsAffected, res.Error
}
