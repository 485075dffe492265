package mysql

import (
	"context"

	rateDomain "loanbook-backend/internal/domain/rate"

	"gorm.io/gorm"
)

type RateRepository struct{ db *gorm.DB }

func NewRateRepository(db *gorm.DB) *RateRepository { return &RateRepository{db: db} }

func (r *RateRepository) Create(ctx context.Context, ir *rateDomain.InterestRate) error {
	return r.db.WithContext(ctx).Create(ir).Error
}

func (r *RateRepository) Save(ctx context.Context, ir *rateDomain.InterestRate) error {
	return r.db.WithContext(ctx).Save(ir).Error
}

func (r *RateRepository) GetByRateID(ctx context.Context, rateID string) (*rateDomain.InterestRate, error) {
	var out rateDomain.InterestRate
	res := r.db.WithContext(ctx).Where("rate_id = ?", rateID).First(&out)
	return &out, res.Error
}

func (r *RateRepository) List(ctx context.Context) ([]rateDomain.InterestRate, error) {
	var out []rateDomain.InterestRate
	res := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}
