package rate

import (
	"context"
	"errors"
	"time"

	"loanbook-backend/internal/domain/rate"
	"loanbook-backend/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var pctCeiling = decimal.NewFromInt(100)

type Usecase struct{ repo rate.Repository }

func NewUsecase(r rate.Repository) *Usecase { return &Usecase{repo: r} }

type CreateInput struct {
	Name        string
	RatePercent decimal.Decimal
	Active      *bool
}

type UpdateInput struct {
	Name        *string
	RatePercent *decimal.Decimal
	Active      *bool
}

type RateDTO struct {
	RateID      string    `json:"rate_id"`
	Name        string    `json:"name"`
	RatePercent string    `json:"rate_percent"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toDTO(r *rate.InterestRate) *RateDTO {
	return &RateDTO{
		RateID:      r.RateID,
		Name:        r.Name,
		RatePercent: r.RatePercent.String(),
		Active:      r.Active,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func validPercent(p decimal.Decimal) bool {
	return !p.IsNegative() && p.LessThanOrEqual(pctCeiling)
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*RateDTO, error) {
	if in.Name == "" {
		return nil, errors.New("name is required")
	}
	if !validPercent(in.RatePercent) {
		return nil, errors.New("rate_percent must be between 0 and 100")
	}
	r := &rate.InterestRate{
		RateID:      id.NewID32(),
		Name:        in.Name,
		RatePercent: in.RatePercent,
		Active:      true,
	}
	if in.Active != nil {
		r.Active = *in.Active
	}
	if err := u.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return toDTO(r), nil
}

func (u *Usecase) Get(ctx context.Context, rateID string) (*RateDTO, error) {
	r, err := u.repo.GetByRateID(ctx, rateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, rate.ErrNotFound
		}
		return nil, err
	}
	return toDTO(r), nil
}

// Update edits the live rate definition. Loans that already snapshotted the
// percent are untouched.
func (u *Usecase) Update(ctx context.Context, rateID string, in UpdateInput) (*RateDTO, error) {
	r, err := u.repo.GetByRateID(ctx, rateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, rate.ErrNotFound
		}
		return nil, err
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, errors.New("name cannot be empty")
		}
		r.Name = *in.Name
	}
	if in.RatePercent != nil {
		if !validPercent(*in.RatePercent) {
			return nil, errors.New("rate_percent must be between 0 and 100")
		}
		r.RatePercent = *in.RatePercent
	}
	if in.Active != nil {
		r.Active = *in.Active
	}
	if err := u.repo.Save(ctx, r); err != nil {
		return nil, err
	}
	return toDTO(r), nil
}

func (u *Usecase) List(ctx context.Context) ([]RateDTO, error) {
	rs, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]RateDTO, 0, len(rs))
	for i := range rs {
		out = append(out, *toDTO(&rs[i]))
	}
	return out, nil
}
