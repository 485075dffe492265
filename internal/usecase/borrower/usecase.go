package borrower

import (
	"context"
	"errors"
	"time"

	"loanbook-backend/internal/domain/borrower"
	"loanbook-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct{ repo borrower.Repository }

func NewUsecase(r borrower.Repository) *Usecase { return &Usecase{repo: r} }

type RegisterInput struct {
	FullName   string
	Phone      string
	Email      string
	Address    string
	NationalID string
}

// UpdateInput patches identity fields; nil means keep.
type UpdateInput struct {
	FullName   *string
	Phone      *string
	Email      *string
	Address    *string
	NationalID *string
}

type BorrowerDTO struct {
	BorrowerID string    `json:"borrower_id"`
	FullName   string    `json:"full_name"`
	Phone      string    `json:"phone,omitempty"`
	Email      string    `json:"email,omitempty"`
	Address    string    `json:"address,omitempty"`
	NationalID string    `json:"national_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func toDTO(b *borrower.Borrower) *BorrowerDTO {
	return &BorrowerDTO{
		BorrowerID: b.BorrowerID,
		FullName:   b.FullName,
		Phone:      b.Phone,
		Email:      b.Email,
		Address:    b.Address,
		NationalID: b.NationalID,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*BorrowerDTO, error) {
	if in.FullName == "" {
		return nil, errors.New("full_name is required")
	}
	b := &borrower.Borrower{
		BorrowerID: id.NewID32(),
		FullName:   in.FullName,
		Phone:      in.Phone,
		Email:      in.Email,
		Address:    in.Address,
		NationalID: in.NationalID,
	}
	if err := u.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return toDTO(b), nil
}

func (u *Usecase) Get(ctx context.Context, borrowerID string) (*BorrowerDTO, error) {
	b, err := u.repo.GetByBorrowerID(ctx, borrowerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, borrower.ErrNotFound
		}
		return nil, err
	}
	return toDTO(b), nil
}

func (u *Usecase) Update(ctx context.Context, borrowerID string, in UpdateInput) (*BorrowerDTO, error) {
	b, err := u.repo.GetByBorrowerID(ctx, borrowerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, borrower.ErrNotFound
		}
		return nil, err
	}
	if in.FullName != nil {
		if *in.FullName == "" {
			return nil, errors.New("full_name cannot be empty")
		}
		b.FullName = *in.FullName
	}
	if in.Phone != nil {
		b.Phone = *in.Phone
	}
	if in.Email != nil {
		b.Email = *in.Email
	}
	if in.Address != nil {
		b.Address = *in.Address
	}
	if in.NationalID != nil {
		b.NationalID = *in.NationalID
	}
	if err := u.repo.Save(ctx, b); err != nil {
		return nil, err
	}
	return toDTO(b), nil
}

func (u *Usecase) List(ctx context.Context) ([]BorrowerDTO, error) {
	bs, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]BorrowerDTO, 0, len(bs))
	for i := range bs {
		out = append(out, *toDTO(&bs[i]))
	}
	return out, nil
}
