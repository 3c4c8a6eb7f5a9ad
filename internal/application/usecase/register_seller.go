package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Sidiqjon/debt-manager/internal/application/dto"
	"github.com/Sidiqjon/debt-manager/internal/domain/model"
	"github.com/Sidiqjon/debt-manager/internal/domain/port"
	"github.com/Sidiqjon/debt-manager/pkg/auth"
)

// ErrPhoneNumberTaken rejects a registration with a phone number another
// seller already uses.
var ErrPhoneNumberTaken = errors.New("phone number is already registered")

// RegisterSellerUseCase creates a seller account with a hashed password.
type RegisterSellerUseCase struct {
	sellerRepo port.SellerRepository
}

// NewRegisterSellerUseCase wires dependencies.
func NewRegisterSellerUseCase(sellerRepo port.SellerRepository) *RegisterSellerUseCase {
	return &RegisterSellerUseCase{sellerRepo: sellerRepo}
}

// Execute registers the seller.
func (uc *RegisterSellerUseCase) Execute(ctx context.Context, req dto.RegisterSellerRequest) (dto.SellerResponse, error) {
	now := time.Now().UTC()

	// Phone numbers identify sellers at login; enforce uniqueness up front.
	if _, err := uc.sellerRepo.FindByPhoneNumber(ctx, req.PhoneNumber); err == nil {
		return dto.SellerResponse{}, ErrPhoneNumberTaken
	} else if !errors.Is(err, model.ErrSellerNotFound) {
		return dto.SellerResponse{}, fmt.Errorf("check phone number: %w", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return dto.SellerResponse{}, fmt.Errorf("hash password: %w", err)
	}

	seller, err := model.NewSeller(req.FullName, req.PhoneNumber, req.Email, hash, req.Image, now)
	if err != nil {
		return dto.SellerResponse{}, fmt.Errorf("create seller: %w", err)
	}

	if err := uc.sellerRepo.Save(ctx, seller); err != nil {
		return dto.SellerResponse{}, fmt.Errorf("save seller: %w", err)
	}
	return toSellerResponse(seller), nil
}
