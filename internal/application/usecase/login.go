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

// LoginSellerUseCase authenticates a seller by phone number and issues a
// JWT access token.
type LoginSellerUseCase struct {
	sellerRepo port.SellerRepository
	jwtService *auth.JWTService
}

// NewLoginSellerUseCase wires dependencies.
func NewLoginSellerUseCase(sellerRepo port.SellerRepository, jwtService *auth.JWTService) *LoginSellerUseCase {
	return &LoginSellerUseCase{sellerRepo: sellerRepo, jwtService: jwtService}
}

// Execute verifies the credentials and issues a token. A missing account
// and a wrong password produce the same error.
func (uc *LoginSellerUseCase) Execute(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	seller, err := uc.sellerRepo.FindByPhoneNumber(ctx, req.Login)
	if err != nil {
		if errors.Is(err, model.ErrSellerNotFound) {
			return dto.LoginResponse{}, model.ErrInvalidCredentials
		}
		return dto.LoginResponse{}, fmt.Errorf("find seller: %w", err)
	}

	if !auth.CheckPassword(seller.PasswordHash(), req.Password) {
		return dto.LoginResponse{}, model.ErrInvalidCredentials
	}
	if !seller.IsActive() {
		return dto.LoginResponse{}, model.ErrAccountDisabled
	}

	token, err := uc.jwtService.GenerateToken(seller.ID(), auth.RoleSeller)
	if err != nil {
		return dto.LoginResponse{}, fmt.Errorf("generate token: %w", err)
	}

	return dto.LoginResponse{
		AccessToken: token,
		Role:        auth.RoleSeller,
		UserID:      seller.ID(),
		ExpiresAt:   time.Now().UTC().Add(uc.jwtService.TokenTTL()),
	}, nil
}

// LoginAdminUseCase authenticates a back-office account by username.
type LoginAdminUseCase struct {
	adminRepo  port.AdminRepository
	jwtService *auth.JWTService
}

// NewLoginAdminUseCase wires dependencies.
func NewLoginAdminUseCase(adminRepo port.AdminRepository, jwtService *auth.JWTService) *LoginAdminUseCase {
	return &LoginAdminUseCase{adminRepo: adminRepo, jwtService: jwtService}
}

// Execute verifies the credentials and issues a token carrying the admin's
// role.
func (uc *LoginAdminUseCase) Execute(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	admin, err := uc.adminRepo.FindByUsername(ctx, req.Login)
	if err != nil {
		if errors.Is(err, model.ErrAdminNotFound) {
			return dto.LoginResponse{}, model.ErrInvalidCredentials
		}
		return dto.LoginResponse{}, fmt.Errorf("find admin: %w", err)
	}

	if !auth.CheckPassword(admin.PasswordHash(), req.Password) {
		return dto.LoginResponse{}, model.ErrInvalidCredentials
	}
	if !admin.IsActive() {
		return dto.LoginResponse{}, model.ErrAccountDisabled
	}

	role := auth.RoleAdmin
	if admin.IsSuper() {
		role = auth.RoleSuperAdmin
	}

	token, err := uc.jwtService.GenerateToken(admin.ID(), role)
	if err != nil {
		return dto.LoginResponse{}, fmt.Errorf("generate token: %w", err)
	}

	return dto.LoginResponse{
		AccessToken: token,
		Role:        role,
		UserID:      admin.ID(),
		ExpiresAt:   time.Now().UTC().Add(uc.jwtService.TokenTTL()),
	}, nil
}
