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

// ErrUsernameTaken rejects an admin creation with a username another
// account already uses.
var ErrUsernameTaken = errors.New("username is already taken")

// CreateAdminUseCase creates a back-office account. Only super admins may
// do this.
type CreateAdminUseCase struct {
	adminRepo port.AdminRepository
}

// NewCreateAdminUseCase wires dependencies.
func NewCreateAdminUseCase(adminRepo port.AdminRepository) *CreateAdminUseCase {
	return &CreateAdminUseCase{adminRepo: adminRepo}
}

// Execute verifies the actor is a super admin and creates the account.
func (uc *CreateAdminUseCase) Execute(ctx context.Context, req dto.CreateAdminRequest) (dto.AdminResponse, error) {
	now := time.Now().UTC()

	actor, err := uc.adminRepo.FindByID(ctx, req.ActorID)
	if err != nil {
		return dto.AdminResponse{}, fmt.Errorf("find actor: %w", err)
	}
	if !actor.IsSuper() {
		return dto.AdminResponse{}, model.ErrAccessDenied
	}

	if _, err := uc.adminRepo.FindByUsername(ctx, req.Username); err == nil {
		return dto.AdminResponse{}, ErrUsernameTaken
	} else if !errors.Is(err, model.ErrAdminNotFound) {
		return dto.AdminResponse{}, fmt.Errorf("check username: %w", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return dto.AdminResponse{}, fmt.Errorf("hash password: %w", err)
	}

	admin, err := model.NewAdmin(req.Username, hash, req.Role, now)
	if err != nil {
		return dto.AdminResponse{}, fmt.Errorf("create admin: %w", err)
	}

	if err := uc.adminRepo.Save(ctx, admin); err != nil {
		return dto.AdminResponse{}, fmt.Errorf("save admin: %w", err)
	}
	return toAdminResponse(admin), nil
}
