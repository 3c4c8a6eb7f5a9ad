package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Sidiqjon/debt-manager/internal/application/dto"
	"github.com/Sidiqjon/debt-manager/internal/domain/model"
	"github.com/Sidiqjon/debt-manager/internal/domain/port"
)

// SaveTemplateUseCase creates or updates an SMS template. Sellers own their
// templates; admins save global ones with an empty seller ID.
type SaveTemplateUseCase struct {
	templateRepo port.TemplateRepository
}

// NewSaveTemplateUseCase wires dependencies.
func NewSaveTemplateUseCase(templateRepo port.TemplateRepository) *SaveTemplateUseCase {
	return &SaveTemplateUseCase{templateRepo: templateRepo}
}

// Execute saves the template.
func (uc *SaveTemplateUseCase) Execute(ctx context.Context, req dto.SaveTemplateRequest) (dto.TemplateResponse, error) {
	now := time.Now().UTC()

	if req.TemplateID == "" {
		template, err := model.NewMessageTemplate(req.SellerID, req.Text, now)
		if err != nil {
			return dto.TemplateResponse{}, err
		}
		if err := uc.templateRepo.Save(ctx, template); err != nil {
			return dto.TemplateResponse{}, fmt.Errorf("save template: %w", err)
		}
		return toTemplateResponse(template), nil
	}

	template, err := uc.templateRepo.FindByID(ctx, req.TemplateID)
	if err != nil {
		return dto.TemplateResponse{}, fmt.Errorf("find template: %w", err)
	}
	// Only the owner edits a template; global ones belong to the back office.
	if template.SellerID() != req.SellerID {
		return dto.TemplateResponse{}, model.ErrAccessDenied
	}

	template, err = template.UpdateText(req.Text, now)
	if err != nil {
		return dto.TemplateResponse{}, err
	}
	if err := uc.templateRepo.Update(ctx, template); err != nil {
		return dto.TemplateResponse{}, fmt.Errorf("update template: %w", err)
	}
	return toTemplateResponse(template), nil
}

// ListTemplatesUseCase returns the templates a seller can use.
type ListTemplatesUseCase struct {
	templateRepo port.TemplateRepository
}

// NewListTemplatesUseCase wires dependencies.
func NewListTemplatesUseCase(templateRepo port.TemplateRepository) *ListTemplatesUseCase {
	return &ListTemplatesUseCase{templateRepo: templateRepo}
}

// Execute lists the seller's templates plus the global ones.
func (uc *ListTemplatesUseCase) Execute(ctx context.Context, sellerID string) ([]dto.TemplateResponse, error) {
	templates, err := uc.templateRepo.ListVisibleTo(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	out := make([]dto.TemplateResponse, 0, len(templates))
	for _, template := range templates {
		out = append(out, toTemplateResponse(template))
	}
	return out, nil
}

// DeleteTemplateUseCase removes a template its owner no longer wants.
type DeleteTemplateUseCase struct {
	templateRepo port.TemplateRepository
}

// NewDeleteTemplateUseCase wires dependencies.
func NewDeleteTemplateUseCase(templateRepo port.TemplateRepository) *DeleteTemplateUseCase {
	return &DeleteTemplateUseCase{templateRepo: templateRepo}
}

// Execute deletes the template after an ownership check.
func (uc *DeleteTemplateUseCase) Execute(ctx context.Context, sellerID, templateID string) error {
	template, err := uc.templateRepo.FindByID(ctx, templateID)
	if err != nil {
		return fmt.Errorf("find template: %w", err)
	}
	if template.SellerID() != sellerID {
		return model.ErrAccessDenied
	}
	if err := uc.templateRepo.Delete(ctx, templateID); err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	return nil
}
