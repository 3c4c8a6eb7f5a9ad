package usecase

import (
	"github.com/Sidiqjon/debt-manager/internal/application/dto"
	"github.com/Sidiqjon/debt-manager/internal/domain/model"
)

func toDebtResponse(debt model.Debt) dto.DebtResponse {
	schedule := debt.Schedule()
	installments := make([]dto.InstallmentResponse, 0, len(schedule))
	for _, inst := range schedule {
		installments = append(installments, dto.InstallmentResponse{
			ID:         inst.ID,
			Number:     inst.Number,
			Amount:     inst.Amount,
			PaidAmount: inst.PaidAmount,
			DueDate:    inst.DueDate,
			PaidDate:   inst.PaidDate,
			IsPaid:     inst.IsPaid,
		})
	}

	return dto.DebtResponse{
		ID:            debt.ID(),
		DebtorID:      debt.DebtorID(),
		ProductName:   debt.ProductName(),
		Amount:        debt.Amount(),
		TotalPaid:     debt.TotalPaid(),
		Remaining:     debt.RemainingAmount(),
		Date:          debt.Date(),
		Deadline:      debt.Deadline().String(),
		Paid:          debt.Paid(),
		Comment:       debt.Comment(),
		ProductImages: debt.ProductImages(),
		Schedule:      installments,
		CreatedAt:     debt.CreatedAt(),
		UpdatedAt:     debt.UpdatedAt(),
	}
}

func toPaymentResponse(payment model.Payment) dto.PaymentResponse {
	allocations := make([]dto.AllocationResponse, 0, len(payment.Allocations))
	for _, alloc := range payment.Allocations {
		allocations = append(allocations, dto.AllocationResponse{
			InstallmentID: alloc.InstallmentID,
			Amount:        alloc.Amount,
		})
	}

	return dto.PaymentResponse{
		ID:          payment.ID,
		DebtID:      payment.DebtID,
		DebtorID:    payment.DebtorID,
		Amount:      payment.Amount,
		Allocations: allocations,
		CreatedAt:   payment.CreatedAt,
	}
}

func toDebtorResponse(debtor model.Debtor) dto.DebtorResponse {
	return dto.DebtorResponse{
		ID:           debtor.ID(),
		FullName:     debtor.FullName(),
		Address:      debtor.Address(),
		Note:         debtor.Note(),
		PhoneNumbers: debtor.PhoneNumbers(),
		Images:       debtor.Images(),
		IsFavorite:   debtor.IsFavorite(),
		CreatedAt:    debtor.CreatedAt(),
		UpdatedAt:    debtor.UpdatedAt(),
	}
}

func toSellerResponse(seller model.Seller) dto.SellerResponse {
	return dto.SellerResponse{
		ID:          seller.ID(),
		FullName:    seller.FullName(),
		PhoneNumber: seller.PhoneNumber(),
		Email:       seller.Email(),
		Image:       seller.Image(),
		Wallet:      seller.Wallet(),
		IsActive:    seller.IsActive(),
		CreatedAt:   seller.CreatedAt(),
	}
}

func toAdminResponse(admin model.Admin) dto.AdminResponse {
	return dto.AdminResponse{
		ID:        admin.ID(),
		Username:  admin.Username(),
		Role:      admin.Role(),
		IsActive:  admin.IsActive(),
		CreatedAt: admin.CreatedAt(),
	}
}

func toMessageResponse(message model.Message) dto.MessageResponse {
	return dto.MessageResponse{
		ID:        message.ID(),
		DebtorID:  message.DebtorID(),
		Text:      message.Text(),
		Status:    message.Status(),
		SentAt:    message.SentAt(),
		CreatedAt: message.CreatedAt(),
	}
}

func toTemplateResponse(template model.MessageTemplate) dto.TemplateResponse {
	return dto.TemplateResponse{
		ID:        template.ID(),
		SellerID:  template.SellerID(),
		Text:      template.Text(),
		IsGlobal:  template.IsGlobal(),
		CreatedAt: template.CreatedAt(),
		UpdatedAt: template.UpdatedAt(),
	}
}
