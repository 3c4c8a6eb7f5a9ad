package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Sidiqjon/debt-manager/internal/application/dto"
	"github.com/Sidiqjon/debt-manager/internal/domain/model"
	"github.com/Sidiqjon/debt-manager/internal/domain/port"
)

// SendMessageUseCase sends one SMS to a debtor. Each message costs a fixed
// amount debited from the seller's wallet before dispatch.
type SendMessageUseCase struct {
	messageRepo  port.MessageRepository
	templateRepo port.TemplateRepository
	debtorRepo   port.DebtorRepository
	sellerRepo   port.SellerRepository
	gateway      port.SMSGateway
	messageCost  decimal.Decimal
	logger       *slog.Logger
}

// NewSendMessageUseCase wires dependencies.
func NewSendMessageUseCase(
	messageRepo port.MessageRepository,
	templateRepo port.TemplateRepository,
	debtorRepo port.DebtorRepository,
	sellerRepo port.SellerRepository,
	gateway port.SMSGateway,
	messageCost decimal.Decimal,
	logger *slog.Logger,
) *SendMessageUseCase {
	return &SendMessageUseCase{
		messageRepo:  messageRepo,
		templateRepo: templateRepo,
		debtorRepo:   debtorRepo,
		sellerRepo:   sellerRepo,
		gateway:      gateway,
		messageCost:  messageCost,
		logger:       logger,
	}
}

// Execute resolves the text, debits the wallet, dispatches the SMS and
// records the outcome. A gateway failure refunds the wallet.
func (uc *SendMessageUseCase) Execute(ctx context.Context, req dto.SendMessageRequest) (dto.MessageResponse, error) {
	now := time.Now().UTC()

	// 1. Resolve the message text.
	text := req.Text
	if req.TemplateID != "" {
		template, err := uc.templateRepo.FindByID(ctx, req.TemplateID)
		if err != nil {
			return dto.MessageResponse{}, fmt.Errorf("find template: %w", err)
		}
		if !template.VisibleTo(req.SellerID) {
			return dto.MessageResponse{}, model.ErrAccessDenied
		}
		text = template.Text()
	}

	// 2. The debtor must belong to the seller and have a phone number.
	debtor, err := uc.debtorRepo.FindByID(ctx, req.SellerID, req.DebtorID)
	if err != nil {
		return dto.MessageResponse{}, fmt.Errorf("find debtor: %w", err)
	}
	phones := debtor.PhoneNumbers()
	if len(phones) == 0 {
		return dto.MessageResponse{}, fmt.Errorf("debtor %s has no phone number", debtor.ID())
	}

	message, err := model.NewMessage(req.SellerID, req.DebtorID, text, now)
	if err != nil {
		return dto.MessageResponse{}, err
	}

	// 3. Charge the wallet before dispatch.
	seller, err := uc.sellerRepo.FindByID(ctx, req.SellerID)
	if err != nil {
		return dto.MessageResponse{}, fmt.Errorf("find seller: %w", err)
	}
	seller, err = seller.DebitWallet(uc.messageCost, now)
	if err != nil {
		return dto.MessageResponse{}, err
	}
	if err := uc.sellerRepo.Update(ctx, seller); err != nil {
		return dto.MessageResponse{}, fmt.Errorf("debit wallet: %w", err)
	}

	// 4. Dispatch and record the outcome. Failures refund the charge.
	if err := uc.gateway.Send(ctx, phones[0], text); err != nil {
		uc.logger.Warn("sms dispatch failed", "debtor_id", debtor.ID(), "error", err)
		message = message.MarkFailed()

		refunded, refundErr := seller.TopUpWallet(uc.messageCost, now)
		if refundErr == nil {
			refundErr = uc.sellerRepo.Update(ctx, refunded)
		}
		if refundErr != nil {
			uc.logger.Error("sms refund failed", "seller_id", seller.ID(), "error", refundErr)
		}
	} else {
		message = message.MarkSent(time.Now().UTC())
	}

	if err := uc.messageRepo.Save(ctx, message); err != nil {
		return dto.MessageResponse{}, fmt.Errorf("save message: %w", err)
	}
	return toMessageResponse(message), nil
}

// ListMessagesUseCase pages through a seller's SMS history.
type ListMessagesUseCase struct {
	messageRepo port.MessageRepository
}

// NewListMessagesUseCase wires dependencies.
func NewListMessagesUseCase(messageRepo port.MessageRepository) *ListMessagesUseCase {
	return &ListMessagesUseCase{messageRepo: messageRepo}
}

// Execute lists messages, optionally scoped to one debtor.
func (uc *ListMessagesUseCase) Execute(ctx context.Context, sellerID, debtorID string, limit, offset int) ([]dto.MessageResponse, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}

	var (
		messages []model.Message
		err      error
	)
	if debtorID != "" {
		messages, err = uc.messageRepo.ListByDebtorID(ctx, sellerID, debtorID)
	} else {
		messages, err = uc.messageRepo.ListBySellerID(ctx, sellerID, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	out := make([]dto.MessageResponse, 0, len(messages))
	for _, message := range messages {
		out = append(out, toMessageResponse(message))
	}
	return out, nil
}
