package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Sidiqjon/debt-manager/internal/application/dto"
	"github.com/Sidiqjon/debt-manager/internal/application/usecase"
	"github.com/Sidiqjon/debt-manager/internal/domain/model"
	"github.com/Sidiqjon/debt-manager/pkg/auth"
	"github.com/Sidiqjon/debt-manager/pkg/observability"
)

// Handler implements DebtServiceServer on top of the application use cases.
// The caller identity always comes from the JWT claims placed in the context
// by the auth interceptor; seller IDs on the wire are never trusted.
type Handler struct {
	UnimplementedDebtServiceServer

	registerSeller *usecase.RegisterSellerUseCase
	loginSeller    *usecase.LoginSellerUseCase
	loginAdmin     *usecase.LoginAdminUseCase

	createDebtor *usecase.CreateDebtorUseCase
	updateDebtor *usecase.UpdateDebtorUseCase
	getDebtor    *usecase.GetDebtorUseCase
	listDebtors  *usecase.ListDebtorsUseCase
	deleteDebtor *usecase.DeleteDebtorUseCase

	createDebt  *usecase.CreateDebtUseCase
	updateDebt  *usecase.UpdateDebtUseCase
	getDebt     *usecase.GetDebtUseCase
	listDebts   *usecase.ListDebtsUseCase
	deleteDebt  *usecase.DeleteDebtUseCase
	getSchedule *usecase.GetScheduleUseCase

	createPayment     *usecase.CreatePaymentUseCase
	deletePayment     *usecase.DeletePaymentUseCase
	getPayment        *usecase.GetPaymentUseCase
	listPayments      *usecase.ListPaymentsUseCase
	getPaymentHistory *usecase.GetPaymentHistoryUseCase

	sendMessage    *usecase.SendMessageUseCase
	listMessages   *usecase.ListMessagesUseCase
	saveTemplate   *usecase.SaveTemplateUseCase
	listTemplates  *usecase.ListTemplatesUseCase
	deleteTemplate *usecase.DeleteTemplateUseCase

	createAdmin  *usecase.CreateAdminUseCase
	listSellers  *usecase.ListSellersUseCase
	getSeller    *usecase.GetSellerUseCase
	updateSeller *usecase.UpdateSellerUseCase
	deleteSeller *usecase.DeleteSellerUseCase

	metrics *observability.Metrics
}

// HandlerUseCases bundles the use-case dependencies of the handler.
type HandlerUseCases struct {
	RegisterSeller *usecase.RegisterSellerUseCase
	LoginSeller    *usecase.LoginSellerUseCase
	LoginAdmin     *usecase.LoginAdminUseCase

	CreateDebtor *usecase.CreateDebtorUseCase
	UpdateDebtor *usecase.UpdateDebtorUseCase
	GetDebtor    *usecase.GetDebtorUseCase
	ListDebtors  *usecase.ListDebtorsUseCase
	DeleteDebtor *usecase.DeleteDebtorUseCase

	CreateDebt  *usecase.CreateDebtUseCase
	UpdateDebt  *usecase.UpdateDebtUseCase
	GetDebt     *usecase.GetDebtUseCase
	ListDebts   *usecase.ListDebtsUseCase
	DeleteDebt  *usecase.DeleteDebtUseCase
	GetSchedule *usecase.GetScheduleUseCase

	CreatePayment     *usecase.CreatePaymentUseCase
	DeletePayment     *usecase.DeletePaymentUseCase
	GetPayment        *usecase.GetPaymentUseCase
	ListPayments      *usecase.ListPaymentsUseCase
	GetPaymentHistory *usecase.GetPaymentHistoryUseCase

	SendMessage    *usecase.SendMessageUseCase
	ListMessages   *usecase.ListMessagesUseCase
	SaveTemplate   *usecase.SaveTemplateUseCase
	ListTemplates  *usecase.ListTemplatesUseCase
	DeleteTemplate *usecase.DeleteTemplateUseCase

	CreateAdmin  *usecase.CreateAdminUseCase
	ListSellers  *usecase.ListSellersUseCase
	GetSeller    *usecase.GetSellerUseCase
	UpdateSeller *usecase.UpdateSellerUseCase
	DeleteSeller *usecase.DeleteSellerUseCase
}

// NewHandler creates the gRPC handler.
func NewHandler(uc HandlerUseCases, metrics *observability.Metrics) *Handler {
	return &Handler{
		registerSeller: uc.RegisterSeller,
		loginSeller:    uc.LoginSeller,
		loginAdmin:     uc.LoginAdmin,
		createDebtor:   uc.CreateDebtor,
		updateDebtor:   uc.UpdateDebtor,
		getDebtor:      uc.GetDebtor,
		listDebtors:    uc.ListDebtors,
		deleteDebtor:   uc.DeleteDebtor,
		createDebt:     uc.CreateDebt,
		updateDebt:     uc.UpdateDebt,
		getDebt:        uc.GetDebt,
		listDebts:      uc.ListDebts,
		deleteDebt:     uc.DeleteDebt,
		getSchedule:    uc.GetSchedule,
		createPayment:     uc.CreatePayment,
		deletePayment:     uc.DeletePayment,
		getPayment:        uc.GetPayment,
		listPayments:      uc.ListPayments,
		getPaymentHistory: uc.GetPaymentHistory,
		sendMessage:    uc.SendMessage,
		listMessages:   uc.ListMessages,
		saveTemplate:   uc.SaveTemplate,
		listTemplates:  uc.ListTemplates,
		deleteTemplate: uc.DeleteTemplate,
		createAdmin:    uc.CreateAdmin,
		listSellers:    uc.ListSellers,
		getSeller:      uc.GetSeller,
		updateSeller:   uc.UpdateSeller,
		deleteSeller:   uc.DeleteSeller,
		metrics:        metrics,
	}
}

// ---------------------------------------------------------------------------
// Identity helpers
// ---------------------------------------------------------------------------

func sellerFrom(ctx context.Context) (string, error) {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "missing credentials")
	}
	if !claims.HasRole(auth.RoleSeller) {
		return "", status.Error(codes.PermissionDenied, "seller account required")
	}
	return claims.UserID, nil
}

func staffFrom(ctx context.Context) (*auth.Claims, error) {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing credentials")
	}
	if !claims.IsStaff() {
		return nil, status.Error(codes.PermissionDenied, "admin account required")
	}
	return claims, nil
}

// mapError translates domain errors to gRPC status codes. Errors that are
// already statuses, and plain validation errors, pass through unchanged.
func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, model.ErrDebtNotFound),
		errors.Is(err, model.ErrDebtorNotFound),
		errors.Is(err, model.ErrPaymentNotFound),
		errors.Is(err, model.ErrSellerNotFound),
		errors.Is(err, model.ErrAdminNotFound),
		errors.Is(err, model.ErrTemplateNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, model.ErrAccessDenied):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, model.ErrInvalidCredentials),
		errors.Is(err, model.ErrAccountDisabled):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, usecase.ErrPhoneNumberTaken),
		errors.Is(err, usecase.ErrUsernameTaken):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, model.ErrDebtAlreadyPaid),
		errors.Is(err, model.ErrScheduleExhausted),
		errors.Is(err, model.ErrScheduleAlreadyExists),
		errors.Is(err, model.ErrInsufficientWallet):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, model.ErrAmountRequired),
		errors.Is(err, model.ErrInvalidScheduleSelection):
		return status.Error(codes.InvalidArgument, err.Error())
	}
	if _, ok := model.IsExceedsRemaining(err); ok {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return err
}

// ---------------------------------------------------------------------------
// Auth
// ---------------------------------------------------------------------------

func (h *Handler) RegisterSeller(ctx context.Context, in *RegisterSellerRequest) (*SellerResponse, error) {
	resp, err := h.registerSeller.Execute(ctx, dto.RegisterSellerRequest{
		FullName:    in.FullName,
		PhoneNumber: in.PhoneNumber,
		Email:       in.Email,
		Password:    in.Password,
		Image:       in.Image,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &resp, nil
}

func (h *Handler) LoginSeller(ctx context.Context, in *LoginRequest) (*LoginResponse, error) {
	resp, err := h.loginSeller.Execute(ctx, dto.LoginRequest{Login: in.Login, Password: in.Password})
	if err != nil {
		return nil, mapError(err)
	}
	return &resp, nil
}

func (h *Handler) LoginAdmin(ctx context.Context, in *LoginRequest) (*LoginResponse, error) {
	resp, err := h.loginAdmin.Execute(ctx, dto.LoginRequest{Login: in.Login, Password: in.Password})
	if err != nil {
		return nil, mapError(err)
	}
	return &resp, nil
}

// ---------------------------------------------------------------------------
// Debtors
// ---------------------------------------------------------------------------

func (h *Handler) CreateDebtor(ctx context.Context, in *CreateDebtorRequest) (*DebtorResponse, error) {
	sellerID, err := sellerFrom(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := h.createDebtor.Execute(ctx, dto.CreateDebtorRequest{
		SellerID:     sellerID,
		FullName:     in.FullName,
		Address:      in.Address,
		Note:         in.Note,
		PhoneNumbers: in.PhoneNumbers,
		Images:       in.Images,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &resp, nil
}

func (h *Handler) UpdateDebtor(ctx context.Context, in *UpdateDebtorRequest) (*DebtorResponse, error) {
	sellerID, err := sellerFrom(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := h.updateDebtor.Execute(ctx, dto.UpdateDebtorRequest{
		SellerID:     sellerID,
		DebtorID:     in.DebtorID,
		FullName:     in.FullName,
		Address:      in.Address,
		Note:         in.Note,
		PhoneNumbers: in.PhoneNumbers,
		Images:       in.Images,
		IsFavorite:   in.IsFavorite,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &resp, nil
}

func (h *Handler) GetDebtor(ctx context.Context, in *GetByIDRequest) (*DebtorResponse, error) {
	sellerID, err := sellerFrom(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := h.getDebtor.Execute(ctx, sellerID, in.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return &resp, nil
}

func (h *Handler) ListDebtors(ctx context.Context, in *ListRequest) (*DebtorListResponse, error) {
	sellerID, err := sellerFrom(ctx)
	if err != nil {
		return nil, err
	}
	debtors, err := h.listDebtors.Execute(ctx, dto.ListDebtorsRequest{
		SellerID: sellerID,
		Search:   in.Search,
		Limit:    in.Limit,
		Offset:   in.Offset,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &DebtorListResponse{Debtors: debtors}, nil
}

func (h *Handler) DeleteDebtor(ctx context.Context, in *GetByIDRequest) (*Empty, error) {
	sellerID, err := sellerFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.deleteDebtor.Execute(ctx, sellerID, in.ID); err != nil {
		return nil, mapError(err)
	}
	return &Empty{}, nil
}

// ---------------------------------------------------------------------------
// Debts
// ---------------------------------------------------------------------------

func (h *Handler) CreateDebt(ctx context.Context, in *CreateDebtRequest) (*DebtResponse, error) {
	sellerID, err := sellerFrom(ctx)
	if err != nil {
		return nil, err
	}
	req := dto.CreateDebtRequest{
		SellerID:      sellerID,
		DebtorID:      in.DebtorID,
		ProductName:   in.ProductName,
		Amount:        in.Amount,
		Deadline:      in.Deadline,
		Comment:       in.Comment,
		ProductImages: in.ProductImages,
	}
	if in.Date != nil {
		req.Date = *in.Date
	}
	resp, err := h.createDebt.Execute(ctx, req)
	if err != nil {
		return nil, mapError(err)
	}
	h.metrics.SchedulesCreated.Inc()
	return &resp, nil
}

func (h *Handler) UpdateDebt(ctx context.Context, in *UpdateDebtRequest) (*DebtResponse, error) {
	sellerID, err := sellerFrom(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := h.updateDebt.Execute(ctx, dto.UpdateDebtRequest{
		SellerID:      sellerID,
		DebtID:        in.DebtID,
		ProductName:   in.ProductName,
		Amount:        in.Amount,
		Date:          in.Date,
		Deadline:      in.Deadline,
		Comment:       in.Comment,
		ProductImages: in.ProductImages,
	})
	if err != nil {
		return nil, mapError(err)
	}
	if in.Amount != nil || in.Date != nil || in.Deadline != "" {
		h.metrics.SchedulesCreated.Inc()
	}
	return &resp, nil
}

func (h *Handler) GetDebt(ctx context.Context, in *GetByIDRequest) (*DebtResponse, error) {
	sellerID, err := sellerFrom(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := h.getDebt.Execute(ctx, dto.GetDebtRequest{SellerID: sellerID, DebtID: in.ID})
	if err != nil {
		return nil, mapError(err)
	}
	return &resp, nil
}

func (h *Handler) ListDebts(ctx context.Context, in *ListDebtsRequest) (*DebtListResponse, error) {
	sellerID, err := sellerFrom(ctx)
	if err != nil {
		return nil, err
	}
	debts, err := h.listDebts.Execute(ctx, dto.ListDebtsRequest{
		SellerID: sellerID,
		DebtorID: in.DebtorID,
		Paid:     in.Paid,
		Limit:    in.Limit,
		Offset:   in.Offset,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &DebtListResponse{Debts: debts}, nil
}

func (h *Handler) DeleteDebt(ctx context.Context, in *GetByIDRequest) (*Empty, error) {
	sellerID, err := sellerFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.deleteDebt.Execute(ctx, dto.DeleteDebtRequest{SellerID: sellerID, DebtID: in.ID}); err != nil {
		return nil, mapError(err)
	}
	return &Empty{}, nil
}

func (h *Handler) GetSchedule(ctx context.Context, in *GetByIDRequest) (*ScheduleResponse, error) {
	sellerID, err := sellerFrom(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := h.getSchedule.Execute(ctx, dto.GetScheduleRequest{SellerID: sellerID, DebtID: in.ID})
	if err != nil {
		return nil, mapError(err)
	}
	return &resp, nil
}

// ---------------------------------------------------------------------------
// Payments
// ---------------------------------------------------------------------------

func (h *Handler) CreatePayment(ctx context.Context, in *CreatePaymentRequest) (*PaymentResponse, error) {
	sellerID, err := sellerFrom(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := h.createPayment.Execute(ctx, dto.CreatePaymentRequest{
		SellerID:       sellerID,
		DebtID:         in.DebtID,
		PaymentType:    in.PaymentType,
		Amount:         in.Amount,
		InstallmentIDs: in.InstallmentIDs,
		PaymentDate:    in.PaymentDate,
	})
	if err != nil {
		return nil, mapError(err)
	}
	h.metrics.PaymentsRecorded.WithLabelValues(in.PaymentType).Inc()
	if resp.DebtSettled {
		h.metrics.DebtsSettled.Inc()
	}
	return &resp, nil
}

func (h *Handler) DeletePayment(ctx context.Context, in *GetByIDRequest) (*Empty, error) {
	sellerID, err := sellerFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.deletePayment.Execute(ctx, dto.DeletePaymentRequest{SellerID: sellerID, PaymentID: in.ID}); err != nil {
		return nil, mapError(err)
	}
	h.metrics.PaymentsReversed.Inc()
	return &Empty{}, nil
}

func (h *Handler) GetPayment(ctx context.Context, in *GetByIDRequest) (*PaymentResponse, error) {
	sellerID, err := sellerFrom(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := h.getPayment.Execute(ctx, dto.GetPaymentRequest{SellerID: sellerID, PaymentID: in.ID})
	if err != nil {
		return nil, mapError(err)
	}
	return &resp, nil
}

func (h *Handler) ListPayments(ctx context.Context, in *ListPaymentsRequest) (*PaymentListResponse, error) {
	sellerID, err := sellerFrom(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := h.listPayments.Execute(ctx, dto.ListPaymentsRequest{
		SellerID: sellerID,
		DebtID:   in.DebtID,
		DebtorID: in.DebtorID,
		Limit:    in.Limit,
		Offset:   in.Offset,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &PaymentListResponse{Payments: payments}, nil
}

// GetPaymentHistory returns everything a debtor has paid, with the total.
func (h *Handler) GetPaymentHistory(ctx context.Context, in *GetByIDRequest) (*PaymentHistoryResponse, error) {
	sellerID, err := sellerFrom(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := h.getPaymentHistory.Execute(ctx, sellerID, in.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return &resp, nil
}

// ---------------------------------------------------------------------------
// Messages and templates
// ---------------------------------------------------------------------------

func (h *Handler) SendMessage(ctx context.Context, in *SendMessageRequest) (*MessageResponse, error) {
	sellerID, err := sellerFrom(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := h.sendMessage.Execute(ctx, dto.SendMessageRequest{
		SellerID:   sellerID,
		DebtorID:   in.DebtorID,
		Text:       in.Text,
		TemplateID: in.TemplateID,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &resp, nil
}

func (h *Handler) ListMessages(ctx context.Context, in *ListMessagesRequest) (*MessageListResponse, error) {
	sellerID, err := sellerFrom(ctx)
	if err != nil {
		return nil, err
	}
	messages, err := h.listMessages.Execute(ctx, sellerID, in.DebtorID, in.Limit, in.Offset)
	if err != nil {
		return nil, mapError(err)
	}
	return &MessageListResponse{Messages: messages}, nil
}

// SaveTemplate stores a seller template, or a global one when the caller is
// a back-office account.
func (h *Handler) SaveTemplate(ctx context.Context, in *SaveTemplateRequest) (*TemplateResponse, error) {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing credentials")
	}
	req := dto.SaveTemplateRequest{TemplateID: in.TemplateID, Text: in.Text}
	if claims.HasRole(auth.RoleSeller) {
		req.SellerID = claims.UserID
	} else if !claims.IsStaff() {
		return nil, status.Error(codes.PermissionDenied, "access denied")
	}
	resp, err := h.saveTemplate.Execute(ctx, req)
	if err != nil {
		return nil, mapError(err)
	}
	return &resp, nil
}

func (h *Handler) ListTemplates(ctx context.Context, _ *Empty) (*TemplateListResponse, error) {
	sellerID, err := sellerFrom(ctx)
	if err != nil {
		return nil, err
	}
	templates, err := h.listTemplates.Execute(ctx, sellerID)
	if err != nil {
		return nil, mapError(err)
	}
	return &TemplateListResponse{Templates: templates}, nil
}

func (h *Handler) DeleteTemplate(ctx context.Context, in *GetByIDRequest) (*Empty, error) {
	sellerID, err := sellerFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.deleteTemplate.Execute(ctx, sellerID, in.ID); err != nil {
		return nil, mapError(err)
	}
	return &Empty{}, nil
}

// ---------------------------------------------------------------------------
// Back office
// ---------------------------------------------------------------------------

func (h *Handler) CreateAdmin(ctx context.Context, in *CreateAdminRequest) (*AdminResponse, error) {
	claims, err := staffFrom(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := h.createAdmin.Execute(ctx, dto.CreateAdminRequest{
		ActorID:  claims.UserID,
		Username: in.Username,
		Password: in.Password,
		Role:     in.Role,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &resp, nil
}

func (h *Handler) ListSellers(ctx context.Context, in *ListRequest) (*SellerListResponse, error) {
	if _, err := staffFrom(ctx); err != nil {
		return nil, err
	}
	sellers, err := h.listSellers.Execute(ctx, in.Limit, in.Offset)
	if err != nil {
		return nil, mapError(err)
	}
	return &SellerListResponse{Sellers: sellers}, nil
}

func (h *Handler) GetSeller(ctx context.Context, in *GetByIDRequest) (*SellerResponse, error) {
	if _, err := staffFrom(ctx); err != nil {
		return nil, err
	}
	resp, err := h.getSeller.Execute(ctx, in.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return &resp, nil
}

func (h *Handler) UpdateSeller(ctx context.Context, in *UpdateSellerRequest) (*SellerResponse, error) {
	if _, err := staffFrom(ctx); err != nil {
		return nil, err
	}
	resp, err := h.updateSeller.Execute(ctx, dto.UpdateSellerRequest{
		SellerID:    in.ID,
		FullName:    in.FullName,
		PhoneNumber: in.PhoneNumber,
		Email:       in.Email,
		Image:       in.Image,
		Password:    in.Password,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &resp, nil
}

func (h *Handler) DeleteSeller(ctx context.Context, in *GetByIDRequest) (*Empty, error) {
	if _, err := staffFrom(ctx); err != nil {
		return nil, err
	}
	if err := h.deleteSeller.Execute(ctx, in.ID); err != nil {
		return nil, mapError(err)
	}
	return &Empty{}, nil
}
