package grpc

// proto.go defines the gRPC server interface for debtmanager.v1.DebtService.
// This file is a stand-in for buf-generated code: requests are hand-written
// wire structs, responses alias the application DTOs, and the service
// descriptor is assembled below. Once `buf generate` is run this file can be
// replaced with the generated package.

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Sidiqjon/debt-manager/internal/application/dto"
)

const serviceName = "debtmanager.v1.DebtService"

// ---------------------------------------------------------------------------
// Wire messages
// ---------------------------------------------------------------------------

// Responses reuse the application DTOs; the JSON codec marshals them as-is.
type (
	DebtResponse           = dto.DebtResponse
	PaymentResponse        = dto.PaymentResponse
	DebtorResponse         = dto.DebtorResponse
	SellerResponse         = dto.SellerResponse
	AdminResponse          = dto.AdminResponse
	LoginResponse          = dto.LoginResponse
	MessageResponse        = dto.MessageResponse
	TemplateResponse       = dto.TemplateResponse
	ScheduleResponse       = dto.ScheduleResponse
	PaymentHistoryResponse = dto.PaymentHistoryResponse
)

type RegisterSellerRequest struct {
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email,omitempty"`
	Password    string `json:"password"`
	Image       string `json:"image,omitempty"`
}

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type UpdateSellerRequest struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Email       string `json:"email,omitempty"`
	Image       string `json:"image,omitempty"`
	Password    string `json:"password,omitempty"`
}

type CreateDebtorRequest struct {
	FullName     string   `json:"full_name"`
	Address      string   `json:"address,omitempty"`
	Note         string   `json:"note,omitempty"`
	PhoneNumbers []string `json:"phone_numbers"`
	Images       []string `json:"images,omitempty"`
}

type UpdateDebtorRequest struct {
	DebtorID     string   `json:"debtor_id"`
	FullName     string   `json:"full_name,omitempty"`
	Address      string   `json:"address,omitempty"`
	Note         string   `json:"note,omitempty"`
	PhoneNumbers []string `json:"phone_numbers,omitempty"`
	Images       []string `json:"images,omitempty"`
	IsFavorite   *bool    `json:"is_favorite,omitempty"`
}

type GetByIDRequest struct {
	ID string `json:"id"`
}

type ListRequest struct {
	Search string `json:"search,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

type CreateDebtRequest struct {
	DebtorID      string          `json:"debtor_id"`
	ProductName   string          `json:"product_name"`
	Amount        decimal.Decimal `json:"amount"`
	Date          *time.Time      `json:"date,omitempty"`
	Deadline      string          `json:"deadline"`
	Comment       string          `json:"comment,omitempty"`
	ProductImages []string        `json:"product_images,omitempty"`
}

type UpdateDebtRequest struct {
	DebtID        string           `json:"debt_id"`
	ProductName   string           `json:"product_name,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Date          *time.Time       `json:"date,omitempty"`
	Deadline      string           `json:"deadline,omitempty"`
	Comment       string           `json:"comment,omitempty"`
	ProductImages []string         `json:"product_images,omitempty"`
}

type ListDebtsRequest struct {
	DebtorID string `json:"debtor_id,omitempty"`
	Paid     *bool  `json:"paid,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	Offset   int    `json:"offset,omitempty"`
}

type CreatePaymentRequest struct {
	DebtID         string          `json:"debt_id"`
	PaymentType    string          `json:"payment_type"`
	Amount         decimal.Decimal `json:"amount,omitempty"`
	InstallmentIDs []string        `json:"installment_ids,omitempty"`
	PaymentDate    *time.Time      `json:"payment_date,omitempty"`
}

type ListPaymentsRequest struct {
	DebtID   string `json:"debt_id,omitempty"`
	DebtorID string `json:"debtor_id,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	Offset   int    `json:"offset,omitempty"`
}

type CreateAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type SendMessageRequest struct {
	DebtorID   string `json:"debtor_id"`
	Text       string `json:"text,omitempty"`
	TemplateID string `json:"template_id,omitempty"`
}

type ListMessagesRequest struct {
	DebtorID string `json:"debtor_id,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	Offset   int    `json:"offset,omitempty"`
}

type SaveTemplateRequest struct {
	TemplateID string `json:"template_id,omitempty"`
	Text       string `json:"text"`
}

type DebtListResponse struct {
	Debts []dto.DebtResponse `json:"debts"`
}

type PaymentListResponse struct {
	Payments []dto.PaymentResponse `json:"payments"`
}

type DebtorListResponse struct {
	Debtors []dto.DebtorResponse `json:"debtors"`
}

type SellerListResponse struct {
	Sellers []dto.SellerResponse `json:"sellers"`
}

type MessageListResponse struct {
	Messages []dto.MessageResponse `json:"messages"`
}

type TemplateListResponse struct {
	Templates []dto.TemplateResponse `json:"templates"`
}

type Empty struct{}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

// DebtServiceServer is the server API for DebtService.
type DebtServiceServer interface {
	RegisterSeller(context.Context, *RegisterSellerRequest) (*SellerResponse, error)
	LoginSeller(context.Context, *LoginRequest) (*LoginResponse, error)
	LoginAdmin(context.Context, *LoginRequest) (*LoginResponse, error)

	CreateDebtor(context.Context, *CreateDebtorRequest) (*DebtorResponse, error)
	UpdateDebtor(context.Context, *UpdateDebtorRequest) (*DebtorResponse, error)
	GetDebtor(context.Context, *GetByIDRequest) (*DebtorResponse, error)
	ListDebtors(context.Context, *ListRequest) (*DebtorListResponse, error)
	DeleteDebtor(context.Context, *GetByIDRequest) (*Empty, error)

	CreateDebt(context.Context, *CreateDebtRequest) (*DebtResponse, error)
	UpdateDebt(context.Context, *UpdateDebtRequest) (*DebtResponse, error)
	GetDebt(context.Context, *GetByIDRequest) (*DebtResponse, error)
	ListDebts(context.Context, *ListDebtsRequest) (*DebtListResponse, error)
	DeleteDebt(context.Context, *GetByIDRequest) (*Empty, error)
	GetSchedule(context.Context, *GetByIDRequest) (*ScheduleResponse, error)

	CreatePayment(context.Context, *CreatePaymentRequest) (*PaymentResponse, error)
	DeletePayment(context.Context, *GetByIDRequest) (*Empty, error)
	GetPayment(context.Context, *GetByIDRequest) (*PaymentResponse, error)
	ListPayments(context.Context, *ListPaymentsRequest) (*PaymentListResponse, error)
	GetPaymentHistory(context.Context, *GetByIDRequest) (*PaymentHistoryResponse, error)

	SendMessage(context.Context, *SendMessageRequest) (*MessageResponse, error)
	ListMessages(context.Context, *ListMessagesRequest) (*MessageListResponse, error)
	SaveTemplate(context.Context, *SaveTemplateRequest) (*TemplateResponse, error)
	ListTemplates(context.Context, *Empty) (*TemplateListResponse, error)
	DeleteTemplate(context.Context, *GetByIDRequest) (*Empty, error)

	CreateAdmin(context.Context, *CreateAdminRequest) (*AdminResponse, error)
	ListSellers(context.Context, *ListRequest) (*SellerListResponse, error)
	GetSeller(context.Context, *GetByIDRequest) (*SellerResponse, error)
	UpdateSeller(context.Context, *UpdateSellerRequest) (*SellerResponse, error)
	DeleteSeller(context.Context, *GetByIDRequest) (*Empty, error)

	mustEmbedUnimplementedDebtServiceServer()
}

// UnimplementedDebtServiceServer provides forward-compatible defaults.
type UnimplementedDebtServiceServer struct{}

func (UnimplementedDebtServiceServer) mustEmbedUnimplementedDebtServiceServer() {}

func unimplemented[Req, Resp any](method string) func(context.Context, *Req) (*Resp, error) {
	return func(context.Context, *Req) (*Resp, error) {
		return nil, status.Errorf(codes.Unimplemented, "method %s not implemented", method)
	}
}

func (UnimplementedDebtServiceServer) RegisterSeller(ctx context.Context, in *RegisterSellerRequest) (*SellerResponse, error) {
	return unimplemented[RegisterSellerRequest, SellerResponse]("RegisterSeller")(ctx, in)
}
func (UnimplementedDebtServiceServer) LoginSeller(ctx context.Context, in *LoginRequest) (*LoginResponse, error) {
	return unimplemented[LoginRequest, LoginResponse]("LoginSeller")(ctx, in)
}
func (UnimplementedDebtServiceServer) LoginAdmin(ctx context.Context, in *LoginRequest) (*LoginResponse, error) {
	return unimplemented[LoginRequest, LoginResponse]("LoginAdmin")(ctx, in)
}
func (UnimplementedDebtServiceServer) CreateDebtor(ctx context.Context, in *CreateDebtorRequest) (*DebtorResponse, error) {
	return unimplemented[CreateDebtorRequest, DebtorResponse]("CreateDebtor")(ctx, in)
}
func (UnimplementedDebtServiceServer) UpdateDebtor(ctx context.Context, in *UpdateDebtorRequest) (*DebtorResponse, error) {
	return unimplemented[UpdateDebtorRequest, DebtorResponse]("UpdateDebtor")(ctx, in)
}
func (UnimplementedDebtServiceServer) GetDebtor(ctx context.Context, in *GetByIDRequest) (*DebtorResponse, error) {
	return unimplemented[GetByIDRequest, DebtorResponse]("GetDebtor")(ctx, in)
}
func (UnimplementedDebtServiceServer) ListDebtors(ctx context.Context, in *ListRequest) (*DebtorListResponse, error) {
	return unimplemented[ListRequest, DebtorListResponse]("ListDebtors")(ctx, in)
}
func (UnimplementedDebtServiceServer) DeleteDebtor(ctx context.Context, in *GetByIDRequest) (*Empty, error) {
	return unimplemented[GetByIDRequest, Empty]("DeleteDebtor")(ctx, in)
}
func (UnimplementedDebtServiceServer) CreateDebt(ctx context.Context, in *CreateDebtRequest) (*DebtResponse, error) {
	return unimplemented[CreateDebtRequest, DebtResponse]("CreateDebt")(ctx, in)
}
func (UnimplementedDebtServiceServer) UpdateDebt(ctx context.Context, in *UpdateDebtRequest) (*DebtResponse, error) {
	return unimplemented[UpdateDebtRequest, DebtResponse]("UpdateDebt")(ctx, in)
}
func (UnimplementedDebtServiceServer) GetDebt(ctx context.Context, in *GetByIDRequest) (*DebtResponse, error) {
	return unimplemented[GetByIDRequest, DebtResponse]("GetDebt")(ctx, in)
}
func (UnimplementedDebtServiceServer) ListDebts(ctx context.Context, in *ListDebtsRequest) (*DebtListResponse, error) {
	return unimplemented[ListDebtsRequest, DebtListResponse]("ListDebts")(ctx, in)
}
func (UnimplementedDebtServiceServer) DeleteDebt(ctx context.Context, in *GetByIDRequest) (*Empty, error) {
	return unimplemented[GetByIDRequest, Empty]("DeleteDebt")(ctx, in)
}
func (UnimplementedDebtServiceServer) GetSchedule(ctx context.Context, in *GetByIDRequest) (*ScheduleResponse, error) {
	return unimplemented[GetByIDRequest, ScheduleResponse]("GetSchedule")(ctx, in)
}
func (UnimplementedDebtServiceServer) CreatePayment(ctx context.Context, in *CreatePaymentRequest) (*PaymentResponse, error) {
	return unimplemented[CreatePaymentRequest, PaymentResponse]("CreatePayment")(ctx, in)
}
func (UnimplementedDebtServiceServer) DeletePayment(ctx context.Context, in *GetByIDRequest) (*Empty, error) {
	return unimplemented[GetByIDRequest, Empty]("DeletePayment")(ctx, in)
}
func (UnimplementedDebtServiceServer) GetPayment(ctx context.Context, in *GetByIDRequest) (*PaymentResponse, error) {
	return unimplemented[GetByIDRequest, PaymentResponse]("GetPayment")(ctx, in)
}
func (UnimplementedDebtServiceServer) ListPayments(ctx context.Context, in *ListPaymentsRequest) (*PaymentListResponse, error) {
	return unimplemented[ListPaymentsRequest, PaymentListResponse]("ListPayments")(ctx, in)
}
func (UnimplementedDebtServiceServer) GetPaymentHistory(ctx context.Context, in *GetByIDRequest) (*PaymentHistoryResponse, error) {
	return unimplemented[GetByIDRequest, PaymentHistoryResponse]("GetPaymentHistory")(ctx, in)
}
func (UnimplementedDebtServiceServer) SendMessage(ctx context.Context, in *SendMessageRequest) (*MessageResponse, error) {
	return unimplemented[SendMessageRequest, MessageResponse]("SendMessage")(ctx, in)
}
func (UnimplementedDebtServiceServer) ListMessages(ctx context.Context, in *ListMessagesRequest) (*MessageListResponse, error) {
	return unimplemented[ListMessagesRequest, MessageListResponse]("ListMessages")(ctx, in)
}
func (UnimplementedDebtServiceServer) SaveTemplate(ctx context.Context, in *SaveTemplateRequest) (*TemplateResponse, error) {
	return unimplemented[SaveTemplateRequest, TemplateResponse]("SaveTemplate")(ctx, in)
}
func (UnimplementedDebtServiceServer) ListTemplates(ctx context.Context, in *Empty) (*TemplateListResponse, error) {
	return unimplemented[Empty, TemplateListResponse]("ListTemplates")(ctx, in)
}
func (UnimplementedDebtServiceServer) DeleteTemplate(ctx context.Context, in *GetByIDRequest) (*Empty, error) {
	return unimplemented[GetByIDRequest, Empty]("DeleteTemplate")(ctx, in)
}
func (UnimplementedDebtServiceServer) CreateAdmin(ctx context.Context, in *CreateAdminRequest) (*AdminResponse, error) {
	return unimplemented[CreateAdminRequest, AdminResponse]("CreateAdmin")(ctx, in)
}
func (UnimplementedDebtServiceServer) ListSellers(ctx context.Context, in *ListRequest) (*SellerListResponse, error) {
	return unimplemented[ListRequest, SellerListResponse]("ListSellers")(ctx, in)
}

func (UnimplementedDebtServiceServer) GetSeller(ctx context.Context, in *GetByIDRequest) (*SellerResponse, error) {
	return unimplemented[GetByIDRequest, SellerResponse]("GetSeller")(ctx, in)
}

func (UnimplementedDebtServiceServer) UpdateSeller(ctx context.Context, in *UpdateSellerRequest) (*SellerResponse, error) {
	return unimplemented[UpdateSellerRequest, SellerResponse]("UpdateSeller")(ctx, in)
}

func (UnimplementedDebtServiceServer) DeleteSeller(ctx context.Context, in *GetByIDRequest) (*Empty, error) {
	return unimplemented[GetByIDRequest, Empty]("DeleteSeller")(ctx, in)
}

// ---------------------------------------------------------------------------
// Service descriptor
// ---------------------------------------------------------------------------

// RegisterDebtServiceServer registers srv with the gRPC server.
func RegisterDebtServiceServer(s *grpclib.Server, srv DebtServiceServer) {
	s.RegisterService(&_DebtService_serviceDesc, srv)
}

// unary adapts a typed method to the grpc.MethodDesc handler shape. The
// generated code spells this out per method; one generic helper keeps the
// stand-in readable.
func unary[Req any](method string, invoke func(DebtServiceServer, context.Context, *Req) (any, error)) func(any, context.Context, func(any) error, grpclib.UnaryServerInterceptor) (any, error) {
	fullMethod := "/" + serviceName + "/" + method
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpclib.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return invoke(srv.(DebtServiceServer), ctx, in)
		}
		info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return invoke(srv.(DebtServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var _DebtService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*DebtServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "RegisterSeller", Handler: unary("RegisterSeller", func(s DebtServiceServer, ctx context.Context, in *RegisterSellerRequest) (any, error) {
			return s.RegisterSeller(ctx, in)
		})},
		{MethodName: "LoginSeller", Handler: unary("LoginSeller", func(s DebtServiceServer, ctx context.Context, in *LoginRequest) (any, error) {
			return s.LoginSeller(ctx, in)
		})},
		{MethodName: "LoginAdmin", Handler: unary("LoginAdmin", func(s DebtServiceServer, ctx context.Context, in *LoginRequest) (any, error) {
			return s.LoginAdmin(ctx, in)
		})},
		{MethodName: "CreateDebtor", Handler: unary("CreateDebtor", func(s DebtServiceServer, ctx context.Context, in *CreateDebtorRequest) (any, error) {
			return s.CreateDebtor(ctx, in)
		})},
		{MethodName: "UpdateDebtor", Handler: unary("UpdateDebtor", func(s DebtServiceServer, ctx context.Context, in *UpdateDebtorRequest) (any, error) {
			return s.UpdateDebtor(ctx, in)
		})},
		{MethodName: "GetDebtor", Handler: unary("GetDebtor", func(s DebtServiceServer, ctx context.Context, in *GetByIDRequest) (any, error) {
			return s.GetDebtor(ctx, in)
		})},
		{MethodName: "ListDebtors", Handler: unary("ListDebtors", func(s DebtServiceServer, ctx context.Context, in *ListRequest) (any, error) {
			return s.ListDebtors(ctx, in)
		})},
		{MethodName: "DeleteDebtor", Handler: unary("DeleteDebtor", func(s DebtServiceServer, ctx context.Context, in *GetByIDRequest) (any, error) {
			return s.DeleteDebtor(ctx, in)
		})},
		{MethodName: "CreateDebt", Handler: unary("CreateDebt", func(s DebtServiceServer, ctx context.Context, in *CreateDebtRequest) (any, error) {
			return s.CreateDebt(ctx, in)
		})},
		{MethodName: "UpdateDebt", Handler: unary("UpdateDebt", func(s DebtServiceServer, ctx context.Context, in *UpdateDebtRequest) (any, error) {
			return s.UpdateDebt(ctx, in)
		})},
		{MethodName: "GetDebt", Handler: unary("GetDebt", func(s DebtServiceServer, ctx context.Context, in *GetByIDRequest) (any, error) {
			return s.GetDebt(ctx, in)
		})},
		{MethodName: "ListDebts", Handler: unary("ListDebts", func(s DebtServiceServer, ctx context.Context, in *ListDebtsRequest) (any, error) {
			return s.ListDebts(ctx, in)
		})},
		{MethodName: "DeleteDebt", Handler: unary("DeleteDebt", func(s DebtServiceServer, ctx context.Context, in *GetByIDRequest) (any, error) {
			return s.DeleteDebt(ctx, in)
		})},
		{MethodName: "GetSchedule", Handler: unary("GetSchedule", func(s DebtServiceServer, ctx context.Context, in *GetByIDRequest) (any, error) {
			return s.GetSchedule(ctx, in)
		})},
		{MethodName: "CreatePayment", Handler: unary("CreatePayment", func(s DebtServiceServer, ctx context.Context, in *CreatePaymentRequest) (any, error) {
			return s.CreatePayment(ctx, in)
		})},
		{MethodName: "DeletePayment", Handler: unary("DeletePayment", func(s DebtServiceServer, ctx context.Context, in *GetByIDRequest) (any, error) {
			return s.DeletePayment(ctx, in)
		})},
		{MethodName: "GetPayment", Handler: unary("GetPayment", func(s DebtServiceServer, ctx context.Context, in *GetByIDRequest) (any, error) {
			return s.GetPayment(ctx, in)
		})},
		{MethodName: "ListPayments", Handler: unary("ListPayments", func(s DebtServiceServer, ctx context.Context, in *ListPaymentsRequest) (any, error) {
			return s.ListPayments(ctx, in)
		})},
		{MethodName: "GetPaymentHistory", Handler: unary("GetPaymentHistory", func(s DebtServiceServer, ctx context.Context, in *GetByIDRequest) (any, error) {
			return s.GetPaymentHistory(ctx, in)
		})},
		{MethodName: "SendMessage", Handler: unary("SendMessage", func(s DebtServiceServer, ctx context.Context, in *SendMessageRequest) (any, error) {
			return s.SendMessage(ctx, in)
		})},
		{MethodName: "ListMessages", Handler: unary("ListMessages", func(s DebtServiceServer, ctx context.Context, in *ListMessagesRequest) (any, error) {
			return s.ListMessages(ctx, in)
		})},
		{MethodName: "SaveTemplate", Handler: unary("SaveTemplate", func(s DebtServiceServer, ctx context.Context, in *SaveTemplateRequest) (any, error) {
			return s.SaveTemplate(ctx, in)
		})},
		{MethodName: "ListTemplates", Handler: unary("ListTemplates", func(s DebtServiceServer, ctx context.Context, in *Empty) (any, error) {
			return s.ListTemplates(ctx, in)
		})},
		{MethodName: "DeleteTemplate", Handler: unary("DeleteTemplate", func(s DebtServiceServer, ctx context.Context, in *GetByIDRequest) (any, error) {
			return s.DeleteTemplate(ctx, in)
		})},
		{MethodName: "CreateAdmin", Handler: unary("CreateAdmin", func(s DebtServiceServer, ctx context.Context, in *CreateAdminRequest) (any, error) {
			return s.CreateAdmin(ctx, in)
		})},
		{MethodName: "ListSellers", Handler: unary("ListSellers", func(s DebtServiceServer, ctx context.Context, in *ListRequest) (any, error) {
			return s.ListSellers(ctx, in)
		})},
		{MethodName: "GetSeller", Handler: unary("GetSeller", func(s DebtServiceServer, ctx context.Context, in *GetByIDRequest) (any, error) {
			return s.GetSeller(ctx, in)
		})},
		{MethodName: "UpdateSeller", Handler: unary("UpdateSeller", func(s DebtServiceServer, ctx context.Context, in *UpdateSellerRequest) (any, error) {
			return s.UpdateSeller(ctx, in)
		})},
		{MethodName: "DeleteSeller", Handler: unary("DeleteSeller", func(s DebtServiceServer, ctx context.Context, in *GetByIDRequest) (any, error) {
			return s.DeleteSeller(ctx, in)
		})},
	},
	Streams: []grpclib.StreamDesc{},
}
