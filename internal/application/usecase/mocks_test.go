package usecase_test

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Sidiqjon/debt-manager/internal/domain/model"
	"github.com/Sidiqjon/debt-manager/internal/domain/port"
	"github.com/Sidiqjon/debt-manager/pkg/events"
)

// --- Mock implementations ---

type mockDebtRepository struct {
	findByIDFunc          func(ctx context.Context, sellerID, id string) (model.Debt, error)
	findByIDForUpdateFunc func(ctx context.Context, sellerID, id string) (model.Debt, error)
	saveFunc              func(ctx context.Context, debt model.Debt) error
	updateFunc            func(ctx context.Context, debt model.Debt) error
	statsBySellerIDFunc   func(ctx context.Context, sellerID string, asOf time.Time) (model.SellerStats, error)
	savedDebts            []model.Debt
	updatedDebts          []model.Debt
	deletedIDs            []string
}

func (m *mockDebtRepository) FindByID(ctx context.Context, sellerID, id string) (model.Debt, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, sellerID, id)
	}
	return model.Debt{}, model.ErrDebtNotFound
}

func (m *mockDebtRepository) FindByIDForUpdate(ctx context.Context, sellerID, id string) (model.Debt, error) {
	if m.findByIDForUpdateFunc != nil {
		return m.findByIDForUpdateFunc(ctx, sellerID, id)
	}
	return m.FindByID(ctx, sellerID, id)
}

func (m *mockDebtRepository) FindByDebtorID(_ context.Context, _, _ string) ([]model.Debt, error) {
	return nil, nil
}

func (m *mockDebtRepository) ListBySellerID(_ context.Context, _ string, _ *bool, _, _ int) ([]model.Debt, error) {
	return nil, nil
}

func (m *mockDebtRepository) ListDueBetween(_ context.Context, _, _ time.Time) ([]model.Debt, error) {
	return nil, nil
}

func (m *mockDebtRepository) StatsBySellerID(ctx context.Context, sellerID string, asOf time.Time) (model.SellerStats, error) {
	if m.statsBySellerIDFunc != nil {
		return m.statsBySellerIDFunc(ctx, sellerID, asOf)
	}
	return model.SellerStats{TotalDebtBalance: decimal.Zero}, nil
}

func (m *mockDebtRepository) Save(ctx context.Context, debt model.Debt) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, debt)
	}
	m.savedDebts = append(m.savedDebts, debt)
	return nil
}

func (m *mockDebtRepository) Update(ctx context.Context, debt model.Debt) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, debt)
	}
	m.updatedDebts = append(m.updatedDebts, debt)
	return nil
}

func (m *mockDebtRepository) Delete(_ context.Context, _, id string) error {
	m.deletedIDs = append(m.deletedIDs, id)
	return nil
}

type mockPaymentRepository struct {
	findByIDFunc func(ctx context.Context, sellerID, id string) (model.Payment, error)
}

func (m *mockPaymentRepository) FindByID(ctx context.Context, sellerID, id string) (model.Payment, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, sellerID, id)
	}
	return model.Payment{}, model.ErrPaymentNotFound
}

func (m *mockPaymentRepository) ListByDebtID(_ context.Context, _, _ string) ([]model.Payment, error) {
	return nil, nil
}

func (m *mockPaymentRepository) ListByDebtorID(_ context.Context, _, _ string) ([]model.Payment, error) {
	return nil, nil
}

func (m *mockPaymentRepository) ListBySellerID(_ context.Context, _ string, _, _ int) ([]model.Payment, error) {
	return nil, nil
}

func (m *mockPaymentRepository) SumByDebtorID(_ context.Context, _, _ string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

type mockDebtorRepository struct {
	findByIDFunc  func(ctx context.Context, sellerID, id string) (model.Debtor, error)
	savedDebtors  []model.Debtor
	updatedDebtor []model.Debtor
}

func (m *mockDebtorRepository) FindByID(ctx context.Context, sellerID, id string) (model.Debtor, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, sellerID, id)
	}
	return model.Debtor{}, model.ErrDebtorNotFound
}

func (m *mockDebtorRepository) ListBySellerID(_ context.Context, _ string, _, _ int) ([]model.Debtor, error) {
	return nil, nil
}

func (m *mockDebtorRepository) Search(_ context.Context, _, _ string, _, _ int) ([]model.Debtor, error) {
	return nil, nil
}

func (m *mockDebtorRepository) Save(_ context.Context, debtor model.Debtor) error {
	m.savedDebtors = append(m.savedDebtors, debtor)
	return nil
}

func (m *mockDebtorRepository) Update(_ context.Context, debtor model.Debtor) error {
	m.updatedDebtor = append(m.updatedDebtor, debtor)
	return nil
}

func (m *mockDebtorRepository) Delete(_ context.Context, _, _ string) error { return nil }

type mockSellerRepository struct {
	findByIDFunc          func(ctx context.Context, id string) (model.Seller, error)
	findByPhoneNumberFunc func(ctx context.Context, phoneNumber string) (model.Seller, error)
	savedSellers          []model.Seller
	updatedSellers        []model.Seller
}

func (m *mockSellerRepository) FindByID(ctx context.Context, id string) (model.Seller, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.Seller{}, model.ErrSellerNotFound
}

func (m *mockSellerRepository) FindByPhoneNumber(ctx context.Context, phoneNumber string) (model.Seller, error) {
	if m.findByPhoneNumberFunc != nil {
		return m.findByPhoneNumberFunc(ctx, phoneNumber)
	}
	return model.Seller{}, model.ErrSellerNotFound
}

func (m *mockSellerRepository) List(_ context.Context, _, _ int) ([]model.Seller, error) {
	return nil, nil
}

func (m *mockSellerRepository) Save(_ context.Context, seller model.Seller) error {
	m.savedSellers = append(m.savedSellers, seller)
	return nil
}

func (m *mockSellerRepository) Update(_ context.Context, seller model.Seller) error {
	m.updatedSellers = append(m.updatedSellers, seller)
	return nil
}

func (m *mockSellerRepository) Delete(_ context.Context, _ string) error { return nil }

type mockAdminRepository struct {
	findByIDFunc       func(ctx context.Context, id string) (model.Admin, error)
	findByUsernameFunc func(ctx context.Context, username string) (model.Admin, error)
	savedAdmins        []model.Admin
}

func (m *mockAdminRepository) FindByID(ctx context.Context, id string) (model.Admin, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.Admin{}, model.ErrAdminNotFound
}

func (m *mockAdminRepository) FindByUsername(ctx context.Context, username string) (model.Admin, error) {
	if m.findByUsernameFunc != nil {
		return m.findByUsernameFunc(ctx, username)
	}
	return model.Admin{}, model.ErrAdminNotFound
}

func (m *mockAdminRepository) List(_ context.Context, _, _ int) ([]model.Admin, error) {
	return nil, nil
}

func (m *mockAdminRepository) Save(_ context.Context, admin model.Admin) error {
	m.savedAdmins = append(m.savedAdmins, admin)
	return nil
}

func (m *mockAdminRepository) Update(_ context.Context, _ model.Admin) error { return nil }
func (m *mockAdminRepository) Delete(_ context.Context, _ string) error      { return nil }

type mockMessageRepository struct {
	savedMessages []model.Message
}

func (m *mockMessageRepository) FindByID(_ context.Context, _, _ string) (model.Message, error) {
	return model.Message{}, fmt.Errorf("message not found")
}

func (m *mockMessageRepository) ListBySellerID(_ context.Context, _ string, _, _ int) ([]model.Message, error) {
	return nil, nil
}

func (m *mockMessageRepository) ListByDebtorID(_ context.Context, _, _ string) ([]model.Message, error) {
	return nil, nil
}

func (m *mockMessageRepository) Save(_ context.Context, message model.Message) error {
	m.savedMessages = append(m.savedMessages, message)
	return nil
}

func (m *mockMessageRepository) Update(_ context.Context, _ model.Message) error { return nil }

type mockTemplateRepository struct {
	findByIDFunc   func(ctx context.Context, id string) (model.MessageTemplate, error)
	savedTemplates []model.MessageTemplate
}

func (m *mockTemplateRepository) FindByID(ctx context.Context, id string) (model.MessageTemplate, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.MessageTemplate{}, model.ErrTemplateNotFound
}

func (m *mockTemplateRepository) ListVisibleTo(_ context.Context, _ string) ([]model.MessageTemplate, error) {
	return nil, nil
}

func (m *mockTemplateRepository) Save(_ context.Context, template model.MessageTemplate) error {
	m.savedTemplates = append(m.savedTemplates, template)
	return nil
}

func (m *mockTemplateRepository) Update(_ context.Context, _ model.MessageTemplate) error { return nil }
func (m *mockTemplateRepository) Delete(_ context.Context, _ string) error                { return nil }

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, evts ...events.DomainEvent) error
	publishedEvents []events.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...events.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

type mockSMSGateway struct {
	sendFunc  func(ctx context.Context, phoneNumber, text string) error
	sentTexts []string
}

func (m *mockSMSGateway) Send(ctx context.Context, phoneNumber, text string) error {
	if m.sendFunc != nil {
		return m.sendFunc(ctx, phoneNumber, text)
	}
	m.sentTexts = append(m.sentTexts, text)
	return nil
}

// mockUnitOfWork runs the callback against the mock repositories without a
// real transaction.
type mockUnitOfWork struct {
	debts    *mockDebtRepository
	payments *mockPaymentRepository
	debtors  *mockDebtorRepository
	sellers  *mockSellerRepository
}

func (m *mockUnitOfWork) WithinTx(_ context.Context, fn func(tx port.TxRepositories) error) error {
	return fn(m)
}

func (m *mockUnitOfWork) Debts() port.DebtRepository       { return m.debts }
func (m *mockUnitOfWork) Payments() port.PaymentRepository { return m.payments }
func (m *mockUnitOfWork) Debtors() port.DebtorRepository   { return m.debtors }
func (m *mockUnitOfWork) Sellers() port.SellerRepository   { return m.sellers }
