// Package scheduler runs the recurring jobs: currently the daily
// due-installment SMS reminder.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Sidiqjon/debt-manager/internal/domain/event"
	"github.com/Sidiqjon/debt-manager/internal/domain/model"
	"github.com/Sidiqjon/debt-manager/internal/domain/port"
	"github.com/Sidiqjon/debt-manager/pkg/observability"
)

// reminderWindow is how far ahead of a due date debtors are texted.
const reminderWindow = 3 * 24 * time.Hour

// ReminderJob texts debtors whose next installment falls due soon.
type ReminderJob struct {
	debtRepo    port.DebtRepository
	debtorRepo  port.DebtorRepository
	messageRepo port.MessageRepository
	gateway     port.SMSGateway
	publisher   port.EventPublisher
	metrics     *observability.Metrics
	logger      *slog.Logger

	cron *cron.Cron
}

// NewReminderJob wires dependencies.
func NewReminderJob(
	debtRepo port.DebtRepository,
	debtorRepo port.DebtorRepository,
	messageRepo port.MessageRepository,
	gateway port.SMSGateway,
	publisher port.EventPublisher,
	metrics *observability.Metrics,
	logger *slog.Logger,
) *ReminderJob {
	return &ReminderJob{
		debtRepo:    debtRepo,
		debtorRepo:  debtorRepo,
		messageRepo: messageRepo,
		gateway:     gateway,
		publisher:   publisher,
		metrics:     metrics,
		logger:      logger,
	}
}

// Start schedules the job daily at the given hour and begins running it.
func (j *ReminderJob) Start(hour int) error {
	j.cron = cron.New()
	spec := fmt.Sprintf("0 %d * * *", hour)
	if _, err := j.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		j.Run(ctx)
	}); err != nil {
		return fmt.Errorf("schedule reminder job: %w", err)
	}
	j.cron.Start()
	j.logger.Info("reminder job scheduled", "spec", spec)
	return nil
}

// Stop halts the schedule and waits for a running job to finish.
func (j *ReminderJob) Stop() {
	if j.cron != nil {
		<-j.cron.Stop().Done()
	}
}

// Run performs one reminder sweep. Exported so it can be triggered manually
// and tested without the cron schedule.
func (j *ReminderJob) Run(ctx context.Context) {
	now := time.Now().UTC()
	debts, err := j.debtRepo.ListDueBetween(ctx, now, now.Add(reminderWindow))
	if err != nil {
		j.logger.Error("reminder sweep failed", "error", err)
		return
	}

	for _, debt := range debts {
		if err := j.remind(ctx, debt, now); err != nil {
			j.logger.Warn("reminder failed", "debt_id", debt.ID(), "error", err)
			j.metrics.RemindersSent.WithLabelValues("failed").Inc()
			continue
		}
		j.metrics.RemindersSent.WithLabelValues("sent").Inc()
	}
	j.logger.Info("reminder sweep finished", "debts", len(debts))
}

func (j *ReminderJob) remind(ctx context.Context, debt model.Debt, now time.Time) error {
	next, ok := debt.NextUnpaidInstallment()
	if !ok {
		return nil
	}

	debtor, err := j.debtorRepo.FindByID(ctx, debt.SellerID(), debt.DebtorID())
	if err != nil {
		return fmt.Errorf("find debtor: %w", err)
	}
	phones := debtor.PhoneNumbers()
	if len(phones) == 0 {
		return fmt.Errorf("debtor %s has no phone number", debtor.ID())
	}

	text := fmt.Sprintf(
		"Hurmatli %s, %s uchun %s to'lov muddati %s. To'lovni unutmang.",
		debtor.FullName(), debt.ProductName(),
		next.Unpaid().StringFixed(2), next.DueDate.Format("02.01.2006"),
	)

	message, err := model.NewMessage(debt.SellerID(), debt.DebtorID(), text, now)
	if err != nil {
		return err
	}

	sendErr := j.gateway.Send(ctx, phones[0], text)
	if sendErr != nil {
		message = message.MarkFailed()
	} else {
		message = message.MarkSent(time.Now().UTC())
	}

	if err := j.messageRepo.Save(ctx, message); err != nil {
		return fmt.Errorf("save message: %w", err)
	}

	evt := event.NewReminderSent(debt.ID(), debt.SellerID(), debt.DebtorID(), next.DueDate, sendErr == nil)
	if err := j.publisher.Publish(ctx, evt); err != nil {
		j.logger.Warn("publish reminder event failed", "debt_id", debt.ID(), "error", err)
	}
	return sendErr
}
