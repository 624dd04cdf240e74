package jobs

import (
	"context"
	"time"

	"rentdesk-backend/internal/logger"
)

// SendReturnReminders emails customers whose active orders fall due within
// the next 24 hours.
func (jr *JobRunner) SendReturnReminders() {
	jr.runWithRecovery("SendReturnReminders", func() {
		ctx := context.Background()
		now := jr.clock.Now()

		orders, err := jr.orderRepo.ListDueForReturn(ctx, now, now.Add(24*time.Hour))
		if err != nil {
			logger.Error("Failed to list orders due for return", "error", err)
			return
		}

		sent := 0
		for _, o := range orders {
			if o.CustomerEmail == "" {
				continue
			}
			if err := jr.emailSvc.SendReturnReminderNotification(ctx, o.CustomerEmail, o.CustomerName, o.ID); err != nil {
				logger.Error("Failed to send return reminder", "order_id", o.ID, "error", err)
				continue
			}
			sent++
		}
		logger.Info("Sent return reminders", "due", len(orders), "sent", sent)
	})
}
