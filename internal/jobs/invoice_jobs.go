package jobs

import (
	"context"

	"rentdesk-backend/internal/logger"
)

// MarkOverdueInvoices flips sent and partial invoices past their due date
// with an outstanding balance to overdue.
func (jr *JobRunner) MarkOverdueInvoices() {
	jr.runWithRecovery("MarkOverdueInvoices", func() {
		ctx := context.Background()

		count, err := jr.invoiceRepo.MarkOverdue(ctx, jr.clock.Now())
		if err != nil {
			logger.Error("Failed to mark overdue invoices", "error", err)
			return
		}
		logger.Info("Marked invoices as overdue", "count", count)
	})
}
