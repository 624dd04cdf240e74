package jobs

import (
	"context"

	"rentdesk-backend/internal/logger"
)

// ExpireQuotations flips sent quotations whose validity window has closed to
// expired. Conversion also expires lazily on access; this job keeps listings
// honest for quotations nobody touches.
func (jr *JobRunner) ExpireQuotations() {
	jr.runWithRecovery("ExpireQuotations", func() {
		ctx := context.Background()

		count, err := jr.quotationRepo.ExpireSent(ctx, jr.clock.Now())
		if err != nil {
			logger.Error("Failed to expire quotations", "error", err)
			return
		}
		logger.Info("Expired quotations", "count", count)
	})
}
