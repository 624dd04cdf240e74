package jobs

import (
	"rentdesk-backend/internal/clock"
	"rentdesk-backend/internal/logger"
	"rentdesk-backend/internal/repository"
	"rentdesk-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	quotationRepo repository.QuotationRepository
	invoiceRepo   repository.InvoiceRepository
	orderRepo     repository.OrderRepository
	emailSvc      service.EmailService
	clock         clock.Clock
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(
	quotationRepo repository.QuotationRepository,
	invoiceRepo repository.InvoiceRepository,
	orderRepo repository.OrderRepository,
	emailSvc service.EmailService,
	clk clock.Clock,
) *JobRunner {
	return &JobRunner{
		quotationRepo: quotationRepo,
		invoiceRepo:   invoiceRepo,
		orderRepo:     orderRepo,
		emailSvc:      emailSvc,
		clock:         clk,
	}
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.ExpireQuotations()
	jr.MarkOverdueInvoices()
	jr.SendReturnReminders()
}
