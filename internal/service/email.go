package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendGridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendGridEmailService) send(to, toName, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *sendGridEmailService) SendQuotationNotification(ctx context.Context, customerEmail, customerName, quotationID string, totalCents int64) error {
	subject := fmt.Sprintf("Your rental quotation %s", quotationID)
	body := fmt.Sprintf("Hello %s,\n\nYour rental quotation %s is ready. The quoted total is %s.\n\nBest regards,\nThe RentDesk Team",
		customerName, quotationID, formatCents(totalCents))
	return s.send(customerEmail, customerName, subject, body)
}

func (s *sendGridEmailService) SendOrderConfirmationNotification(ctx context.Context, customerEmail, customerName, orderID string) error {
	subject := fmt.Sprintf("Rental order %s confirmed", orderID)
	body := fmt.Sprintf("Hello %s,\n\nYour rental order %s has been confirmed. We will notify you when it is ready for pickup.\n\nBest regards,\nThe RentDesk Team",
		customerName, orderID)
	return s.send(customerEmail, customerName, subject, body)
}

func (s *sendGridEmailService) SendPaymentReceivedNotification(ctx context.Context, customerEmail, customerName, invoiceID string, amountCents int64) error {
	subject := fmt.Sprintf("Payment received for invoice %s", invoiceID)
	body := fmt.Sprintf("Hello %s,\n\nWe received your payment of %s against invoice %s. Thank you.\n\nBest regards,\nThe RentDesk Team",
		customerName, formatCents(amountCents), invoiceID)
	return s.send(customerEmail, customerName, subject, body)
}

func (s *sendGridEmailService) SendReturnReminderNotification(ctx context.Context, customerEmail, customerName, orderID string) error {
	subject := fmt.Sprintf("Return reminder for rental order %s", orderID)
	body := fmt.Sprintf("Hello %s,\n\nYour rental order %s is due back within the next day. Late returns accrue a daily late fee.\n\nBest regards,\nThe RentDesk Team",
		customerName, orderID)
	return s.send(customerEmail, customerName, subject, body)
}

func formatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
