package email

import (
	"bytes"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/ledgerline/backoffice-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// Sender is the display name and address stamped on outgoing mail. It comes
// from the account settings row, not the SMTP credentials.
type Sender struct {
	Name    string
	Address string
}

// EmailService sends the transactional mail this system produces: payslips
// to employees and invoices to customers.
type EmailService interface {
	SendPayslip(to string, sender Sender, data PayslipEmailData, pdf []byte, filename string) error
	SendInvoice(to string, sender Sender, data InvoiceEmailData) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type PayslipEmailData struct {
	EmployeeName string
	CompanyName  string
	BatchName    string
	PeriodStart  string
	PeriodEnd    string
	NetPay       string
	Currency     string
}

// SendPayslip sends the payslip email with the PDF attached.
func (s *emailServiceImpl) SendPayslip(to string, sender Sender, data PayslipEmailData, pdf []byte, filename string) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "payslip.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	subject := fmt.Sprintf("Payslip for %s to %s", data.PeriodStart, data.PeriodEnd)
	message := buildMixedMessage(sender, to, subject, body.String(), pdf, filename)

	return s.send(to, subject, message)
}

type InvoiceEmailData struct {
	CustomerName string
	CompanyName  string
	Number       string
	IssueDate    string
	DueDate      string
	Total        string
}

// SendInvoice sends the invoice summary email to the customer.
func (s *emailServiceImpl) SendInvoice(to string, sender Sender, data InvoiceEmailData) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "invoice.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	subject := fmt.Sprintf("Invoice %s from %s", data.Number, data.CompanyName)
	message := buildHTMLMessage(sender, to, subject, body.String())

	return s.send(to, subject, message)
}

func buildHTMLMessage(sender Sender, to, subject, htmlBody string) []byte {
	headers := fmt.Sprintf("From: %s <%s>\r\n", sender.Name, sender.Address)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	return []byte(headers + htmlBody)
}

// buildMixedMessage assembles a multipart/mixed message: HTML body plus one
// PDF attachment, base64 encoded in 76-column lines per RFC 2045.
func buildMixedMessage(sender Sender, to, subject, htmlBody string, pdf []byte, filename string) []byte {
	const boundary = "MIXED-BOUNDARY-ledgerline"

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", sender.Name, sender.Address)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&msg, "Content-Type: multipart/mixed; boundary=\"%s\"\r\n", boundary)
	msg.WriteString("\r\n")

	fmt.Fprintf(&msg, "--%s\r\n", boundary)
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	msg.WriteString(htmlBody)
	msg.WriteString("\r\n")

	fmt.Fprintf(&msg, "--%s\r\n", boundary)
	msg.WriteString("Content-Type: application/pdf\r\n")
	msg.WriteString("Content-Transfer-Encoding: base64\r\n")
	fmt.Fprintf(&msg, "Content-Disposition: attachment; filename=\"%s\"\r\n\r\n", filename)

	encoded := base64.StdEncoding.EncodeToString(pdf)
	for len(encoded) > 76 {
		msg.WriteString(encoded[:76])
		msg.WriteString("\r\n")
		encoded = encoded[76:]
	}
	msg.WriteString(encoded)
	msg.WriteString("\r\n")

	fmt.Fprintf(&msg, "--%s--\r\n", boundary)

	return msg.Bytes()
}

func (s *emailServiceImpl) send(to, subject string, message []byte) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, s.cfg.From, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
