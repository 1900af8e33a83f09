package settings

import "time"

// AccountSettings is the single account-profile row: company identity and
// the sender address the mailer uses for payslip and invoice delivery.
type AccountSettings struct {
	ID              string
	CompanyName     string
	DefaultCurrency string
	SenderName      string
	SenderEmail     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
