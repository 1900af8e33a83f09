package settings

import "github.com/ledgerline/backoffice-backend-go/internal/pkg/validator"

type AccountSettingsResponse struct {
	CompanyName     string `json:"company_name"`
	DefaultCurrency string `json:"default_currency"`
	SenderName      string `json:"sender_name"`
	SenderEmail     string `json:"sender_email"`
}

type UpdateAccountSettingsRequest struct {
	CompanyName     *string `json:"company_name,omitempty"`
	DefaultCurrency *string `json:"default_currency,omitempty"`
	SenderName      *string `json:"sender_name,omitempty"`
	SenderEmail     *string `json:"sender_email,omitempty"`
}

func (r *UpdateAccountSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CompanyName != nil && validator.IsEmpty(*r.CompanyName) {
		errs = append(errs, validator.ValidationError{Field: "company_name", Message: "must not be blank"})
	}
	if r.DefaultCurrency != nil && !validator.IsValidCurrency(*r.DefaultCurrency) {
		errs = append(errs, validator.ValidationError{Field: "default_currency", Message: "must be a three-letter ISO code"})
	}
	if r.SenderEmail != nil && !validator.IsValidEmail(*r.SenderEmail) {
		errs = append(errs, validator.ValidationError{Field: "sender_email", Message: "must be a valid email address"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
