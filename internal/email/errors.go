package email

import (
	"github.com/dukerupert/foodmania/internal/domain"
)

var (
	ErrInvalidFromAddress = &domain.Error{Code: domain.EINVALID, Op: "email.service", Message: "Invalid from email address"}

	// ErrInvalidToAddress is returned when there is no usable recipient.
	ErrInvalidToAddress = &domain.Error{Code: domain.EINVALID, Op: "email.send", Message: "Invalid to email address"}

	ErrSMTPHostRequired      = &domain.Error{Code: domain.EINVALID, Op: "email.smtp", Message: "SMTP host is required"}
	ErrPostmarkTokenRequired = &domain.Error{Code: domain.EINVALID, Op: "email.postmark", Message: "Postmark server token is required"}
)

// ErrTemplateNotFound creates a template not found error.
func ErrTemplateNotFound(templateName string) error {
	return domain.Errorf(domain.ENOTFOUND, "email.render", "Email template %s not found", templateName)
}
