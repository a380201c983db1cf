package error

import "errors"

// Seller notification errors. They are logged by the settlement workflow and
// never change its outcome.
var (
	ErrEmailSendFailed      = errors.New("failed to send email")
	ErrTemplateRenderFailed = errors.New("failed to render email template")
)

// EmailErrorCode identifies a notification failure. Format: EMAIL-XXYYYY.
type EmailErrorCode string

const (
	// Delivery (01XXXX)
	ErrCodeEmailSendFailed       EmailErrorCode = "EMAIL-010001"
	ErrCodePermanentEmailFailure EmailErrorCode = "EMAIL-010002"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EMAIL-010003"

	// Rendering (02XXXX)
	ErrCodeTemplateRenderFailed EmailErrorCode = "EMAIL-020001"
)

// EmailError is a coded notification failure.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsPermanentEmailError reports whether the provider rejected the message in a
// way a retry cannot fix.
func IsPermanentEmailError(err error) bool {
	var emailErr *EmailError
	return errors.As(err, &emailErr) && emailErr.Code == ErrCodePermanentEmailFailure
}
