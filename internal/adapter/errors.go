package adapter

import "errors"

var (
	// ErrUnknownTransport is returned by [NewNotifier] for an unsupported
	// transport name.
	ErrUnknownTransport = errors.New("unknown notifier transport")

	// ErrInvalidNotifierConfig is returned when a transport lacks a
	// required setting.
	ErrInvalidNotifierConfig = errors.New("invalid notifier config")

	// ErrRenderingMail is returned when a mail template cannot be executed.
	ErrRenderingMail = errors.New("error rendering mail")

	// ErrSendingMail is returned when the transport fails to deliver a
	// message.
	ErrSendingMail = errors.New("error sending mail")

	// ErrNotificationRejected is returned when the webhook relay answers
	// with a non-2xx status.
	ErrNotificationRejected = errors.New("notification rejected")

	// ErrUnauthorized is returned when the webhook relay refuses the
	// configured token.
	ErrUnauthorized = errors.New("notifier unauthorized")
)
