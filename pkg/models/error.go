package models

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

// Machine-readable denial reasons, stable across releases (clients switch on them).
const (
	ReasonNotRegistered       = "user_not_registered"
	ReasonBlocked             = "user_blocked"
	ReasonQuotaExhausted      = "quota_exhausted"
	ReasonConcurrencyExceeded = "concurrency_exceeded"
	ReasonMissingCredential   = "missing_credential"
	ReasonTokenExpired        = "token_expired"
	ReasonInvalidToken        = "invalid_token"
	ReasonEmailRequired       = "email_required"
	ReasonAdminEmailRequired  = "admin_email_required"
	ReasonAdminOnly           = "admin_only"
	ReasonAdminDisabled       = "admin_endpoints_disabled"
	ReasonNotFound            = "not_found"
	ReasonUnknownModel        = "unknown_model"
	ReasonUpstreamError       = "upstream_error"
	ReasonStoreUnavailable    = "store_unavailable"
	ReasonInternalError       = "internal_error"

	// StatusRequestCancelled unofficial status code, it won't be sent over the wire, we just need a marker
	StatusRequestCancelled = 499
)

type ErrorWithCode interface {
	error
	Code() int
}

type ErrorMessage struct {
	code    int
	err     error
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

func NewErrorMessage(code int, reason string, err error) *ErrorMessage {
	return &ErrorMessage{
		code:    code,
		err:     err,
		Reason:  reason,
		Message: err.Error(),
	}
}

func (e *ErrorMessage) Code() int {
	return e.code
}

func (e *ErrorMessage) Error() string {
	return e.err.Error()
}

func (e *ErrorMessage) Unwrap() error {
	return e.err
}

func NewBadRequestError(err error) *ErrorMessage {
	return NewErrorMessage(http.StatusBadRequest, "bad_request", err)
}

func NewUnauthorizedError(reason string, err error) *ErrorMessage {
	return NewErrorMessage(http.StatusUnauthorized, reason, err)
}

func NewForbiddenError(reason string, err error) *ErrorMessage {
	return NewErrorMessage(http.StatusForbidden, reason, err)
}

func NewNotFoundError(err error) *ErrorMessage {
	return NewErrorMessage(http.StatusNotFound, ReasonNotFound, err)
}

func NewRateLimitedError(reason string, err error) *ErrorMessage {
	return NewErrorMessage(http.StatusTooManyRequests, reason, err)
}

func NewServiceUnavailableError(err error) *ErrorMessage {
	return NewErrorMessage(http.StatusServiceUnavailable, ReasonStoreUnavailable, err)
}

func NewBadGatewayError(err error) *ErrorMessage {
	return NewErrorMessage(http.StatusBadGateway, ReasonUpstreamError, err)
}

func NewInternalServerError(err error) *ErrorMessage {
	return NewErrorMessage(http.StatusInternalServerError, ReasonInternalError, err)
}

func NewTimeoutError(err error) *ErrorMessage {
	return NewErrorMessage(http.StatusGatewayTimeout, ReasonUpstreamError, err)
}

func NewCancelledError(err error) *ErrorMessage {
	return NewErrorMessage(StatusRequestCancelled, "request_cancelled", err)
}

func WrapTimeoutErr(err error, msg string) error {
	var e ErrorWithCode
	if errors.Is(err, context.DeadlineExceeded) && !errors.As(err, &e) {
		err = NewTimeoutError(err)
	}
	return errors.Wrap(err, msg)
}

func WrapCancelledErr(err error) error {
	var e ErrorWithCode
	if errors.Is(err, context.Canceled) && !errors.As(err, &e) {
		err = NewCancelledError(err)
	}
	return err
}
