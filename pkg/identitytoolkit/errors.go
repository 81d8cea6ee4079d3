package identitytoolkit

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ============================================================================
// Error Kinds
// ============================================================================

// Kind is the coarse classification of a failed call.
type Kind int

const (
	// KindUnknown covers faults that fit no other kind, such as a request
	// body that could not be encoded.
	KindUnknown Kind = iota

	// KindConfigurationMissing means the project id or API key could not be
	// resolved. Only returned from NewClient.
	KindConfigurationMissing

	// KindTransport means the call failed before any response was received
	// (connection refused, timeout, TLS, cancelled context, token refresh).
	KindTransport

	// KindDecodeFailure means the response body matched neither the expected
	// response shape nor the error envelope.
	KindDecodeFailure

	// KindRemote means the service returned a well-formed error envelope.
	KindRemote
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindConfigurationMissing:
		return "configuration_missing"
	case KindTransport:
		return "transport"
	case KindDecodeFailure:
		return "decode_failure"
	case KindRemote:
		return "remote_error"
	default:
		return "unknown"
	}
}

// ============================================================================
// Remote Status Vocabulary
// ============================================================================

// Status is the "status" field of the Identity Toolkit error envelope.
// Values outside the known vocabulary are kept verbatim.
type Status string

const (
	// Account management
	StatusRequiresRecentLogin Status = "ERROR_REQUIRES_RECENT_LOGIN"

	// Authorization
	StatusAppNotAuthorized Status = "ERROR_APP_NOT_AUTHORIZED"

	// Multi-factor authentication
	StatusMissingMultiFactorSession        Status = "ERROR_MISSING_MULTI_FACTOR_SESSION"
	StatusMissingMultiFactorInfo           Status = "ERROR_MISSING_MULTI_FACTOR_INFO"
	StatusInvalidMultiFactorSession        Status = "ERROR_INVALID_MULTI_FACTOR_SESSION"
	StatusMultiFactorInfoNotFound          Status = "ERROR_MULTI_FACTOR_INFO_NOT_FOUND"
	StatusSecondFactorRequired             Status = "ERROR_SECOND_FACTOR_REQUIRED"
	StatusSecondFactorAlreadyEnrolled      Status = "ERROR_SECOND_FACTOR_ALREADY_ENROLLED"
	StatusMaximumSecondFactorCountExceeded Status = "ERROR_MAXIMUM_SECOND_FACTOR_COUNT_EXCEEDED"
	StatusUnsupportedFirstFactor           Status = "ERROR_UNSUPPORTED_FIRST_FACTOR"
	StatusEmailChangeNeedsVerification     Status = "ERROR_EMAIL_CHANGE_NEEDS_VERIFICATION"

	// Phone authentication
	StatusMissingPhoneNumber      Status = "ERROR_MISSING_PHONE_NUMBER"
	StatusInvalidPhoneNumber      Status = "ERROR_INVALID_PHONE_NUMBER"
	StatusMissingVerificationCode Status = "ERROR_MISSING_VERIFICATION_CODE"
	StatusInvalidVerificationCode Status = "ERROR_INVALID_VERIFICATION_CODE"
	StatusMissingVerificationID   Status = "ERROR_MISSING_VERIFICATION_ID"
	StatusInvalidVerificationID   Status = "ERROR_INVALID_VERIFICATION_ID"
	StatusSessionExpired          Status = "ERROR_SESSION_EXPIRED"
	StatusQuotaExceeded           Status = "ERROR_QUOTA_EXCEEDED"
	StatusAppNotVerified          Status = "ERROR_APP_NOT_VERIFIED"

	// General
	StatusCaptchaCheckFailed Status = "ERROR_CAPTCHA_CHECK_FAILED"
	StatusUnknownError       Status = "UNKNOWN_ERROR"

	// Canonical Google Cloud API statuses
	StatusInvalidArgument    Status = "INVALID_ARGUMENT"
	StatusFailedPrecondition Status = "FAILED_PRECONDITION"
	StatusOutOfRange         Status = "OUT_OF_RANGE"
	StatusUnauthenticated    Status = "UNAUTHENTICATED"
	StatusPermissionDenied   Status = "PERMISSION_DENIED"
	StatusNotFound           Status = "NOT_FOUND"
	StatusAborted            Status = "ABORTED"
	StatusAlreadyExists      Status = "ALREADY_EXISTS"
	StatusResourceExhausted  Status = "RESOURCE_EXHAUSTED"
	StatusCancelled          Status = "CANCELLED"
	StatusDataLoss           Status = "DATA_LOSS"
	StatusUnknown            Status = "UNKNOWN"
	StatusInternal           Status = "INTERNAL"
	StatusUnavailable        Status = "UNAVAILABLE"
	StatusDeadlineExceeded   Status = "DEADLINE_EXCEEDED"
)

var knownStatuses = map[Status]struct{}{
	StatusRequiresRecentLogin:              {},
	StatusAppNotAuthorized:                 {},
	StatusMissingMultiFactorSession:        {},
	StatusMissingMultiFactorInfo:           {},
	StatusInvalidMultiFactorSession:        {},
	StatusMultiFactorInfoNotFound:          {},
	StatusSecondFactorRequired:             {},
	StatusSecondFactorAlreadyEnrolled:      {},
	StatusMaximumSecondFactorCountExceeded: {},
	StatusUnsupportedFirstFactor:           {},
	StatusEmailChangeNeedsVerification:     {},
	StatusMissingPhoneNumber:               {},
	StatusInvalidPhoneNumber:               {},
	StatusMissingVerificationCode:          {},
	StatusInvalidVerificationCode:          {},
	StatusMissingVerificationID:            {},
	StatusInvalidVerificationID:            {},
	StatusSessionExpired:                   {},
	StatusQuotaExceeded:                    {},
	StatusAppNotVerified:                   {},
	StatusCaptchaCheckFailed:               {},
	StatusUnknownError:                     {},
	StatusInvalidArgument:                  {},
	StatusFailedPrecondition:               {},
	StatusOutOfRange:                       {},
	StatusUnauthenticated:                  {},
	StatusPermissionDenied:                 {},
	StatusNotFound:                         {},
	StatusAborted:                          {},
	StatusAlreadyExists:                    {},
	StatusResourceExhausted:                {},
	StatusCancelled:                        {},
	StatusDataLoss:                         {},
	StatusUnknown:                          {},
	StatusInternal:                         {},
	StatusUnavailable:                      {},
	StatusDeadlineExceeded:                 {},
}

// IsKnown reports whether s is part of the documented status vocabulary.
func (s Status) IsKnown() bool {
	_, ok := knownStatuses[s]
	return ok
}

// ============================================================================
// Error - the classified error returned by every call
// ============================================================================

// ErrorDetail is one item of the legacy "errors" array that some endpoints
// still include inside the error envelope.
type ErrorDetail struct {
	// Domain is the scope of the error, e.g. "global" or "usageLimits"
	Domain string `json:"domain,omitempty"`

	// Reason is e.g. "invalid", "invalidParameter" or "required"
	Reason string `json:"reason,omitempty"`

	// Message describes the error
	Message string `json:"message,omitempty"`

	// LocationType is the part of the request that caused the error
	LocationType string `json:"locationType,omitempty"`

	// Location is the item within LocationType that caused the error
	Location string `json:"location,omitempty"`
}

// Error is the single error type surfaced by the client. Use errors.As or
// the IsXxx helpers to inspect it.
type Error struct {
	Kind Kind

	// Status is the remote status, empty unless Kind is KindRemote and the
	// envelope carried one.
	Status Status

	// HTTPStatusCode is the envelope code (or the HTTP status when the
	// envelope had none). Zero when no response was received.
	HTTPStatusCode int

	// Message is the remote message for KindRemote, a description otherwise.
	Message string

	// Details holds the legacy per-item error records, if any.
	Details []ErrorDetail

	// Err is the underlying cause for transport, decode and unknown errors.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Kind == KindRemote && e.Status != "":
		return fmt.Sprintf("identitytoolkit: %s (%d %s): %s", e.Kind, e.HTTPStatusCode, e.Status, e.Message)
	case e.Kind == KindRemote:
		return fmt.Sprintf("identitytoolkit: %s (%d): %s", e.Kind, e.HTTPStatusCode, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("identitytoolkit: %s: %s: %v", e.Kind, e.Message, e.Err)
	default:
		return fmt.Sprintf("identitytoolkit: %s: %s", e.Kind, e.Message)
	}
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is a configuration error with the same message,
// so copies of ErrProjectIDMissing and ErrAPIKeyMissing match them.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Kind != KindConfigurationMissing {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

// clone returns a shallow copy of e.
func (e *Error) clone() *Error {
	c := *e
	return &c
}

// UnknownStatus reports whether the service returned a status string that is
// not in the documented vocabulary.
func (e *Error) UnknownStatus() bool {
	return e.Status != "" && !e.Status.IsKnown()
}

// ============================================================================
// Predefined Errors
// ============================================================================

var (
	// ErrProjectIDMissing is returned by NewClient when no project id could be
	// resolved from the environment, the credential or the configuration.
	ErrProjectIDMissing = &Error{
		Kind:    KindConfigurationMissing,
		Message: "project id missing: set GOOGLE_PROJECT_ID or PROJECT_ID, use a service account key or set Config.Project",
	}

	// ErrAPIKeyMissing is returned by NewClient when neither GOOGLE_API_KEY nor
	// API_KEY is set.
	ErrAPIKeyMissing = &Error{
		Kind:    KindConfigurationMissing,
		Message: "API key missing: set GOOGLE_API_KEY or API_KEY",
	}
)

func newUnknownError(reason string, err error) *Error {
	return &Error{
		Kind:    KindUnknown,
		Message: "an unknown error occurred: " + reason,
		Err:     err,
	}
}

func newTransportError(message string, err error) *Error {
	return &Error{
		Kind:    KindTransport,
		Message: message,
		Err:     err,
	}
}

// ============================================================================
// Classification
// ============================================================================

// errorEnvelope is the standard Google API error body.
type errorEnvelope struct {
	Error *struct {
		Code    int           `json:"code"`
		Message string        `json:"message"`
		Status  string        `json:"status"`
		Errors  []ErrorDetail `json:"errors"`
	} `json:"error"`
}

// Classify maps an error response body into an *Error. A body that is a
// well-formed error envelope yields KindRemote with the envelope's status,
// code and message kept verbatim; anything else yields KindDecodeFailure.
func Classify(body []byte, httpStatusCode int) *Error {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return &Error{
			Kind:           KindDecodeFailure,
			HTTPStatusCode: httpStatusCode,
			Message:        "failed to decode response",
			Err:            err,
		}
	}

	e := env.Error
	if e == nil || (e.Message == "" && e.Status == "" && e.Code == 0) {
		return &Error{
			Kind:           KindDecodeFailure,
			HTTPStatusCode: httpStatusCode,
			Message:        fmt.Sprintf("unexpected response: HTTP %d: %s", httpStatusCode, http.StatusText(httpStatusCode)),
		}
	}

	code := e.Code
	if code == 0 {
		code = httpStatusCode
	}

	return &Error{
		Kind:           KindRemote,
		Status:         Status(e.Status),
		HTTPStatusCode: code,
		Message:        e.Message,
		Details:        e.Errors,
	}
}

// ============================================================================
// Helpers
// ============================================================================

// AsError returns the *Error in err's chain, if any.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func hasKind(err error, kind Kind) bool {
	e, ok := AsError(err)
	return ok && e.Kind == kind
}

// IsConfigurationMissing reports whether err is a construction-time
// configuration error.
func IsConfigurationMissing(err error) bool { return hasKind(err, KindConfigurationMissing) }

// IsTransport reports whether err happened before any response was received.
func IsTransport(err error) bool { return hasKind(err, KindTransport) }

// IsDecodeFailure reports whether the response could not be decoded.
func IsDecodeFailure(err error) bool { return hasKind(err, KindDecodeFailure) }

// IsRemote reports whether err is a service-reported error.
func IsRemote(err error) bool { return hasKind(err, KindRemote) }

// HasStatus reports whether err is a remote error carrying status.
func HasStatus(err error, status Status) bool {
	e, ok := AsError(err)
	return ok && e.Kind == KindRemote && e.Status == status
}
