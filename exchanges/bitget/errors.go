package bitget

import (
	"errors"
	"fmt"
)

// ErrorKind is a normalised category of exchange failure
type ErrorKind uint8

// Error kinds
const (
	KindExchange ErrorKind = iota
	KindAuthentication
	KindPermissionDenied
	KindAccountSuspended
	KindInvalidNonce
	KindArgumentsRequired
	KindBadRequest
	KindBadSymbol
	KindInsufficientFunds
	KindInvalidAddress
	KindInvalidOrder
	KindOrderNotFound
	KindCancelPending
	KindNotSupported
	KindNetwork
	KindRateLimited
	KindExchangeNotAvailable
	KindOnMaintenance
	KindRequestTimeout
)

// Error kind sentinels, usable with errors.Is. A classified error matches its
// own sentinel and the sentinels of every parent kind.
var (
	ErrExchange             = errors.New("exchange error")
	ErrAuthentication       = errors.New("authentication error")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrAccountSuspended     = errors.New("account suspended")
	ErrInvalidNonce         = errors.New("invalid nonce")
	ErrArgumentsRequired    = errors.New("arguments required")
	ErrBadRequest           = errors.New("bad request")
	ErrBadSymbol            = errors.New("bad symbol")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrInvalidAddress       = errors.New("invalid address")
	ErrInvalidOrder         = errors.New("invalid order")
	ErrOrderNotFound        = errors.New("order not found")
	ErrCancelPending        = errors.New("cancel pending")
	ErrNotSupported         = errors.New("not supported")
	ErrNetwork              = errors.New("network error")
	ErrRateLimited          = errors.New("rate limited")
	ErrExchangeNotAvailable = errors.New("exchange not available")
	ErrOnMaintenance        = errors.New("exchange on maintenance")
	ErrRequestTimeout       = errors.New("request timeout")
)

var kindSentinels = [...]error{
	KindExchange:             ErrExchange,
	KindAuthentication:       ErrAuthentication,
	KindPermissionDenied:     ErrPermissionDenied,
	KindAccountSuspended:     ErrAccountSuspended,
	KindInvalidNonce:         ErrInvalidNonce,
	KindArgumentsRequired:    ErrArgumentsRequired,
	KindBadRequest:           ErrBadRequest,
	KindBadSymbol:            ErrBadSymbol,
	KindInsufficientFunds:    ErrInsufficientFunds,
	KindInvalidAddress:       ErrInvalidAddress,
	KindInvalidOrder:         ErrInvalidOrder,
	KindOrderNotFound:        ErrOrderNotFound,
	KindCancelPending:        ErrCancelPending,
	KindNotSupported:         ErrNotSupported,
	KindNetwork:              ErrNetwork,
	KindRateLimited:          ErrRateLimited,
	KindExchangeNotAvailable: ErrExchangeNotAvailable,
	KindOnMaintenance:        ErrOnMaintenance,
	KindRequestTimeout:       ErrRequestTimeout,
}

// kindParents holds the parent of each kind, KindExchange is the root
var kindParents = map[ErrorKind]ErrorKind{
	KindAuthentication:       KindExchange,
	KindPermissionDenied:     KindAuthentication,
	KindAccountSuspended:     KindAuthentication,
	KindInvalidNonce:         KindAuthentication,
	KindArgumentsRequired:    KindExchange,
	KindBadRequest:           KindExchange,
	KindBadSymbol:            KindBadRequest,
	KindInsufficientFunds:    KindExchange,
	KindInvalidAddress:       KindExchange,
	KindInvalidOrder:         KindExchange,
	KindOrderNotFound:        KindInvalidOrder,
	KindCancelPending:        KindInvalidOrder,
	KindNotSupported:         KindExchange,
	KindNetwork:              KindExchange,
	KindRateLimited:          KindNetwork,
	KindExchangeNotAvailable: KindNetwork,
	KindOnMaintenance:        KindExchangeNotAvailable,
	KindRequestTimeout:       KindNetwork,
}

// Sentinel returns the exported sentinel error of the kind
func (k ErrorKind) Sentinel() error {
	if int(k) < len(kindSentinels) {
		return kindSentinels[k]
	}
	return ErrExchange
}

// Parent returns the parent kind and whether k has one
func (k ErrorKind) Parent() (ErrorKind, bool) {
	p, ok := kindParents[k]
	return p, ok
}

// Descends returns whether k is target or one of its descendants
func (k ErrorKind) Descends(target ErrorKind) bool {
	for {
		if k == target {
			return true
		}
		p, ok := k.Parent()
		if !ok {
			return false
		}
		k = p
	}
}

// String implements fmt.Stringer
func (k ErrorKind) String() string {
	return k.Sentinel().Error()
}

// ClassifiedError is a failure reported by the exchange in a response body
type ClassifiedError struct {
	Kind    ErrorKind
	Code    string
	Message string
	// Body is the raw response body for unclassified failures
	Body string
}

// Error implements the error interface
func (e *ClassifiedError) Error() string {
	switch {
	case e.Code != "" && e.Message != "":
		return fmt.Sprintf("%s: code %s: %s", e.Kind, e.Code, e.Message)
	case e.Code != "":
		return fmt.Sprintf("%s: code %s", e.Kind, e.Code)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Body)
}

// Is matches the sentinel of the error kind and of every ancestor kind
func (e *ClassifiedError) Is(target error) bool {
	for k := e.Kind; ; {
		if k.Sentinel() == target {
			return true
		}
		p, ok := k.Parent()
		if !ok {
			return false
		}
		k = p
	}
}

// NewError returns a classified error of kind with a free form message
func NewError(kind ErrorKind, format string, args ...any) error {
	return &ClassifiedError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// ClassifyError maps an exchange code and message to an error kind. Exact
// message matches take precedence over exact code matches.
func ClassifyError(code, message string) (ErrorKind, bool) {
	if message != "" {
		if k, ok := errorMessages[message]; ok {
			return k, true
		}
	}
	if code != "" {
		if k, ok := errorCodes[code]; ok {
			return k, true
		}
	}
	return KindExchange, false
}

// CheckResponse inspects a response body for an exchange reported failure.
// An empty message alongside an absent or "00000" code is success. Bodies
// that are not JSON objects are left to the decoder.
func CheckResponse(body []byte) error {
	r := Record(body)
	if r.requireObject() != nil {
		return nil
	}
	message := r.String("err_msg").String
	code := r.String("code", "err_code").String
	if code == "00000" {
		code = ""
	}
	if message == "" && code == "" {
		return nil
	}
	kind, ok := ClassifyError(code, message)
	e := &ClassifiedError{Kind: kind, Code: code, Message: message}
	if !ok {
		e.Body = string(body)
	}
	return e
}

// IsRetryable returns whether backing off and repeating the request can
// succeed
func IsRetryable(err error) bool {
	var ce *ClassifiedError
	if !errors.As(err, &ce) {
		return false
	}
	for _, k := range []ErrorKind{KindRateLimited, KindExchangeNotAvailable, KindRequestTimeout, KindInvalidNonce} {
		if ce.Kind.Descends(k) {
			return true
		}
	}
	return false
}

