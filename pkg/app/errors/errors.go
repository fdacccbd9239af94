// Package errors contains helper functions and types to work with errors
package errors

import (
	"errors"
)

// Category defines error category
type Category int

const (
	// CategoryNoError is returned for a nil error.
	CategoryNoError Category = iota
	// CategoryConfiguration A required configuration input is missing or malformed.
	CategoryConfiguration
	// CategoryAddressParse A contract or account address is not a valid hex address.
	CategoryAddressParse
	// CategorySigning The signer could not be built, usually an invalid private key.
	CategorySigning
	// CategoryValidation Campaign parameters failed validation before submission.
	CategoryValidation
	// CategoryNetwork RPC or transport failure, reverted transaction, nonce conflict.
	CategoryNetwork
	// CategoryGeneralError The program failed in an unexpected way
	CategoryGeneralError
)

func (c Category) String() string {
	switch c {
	case CategoryNoError:
		return "CategoryNoError"
	case CategoryConfiguration:
		return "CategoryConfiguration"
	case CategoryAddressParse:
		return "CategoryAddressParse"
	case CategorySigning:
		return "CategorySigning"
	case CategoryValidation:
		return "CategoryValidation"
	case CategoryNetwork:
		return "CategoryNetwork"
	default:
		return "CategoryGeneralError"
	}
}

// ServiceError represents the categorised error type that
// is used all over the client.
type ServiceError struct {
	Category Category
	Message  string
	Err      error
}

// Error method to comply with error interface
func (err ServiceError) Error() string {
	if err.Err != nil {
		return err.Message + ": " + err.Err.Error()
	}
	return err.Message
}

// Unwrap returns the underlying error
func (err ServiceError) Unwrap() error {
	return err.Err
}

// Is checks that provided error is a ServiceError with desired Category
func Is(err error, cat Category) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && svcErr.Category == cat {
		return true
	}
	return false
}

// CategoryOf returns the category of the outermost ServiceError in the chain.
// Errors that were never categorised are general errors.
func CategoryOf(err error) Category {
	if err == nil {
		return CategoryNoError
	}
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Category
	}
	return CategoryGeneralError
}

// ExitCode returns the process exit status for the error.
func ExitCode(err error) int {
	switch CategoryOf(err) {
	case CategoryNoError:
		return 0
	case CategoryConfiguration:
		return 2
	case CategoryAddressParse:
		return 3
	case CategorySigning:
		return 4
	case CategoryNetwork:
		return 5
	case CategoryValidation:
		return 6
	default:
		return 1
	}
}

func newError(cat Category, err error, message string) error {
	return &ServiceError{
		Category: cat,
		Message:  message,
		Err:      err,
	}
}

// ConfigurationError returns an error with category Configuration.
// The message names the offending option.
func ConfigurationError(err error, message string) error {
	return newError(CategoryConfiguration, err, message)
}

// AddressParseError returns an error with category AddressParse
func AddressParseError(err error, message string) error {
	return newError(CategoryAddressParse, err, message)
}

// SigningError returns an error with category Signing
func SigningError(err error, message string) error {
	return newError(CategorySigning, err, message)
}

// ValidationError returns an error with category Validation
func ValidationError(err error, message string) error {
	return newError(CategoryValidation, err, message)
}

// NetworkError returns an error with category Network.
// Reverted transactions are reported here as well.
func NetworkError(err error, message string) error {
	return newError(CategoryNetwork, err, message)
}

// GeneralError returns a general error
func GeneralError(err error) error {
	if err == nil {
		err = errors.New("internal error")
	}
	return &ServiceError{
		Category: CategoryGeneralError,
		Message:  "unexpected failure",
		Err:      err,
	}
}
