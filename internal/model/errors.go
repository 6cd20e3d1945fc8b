package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidInput marks an unparseable or out-of-range user entry. Always recoverable by re-asking.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidAmount marks a purchase amount that is non-positive or below the instrument minimum.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrUnparseableReturnRange marks catalog or recommendation data without a usable rate.
	ErrUnparseableReturnRange = errors.New("unparseable return range")
	// ErrUnknownInstrument marks an instrument id missing from the catalog.
	ErrUnknownInstrument = errors.New("unknown instrument")
)

// InputError carries the corrective guidance shown to the user for an invalid entry.
type InputError struct {
	Guidance string
}

func (e *InputError) Error() string { return e.Guidance }

func (e *InputError) Unwrap() error { return ErrInvalidInput }

// NewInputError builds an InputError with the given guidance.
func NewInputError(guidance string) error { return &InputError{Guidance: guidance} }

// AmountError describes a rejected purchase amount. Minimum is zero when the amount itself was not positive.
type AmountError struct {
	InstrumentID string
	Title        string
	Amount       float64
	Minimum      decimal.Decimal
}

func (e *AmountError) Error() string {
	if e.Minimum.IsPositive() && e.Amount > 0 {
		return fmt.Sprintf("minimum investment for %s is %s", e.Title, e.Minimum.String())
	}
	return "please enter a valid investment amount"
}

func (e *AmountError) Unwrap() error { return ErrInvalidAmount }
