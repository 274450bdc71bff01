package infra

import (
	"errors"
	"log/slog"

	"slotbook/internal/pkg/errs"
)

type StoreErrorKind string

// StoreError classifies failures talking to the external resource store so
// upper layers can branch on kind without parsing transport details.
type StoreError struct {
	Kind StoreErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e StoreError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e StoreError) Unwrap() error {
	return e.err
}

func WrapStoreErr(slogger *slog.Logger, kind StoreErrorKind, msg string, err error) error {
	slogger.Error("Store error: "+msg, slog.String("kind", string(kind)))

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return StoreError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind StoreErrorKind) bool {
	var e StoreError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Store-specific error kinds
const (
	KindNotFound     StoreErrorKind = "NOT_FOUND"
	KindTransport    StoreErrorKind = "TRANSPORT_FAILURE"
	KindDecode       StoreErrorKind = "DECODE_FAILURE"
	KindStoreFailure StoreErrorKind = "STORE_FAILURE"
)
