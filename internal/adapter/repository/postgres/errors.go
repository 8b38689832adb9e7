package postgres

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/srgjo27/movie_booking/internal/core/domain"
)

// SQLSTATE codes that mean the transaction lost a race for a row lock.
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
)

// translate maps lock contention errors to domain.ErrBusy and leaves
// everything else untouched.
func translate(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
			return fmt.Errorf("%w: %s", domain.ErrBusy, pqErr.Message)
		}
	}

	return err
}
