/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package backoff

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when an Option gets an invalid value
var ErrInvalidConfig = errors.New("invalid backoff config")

// ErrRetriableOperationFailed matches any *RetriableOperationFailedError via errors.Is
var ErrRetriableOperationFailed = errors.New("retriable operation failed")

// RetriableOperationFailedError is returned when every attempt allowed by the Policy has failed
type RetriableOperationFailedError struct {
	Name     string
	Attempts int

	// error returned by the last attempt
	Cause error
}

func (e *RetriableOperationFailedError) Error() string {
	return fmt.Sprintf("%v: %s, %d attempt(s): %v", ErrRetriableOperationFailed, e.Name, e.Attempts, e.Cause)
}

func (e *RetriableOperationFailedError) Unwrap() error {
	return e.Cause
}

func (e *RetriableOperationFailedError) Is(target error) bool {
	return target == ErrRetriableOperationFailed
}
