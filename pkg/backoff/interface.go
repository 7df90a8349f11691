/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package backoff

import "time"

// IObserver is notified synchronously on the goroutine that executes the operation
//
// @ConcurrentAccess
type IObserver interface {
	// attempt is 1-based. wait is the period to sleep before the next attempt, 0 if the budget is spent
	OnAttemptFailed(name string, attempt int, wait time.Duration, err error)
	// called once the wait after a failed attempt is over and the next attempt is about to start
	OnWaited(name string, attempt int, wait time.Duration)

	// exactly one of the following ends each execution
	OnSucceeded(name string, attempts int)
	OnExhausted(name string, attempts int, cause error)
	// ctx is done while waiting, cause is the error of the last attempt
	OnCancelled(name string, attempts int, cause error)
}
