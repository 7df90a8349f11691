/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package backoff

import (
	"time"

	"github.com/voedger/backoff/pkg/goutils/timeu"
)

// Policy is an immutable retry configuration
// Configuration methods return a new Policy, the receiver is never changed,
// so a Policy may be shared by concurrent executions.
// Zero Policy makes exactly one attempt.
type Policy struct {
	maxRetries        int
	initialWaitPeriod time.Duration
	growthFactor      float64
	name              string
	iTime             timeu.ITime
	observers         []IObserver
}

// Option configures a Policy, returns error wrapping ErrInvalidConfig on invalid value
type Option func(p *Policy) error
