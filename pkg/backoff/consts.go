/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package backoff

import (
	"math"
	"time"
)

const (
	DefaultMaxRetries        = 5
	DefaultInitialWaitPeriod = 500 * time.Millisecond
	DefaultGrowthFactor      = 2
	DefaultName              = "operation"
)

// growth saturates here instead of overflowing into negative durations
const maxWaitPeriod = time.Duration(math.MaxInt64)
