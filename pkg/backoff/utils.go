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

// grow returns d*factor, saturated at maxWaitPeriod
// integral factors are applied exactly
func grow(d time.Duration, factor float64) time.Duration {
	if factor < float64(maxWaitPeriod) && factor == math.Trunc(factor) {
		f := time.Duration(factor)
		if f != 0 && d > maxWaitPeriod/f {
			return maxWaitPeriod
		}
		return d * f
	}
	next := float64(d) * factor
	if next >= float64(maxWaitPeriod) {
		return maxWaitPeriod
	}
	return time.Duration(next)
}

func addSaturated(a, b time.Duration) time.Duration {
	if a > maxWaitPeriod-b {
		return maxWaitPeriod
	}
	return a + b
}

func mulSaturated(d time.Duration, n int) time.Duration {
	if n <= 0 || d <= 0 {
		return 0
	}
	if d > maxWaitPeriod/time.Duration(n) {
		return maxWaitPeriod
	}
	return d * time.Duration(n)
}
