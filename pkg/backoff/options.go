/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package backoff

import (
	"fmt"
	"math"
	"time"

	"github.com/voedger/backoff/pkg/goutils/timeu"
)

// WithMaxRetries sets the number of retries after the first attempt, n >= 0
func WithMaxRetries(n int) Option {
	return func(p *Policy) error {
		if n < 0 {
			return fmt.Errorf("%w: max retries must be >= 0, got %d", ErrInvalidConfig, n)
		}
		p.maxRetries = n
		return nil
	}
}

// WithInitialWaitPeriod sets the wait before the second attempt, d > 0
func WithInitialWaitPeriod(d time.Duration) Option {
	return func(p *Policy) error {
		if d <= 0 {
			return fmt.Errorf("%w: initial wait period must be > 0, got %v", ErrInvalidConfig, d)
		}
		p.initialWaitPeriod = d
		return nil
	}
}

// WithGrowthFactor sets the multiplier applied to the wait period after each retry, f >= 1
func WithGrowthFactor(f float64) Option {
	return func(p *Policy) error {
		if math.IsNaN(f) || math.IsInf(f, 0) || f < 1 {
			return fmt.Errorf("%w: growth factor must be a finite number >= 1, got %v", ErrInvalidConfig, f)
		}
		p.growthFactor = f
		return nil
	}
}

// WithName sets the operation name used in logs, errors and metric labels
func WithName(name string) Option {
	return func(p *Policy) error {
		if len(name) == 0 {
			return fmt.Errorf("%w: name must not be empty", ErrInvalidConfig)
		}
		p.name = name
		return nil
	}
}

// WithTime sets the clock the policy sleeps on
func WithTime(iTime timeu.ITime) Option {
	return func(p *Policy) error {
		if iTime == nil {
			return fmt.Errorf("%w: nil ITime", ErrInvalidConfig)
		}
		p.iTime = iTime
		return nil
	}
}

// WithObserver adds an observer, observers are notified in the order they were added
func WithObserver(o IObserver) Option {
	return func(p *Policy) error {
		if o == nil {
			return fmt.Errorf("%w: nil observer", ErrInvalidConfig)
		}
		p.observers = append(p.observers, o)
		return nil
	}
}
