/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package backoff

import (
	"github.com/voedger/backoff/pkg/goutils/timeu"
)

// Default returns a Policy with DefaultMaxRetries, DefaultInitialWaitPeriod and DefaultGrowthFactor
func Default() Policy {
	return Policy{
		maxRetries:        DefaultMaxRetries,
		initialWaitPeriod: DefaultInitialWaitPeriod,
		growthFactor:      DefaultGrowthFactor,
		name:              DefaultName,
		iTime:             timeu.NewITime(),
	}
}

// New returns the Default() policy with opts applied
func New(opts ...Option) (Policy, error) {
	return Default().With(opts...)
}

// MustNew is New that panics on invalid options
// useful for package-level policies
func MustNew(opts ...Option) Policy {
	p, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return p
}
