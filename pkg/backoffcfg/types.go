/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package backoffcfg

import "time"

// Config is the YAML form of a backoff.Policy
// nil fields keep backoff defaults
//
//	maxRetries: 3
//	initialWaitPeriod: 250ms
//	growthFactor: 2
//	name: download
type Config struct {
	MaxRetries        *int      `yaml:"maxRetries"`
	InitialWaitPeriod *Duration `yaml:"initialWaitPeriod"`
	GrowthFactor      *float64  `yaml:"growthFactor"`
	Name              string    `yaml:"name"`
}

// Duration is time.Duration written in time.ParseDuration syntax
type Duration time.Duration
