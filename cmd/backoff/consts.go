/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package main

const (
	flagConfig       = "config"
	flagMaxRetries   = "max-retries"
	flagInitialWait  = "initial-wait"
	flagGrowthFactor = "growth-factor"
	flagName         = "name"
	flagLogFile      = "log-file"
	flagMetricsFile  = "metrics-file"

	metricsNamespace = "backoff_cli"

	// schedule prints at most this many wait periods
	maxPrintedWaits = 32

	// lumberjack rotation
	logFileMaxSizeMB  = 10
	logFileMaxBackups = 3
	logFileMaxAgeDays = 28
)
