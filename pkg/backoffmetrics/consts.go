/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package backoffmetrics

const (
	subsystem = "backoff"

	labelOperation = "operation"
	labelResult    = "result"

	resultSucceeded = "succeeded"
	resultExhausted = "exhausted"
	resultCancelled = "cancelled"
)

var attemptsBuckets = []float64{1, 2, 3, 4, 5, 6, 8, 11, 16}
