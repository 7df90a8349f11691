/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

// Package backoff retries an operation with exponentially growing waits
// until it succeeds or the retry budget of the Policy is spent.
//
// maxRetries = r -> at most r+1 attempts; the waits are
// initialWaitPeriod, initialWaitPeriod*growthFactor, ... (r waits in total).
package backoff
