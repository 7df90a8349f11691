/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package httpu

import "context"

// IHTTPClient performs each request under its backoff.Policy
// transport error or status code that is not expected -> the attempt is failed and retried
//
// @ConcurrentAccess
type IHTTPClient interface {
	// body is sent again on each attempt
	Req(ctx context.Context, urlStr string, body string, optFuncs ...ReqOptFunc) (*HTTPResponse, error)

	// Download GETs urlStr into dstPath
	// dstPath is created or replaced only after a successful attempt
	Download(ctx context.Context, urlStr string, dstPath string, optFuncs ...ReqOptFunc) error

	CloseIdleConnections()
}
