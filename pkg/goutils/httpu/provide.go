/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package httpu

import (
	"net/http"

	"github.com/voedger/backoff/pkg/backoff"
)

func NewIHTTPClient(policy backoff.Policy, defaultOpts ...ReqOptFunc) (client IHTTPClient, cleanup func()) {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	impl := &implIHTTPClient{
		client:      &http.Client{Transport: tr},
		policy:      policy,
		defaultOpts: defaultOpts,
	}
	return impl, impl.CloseIdleConnections
}
