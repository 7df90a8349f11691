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

type ReqOptFunc func(opts *reqOpts)

type reqOpts struct {
	method            string
	headers           map[string]string
	expectedHTTPCodes []int
}

type HTTPResponse struct {
	StatusCode int
	Header     http.Header
	Body       string
}

type implIHTTPClient struct {
	client      *http.Client
	policy      backoff.Policy
	defaultOpts []ReqOptFunc
}
