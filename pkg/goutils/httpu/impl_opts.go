/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package httpu

import "net/http"

func WithMethod(method string) ReqOptFunc {
	return func(opts *reqOpts) {
		opts.method = method
	}
}

func WithHeaders(headers ...string) ReqOptFunc {
	if len(headers)%2 != 0 {
		panic("WithHeaders: key-value pairs expected")
	}
	return func(opts *reqOpts) {
		for i := 0; i < len(headers); i += 2 {
			opts.headers[headers[i]] = headers[i+1]
		}
	}
}

func WithAuthorizeBy(token string) ReqOptFunc {
	return WithHeaders(Authorization, BearerPrefix+token)
}

// WithExpectedCode adds a status code that completes the request
// default is 200 and 201
func WithExpectedCode(code int) ReqOptFunc {
	return func(opts *reqOpts) {
		opts.expectedHTTPCodes = append(opts.expectedHTTPCodes, code)
	}
}

func newReqOpts(defaultOpts []ReqOptFunc, optFuncs []ReqOptFunc) *reqOpts {
	opts := &reqOpts{
		method: http.MethodGet,
		headers: map[string]string{
			UserAgent: defaultUserAgent,
		},
	}
	for _, optFunc := range defaultOpts {
		optFunc(opts)
	}
	for _, optFunc := range optFuncs {
		optFunc(opts)
	}
	if len(opts.expectedHTTPCodes) == 0 {
		opts.expectedHTTPCodes = []int{http.StatusOK, http.StatusCreated}
	}
	return opts
}
