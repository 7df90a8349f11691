/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package httpu

const (
	Authorization               = "Authorization"
	ContentType                 = "Content-Type"
	Accept                      = "Accept"
	UserAgent                   = "User-Agent"
	ContentType_ApplicationJSON = "application/json"
	ContentType_TextPlain       = "text/plain"
	BearerPrefix                = "Bearer "
	defaultUserAgent            = "backoff-httpu"
	downloadTempPattern         = ".download-*"
	downloadedFilePerm          = 0o644
	maxBodyInError              = 512
)
