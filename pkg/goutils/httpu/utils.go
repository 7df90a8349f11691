/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package httpu

import (
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"
)

func readBody(resp *http.Response) (string, error) {
	respBody, err := io.ReadAll(resp.Body)
	return string(respBody), err
}

func unexpectedStatusCode(statusCode int, body string) error {
	return fmt.Errorf("%w: %d, %s", ErrUnexpectedStatusCode, statusCode, truncateBody(body))
}

// truncateBody cuts body to maxBodyInError bytes at most, never inside a rune
func truncateBody(body string) string {
	if len(body) <= maxBodyInError {
		return body
	}
	cut := maxBodyInError
	for cut > 0 && !utf8.RuneStart(body[cut]) {
		cut--
	}
	return body[:cut] + "..."
}
