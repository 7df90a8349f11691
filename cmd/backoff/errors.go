/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package main

import "errors"

var (
	ErrInvalidHeader  = errors.New("invalid header, expected \"Name: value\"")
	ErrMissingCommand = errors.New("command to run is not specified")
)
