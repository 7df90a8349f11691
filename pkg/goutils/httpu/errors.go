/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package httpu

import "errors"

var ErrUnexpectedStatusCode = errors.New("unexpected status code")
