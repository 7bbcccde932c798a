// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidRequestBody is reported when a JSON request body cannot be
// decoded into the expected shape.
var ErrInvalidRequestBody = errors.New("invalid request body")
