// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %w: %s", ErrNetwork, ErrBadRequest, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w: %s", ErrNetwork, ErrNotFound, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w: %s", ErrNetwork, ErrTooManyRequests, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %w: %s", ErrNetwork, ErrInternalServerError, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %w: %s", ErrNetwork, ErrBadGateway, body)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %w: %s", ErrNetwork, ErrServiceUnavailable, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: http %d: %s", ErrNetwork, resp.StatusCode(), body)
	}
}
