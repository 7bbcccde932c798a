// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_Version(t *testing.T) {
	assert.Equal(t, "1.2.0", NewAppBuildInfo(" 1.2.0 ", "", "").Version())
	assert.Empty(t, NewAppBuildInfo("N/A", "", "").Version())
	assert.Empty(t, NewAppBuildInfo("", "", "").Version())
}

func TestAppBuildInfo_String(t *testing.T) {
	assert.Equal(t, "1.2.0 (abc123, 2026-01-02)", NewAppBuildInfo("1.2.0", "2026-01-02", "abc123").String())
	assert.Equal(t, "N/A (N/A, N/A)", NewAppBuildInfo("", " ", "").String())
}
