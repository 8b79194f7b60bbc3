// SPDX-License-Identifier: MIT
// Copyright 2026 DreamClick Authors

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")
)
