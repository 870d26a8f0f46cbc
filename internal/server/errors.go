// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated is returned by NewServer when no HTTP handler
	// or listen address is configured.
	errNoServersAreCreated = errors.New("no servers are created")

	// errServerAlreadyStarted is returned by a repeated Run; a stopped
	// http.Server cannot serve again.
	errServerAlreadyStarted = errors.New("server already started")
)
