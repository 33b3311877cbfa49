// Translocatus - Wildlife Translocation Tracking and Map Visualization
// Copyright 2026 M. Kotze (mkotze)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mkotze/translocatus

package database

import "errors"

// ErrNotFound is returned when a record lookup matches nothing. Handlers
// translate it into a 404 instead of a 500.
var ErrNotFound = errors.New("record not found")
