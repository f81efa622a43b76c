// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Upload describes a file stored by the upload storage.
type Upload struct {
	// Name is the sanitized file name the content was stored under.
	Name string

	// Size is the number of bytes written.
	Size int64
}
