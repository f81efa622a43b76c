// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Tag is a unique label that can be linked to any number of notes.
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TagCreate is the request body for creating a tag.
type TagCreate struct {
	Name string `json:"name"`
}
