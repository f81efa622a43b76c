// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Note is a text note owned by a single user.
type Note struct {
	ID       int64  `json:"id"`
	AuthorID int64  `json:"-"`
	Text     string `json:"text"`
	Private  bool   `json:"private"`

	// Author is the nested owner summary rendered in responses.
	Author User `json:"author"`

	// Tags are the tags linked to the note, ordered by tag id.
	Tags []Tag `json:"tags"`
}

// NoteCreate is the request body for creating a note. Only text and
// private are accepted; private defaults to true when omitted.
type NoteCreate struct {
	Text    string `json:"text"`
	Private *bool  `json:"private,omitempty"`
}

// NoteUpdate is the request body for editing a note. Nil fields are left
// unchanged.
type NoteUpdate struct {
	Text    *string `json:"text,omitempty"`
	Private *bool   `json:"private,omitempty"`
}

// NoteTags is the request body for linking tags to a note.
type NoteTags struct {
	Tags []int64 `json:"tags"`
}
