// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package access holds the authorization predicates applied to an already
// authenticated caller. The predicates are pure functions of the caller and
// the resource so they can be reasoned about and tested without HTTP.
package access

import "github.com/MKhiriev/go-notes/models"

// CanViewNote reports whether caller may read note: its author may always
// read it, everyone else only when it is public.
func CanViewNote(caller models.User, note models.Note) bool {
	return isAuthor(caller, note) || !note.Private
}

// CanEditNote reports whether caller may modify note. Only the author may.
func CanEditNote(caller models.User, note models.Note) bool {
	return isAuthor(caller, note)
}

// CanDeleteNote reports whether caller may delete note. Only the author may.
func CanDeleteNote(caller models.User, note models.Note) bool {
	return isAuthor(caller, note)
}

// HasRole reports whether caller's role is exactly role.
func HasRole(caller models.User, role string) bool {
	return caller.Role == role
}

func isAuthor(caller models.User, note models.Note) bool {
	return caller.ID != 0 && caller.ID == note.AuthorID
}
