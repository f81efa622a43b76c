// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/go-notes/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldRole     = "role"
	FieldText     = "text"
	FieldName     = "name"
	FieldTags     = "tags"
	FieldFileName = "file_name"
)

// Column limits shared with the database schema.
const (
	MaxUsernameLength = 32
	MaxRoleLength     = 32
	MaxTextLength     = 255
	MaxTagNameLength  = 64

	// MaxPasswordLength is the bcrypt input limit, in bytes.
	MaxPasswordLength = 72
)

// RequestValidator checks the request bodies accepted by the HTTP API:
// required fields and length bounds matching the column sizes.
// Both value and pointer forms of every model are accepted.
type RequestValidator struct {
}

// NewRequestValidator constructs a RequestValidator and returns it as the
// Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserCreate:
		return v.validateUserCreate(value, fields...)
	case *models.UserCreate:
		return v.validateUserCreate(*value, fields...)

	case models.UserUpdate:
		return v.validateUserUpdate(value, fields...)
	case *models.UserUpdate:
		return v.validateUserUpdate(*value, fields...)

	case models.NoteCreate:
		return v.validateNoteCreate(value, fields...)
	case *models.NoteCreate:
		return v.validateNoteCreate(*value, fields...)

	case models.NoteUpdate:
		return v.validateNoteUpdate(value, fields...)
	case *models.NoteUpdate:
		return v.validateNoteUpdate(*value, fields...)

	case models.NoteTags:
		return v.validateNoteTags(value, fields...)
	case *models.NoteTags:
		return v.validateNoteTags(*value, fields...)

	case models.TagCreate:
		return v.validateTagCreate(value, fields...)
	case *models.TagCreate:
		return v.validateTagCreate(*value, fields...)

	case models.Upload:
		return v.validateUpload(value, fields...)
	case *models.Upload:
		return v.validateUpload(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateUserCreate(user models.UserCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldRole}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if user.Username == "" {
				return ErrEmptyUsername
			}
			if utf8.RuneCountInString(user.Username) > MaxUsernameLength {
				return ErrUsernameTooLong
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
			if len(user.Password) > MaxPasswordLength {
				return ErrPasswordTooLong
			}
		case FieldRole:
			if utf8.RuneCountInString(user.Role) > MaxRoleLength {
				return ErrRoleTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateUserUpdate(user models.UserUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldRole}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if utf8.RuneCountInString(user.Username) > MaxUsernameLength {
				return ErrUsernameTooLong
			}
		case FieldRole:
			if utf8.RuneCountInString(user.Role) > MaxRoleLength {
				return ErrRoleTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	if user.Username == "" && user.Role == "" {
		return ErrNoFieldsToUpdate
	}

	return nil
}

func (v *RequestValidator) validateNoteCreate(note models.NoteCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldText:
			if note.Text == "" {
				return ErrEmptyText
			}
			if utf8.RuneCountInString(note.Text) > MaxTextLength {
				return ErrTextTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateNoteUpdate(note models.NoteUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldText:
			if note.Text == nil {
				continue
			}
			if *note.Text == "" {
				return ErrEmptyText
			}
			if utf8.RuneCountInString(*note.Text) > MaxTextLength {
				return ErrTextTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	if note.Text == nil && note.Private == nil {
		return ErrNoFieldsToUpdate
	}

	return nil
}

func (v *RequestValidator) validateNoteTags(noteTags models.NoteTags, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTags}
	}

	for _, f := range fields {
		switch f {
		case FieldTags:
			if len(noteTags.Tags) == 0 {
				return ErrEmptyTagIDs
			}
			for _, id := range noteTags.Tags {
				if id <= 0 {
					return ErrInvalidTagID
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateTagCreate(tag models.TagCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if tag.Name == "" {
				return ErrEmptyTagName
			}
			if utf8.RuneCountInString(tag.Name) > MaxTagNameLength {
				return ErrTagNameTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateUpload(upload models.Upload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFileName}
	}

	for _, f := range fields {
		switch f {
		case FieldFileName:
			if upload.Name == "" {
				return ErrEmptyFileName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
