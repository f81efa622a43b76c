// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/base64"
	"errors"
	"strings"

	"github.com/MKhiriev/go-notes/models"
)

// ErrInvalidAuthorizationHeader is returned for a missing, unknown-scheme
// or malformed Authorization header.
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// ParseAuthorizationHeader extracts credentials from an Authorization
// header value. "Bearer <token>" fills Token; "Basic <base64(user:pass)>"
// fills Username and Password. Scheme names are case-insensitive.
func ParseAuthorizationHeader(header string) (models.Credentials, error) {
	scheme, value, ok := strings.Cut(strings.TrimSpace(header), " ")
	value = strings.TrimSpace(value)
	if !ok || value == "" {
		return models.Credentials{}, ErrInvalidAuthorizationHeader
	}

	switch strings.ToLower(scheme) {
	case "bearer":
		return models.Credentials{Token: value}, nil
	case "basic":
		decoded, err := base64.StdEncoding.DecodeString(value)
		if err != nil {
			return models.Credentials{}, ErrInvalidAuthorizationHeader
		}
		username, password, ok := strings.Cut(string(decoded), ":")
		if !ok {
			return models.Credentials{}, ErrInvalidAuthorizationHeader
		}
		return models.Credentials{Username: username, Password: password}, nil
	default:
		return models.Credentials{}, ErrInvalidAuthorizationHeader
	}
}
