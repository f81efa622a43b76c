// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TokenResponse is returned by GET /auth/token.
type TokenResponse struct {
	// Token is the signed bearer token.
	Token string `json:"token"`

	// Duration is the token lifetime in seconds.
	Duration int64 `json:"duration"`
}

// UploadResponse is returned after a file has been stored.
type UploadResponse struct {
	Msg string `json:"msg"`

	// URL is the relative URL the file is served from, e.g. /uploads/cat.png.
	URL string `json:"url"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}
