// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the client-facing message strings of the diary API.
//
// All Msg* constants are written into `{"message": ...}` response bodies.
// Keeping them in one place keeps the wording consistent across handlers and
// middleware.
package app

const (
	// MsgRootOK is the plain-text body of GET /.
	MsgRootOK = "Diary backend works"

	// MsgUserRegistered confirms a successful registration.
	MsgUserRegistered = "User registered successfully"

	// MsgLoggedOut confirms a logout. Tokens are stateless, so nothing is
	// revoked server-side.
	MsgLoggedOut = "Logged out successfully!"

	// MsgEntryDeleted confirms the removal of an entry.
	MsgEntryDeleted = "Entry deleted successfully"

	// MsgInvalidDataProvided is returned when register or login input is
	// missing the email or the password.
	MsgInvalidDataProvided = "Email and password are required"

	// MsgInvalidCredentials is returned for an unknown email or a wrong
	// password alike.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgUserAlreadyExists is returned when the email is already registered.
	MsgUserAlreadyExists = "User already exists"

	// MsgUserNotFound is returned when the authenticated user no longer
	// exists.
	MsgUserNotFound = "User not found"

	// MsgNoToken is returned when a protected route is called without an
	// Authorization header.
	MsgNoToken = "No token provided"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is
	// malformed, expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "Invalid or expired token"

	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON"

	// MsgInvalidMultipartForm is returned when a voice upload is not a
	// readable multipart form.
	MsgInvalidMultipartForm = "Invalid multipart form"

	// MsgEntryNotFound is returned for missing, foreign and malformed entry
	// ids alike.
	MsgEntryNotFound = "Entry not found"

	// MsgAudioRequired is returned when a voice upload carries no audio part.
	MsgAudioRequired = "Audio file is required"

	// MsgInvalidAudioType is returned for audio outside the allowed MIME
	// types.
	MsgInvalidAudioType = "Invalid audio file type"

	// MsgAudioTooLarge is returned when the audio exceeds the upload limit.
	MsgAudioTooLarge = "Audio file is too large"

	// MsgInvalidDuration is returned for a duration that is not a
	// non-negative number.
	MsgInvalidDuration = "Invalid duration"

	// MsgInvalidAudioURL is returned when a JSON payload carries an audio
	// url that is not an absolute http or https url.
	MsgInvalidAudioURL = "Audio URL must be an absolute http(s) URL"

	// MsgEntryNotVoice is returned when an audio url is set on a text entry.
	MsgEntryNotVoice = "Audio URL can only be set on a voice entry"

	// MsgNotFound is returned for unknown routes and unsupported methods.
	MsgNotFound = "Not found"

	// MsgInternalServerError is returned for every server-side failure.
	MsgInternalServerError = "Internal server error"
)
