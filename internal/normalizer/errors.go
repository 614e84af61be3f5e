// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package normalizer

import (
	"errors"
	"fmt"
)

// ErrValidation is the root of every normalization failure. Callers match it
// with [errors.Is] to answer with a client error.
var ErrValidation = errors.New("validation error")

var (
	// ErrEmptyEntry is returned when a create payload has no title, no
	// content and no media.
	ErrEmptyEntry = fmt.Errorf("%w: entry must have a title, content or media", ErrValidation)

	// ErrInvalidDuration is returned when a supplied duration is not a
	// positive number.
	ErrInvalidDuration = fmt.Errorf("%w: invalid duration", ErrValidation)

	// ErrDurationWithoutAudio is returned when a duration is supplied for an
	// entry without an audio URL.
	ErrDurationWithoutAudio = fmt.Errorf("%w: duration requires an audio url", ErrValidation)

	// ErrInvalidMediaURLs is returned when mediaUrls is neither an array of
	// non-blank strings nor a string holding such an encoded array.
	ErrInvalidMediaURLs = fmt.Errorf("%w: mediaUrls must be an array of urls", ErrValidation)

	// ErrEmptyAudioURL is returned when an update tries to clear the audio
	// url of an entry.
	ErrEmptyAudioURL = fmt.Errorf("%w: audioUrl must not be empty", ErrValidation)

	// ErrInvalidAudioURL is returned when a client supplied audio url is not
	// an absolute http or https URL.
	ErrInvalidAudioURL = fmt.Errorf("%w: audioUrl must be an absolute http(s) url", ErrValidation)

	// ErrNoOpUpdate is returned when an update payload supplies no field.
	ErrNoOpUpdate = fmt.Errorf("%w: no fields to update", ErrValidation)
)
