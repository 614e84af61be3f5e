// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the diary backend.
//
// It exposes route wiring, request handlers, and middleware. Request
// tracing, access logging, response compression and bearer-token
// authentication are handled in this package before requests are delegated
// to the service layer. Every error leaves as a JSON `{"message": "..."}`
// body; server-side failures carry a generic message only.
package http
