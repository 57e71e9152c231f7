// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the profile-card API.
//
// Each invocation runs one command (register, login, verify, profile, qr,
// public, scan) through an [adapter.ServerAdapter] and prints the result as
// JSON.
package client
