// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daniel M. Araujo

// Package client implements the interactive terminal client runtime.
//
// It wires the server adapter and the terminal UI flows into a single
// process lifecycle.
package client
