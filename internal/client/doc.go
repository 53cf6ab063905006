// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal chat client runtime.
//
// It wires the chat server adapter, the terminal UI and the background
// message poller into a single process lifecycle.
package client
