// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the go-notes command-line client.
//
// An [App] maps a command name and its operands to a call on an
// [adapter.ServerAdapter] and prints the decoded result as indented JSON.
package client
