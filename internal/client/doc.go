// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the uploader command-line application.
//
// Commands:
//
//	upload <user|image> <path>...   upload files, several at a time
//	generate [user]                 call a generate-image endpoint
//	version                         print the server version
//	uploads [user|image]            list the server's upload journal
package client
