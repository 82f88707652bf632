// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the server and the
// uploader client: HTTP response writers, the resty client constructor and
// the time-ordered ID generator.
package utils
