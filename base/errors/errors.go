// Copyright (c) 2026, ZoomStack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides small helpers for funneling errors into the
// standard [log/slog] logger, so that rendering code can log-and-continue
// without cluttering every call site.
package errors

import (
	"log/slog"
)

// Log logs the given error if it is non-nil and returns it.
// The intended usage is:
//
//	errors.Log(MyFunc(v))
//	// or
//	return errors.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}

// Log1 returns the given value, logging the error if it is non-nil.
// The intended usage is:
//
//	a := errors.Log1(MyFunc(v))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error())
	}
	return v
}
