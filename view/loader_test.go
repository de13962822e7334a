// Copyright (c) 2026, ZoomStack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"errors"
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// drainAll polls the loader until every source has settled or the
// timeout elapses, returning all results.
func drainAll(t *testing.T, ld *loader) []loadResult {
	t.Helper()
	var out []loadResult
	deadline := time.Now().Add(5 * time.Second)
	for !ld.settled() {
		if time.Now().After(deadline) {
			t.Fatal("loader did not settle")
		}
		out = append(out, ld.drain()...)
		time.Sleep(time.Millisecond)
	}
	return append(out, ld.drain()...)
}

func TestLoaderSettlesAll(t *testing.T) {
	open := func(source string) (image.Image, error) {
		return image.NewRGBA(image.Rect(0, 0, 2, 2)), nil
	}
	ld := newLoader([]string{"a", "b", "c"}, open)
	res := drainAll(t, ld)
	ld.cancel()

	assert.Equal(t, 3, len(res))
	seen := map[int]bool{}
	for _, r := range res {
		assert.NoError(t, r.err)
		assert.NotNil(t, r.img)
		seen[r.index] = true
	}
	assert.Equal(t, map[int]bool{0: true, 1: true, 2: true}, seen)
}

func TestLoaderPartialFailure(t *testing.T) {
	open := func(source string) (image.Image, error) {
		if source == "bad" {
			return nil, errors.New("decode failed")
		}
		return image.NewRGBA(image.Rect(0, 0, 2, 2)), nil
	}
	ld := newLoader([]string{"ok", "bad", "ok2"}, open)
	res := drainAll(t, ld)
	ld.cancel()

	// every source settles, failed or not
	assert.Equal(t, 3, len(res))
	var failed int
	for _, r := range res {
		if r.err != nil {
			failed++
			assert.Equal(t, 1, r.index)
		}
	}
	assert.Equal(t, 1, failed)
	assert.True(t, ld.settled())
}

func TestLoaderCancel(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	open := func(source string) (image.Image, error) {
		close(started)
		<-release
		return image.NewRGBA(image.Rect(0, 0, 1, 1)), nil
	}
	ld := newLoader([]string{"slow"}, open)
	<-started
	ld.cancel()
	close(release)

	// a canceled loader never settles: the session stops draining on
	// release, so late results are never installed
	time.Sleep(10 * time.Millisecond)
	assert.False(t, ld.settled())
}

func TestOpenSourceMissingFile(t *testing.T) {
	_, err := openSource("/nonexistent/layer.png")
	assert.Error(t, err)
}
