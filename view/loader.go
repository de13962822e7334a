// Copyright (c) 2026, ZoomStack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"fmt"
	"image"
	"net/http"
	"strings"

	"github.com/zoomstack/zoomstack/imagex"
)

// loadResult is one decoded layer image, or the decode failure,
// delivered to the frame goroutine.
type loadResult struct {
	index int
	img   image.Image
	err   error
}

// loader decodes layer images concurrently and delivers results to
// the frame goroutine through a buffered channel. Decoding happens off
// the frame goroutine; GPU upload happens only on it, so a canceled
// session never creates GPU resources from late decodes.
type loader struct {
	// results carries decoded images; buffered to the full layer
	// count so decode goroutines never block on a slow frame loop.
	results chan loadResult

	// pending counts layers whose result has not been drained yet.
	// Only touched from the frame goroutine.
	pending int

	// done cancels in-flight decodes on session release.
	done chan struct{}
}

// openSource decodes one image source: an http(s) URL is fetched,
// anything else is read as a file path.
func openSource(source string) (image.Image, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		resp, err := http.Get(source)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetching %q: %s", source, resp.Status)
		}
		img, _, err := imagex.Read(resp.Body)
		return img, err
	}
	img, _, err := imagex.Open(source)
	return img, err
}

// newLoader starts one decode goroutine per source using the given
// opener, and returns the loader to drain from the frame goroutine.
func newLoader(sources []string, open func(source string) (image.Image, error)) *loader {
	ld := &loader{
		results: make(chan loadResult, len(sources)),
		pending: len(sources),
		done:    make(chan struct{}),
	}
	for i, src := range sources {
		go func(i int, src string) {
			img, err := open(src)
			select {
			case ld.results <- loadResult{index: i, img: img, err: err}:
			case <-ld.done:
			}
		}(i, src)
	}
	return ld
}

// drain returns all results that have arrived, without blocking, and
// decrements the pending count for each. Call from the frame goroutine.
func (ld *loader) drain() []loadResult {
	var out []loadResult
	for {
		select {
		case res := <-ld.results:
			ld.pending--
			out = append(out, res)
		default:
			return out
		}
	}
}

// settled reports whether every source has produced a result,
// successful or not.
func (ld *loader) settled() bool {
	return ld.pending == 0
}

// cancel releases in-flight decode goroutines. Idempotent via the
// session's released flag; must only be called once.
func (ld *loader) cancel() {
	close(ld.done)
}
