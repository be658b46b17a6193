// Copyright (c) 2025 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package wrappers

import (
	"errors"
	"io"
)

var ErrAlreadyClosed = errors.New("wrapper already closed")

// ReaderWrapper shields a reader from being closed by whoever it gets handed to.
// Close only marks the wrapper itself as closed, the wrapped reader stays usable.
// Needed for handing stdin to the repl, which closes its input on shutdown.
type ReaderWrapper struct {
	reader io.Reader
	closed bool
}

func NewReaderWrapper(r io.Reader) *ReaderWrapper {
	return &ReaderWrapper{reader: r}
}

func (w *ReaderWrapper) Read(p []byte) (int, error) {
	if w.closed {
		return 0, ErrAlreadyClosed
	}
	return w.reader.Read(p)
}

func (w *ReaderWrapper) Close() error {
	if w.closed {
		return ErrAlreadyClosed
	}
	w.closed = true
	return nil
}

// WriterWrapper is the write-side twin of ReaderWrapper, used for stdout
type WriterWrapper struct {
	writer io.Writer
	closed bool
}

func NewWriterWrapper(w io.Writer) *WriterWrapper {
	return &WriterWrapper{writer: w}
}

func (w *WriterWrapper) Write(p []byte) (int, error) {
	if w.closed {
		return 0, ErrAlreadyClosed
	}
	return w.writer.Write(p)
}

func (w *WriterWrapper) Close() error {
	if w.closed {
		return ErrAlreadyClosed
	}
	w.closed = true
	return nil
}
