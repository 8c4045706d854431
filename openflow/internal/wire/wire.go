/*
Licensed to the Apache Software Foundation (ASF) under one
or more contributor license agreements.  See the NOTICE file
distributed with this work for additional information
regarding copyright ownership.  The ASF licenses this file
to you under the Apache License, Version 2.0 (the
"License"); you may not use this file except in compliance
with the License.  You may obtain a copy of the License at

  http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing,
software distributed under the License is distributed on an
"AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
KIND, either express or implied.  See the License for the
specific language governing permissions and limitations
under the License.
*/

// Package wire wraps a buffer with a sticky error so that structure codecs
// can read or write a run of fixed fields and check the outcome once.
package wire

import (
	"github.com/k-vswitch/ofcodec/buffer"
)

// Reader records the first failure; later calls are no-ops returning zero
// values.
type Reader struct {
	buf *buffer.Buffer
	err error
}

func NewReader(buf *buffer.Buffer) *Reader {
	return &Reader{buf: buf}
}

func (r *Reader) Err() error {
	return r.err
}

// Fail records err unless an earlier failure exists.
func (r *Reader) Fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *Reader) Buffer() *buffer.Buffer {
	return r.buf
}

func (r *Reader) Remaining() int {
	return r.buf.Remaining()
}

func (r *Reader) Uint8() uint8 {
	if r.err != nil {
		return 0
	}
	v, err := r.buf.ReadUint8()
	r.err = err
	return v
}

func (r *Reader) Uint16() uint16 {
	if r.err != nil {
		return 0
	}
	v, err := r.buf.ReadUint16()
	r.err = err
	return v
}

func (r *Reader) Uint32() uint32 {
	if r.err != nil {
		return 0
	}
	v, err := r.buf.ReadUint32()
	r.err = err
	return v
}

func (r *Reader) Uint64() uint64 {
	if r.err != nil {
		return 0
	}
	v, err := r.buf.ReadUint64()
	r.err = err
	return v
}

func (r *Reader) Bytes(n int) []byte {
	if r.err != nil {
		return nil
	}
	v, err := r.buf.ReadBytes(n)
	r.err = err
	return v
}

// Rest copies the remaining bytes. It returns nil, not an empty slice,
// when nothing remains.
func (r *Reader) Rest() []byte {
	if r.err != nil || r.buf.Remaining() == 0 {
		return nil
	}
	return r.Bytes(r.buf.Remaining())
}

func (r *Reader) Skip(n int) {
	if r.err != nil {
		return
	}
	r.err = r.buf.Skip(n)
}

// Slice returns a bounded view over the next n bytes, or an empty buffer
// after a failure.
func (r *Reader) Slice(n int) *buffer.Buffer {
	if r.err != nil {
		return buffer.Wrap(nil)
	}
	sub, err := r.buf.Slice(n)
	if err != nil {
		r.err = err
		return buffer.Wrap(nil)
	}
	return sub
}

// Writer records the first failure; later calls are no-ops.
type Writer struct {
	buf *buffer.Buffer
	err error
}

func NewWriter(buf *buffer.Buffer) *Writer {
	return &Writer{buf: buf}
}

func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) Fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

func (w *Writer) Buffer() *buffer.Buffer {
	return w.buf
}

// Position is the absolute write offset, used as the start of a length
// prefixed structure.
func (w *Writer) Position() int {
	return w.buf.Position()
}

func (w *Writer) Uint8(v uint8) {
	if w.err == nil {
		w.err = w.buf.WriteUint8(v)
	}
}

func (w *Writer) Uint16(v uint16) {
	if w.err == nil {
		w.err = w.buf.WriteUint16(v)
	}
}

func (w *Writer) Uint32(v uint32) {
	if w.err == nil {
		w.err = w.buf.WriteUint32(v)
	}
}

func (w *Writer) Uint64(v uint64) {
	if w.err == nil {
		w.err = w.buf.WriteUint64(v)
	}
}

func (w *Writer) Bytes(p []byte) {
	if w.err == nil {
		w.err = w.buf.WriteBytes(p)
	}
}

func (w *Writer) Pad(n int) {
	if w.err == nil {
		w.err = w.buf.WritePad(n)
	}
}

// Mark reserves a 16-bit length field.
func (w *Writer) Mark() buffer.Slot {
	if w.err != nil {
		return 0
	}
	slot, err := w.buf.MarkLength()
	w.err = err
	return slot
}

// Patch stores the number of bytes written since start into slot.
func (w *Writer) Patch(slot buffer.Slot, start int) {
	if w.err == nil {
		w.err = w.buf.PatchLength(slot, w.buf.Position()-start)
	}
}

// Align pads the structure started at start to a multiple of n bytes.
func (w *Writer) Align(start, n int) {
	if rem := (w.buf.Position() - start) % n; rem != 0 {
		w.Pad(n - rem)
	}
}
