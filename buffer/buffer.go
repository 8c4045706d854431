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

// Package buffer implements the bounded, position-tracked byte container
// used by the OpenFlow structure codecs. All multi-byte integers are read
// and written in network byte order.
package buffer

import (
	"encoding/binary"
	"fmt"
)

const minGrow = 64

// UnderflowError is returned when a read needs more bytes than remain
// before the limit.
type UnderflowError struct {
	Offset    int
	Need      int
	Remaining int
}

func (e *UnderflowError) Error() string {
	return fmt.Sprintf("buffer underflow at offset %d: need %d bytes, %d remaining",
		e.Offset, e.Need, e.Remaining)
}

// OverflowError is returned when a write does not fit in a buffer that
// cannot grow.
type OverflowError struct {
	Offset   int
	Need     int
	Capacity int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("buffer overflow at offset %d: need %d bytes, capacity %d",
		e.Offset, e.Need, e.Capacity)
}

// Slot is the absolute offset of a reserved 16-bit length field.
type Slot int

// Buffer is a cursor over a byte region. Reads and writes happen at
// Position and never cross Limit. Buffers created by New grow on write,
// buffers created by Wrap or Slice do not.
type Buffer struct {
	data     []byte
	pos      int
	limit    int
	growable bool
	view     bool
}

// New returns an empty buffer for encoding. Its limit is its capacity and
// it grows as needed.
func New(capacity int) *Buffer {
	return &Buffer{
		data:     make([]byte, capacity),
		limit:    capacity,
		growable: true,
	}
}

// Wrap returns a buffer reading b from the start. b is not copied.
func Wrap(b []byte) *Buffer {
	return &Buffer{
		data:  b,
		limit: len(b),
	}
}

func (b *Buffer) Position() int {
	return b.pos
}

func (b *Buffer) Limit() int {
	return b.limit
}

func (b *Buffer) Capacity() int {
	return len(b.data)
}

// Remaining returns the number of bytes between Position and Limit.
func (b *Buffer) Remaining() int {
	return b.limit - b.pos
}

func (b *Buffer) SetPosition(pos int) error {
	if pos < 0 || pos > b.limit {
		return fmt.Errorf("position %d out of range [0, %d]", pos, b.limit)
	}
	b.pos = pos
	return nil
}

func (b *Buffer) SetLimit(limit int) error {
	if limit < 0 || limit > len(b.data) {
		return fmt.Errorf("limit %d out of range [0, %d]", limit, len(b.data))
	}
	b.limit = limit
	if b.pos > limit {
		b.pos = limit
	}
	return nil
}

// Flip switches a buffer that has just been written into read mode: the
// limit becomes the current position and the position is reset to zero.
func (b *Buffer) Flip() {
	b.limit = b.pos
	b.pos = 0
}

// Bytes returns the unread bytes between Position and Limit. The slice
// aliases the buffer.
func (b *Buffer) Bytes() []byte {
	return b.data[b.pos:b.limit]
}

// Slice returns a bounded view over the next n bytes and advances the
// position past them. The view shares memory with b.
func (b *Buffer) Slice(n int) (*Buffer, error) {
	if err := b.need(n); err != nil {
		return nil, err
	}
	sub := &Buffer{
		data:  b.data[b.pos : b.pos+n : b.pos+n],
		limit: n,
		view:  true,
	}
	b.pos += n
	return sub, nil
}

// Append adds p after the current limit. It is meant for accumulating a
// byte stream between decode passes and is not available on slices.
func (b *Buffer) Append(p []byte) error {
	if b.view {
		return &OverflowError{Offset: b.limit, Need: len(p), Capacity: len(b.data)}
	}
	if b.limit+len(p) > len(b.data) {
		b.grow(b.limit + len(p))
	}
	copy(b.data[b.limit:], p)
	b.limit += len(p)
	return nil
}

// Compact discards the bytes before Position, moving the unread bytes to
// the front.
func (b *Buffer) Compact() {
	if b.pos == 0 {
		return
	}
	n := copy(b.data, b.data[b.pos:b.limit])
	b.pos = 0
	b.limit = n
}

func (b *Buffer) need(n int) error {
	if n < 0 || b.limit-b.pos < n {
		return &UnderflowError{Offset: b.pos, Need: n, Remaining: b.limit - b.pos}
	}
	return nil
}

func (b *Buffer) ReadUint8() (uint8, error) {
	if err := b.need(1); err != nil {
		return 0, err
	}
	v := b.data[b.pos]
	b.pos++
	return v, nil
}

func (b *Buffer) ReadUint16() (uint16, error) {
	if err := b.need(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(b.data[b.pos:])
	b.pos += 2
	return v, nil
}

func (b *Buffer) ReadUint32() (uint32, error) {
	if err := b.need(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(b.data[b.pos:])
	b.pos += 4
	return v, nil
}

func (b *Buffer) ReadUint64() (uint64, error) {
	if err := b.need(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(b.data[b.pos:])
	b.pos += 8
	return v, nil
}

// ReadBytes returns a copy of the next n bytes.
func (b *Buffer) ReadBytes(n int) ([]byte, error) {
	if err := b.need(n); err != nil {
		return nil, err
	}
	v := make([]byte, n)
	copy(v, b.data[b.pos:])
	b.pos += n
	return v, nil
}

// Skip advances past n bytes of padding.
func (b *Buffer) Skip(n int) error {
	if err := b.need(n); err != nil {
		return err
	}
	b.pos += n
	return nil
}

// PeekUint8 reads the byte at Position+off without moving the cursor.
func (b *Buffer) PeekUint8(off int) (uint8, error) {
	if off < 0 || b.limit-b.pos < off+1 {
		return 0, &UnderflowError{Offset: b.pos, Need: off + 1, Remaining: b.limit - b.pos}
	}
	return b.data[b.pos+off], nil
}

// PeekUint16 reads the 16-bit value at Position+off without moving the
// cursor.
func (b *Buffer) PeekUint16(off int) (uint16, error) {
	if off < 0 || b.limit-b.pos < off+2 {
		return 0, &UnderflowError{Offset: b.pos, Need: off + 2, Remaining: b.limit - b.pos}
	}
	return binary.BigEndian.Uint16(b.data[b.pos+off:]), nil
}

func (b *Buffer) grow(min int) {
	size := 2 * len(b.data)
	if size < minGrow {
		size = minGrow
	}
	for size < min {
		size *= 2
	}
	data := make([]byte, size)
	copy(data, b.data[:b.limit])
	b.data = data
}

func (b *Buffer) reserve(n int) error {
	if b.limit-b.pos >= n {
		return nil
	}
	if !b.growable {
		return &OverflowError{Offset: b.pos, Need: n, Capacity: len(b.data)}
	}
	b.grow(b.pos + n)
	b.limit = len(b.data)
	return nil
}

func (b *Buffer) WriteUint8(v uint8) error {
	if err := b.reserve(1); err != nil {
		return err
	}
	b.data[b.pos] = v
	b.pos++
	return nil
}

func (b *Buffer) WriteUint16(v uint16) error {
	if err := b.reserve(2); err != nil {
		return err
	}
	binary.BigEndian.PutUint16(b.data[b.pos:], v)
	b.pos += 2
	return nil
}

func (b *Buffer) WriteUint32(v uint32) error {
	if err := b.reserve(4); err != nil {
		return err
	}
	binary.BigEndian.PutUint32(b.data[b.pos:], v)
	b.pos += 4
	return nil
}

func (b *Buffer) WriteUint64(v uint64) error {
	if err := b.reserve(8); err != nil {
		return err
	}
	binary.BigEndian.PutUint64(b.data[b.pos:], v)
	b.pos += 8
	return nil
}

func (b *Buffer) WriteBytes(p []byte) error {
	if err := b.reserve(len(p)); err != nil {
		return err
	}
	copy(b.data[b.pos:], p)
	b.pos += len(p)
	return nil
}

// WritePad writes n zero bytes.
func (b *Buffer) WritePad(n int) error {
	if err := b.reserve(n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		b.data[b.pos+i] = 0
	}
	b.pos += n
	return nil
}

// MarkLength reserves a zeroed 16-bit length field at the current
// position. The returned slot is patched once the enclosing structure has
// been written.
func (b *Buffer) MarkLength() (Slot, error) {
	slot := Slot(b.pos)
	if err := b.WriteUint16(0); err != nil {
		return 0, err
	}
	return slot, nil
}

// PatchLength stores v in a slot returned by MarkLength.
func (b *Buffer) PatchLength(slot Slot, v int) error {
	off := int(slot)
	if off < 0 || off+2 > b.pos {
		return fmt.Errorf("length slot %d was not written", off)
	}
	if v < 0 || v > 0xffff {
		return fmt.Errorf("length %d does not fit in 16 bits", v)
	}
	binary.BigEndian.PutUint16(b.data[off:], uint16(v))
	return nil
}
