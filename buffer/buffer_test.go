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

package buffer

import (
	"bytes"
	"errors"
	"testing"
)

func Test_ReadWriteIntegers(t *testing.T) {
	b := New(4)
	if err := b.WriteUint8(0x01); err != nil {
		t.Fatalf("write uint8: %v", err)
	}
	if err := b.WriteUint16(0x0203); err != nil {
		t.Fatalf("write uint16: %v", err)
	}
	if err := b.WriteUint32(0x04050607); err != nil {
		t.Fatalf("write uint32: %v", err)
	}
	if err := b.WriteUint64(0x08090a0b0c0d0e0f); err != nil {
		t.Fatalf("write uint64: %v", err)
	}
	if err := b.WritePad(2); err != nil {
		t.Fatalf("write pad: %v", err)
	}
	b.Flip()

	expected := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0, 0}
	if !bytes.Equal(b.Bytes(), expected) {
		t.Logf("actual bytes: %v", b.Bytes())
		t.Logf("expected bytes: %v", expected)
		t.Errorf("unexpected encoding")
	}

	u8, _ := b.ReadUint8()
	u16, _ := b.ReadUint16()
	u32, _ := b.ReadUint32()
	u64, _ := b.ReadUint64()
	if u8 != 0x01 || u16 != 0x0203 || u32 != 0x04050607 || u64 != 0x08090a0b0c0d0e0f {
		t.Errorf("unexpected values: %x %x %x %x", u8, u16, u32, u64)
	}
	if err := b.Skip(2); err != nil {
		t.Errorf("skip padding: %v", err)
	}
	if b.Remaining() != 0 {
		t.Errorf("expected empty buffer, %d bytes remaining", b.Remaining())
	}
}

func Test_Underflow(t *testing.T) {
	b := Wrap([]byte{0x00, 0x01, 0x02})

	if _, err := b.ReadUint16(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := b.ReadUint32()
	var underflow *UnderflowError
	if !errors.As(err, &underflow) {
		t.Fatalf("expected underflow error, got %v", err)
	}
	if underflow.Offset != 2 || underflow.Need != 4 || underflow.Remaining != 1 {
		t.Errorf("unexpected underflow details: %+v", underflow)
	}
	if b.Position() != 2 {
		t.Errorf("failed read moved the cursor to %d", b.Position())
	}
}

func Test_WrapDoesNotGrow(t *testing.T) {
	b := Wrap(make([]byte, 2))
	if err := b.WriteUint16(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := b.WriteUint8(1)
	var overflow *OverflowError
	if !errors.As(err, &overflow) {
		t.Fatalf("expected overflow error, got %v", err)
	}
}

func Test_NewGrows(t *testing.T) {
	b := New(0)
	payload := bytes.Repeat([]byte{0xab}, 300)
	if err := b.WriteBytes(payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b.Flip()
	if !bytes.Equal(b.Bytes(), payload) {
		t.Errorf("payload corrupted after growth")
	}
}

func Test_MarkPatchLength(t *testing.T) {
	b := New(16)
	b.WriteUint16(0xffff)
	slot, err := b.MarkLength()
	if err != nil {
		t.Fatalf("mark length: %v", err)
	}
	b.WriteUint32(0xdeadbeef)
	if err := b.PatchLength(slot, b.Position()); err != nil {
		t.Fatalf("patch length: %v", err)
	}
	b.Flip()

	expected := []byte{0xff, 0xff, 0x00, 0x08, 0xde, 0xad, 0xbe, 0xef}
	if !bytes.Equal(b.Bytes(), expected) {
		t.Errorf("unexpected bytes %x", b.Bytes())
	}

	if err := b.PatchLength(Slot(100), 1); err == nil {
		t.Errorf("expected error patching unwritten slot")
	}
}

func Test_SliceIsBounded(t *testing.T) {
	b := Wrap([]byte{1, 2, 3, 4, 5, 6})
	b.Skip(1)

	sub, err := b.Slice(3)
	if err != nil {
		t.Fatalf("slice: %v", err)
	}
	if b.Position() != 4 {
		t.Errorf("parent cursor at %d, expected 4", b.Position())
	}
	if sub.Remaining() != 3 || sub.Capacity() != 3 {
		t.Errorf("unexpected sub-buffer bounds: remaining=%d capacity=%d", sub.Remaining(), sub.Capacity())
	}

	if _, err := sub.ReadUint32(); err == nil {
		t.Errorf("sub-buffer read past its bound")
	}
	if err := sub.Append([]byte{1}); err == nil {
		t.Errorf("append on a slice should fail")
	}

	if _, err := b.Slice(3); err == nil {
		t.Errorf("slice larger than remaining bytes should fail")
	}
}

func Test_PeekDoesNotMove(t *testing.T) {
	b := Wrap([]byte{0x00, 0x01, 0x00, 0x18})
	v, err := b.PeekUint16(2)
	if err != nil || v != 0x18 {
		t.Fatalf("peek returned %d, %v", v, err)
	}
	u8, _ := b.PeekUint8(1)
	if u8 != 0x01 {
		t.Errorf("peek uint8 returned %d", u8)
	}
	if b.Position() != 0 {
		t.Errorf("peek moved the cursor")
	}
	if _, err := b.PeekUint16(3); err == nil {
		t.Errorf("peek past the limit should fail")
	}
}

func Test_AppendCompact(t *testing.T) {
	b := Wrap(nil)
	b.Append([]byte{1, 2, 3})
	b.Skip(2)
	b.Compact()
	if b.Position() != 0 || b.Remaining() != 1 {
		t.Fatalf("unexpected state after compact: pos=%d remaining=%d", b.Position(), b.Remaining())
	}
	b.Append([]byte{4, 5})
	if !bytes.Equal(b.Bytes(), []byte{3, 4, 5}) {
		t.Errorf("unexpected bytes after append: %v", b.Bytes())
	}
}
