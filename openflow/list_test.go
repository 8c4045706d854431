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

package openflow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k-vswitch/ofcodec/buffer"
)

// tlv elements: type(1) | len(1) | value(len-2)
type tlv struct {
	typ   uint8
	value []byte
}

func tlvLen(b *buffer.Buffer) (int, error) {
	n, err := b.PeekUint8(1)
	return int(n), err
}

func decodeTLV(b *buffer.Buffer) (tlv, error) {
	typ, err := b.ReadUint8()
	if err != nil {
		return tlv{}, err
	}
	if err := b.Skip(1); err != nil {
		return tlv{}, err
	}
	value, err := b.ReadBytes(b.Remaining())
	return tlv{typ: typ, value: value}, err
}

func Test_DecodeListConsumesBudget(t *testing.T) {
	b := buffer.Wrap([]byte{1, 3, 0xaa, 2, 2, 3, 4, 0xbb, 0xcc})

	items, err := DecodeList(b, "tlvs", tlvLen, decodeTLV)
	require.NoError(t, err)
	assert.Equal(t, []tlv{{1, []byte{0xaa}}, {2, []byte{}}, {3, []byte{0xbb, 0xcc}}}, items)
	assert.Equal(t, 0, b.Remaining())
}

func Test_DecodeListEmpty(t *testing.T) {
	items, err := DecodeList(buffer.Wrap(nil), "tlvs", tlvLen, decodeTLV)
	require.NoError(t, err)
	assert.Nil(t, items)
}

func Test_DecodeListTruncated(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"element longer than budget", []byte{1, 3, 0xaa, 2, 5, 0}},
		{"length field cut off", []byte{1, 3, 0xaa, 2}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := DecodeList(buffer.Wrap(test.data), "tlvs", tlvLen, decodeTLV)
			var truncated *TruncatedListError
			require.True(t, errors.As(err, &truncated), "got %v", err)
			assert.Equal(t, "tlvs", truncated.List)
			assert.Equal(t, 3, truncated.Offset)
		})
	}
}

func Test_DecodeListZeroLength(t *testing.T) {
	_, err := DecodeList(buffer.Wrap([]byte{1, 0, 0}), "tlvs", tlvLen, decodeTLV)
	var invalid *InvalidLengthError
	require.True(t, errors.As(err, &invalid))
}

func Test_DecodeListElementIsBounded(t *testing.T) {
	greedy := func(b *buffer.Buffer) ([]byte, error) {
		return b.ReadBytes(b.Remaining())
	}
	items, err := DecodeList(buffer.Wrap([]byte{1, 2, 3, 4, 5, 6}), "fixed", FixedLen(2), greedy)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{{1, 2}, {3, 4}, {5, 6}}, items)
}

func Test_LenFieldMinimum(t *testing.T) {
	size := LenField("queue", 2, 8)

	n, err := size(buffer.Wrap([]byte{0, 0, 0, 16}))
	require.NoError(t, err)
	assert.Equal(t, 16, n)

	_, err = size(buffer.Wrap([]byte{0, 0, 0, 4}))
	var invalid *InvalidLengthError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, 4, invalid.Length)
	assert.Equal(t, 8, invalid.Min)
}

func Test_StructureErrorPath(t *testing.T) {
	inner := &buffer.UnderflowError{Offset: 4, Need: 2, Remaining: 0}
	err := WrapStructure("queue get config reply", WrapStructure("queue", WrapStructure("queue property", inner)))

	assert.Contains(t, err.Error(), "queue get config reply: queue: queue property")
	var underflow *buffer.UnderflowError
	assert.True(t, errors.As(err, &underflow))
	assert.Nil(t, WrapStructure("queue", nil))
}

func Test_HelloSupportsVersion(t *testing.T) {
	hello := &Hello{Header: Header{Version: Version13}, Elements: []HelloElement{VersionBitmap(Version10, Version13)}}
	assert.True(t, hello.SupportsVersion(Version10))
	assert.True(t, hello.SupportsVersion(Version13))
	assert.False(t, hello.SupportsVersion(Version(0x02)))

	bare := &Hello{Header: Header{Version: Version10}}
	assert.True(t, bare.SupportsVersion(Version10))
	assert.False(t, bare.SupportsVersion(Version13))
}
