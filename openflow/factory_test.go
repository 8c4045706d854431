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

package openflow_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k-vswitch/ofcodec/buffer"
	"github.com/k-vswitch/ofcodec/codec"
	"github.com/k-vswitch/ofcodec/openflow"
)

type recorder struct {
	decoded []openflow.Kind
	skipped []int
	failed  []error
}

func (r *recorder) Decoded(_ openflow.Header, kind openflow.Kind, skipped int) {
	r.decoded = append(r.decoded, kind)
	r.skipped = append(r.skipped, skipped)
}

func (r *recorder) Failed(_ openflow.Header, err error) {
	r.failed = append(r.failed, err)
}

func stream(t *testing.T) ([]byte, []openflow.Message) {
	v := openflow.Version13
	msgs := []openflow.Message{
		&openflow.Hello{Header: openflow.Header{Version: v, Xid: 1}, Elements: []openflow.HelloElement{openflow.VersionBitmap(openflow.Version10, v)}},
		&openflow.EchoRequest{Header: openflow.Header{Version: v, Xid: 2}, Data: []byte("keepalive")},
		&openflow.Error{Header: openflow.Header{Version: openflow.Version10, Xid: 3}, Type: openflow.ErrorTypeBadRequest, Code: openflow.BadRequestBadType, Data: []byte{1, 2, 3}},
		&openflow.SetConfig{Header: openflow.Header{Version: v, Xid: 4}, MissSendLen: 128},
		&openflow.BarrierRequest{Header: openflow.Header{Version: v, Xid: 5}},
	}

	f := codec.NewFactory()
	var data []byte
	for _, msg := range msgs {
		encoded, err := f.Encode(msg)
		require.NoError(t, err)
		// decoded headers carry the wire type and length
		h := msg.Hdr()
		h.Type = encoded[1]
		h.Length = uint16(len(encoded))
		data = append(data, encoded...)
	}
	return data, msgs
}

func Test_DecodeStreamAllAtOnce(t *testing.T) {
	data, want := stream(t)

	got, err := codec.NewFactory().DecodeStream(buffer.Wrap(data))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func Test_DecodeStreamResumesAtEverySplit(t *testing.T) {
	data, want := stream(t)
	f := codec.NewFactory()

	for split := 0; split <= len(data); split++ {
		buf := buffer.Wrap(nil)
		require.NoError(t, buf.Append(data[:split]))

		first, err := f.DecodeStream(buf)
		require.NoError(t, err, "split %d", split)

		buf.Compact()
		require.NoError(t, buf.Append(data[split:]))
		rest, err := f.DecodeStream(buf)
		require.NoError(t, err, "split %d", split)

		assert.Equal(t, want, append(first, rest...), "split %d", split)
		assert.Equal(t, 0, buf.Remaining(), "split %d", split)
	}
}

func Test_DecodeStreamIncompleteRewinds(t *testing.T) {
	data, _ := stream(t)
	buf := buffer.Wrap(data[:20])

	msgs, err := codec.NewFactory().DecodeStream(buf)
	require.NoError(t, err)
	// the 16 byte hello is complete, the echo request is not
	assert.Len(t, msgs, 1)
	assert.Equal(t, 16, buf.Position())
}

func Test_DecodeStreamMalformedHeader(t *testing.T) {
	data := []byte{
		0x04, 0x14, 0x00, 0x08, 0x00, 0x00, 0x00, 0x01, // barrier request
		0x04, 0x14, 0x00, 0x07, 0x00, 0x00, 0x00, 0x02, // declares 7 bytes
	}
	buf := buffer.Wrap(data)

	msgs, err := codec.NewFactory().DecodeStream(buf)
	var malformed *openflow.MalformedHeaderError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, uint16(7), malformed.Header.Length)
	assert.Len(t, msgs, 1)
	assert.Equal(t, 8, buf.Position())
}

func Test_DecodeStreamUnknownTypeIsConsumed(t *testing.T) {
	data := []byte{
		0x04, 0x63, 0x00, 0x0c, 0x00, 0x00, 0x00, 0x01, 0xff, 0xff, 0xff, 0xff,
		0x04, 0x15, 0x00, 0x08, 0x00, 0x00, 0x00, 0x02, // barrier reply
	}
	buf := buffer.Wrap(data)
	rec := &recorder{}
	f := codec.NewFactory(openflow.WithObserver(rec))

	msgs, err := f.DecodeStream(buf)
	var unknown *openflow.UnknownTypeError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, openflow.Version13, unknown.Version)
	assert.Equal(t, uint8(0x63), unknown.Type)
	assert.Empty(t, msgs)
	assert.Equal(t, 12, buf.Position())
	require.Len(t, rec.failed, 1)

	msgs, err = f.DecodeStream(buf)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, openflow.KindBarrierReply, msgs[0].Kind())
}

func Test_DecodeReportsSkippedBytes(t *testing.T) {
	// barrier reply with four trailing bytes inside its declared length
	data := []byte{0x04, 0x15, 0x00, 0x0c, 0x00, 0x00, 0x00, 0x09, 1, 2, 3, 4}
	rec := &recorder{}
	f := codec.NewFactory(openflow.WithObserver(rec))

	msg, err := f.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, uint16(12), msg.Hdr().Length)
	assert.Equal(t, []openflow.Kind{openflow.KindBarrierReply}, rec.decoded)
	assert.Equal(t, []int{4}, rec.skipped)
}

func Test_Unmarshal(t *testing.T) {
	f := codec.NewFactory()

	_, err := f.Unmarshal([]byte{0x04, 0x00})
	assert.ErrorIs(t, err, openflow.ErrIncomplete)

	_, err = f.Unmarshal([]byte{0x04, 0x02, 0x00, 0x10, 0, 0, 0, 1, 0xaa})
	assert.ErrorIs(t, err, openflow.ErrIncomplete)

	_, err = f.Unmarshal([]byte{0x04, 0x02, 0x00, 0x02, 0, 0, 0, 1})
	var malformed *openflow.MalformedHeaderError
	assert.True(t, errors.As(err, &malformed))

	// bytes after the declared length are ignored
	msg, err := f.Unmarshal([]byte{0x04, 0x02, 0x00, 0x09, 0, 0, 0, 1, 0xaa, 0xbb})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xaa}, msg.(*openflow.EchoRequest).Data)
}

func Test_EncodeIgnoresDeclaredLength(t *testing.T) {
	f := codec.NewFactory()
	data, err := f.Encode(&openflow.EchoReply{
		Header: openflow.Header{Version: openflow.Version13, Length: 999, Xid: 3},
		Data:   []byte{1, 2},
	})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x04, 0x03, 0x00, 0x0a, 0, 0, 0, 3, 1, 2}, data)
}

func Test_EncodeToFixedBuffer(t *testing.T) {
	f := codec.NewFactory()
	buf := buffer.Wrap(make([]byte, 10))

	err := f.EncodeTo(&openflow.EchoRequest{Header: openflow.Header{Version: openflow.Version13}, Data: make([]byte, 8)}, buf)
	var overflow *buffer.OverflowError
	assert.True(t, errors.As(err, &overflow))
}

func Test_UnsupportedVersion(t *testing.T) {
	f := codec.NewFactory()
	_, err := f.Encode(&openflow.BarrierRequest{Header: openflow.Header{Version: 0x02}})

	var unsupported *openflow.UnsupportedVersionError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, openflow.KindBarrierRequest, unsupported.Kind)
}
