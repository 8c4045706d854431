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
	"github.com/k-vswitch/ofcodec/buffer"

	"k8s.io/klog"
)

// Observer receives decode events from a Factory. Implementations must be
// safe for concurrent use when the Factory is shared.
type Observer interface {
	// Decoded is called for every message decoded. skipped counts bytes
	// inside the declared length that the structure codec did not consume.
	Decoded(h Header, kind Kind, skipped int)
	// Failed is called when a fully framed message could not be decoded.
	Failed(h Header, err error)
}

type Option func(*Factory)

// WithObserver attaches o to the Factory.
func WithObserver(o Observer) Option {
	return func(f *Factory) {
		f.observer = o
	}
}

// Factory frames byte streams into messages and encodes messages back.
// It holds no per-stream state and can be shared between connections.
type Factory struct {
	registry *Registry
	observer Observer
}

func NewFactory(registry *Registry, opts ...Option) *Factory {
	f := &Factory{
		registry: registry,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Factory) Registry() *Registry {
	return f.registry
}

// DecodeStream decodes every complete message available in buf. It stops
// without error when fewer than a header's worth of bytes remain or when
// the next message is not fully buffered; the cursor is then left at the
// start of that message so the call can be repeated once more bytes have
// been appended.
//
// A header declaring a length below HeaderLen fails with
// MalformedHeaderError and leaves the cursor on that header. A message
// that is fully framed but cannot be decoded is consumed, and the error is
// returned together with the messages decoded before it.
func (f *Factory) DecodeStream(buf *buffer.Buffer) ([]Message, error) {
	var msgs []Message
	for buf.Remaining() >= HeaderLen {
		start := buf.Position()

		h, err := readHeader(buf)
		if err != nil {
			return msgs, err
		}
		if h.Length < HeaderLen {
			buf.SetPosition(start)
			return msgs, &MalformedHeaderError{Header: h}
		}

		buf.SetPosition(start)
		if buf.Remaining() < int(h.Length) {
			break
		}

		frame, err := buf.Slice(int(h.Length))
		if err != nil {
			return msgs, err
		}
		msg, err := f.decodeFrame(h, frame)
		if err != nil {
			return msgs, err
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

// Unmarshal decodes the single message at the front of data. Bytes after
// the declared length are ignored.
func (f *Factory) Unmarshal(data []byte) (Message, error) {
	buf := buffer.Wrap(data)
	if buf.Remaining() < HeaderLen {
		return nil, ErrIncomplete
	}

	h, err := readHeader(buf)
	if err != nil {
		return nil, err
	}
	if h.Length < HeaderLen {
		return nil, &MalformedHeaderError{Header: h}
	}
	if len(data) < int(h.Length) {
		return nil, ErrIncomplete
	}

	buf.SetPosition(0)
	frame, err := buf.Slice(int(h.Length))
	if err != nil {
		return nil, err
	}
	return f.decodeFrame(h, frame)
}

func (f *Factory) decodeFrame(h Header, frame *buffer.Buffer) (Message, error) {
	if err := frame.Skip(HeaderLen); err != nil {
		return nil, err
	}

	kind, decode, err := f.registry.ResolveDecoder(h.Version, h.Type)
	if err != nil {
		f.failed(h, err)
		return nil, err
	}

	msg, err := decode(h, frame)
	if err != nil {
		f.failed(h, err)
		return nil, err
	}

	skipped := frame.Remaining()
	if skipped > 0 {
		klog.V(4).Infof("skipped %d trailing bytes in %s message (xid %d, length %d)",
			skipped, kind, h.Xid, h.Length)
	}
	if f.observer != nil {
		f.observer.Decoded(h, kind, skipped)
	}
	return msg, nil
}

func (f *Factory) failed(h Header, err error) {
	klog.V(2).Infof("failed to decode message type %d from %s (xid %d): %v", h.Type, h.Version, h.Xid, err)
	if f.observer != nil {
		f.observer.Failed(h, err)
	}
}

// Encode returns the wire form of m. The length field is computed from
// the encoded body; the Length stored in m's header is ignored.
func (f *Factory) Encode(m Message) ([]byte, error) {
	buf := buffer.New(64)
	if err := f.EncodeTo(m, buf); err != nil {
		return nil, err
	}
	buf.Flip()
	return buf.Bytes(), nil
}

// EncodeTo writes m at the current position of buf.
func (f *Factory) EncodeTo(m Message, buf *buffer.Buffer) error {
	h := m.Hdr()
	code, encode, err := f.registry.ResolveEncoder(m.Kind(), h.Version)
	if err != nil {
		return err
	}

	start := buf.Position()
	if err := buf.WriteUint8(uint8(h.Version)); err != nil {
		return err
	}
	if err := buf.WriteUint8(code); err != nil {
		return err
	}
	slot, err := buf.MarkLength()
	if err != nil {
		return err
	}
	if err := buf.WriteUint32(h.Xid); err != nil {
		return err
	}

	if err := encode(m, buf); err != nil {
		return err
	}

	return buf.PatchLength(slot, buf.Position()-start)
}

func readHeader(buf *buffer.Buffer) (Header, error) {
	var h Header
	version, err := buf.ReadUint8()
	if err != nil {
		return h, err
	}
	h.Version = Version(version)
	if h.Type, err = buf.ReadUint8(); err != nil {
		return h, err
	}
	if h.Length, err = buf.ReadUint16(); err != nil {
		return h, err
	}
	if h.Xid, err = buf.ReadUint32(); err != nil {
		return h, err
	}
	return h, nil
}
