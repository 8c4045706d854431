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

package of13

import (
	"github.com/Kmotiko/gofc/ofprotocol/ofp13"

	"github.com/k-vswitch/ofcodec/buffer"
	"github.com/k-vswitch/ofcodec/openflow"
	"github.com/k-vswitch/ofcodec/openflow/internal/wire"
)

const (
	queueHeaderLen    = 16
	propertyHeaderLen = 8
)

// queueLen sizes a queue from the len field at offset 8. A zero len is
// the fixed layout: the queue header followed by exactly one property.
func queueLen(b *buffer.Buffer) (int, error) {
	n, err := b.PeekUint16(8)
	if err != nil {
		return 0, err
	}
	if n != 0 {
		if int(n) < queueHeaderLen {
			return 0, &openflow.InvalidLengthError{Structure: "queue", Length: int(n), Min: queueHeaderLen}
		}
		return int(n), nil
	}
	prop, err := fieldLen(b, queueHeaderLen+2, "queue property", propertyHeaderLen)
	if err != nil {
		return 0, err
	}
	return queueHeaderLen + prop, nil
}

// propertyLen sizes a property from the len field at offset 2. A zero len
// is a bare property header.
func propertyLen(b *buffer.Buffer) (int, error) {
	return fieldLen(b, 2, "queue property", propertyHeaderLen)
}

func fieldLen(b *buffer.Buffer, offset int, structure string, min int) (int, error) {
	n, err := b.PeekUint16(offset)
	if err != nil {
		return 0, err
	}
	switch {
	case n == 0:
		return min, nil
	case int(n) < min:
		return 0, &openflow.InvalidLengthError{Structure: structure, Length: int(n), Min: min}
	}
	return int(n), nil
}

func decodeQueueGetConfigReply(h openflow.Header, body *buffer.Buffer) (openflow.Message, error) {
	r := wire.NewReader(body)
	msg := &openflow.QueueGetConfigReply{Header: h, Port: r.Uint32()}
	r.Skip(4)
	if err := r.Err(); err != nil {
		return nil, openflow.WrapStructure("queue get config reply", err)
	}

	queues, err := openflow.DecodeList(body, "queues", queueLen, decodeQueue)
	if err != nil {
		return nil, openflow.WrapStructure("queue get config reply", err)
	}
	msg.Queues = queues
	return msg, nil
}

func decodeQueue(b *buffer.Buffer) (openflow.Queue, error) {
	r := wire.NewReader(b)
	q := openflow.Queue{QueueID: r.Uint32(), Port: r.Uint32()}
	r.Skip(8)
	if err := r.Err(); err != nil {
		return q, openflow.WrapStructure("queue", err)
	}

	props, err := openflow.DecodeList(b, "queue properties", propertyLen, decodeQueueProperty)
	if err != nil {
		return q, openflow.WrapStructure("queue", err)
	}
	q.Properties = props
	return q, nil
}

func decodeQueueProperty(b *buffer.Buffer) (openflow.QueueProperty, error) {
	r := wire.NewReader(b)
	code := r.Uint16()
	kind := openflow.QueuePropertyKind(code)
	r.Skip(6)
	if err := r.Err(); err != nil {
		return nil, openflow.WrapStructure("queue property", err)
	}
	bare := r.Remaining() == 0

	var prop openflow.QueueProperty
	switch code {
	case ofp13.OFPQT_MIN_RATE:
		rate := openflow.QueuePropertyMinRate{}
		if !bare {
			rate.Rate = r.Uint16()
			r.Skip(6)
		}
		prop = rate
	case ofp13.OFPQT_MAX_RATE:
		rate := openflow.QueuePropertyMaxRate{}
		if !bare {
			rate.Rate = r.Uint16()
			r.Skip(6)
		}
		prop = rate
	case ofp13.OFPQT_EXPERIMENTER:
		exp := openflow.QueuePropertyExperimenter{}
		if !bare {
			exp.Experimenter = r.Uint32()
			r.Skip(4)
			exp.Data = r.Rest()
		}
		prop = exp
	default:
		return nil, openflow.WrapStructure("queue property", &openflow.UnknownValueError{Field: "queue property", Value: uint32(code)})
	}
	if err := r.Err(); err != nil {
		return nil, openflow.WrapStructure("queue property "+kind.String(), err)
	}
	return prop, nil
}

func encodeQueueGetConfigReply(m openflow.Message, body *buffer.Buffer) error {
	msg, ok := m.(*openflow.QueueGetConfigReply)
	if !ok {
		return unexpected(m, "queue get config reply")
	}
	w := wire.NewWriter(body)
	w.Uint32(msg.Port)
	w.Pad(4)
	if err := w.Err(); err != nil {
		return openflow.WrapStructure("queue get config reply", err)
	}
	return openflow.WrapStructure("queue get config reply", openflow.EncodeList(body, msg.Queues, encodeQueue))
}

func encodeQueue(b *buffer.Buffer, q openflow.Queue) error {
	w := wire.NewWriter(b)
	start := w.Position()
	w.Uint32(q.QueueID)
	w.Uint32(q.Port)
	slot := w.Mark()
	w.Pad(6)
	if err := w.Err(); err != nil {
		return openflow.WrapStructure("queue", err)
	}
	if err := openflow.EncodeList(b, q.Properties, encodeQueueProperty); err != nil {
		return openflow.WrapStructure("queue", err)
	}
	w.Patch(slot, start)
	return openflow.WrapStructure("queue", w.Err())
}

func encodeQueueProperty(b *buffer.Buffer, prop openflow.QueueProperty) error {
	w := wire.NewWriter(b)
	start := w.Position()
	w.Uint16(uint16(prop.Property()))
	slot := w.Mark()
	w.Pad(4)
	switch p := prop.(type) {
	case openflow.QueuePropertyMinRate:
		w.Uint16(p.Rate)
		w.Pad(6)
	case openflow.QueuePropertyMaxRate:
		w.Uint16(p.Rate)
		w.Pad(6)
	case openflow.QueuePropertyExperimenter:
		w.Uint32(p.Experimenter)
		w.Pad(4)
		w.Bytes(p.Data)
	default:
		return &openflow.UnsupportedError{Version: openflow.Version13, What: "queue property " + prop.Property().String()}
	}
	w.Patch(slot, start)
	return openflow.WrapStructure("queue property", w.Err())
}
