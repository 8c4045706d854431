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

package of10

import (
	"github.com/k-vswitch/ofcodec/buffer"
	"github.com/k-vswitch/ofcodec/openflow"
	"github.com/k-vswitch/ofcodec/openflow/internal/wire"
)

const (
	queueHeaderLen    = 8
	propertyHeaderLen = 8
)

func decodeQueueGetConfigRequest(h openflow.Header, body *buffer.Buffer) (openflow.Message, error) {
	r := wire.NewReader(body)
	msg := &openflow.QueueGetConfigRequest{Header: h, Port: PortFromWire(r.Uint16())}
	r.Skip(2)
	if err := r.Err(); err != nil {
		return nil, openflow.WrapStructure("queue get config request", err)
	}
	return msg, nil
}

func encodeQueueGetConfigRequest(m openflow.Message, body *buffer.Buffer) error {
	msg, ok := m.(*openflow.QueueGetConfigRequest)
	if !ok {
		return unexpected(m, "queue get config request")
	}
	port, err := PortToWire(msg.Port)
	if err != nil {
		return openflow.WrapStructure("queue get config request", err)
	}
	w := wire.NewWriter(body)
	w.Uint16(port)
	w.Pad(2)
	return w.Err()
}

func decodeQueueGetConfigReply(h openflow.Header, body *buffer.Buffer) (openflow.Message, error) {
	r := wire.NewReader(body)
	msg := &openflow.QueueGetConfigReply{Header: h, Port: PortFromWire(r.Uint16())}
	r.Skip(6)
	if err := r.Err(); err != nil {
		return nil, openflow.WrapStructure("queue get config reply", err)
	}

	queues, err := openflow.DecodeList(body, "queues", openflow.LenField("queue", 4, queueHeaderLen), decodeQueue)
	if err != nil {
		return nil, openflow.WrapStructure("queue get config reply", err)
	}
	msg.Queues = queues
	return msg, nil
}

func decodeQueue(b *buffer.Buffer) (openflow.Queue, error) {
	r := wire.NewReader(b)
	q := openflow.Queue{QueueID: r.Uint32()}
	r.Skip(4)
	if err := r.Err(); err != nil {
		return q, openflow.WrapStructure("queue", err)
	}

	props, err := openflow.DecodeList(b, "queue properties", openflow.LenField("queue property", 2, propertyHeaderLen), decodeQueueProperty)
	if err != nil {
		return q, openflow.WrapStructure("queue", err)
	}
	q.Properties = props
	return q, nil
}

func decodeQueueProperty(b *buffer.Buffer) (openflow.QueueProperty, error) {
	r := wire.NewReader(b)
	kind := openflow.QueuePropertyKind(r.Uint16())
	r.Skip(6)

	var prop openflow.QueueProperty
	switch kind {
	case openflow.PropertyNone:
		prop = openflow.QueuePropertyNone{}
	case openflow.PropertyMinRate:
		prop = openflow.QueuePropertyMinRate{Rate: r.Uint16()}
		r.Skip(6)
	default:
		return nil, openflow.WrapStructure("queue property", &openflow.UnknownValueError{Field: "queue property", Value: uint32(kind)})
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
	port, err := PortToWire(msg.Port)
	if err != nil {
		return openflow.WrapStructure("queue get config reply", err)
	}
	w := wire.NewWriter(body)
	w.Uint16(port)
	w.Pad(6)
	if err := w.Err(); err != nil {
		return openflow.WrapStructure("queue get config reply", err)
	}
	return openflow.WrapStructure("queue get config reply", openflow.EncodeList(body, msg.Queues, encodeQueue))
}

func encodeQueue(b *buffer.Buffer, q openflow.Queue) error {
	w := wire.NewWriter(b)
	start := w.Position()
	w.Uint32(q.QueueID)
	slot := w.Mark()
	w.Pad(2)
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
	case openflow.QueuePropertyNone:
	case openflow.QueuePropertyMinRate:
		w.Uint16(p.Rate)
		w.Pad(6)
	default:
		return &openflow.UnsupportedError{Version: openflow.Version10, What: "queue property " + prop.Property().String()}
	}
	w.Patch(slot, start)
	return openflow.WrapStructure("queue property", w.Err())
}
