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

func decodeHello(h openflow.Header, body *buffer.Buffer) (openflow.Message, error) {
	elems, err := openflow.DecodeList(body, "hello elements", helloElementLen, decodeHelloElement)
	if err != nil {
		return nil, openflow.WrapStructure("hello", err)
	}
	return &openflow.Hello{Header: h, Elements: elems}, nil
}

// helloElementLen accounts for the padding after each element. The last
// element may omit it.
func helloElementLen(b *buffer.Buffer) (int, error) {
	n, err := openflow.LenField("hello element", 2, 4)(b)
	if err != nil {
		return 0, err
	}
	if padded := align8(n); padded <= b.Remaining() {
		return padded, nil
	}
	return n, nil
}

func decodeHelloElement(b *buffer.Buffer) (openflow.HelloElement, error) {
	r := wire.NewReader(b)
	elem := openflow.HelloElement{Type: r.Uint16()}
	length := int(r.Uint16())
	payload := wire.NewReader(r.Slice(length - 4))
	if elem.Type == ofp13.OFPHET_VERSIONBITMAP {
		for payload.Remaining() >= 4 {
			elem.Bitmaps = append(elem.Bitmaps, payload.Uint32())
		}
	} else {
		elem.Data = payload.Rest()
	}
	if err := r.Err(); err != nil {
		return elem, openflow.WrapStructure("hello element", err)
	}
	return elem, payload.Err()
}

func encodeHello(m openflow.Message, body *buffer.Buffer) error {
	msg, ok := m.(*openflow.Hello)
	if !ok {
		return unexpected(m, "hello")
	}
	w := wire.NewWriter(body)
	for _, elem := range msg.Elements {
		start := w.Position()
		w.Uint16(elem.Type)
		slot := w.Mark()
		if elem.Type == ofp13.OFPHET_VERSIONBITMAP {
			for _, bitmap := range elem.Bitmaps {
				w.Uint32(bitmap)
			}
		} else {
			w.Bytes(elem.Data)
		}
		w.Patch(slot, start)
		w.Align(start, 8)
	}
	return openflow.WrapStructure("hello", w.Err())
}

func decodeEchoRequest(h openflow.Header, body *buffer.Buffer) (openflow.Message, error) {
	r := wire.NewReader(body)
	return &openflow.EchoRequest{Header: h, Data: r.Rest()}, r.Err()
}

func decodeEchoReply(h openflow.Header, body *buffer.Buffer) (openflow.Message, error) {
	r := wire.NewReader(body)
	return &openflow.EchoReply{Header: h, Data: r.Rest()}, r.Err()
}

func encodeEchoRequest(m openflow.Message, body *buffer.Buffer) error {
	msg, ok := m.(*openflow.EchoRequest)
	if !ok {
		return unexpected(m, "echo request")
	}
	return body.WriteBytes(msg.Data)
}

func encodeEchoReply(m openflow.Message, body *buffer.Buffer) error {
	msg, ok := m.(*openflow.EchoReply)
	if !ok {
		return unexpected(m, "echo reply")
	}
	return body.WriteBytes(msg.Data)
}

func decodeExperimenter(h openflow.Header, body *buffer.Buffer) (openflow.Message, error) {
	r := wire.NewReader(body)
	msg := &openflow.Experimenter{Header: h}
	msg.Experimenter = r.Uint32()
	msg.ExpType = r.Uint32()
	msg.Data = r.Rest()
	if err := r.Err(); err != nil {
		return nil, openflow.WrapStructure("experimenter", err)
	}
	return msg, nil
}

func encodeExperimenter(m openflow.Message, body *buffer.Buffer) error {
	msg, ok := m.(*openflow.Experimenter)
	if !ok {
		return unexpected(m, "experimenter")
	}
	w := wire.NewWriter(body)
	w.Uint32(msg.Experimenter)
	w.Uint32(msg.ExpType)
	w.Bytes(msg.Data)
	return w.Err()
}

func decodeFeaturesRequest(h openflow.Header, _ *buffer.Buffer) (openflow.Message, error) {
	return &openflow.FeaturesRequest{Header: h}, nil
}

func decodeGetConfigRequest(h openflow.Header, _ *buffer.Buffer) (openflow.Message, error) {
	return &openflow.GetConfigRequest{Header: h}, nil
}

func decodeBarrierRequest(h openflow.Header, _ *buffer.Buffer) (openflow.Message, error) {
	return &openflow.BarrierRequest{Header: h}, nil
}

func decodeBarrierReply(h openflow.Header, _ *buffer.Buffer) (openflow.Message, error) {
	return &openflow.BarrierReply{Header: h}, nil
}

// encodeEmpty serves the messages that are a bare header.
func encodeEmpty(openflow.Message, *buffer.Buffer) error {
	return nil
}

func decodeFeaturesReply(h openflow.Header, body *buffer.Buffer) (openflow.Message, error) {
	r := wire.NewReader(body)
	msg := &openflow.FeaturesReply{Header: h}
	msg.DatapathID = r.Uint64()
	msg.NBuffers = r.Uint32()
	msg.NTables = r.Uint8()
	msg.AuxiliaryID = r.Uint8()
	r.Skip(2)
	msg.Capabilities = r.Uint32()
	msg.Reserved = r.Uint32()
	if err := r.Err(); err != nil {
		return nil, openflow.WrapStructure("features reply", err)
	}
	return msg, nil
}

func encodeFeaturesReply(m openflow.Message, body *buffer.Buffer) error {
	msg, ok := m.(*openflow.FeaturesReply)
	if !ok {
		return unexpected(m, "features reply")
	}
	if len(msg.Ports) > 0 {
		return &openflow.UnsupportedError{Version: openflow.Version13, What: "port list in features reply"}
	}
	w := wire.NewWriter(body)
	w.Uint64(msg.DatapathID)
	w.Uint32(msg.NBuffers)
	w.Uint8(msg.NTables)
	w.Uint8(msg.AuxiliaryID)
	w.Pad(2)
	w.Uint32(msg.Capabilities)
	w.Uint32(msg.Reserved)
	return w.Err()
}

func decodeGetConfigReply(h openflow.Header, body *buffer.Buffer) (openflow.Message, error) {
	r := wire.NewReader(body)
	msg := &openflow.GetConfigReply{Header: h, Flags: r.Uint16(), MissSendLen: r.Uint16()}
	if err := r.Err(); err != nil {
		return nil, openflow.WrapStructure("switch config", err)
	}
	return msg, nil
}

func decodeSetConfig(h openflow.Header, body *buffer.Buffer) (openflow.Message, error) {
	r := wire.NewReader(body)
	msg := &openflow.SetConfig{Header: h, Flags: r.Uint16(), MissSendLen: r.Uint16()}
	if err := r.Err(); err != nil {
		return nil, openflow.WrapStructure("switch config", err)
	}
	return msg, nil
}

func encodeSwitchConfig(m openflow.Message, body *buffer.Buffer) error {
	var flags, missSendLen uint16
	switch msg := m.(type) {
	case *openflow.GetConfigReply:
		flags, missSendLen = msg.Flags, msg.MissSendLen
	case *openflow.SetConfig:
		flags, missSendLen = msg.Flags, msg.MissSendLen
	default:
		return unexpected(m, "switch config")
	}
	w := wire.NewWriter(body)
	w.Uint16(flags)
	w.Uint16(missSendLen)
	return w.Err()
}

func decodePacketIn(h openflow.Header, body *buffer.Buffer) (openflow.Message, error) {
	r := wire.NewReader(body)
	msg := &openflow.PacketIn{Header: h}
	msg.BufferID = r.Uint32()
	msg.TotalLen = r.Uint16()
	msg.Reason = r.Uint8()
	msg.TableID = r.Uint8()
	msg.Cookie = r.Uint64()
	if err := r.Err(); err != nil {
		return nil, openflow.WrapStructure("packet in", err)
	}

	match, err := decodeMatch(body)
	if err != nil {
		return nil, openflow.WrapStructure("packet in", err)
	}
	msg.Match = match

	r.Skip(2)
	msg.Data = r.Rest()
	if err := r.Err(); err != nil {
		return nil, openflow.WrapStructure("packet in", err)
	}
	if in, ok := match.Field(ofp13.OFPXMT_OFB_IN_PORT); ok {
		msg.InPort = uint32(in.Uint())
	}
	return msg, nil
}

func encodePacketIn(m openflow.Message, body *buffer.Buffer) error {
	msg, ok := m.(*openflow.PacketIn)
	if !ok {
		return unexpected(m, "packet in")
	}
	w := wire.NewWriter(body)
	w.Uint32(msg.BufferID)
	w.Uint16(msg.TotalLen)
	w.Uint8(msg.Reason)
	w.Uint8(msg.TableID)
	w.Uint64(msg.Cookie)
	if err := w.Err(); err != nil {
		return openflow.WrapStructure("packet in", err)
	}
	if err := encodeMatch(body, msg.Match); err != nil {
		return openflow.WrapStructure("packet in", err)
	}
	w.Pad(2)
	w.Bytes(msg.Data)
	return openflow.WrapStructure("packet in", w.Err())
}

func decodePacketOut(h openflow.Header, body *buffer.Buffer) (openflow.Message, error) {
	r := wire.NewReader(body)
	msg := &openflow.PacketOut{Header: h}
	msg.BufferID = r.Uint32()
	msg.InPort = r.Uint32()
	actionsLen := int(r.Uint16())
	r.Skip(6)
	actions := r.Slice(actionsLen)
	if err := r.Err(); err != nil {
		return nil, openflow.WrapStructure("packet out", err)
	}

	var err error
	if msg.Actions, err = decodeActions(actions); err != nil {
		return nil, openflow.WrapStructure("packet out", err)
	}
	msg.Data = r.Rest()
	return msg, nil
}

func encodePacketOut(m openflow.Message, body *buffer.Buffer) error {
	msg, ok := m.(*openflow.PacketOut)
	if !ok {
		return unexpected(m, "packet out")
	}
	w := wire.NewWriter(body)
	w.Uint32(msg.BufferID)
	w.Uint32(msg.InPort)
	slot := w.Mark()
	w.Pad(6)
	start := w.Position()
	if err := w.Err(); err != nil {
		return openflow.WrapStructure("packet out", err)
	}
	if err := encodeActions(body, msg.Actions); err != nil {
		return openflow.WrapStructure("packet out", err)
	}
	w.Patch(slot, start)
	w.Bytes(msg.Data)
	return openflow.WrapStructure("packet out", w.Err())
}

func decodeQueueGetConfigRequest(h openflow.Header, body *buffer.Buffer) (openflow.Message, error) {
	r := wire.NewReader(body)
	msg := &openflow.QueueGetConfigRequest{Header: h, Port: r.Uint32()}
	r.Skip(4)
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
	w := wire.NewWriter(body)
	w.Uint32(msg.Port)
	w.Pad(4)
	return w.Err()
}
