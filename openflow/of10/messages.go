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
	"bytes"

	"github.com/k-vswitch/ofcodec/buffer"
	"github.com/k-vswitch/ofcodec/openflow"
	"github.com/k-vswitch/ofcodec/openflow/internal/wire"
)

const (
	portLen     = 48
	portNameLen = 16
)

// decodeHello ignores the body; 1.0 defines none.
func decodeHello(h openflow.Header, _ *buffer.Buffer) (openflow.Message, error) {
	return &openflow.Hello{Header: h}, nil
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

func decodeVendor(h openflow.Header, body *buffer.Buffer) (openflow.Message, error) {
	r := wire.NewReader(body)
	msg := &openflow.Experimenter{Header: h, Experimenter: r.Uint32(), Data: r.Rest()}
	if err := r.Err(); err != nil {
		return nil, openflow.WrapStructure("vendor", err)
	}
	return msg, nil
}

func encodeVendor(m openflow.Message, body *buffer.Buffer) error {
	msg, ok := m.(*openflow.Experimenter)
	if !ok {
		return unexpected(m, "vendor")
	}
	if msg.ExpType != 0 {
		return &openflow.UnsupportedError{Version: openflow.Version10, What: "experimenter type"}
	}
	w := wire.NewWriter(body)
	w.Uint32(msg.Experimenter)
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

func encodeEmpty(openflow.Message, *buffer.Buffer) error {
	return nil
}

func decodeFeaturesReply(h openflow.Header, body *buffer.Buffer) (openflow.Message, error) {
	r := wire.NewReader(body)
	msg := &openflow.FeaturesReply{Header: h}
	msg.DatapathID = r.Uint64()
	msg.NBuffers = r.Uint32()
	msg.NTables = r.Uint8()
	r.Skip(3)
	msg.Capabilities = r.Uint32()
	msg.Actions = r.Uint32()
	if err := r.Err(); err != nil {
		return nil, openflow.WrapStructure("features reply", err)
	}

	ports, err := openflow.DecodeList(body, "ports", openflow.FixedLen(portLen), decodePort)
	if err != nil {
		return nil, openflow.WrapStructure("features reply", err)
	}
	msg.Ports = ports
	return msg, nil
}

func decodePort(b *buffer.Buffer) (openflow.Port, error) {
	r := wire.NewReader(b)
	p := openflow.Port{PortNo: PortFromWire(r.Uint16()), HWAddr: r.Bytes(6)}
	name := r.Bytes(portNameLen)
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	p.Name = string(name)
	p.Config = r.Uint32()
	p.State = r.Uint32()
	p.Curr = r.Uint32()
	p.Advertised = r.Uint32()
	p.Supported = r.Uint32()
	p.Peer = r.Uint32()
	return p, openflow.WrapStructure("port", r.Err())
}

func encodeFeaturesReply(m openflow.Message, body *buffer.Buffer) error {
	msg, ok := m.(*openflow.FeaturesReply)
	if !ok {
		return unexpected(m, "features reply")
	}
	w := wire.NewWriter(body)
	w.Uint64(msg.DatapathID)
	w.Uint32(msg.NBuffers)
	w.Uint8(msg.NTables)
	w.Pad(3)
	w.Uint32(msg.Capabilities)
	w.Uint32(msg.Actions)
	if err := w.Err(); err != nil {
		return openflow.WrapStructure("features reply", err)
	}
	return openflow.WrapStructure("features reply", openflow.EncodeList(body, msg.Ports, encodePort))
}

func encodePort(b *buffer.Buffer, p openflow.Port) error {
	portNo, err := PortToWire(p.PortNo)
	if err != nil {
		return openflow.WrapStructure("port", err)
	}
	if len(p.Name) >= portNameLen {
		return openflow.WrapStructure("port", &openflow.InvalidLengthError{Structure: "port name", Length: len(p.Name), Min: 0})
	}

	hw := make([]byte, 6)
	copy(hw, p.HWAddr)
	name := make([]byte, portNameLen)
	copy(name, p.Name)

	w := wire.NewWriter(b)
	w.Uint16(portNo)
	w.Bytes(hw)
	w.Bytes(name)
	w.Uint32(p.Config)
	w.Uint32(p.State)
	w.Uint32(p.Curr)
	w.Uint32(p.Advertised)
	w.Uint32(p.Supported)
	w.Uint32(p.Peer)
	return openflow.WrapStructure("port", w.Err())
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
	w := wire.NewWriter(body)
	switch msg := m.(type) {
	case *openflow.GetConfigReply:
		w.Uint16(msg.Flags)
		w.Uint16(msg.MissSendLen)
	case *openflow.SetConfig:
		w.Uint16(msg.Flags)
		w.Uint16(msg.MissSendLen)
	default:
		return unexpected(m, "switch config")
	}
	return w.Err()
}

func decodePacketIn(h openflow.Header, body *buffer.Buffer) (openflow.Message, error) {
	r := wire.NewReader(body)
	msg := &openflow.PacketIn{Header: h}
	msg.BufferID = r.Uint32()
	msg.TotalLen = r.Uint16()
	msg.InPort = PortFromWire(r.Uint16())
	msg.Reason = r.Uint8()
	r.Skip(1)
	msg.Data = r.Rest()
	if err := r.Err(); err != nil {
		return nil, openflow.WrapStructure("packet in", err)
	}
	return msg, nil
}

func encodePacketIn(m openflow.Message, body *buffer.Buffer) error {
	msg, ok := m.(*openflow.PacketIn)
	if !ok {
		return unexpected(m, "packet in")
	}
	inPort, err := PortToWire(msg.InPort)
	if err != nil {
		return openflow.WrapStructure("packet in", err)
	}
	w := wire.NewWriter(body)
	w.Uint32(msg.BufferID)
	w.Uint16(msg.TotalLen)
	w.Uint16(inPort)
	w.Uint8(msg.Reason)
	w.Pad(1)
	w.Bytes(msg.Data)
	return openflow.WrapStructure("packet in", w.Err())
}

func decodePacketOut(h openflow.Header, body *buffer.Buffer) (openflow.Message, error) {
	r := wire.NewReader(body)
	msg := &openflow.PacketOut{Header: h}
	msg.BufferID = r.Uint32()
	msg.InPort = PortFromWire(r.Uint16())
	actions := r.Slice(int(r.Uint16()))
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
	inPort, err := PortToWire(msg.InPort)
	if err != nil {
		return openflow.WrapStructure("packet out", err)
	}
	w := wire.NewWriter(body)
	w.Uint32(msg.BufferID)
	w.Uint16(inPort)
	slot := w.Mark()
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
