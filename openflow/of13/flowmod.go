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

func decodeFlowMod(h openflow.Header, body *buffer.Buffer) (openflow.Message, error) {
	r := wire.NewReader(body)
	msg := &openflow.FlowMod{Header: h}
	msg.Cookie = r.Uint64()
	msg.CookieMask = r.Uint64()
	msg.TableID = r.Uint8()
	command := r.Uint8()
	msg.IdleTimeout = r.Uint16()
	msg.HardTimeout = r.Uint16()
	msg.Priority = r.Uint16()
	msg.BufferID = r.Uint32()
	msg.OutPort = r.Uint32()
	msg.OutGroup = r.Uint32()
	msg.Flags = r.Uint16()
	r.Skip(2)
	if err := r.Err(); err != nil {
		return nil, openflow.WrapStructure("flow mod", err)
	}
	if command > ofp13.OFPFC_DELETE_STRICT {
		return nil, openflow.WrapStructure("flow mod", &openflow.UnknownValueError{Field: "flow mod command", Value: uint32(command)})
	}
	msg.Command = openflow.FlowModCommand(command)

	var err error
	if msg.Match, err = decodeMatch(body); err != nil {
		return nil, openflow.WrapStructure("flow mod", err)
	}
	if msg.Instructions, err = decodeInstructions(body); err != nil {
		return nil, openflow.WrapStructure("flow mod", err)
	}
	return msg, nil
}

func encodeFlowMod(m openflow.Message, body *buffer.Buffer) error {
	msg, ok := m.(*openflow.FlowMod)
	if !ok {
		return unexpected(m, "flow mod")
	}
	w := wire.NewWriter(body)
	w.Uint64(msg.Cookie)
	w.Uint64(msg.CookieMask)
	w.Uint8(msg.TableID)
	w.Uint8(uint8(msg.Command))
	w.Uint16(msg.IdleTimeout)
	w.Uint16(msg.HardTimeout)
	w.Uint16(msg.Priority)
	w.Uint32(msg.BufferID)
	w.Uint32(msg.OutPort)
	w.Uint32(msg.OutGroup)
	w.Uint16(msg.Flags)
	w.Pad(2)
	if err := w.Err(); err != nil {
		return openflow.WrapStructure("flow mod", err)
	}
	if err := encodeMatch(body, msg.Match); err != nil {
		return openflow.WrapStructure("flow mod", err)
	}
	return openflow.WrapStructure("flow mod", encodeInstructions(body, msg.Instructions))
}
