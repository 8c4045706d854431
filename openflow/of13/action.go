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
	"fmt"

	"github.com/Kmotiko/gofc/ofprotocol/ofp13"
	"github.com/google/gopacket/layers"

	"github.com/k-vswitch/ofcodec/buffer"
	"github.com/k-vswitch/ofcodec/openflow"
	"github.com/k-vswitch/ofcodec/openflow/internal/wire"
)

func decodeActions(b *buffer.Buffer) ([]openflow.Action, error) {
	return openflow.DecodeList(b, "actions", openflow.LenField("action", 2, 8), decodeAction)
}

func decodeAction(b *buffer.Buffer) (openflow.Action, error) {
	r := wire.NewReader(b)
	actionType := r.Uint16()
	r.Skip(2)

	var action openflow.Action
	switch actionType {
	case ofp13.OFPAT_OUTPUT:
		action = openflow.ActionOutput{Port: r.Uint32(), MaxLen: r.Uint16()}
	case ofp13.OFPAT_SET_QUEUE:
		action = openflow.ActionSetQueue{QueueID: r.Uint32()}
	case ofp13.OFPAT_GROUP:
		action = openflow.ActionGroup{GroupID: r.Uint32()}
	case ofp13.OFPAT_PUSH_VLAN:
		action = openflow.ActionPushVlan{EtherType: layers.EthernetType(r.Uint16())}
	case ofp13.OFPAT_POP_VLAN:
		action = openflow.ActionPopVlan{}
	case ofp13.OFPAT_DEC_NW_TTL:
		action = openflow.ActionDecNwTtl{}
	case ofp13.OFPAT_SET_FIELD:
		field, err := decodeOxm(b)
		if err != nil {
			return nil, openflow.WrapStructure("set field action", err)
		}
		action = openflow.ActionSetField{Field: field}
	case ofp13.OFPAT_EXPERIMENTER:
		action = openflow.ActionExperimenter{Experimenter: r.Uint32(), Data: r.Rest()}
	default:
		return nil, openflow.WrapStructure("action", &openflow.UnknownValueError{Field: "action type", Value: uint32(actionType)})
	}
	if err := r.Err(); err != nil {
		return nil, openflow.WrapStructure(fmt.Sprintf("action %d", actionType), err)
	}
	return action, nil
}

func encodeActions(b *buffer.Buffer, actions []openflow.Action) error {
	return openflow.EncodeList(b, actions, encodeAction)
}

func encodeAction(b *buffer.Buffer, action openflow.Action) error {
	w := wire.NewWriter(b)
	start := w.Position()
	switch a := action.(type) {
	case openflow.ActionOutput:
		w.Uint16(ofp13.OFPAT_OUTPUT)
		slot := w.Mark()
		w.Uint32(a.Port)
		w.Uint16(a.MaxLen)
		w.Pad(6)
		w.Patch(slot, start)
	case openflow.ActionSetQueue:
		w.Uint16(ofp13.OFPAT_SET_QUEUE)
		slot := w.Mark()
		w.Uint32(a.QueueID)
		w.Patch(slot, start)
	case openflow.ActionGroup:
		w.Uint16(ofp13.OFPAT_GROUP)
		slot := w.Mark()
		w.Uint32(a.GroupID)
		w.Patch(slot, start)
	case openflow.ActionPushVlan:
		w.Uint16(ofp13.OFPAT_PUSH_VLAN)
		slot := w.Mark()
		w.Uint16(uint16(a.EtherType))
		w.Pad(2)
		w.Patch(slot, start)
	case openflow.ActionPopVlan:
		w.Uint16(ofp13.OFPAT_POP_VLAN)
		slot := w.Mark()
		w.Pad(4)
		w.Patch(slot, start)
	case openflow.ActionDecNwTtl:
		w.Uint16(ofp13.OFPAT_DEC_NW_TTL)
		slot := w.Mark()
		w.Pad(4)
		w.Patch(slot, start)
	case openflow.ActionSetField:
		w.Uint16(ofp13.OFPAT_SET_FIELD)
		slot := w.Mark()
		if err := w.Err(); err != nil {
			return openflow.WrapStructure("set field action", err)
		}
		if err := encodeOxm(b, a.Field); err != nil {
			return openflow.WrapStructure("set field action", err)
		}
		w.Align(start, 8)
		w.Patch(slot, start)
	case openflow.ActionExperimenter:
		w.Uint16(ofp13.OFPAT_EXPERIMENTER)
		slot := w.Mark()
		w.Uint32(a.Experimenter)
		w.Bytes(a.Data)
		w.Align(start, 8)
		w.Patch(slot, start)
	default:
		return &openflow.UnsupportedError{Version: openflow.Version13, What: fmt.Sprintf("action %T", action)}
	}
	return openflow.WrapStructure("action", w.Err())
}
