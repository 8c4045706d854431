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
	"fmt"

	"github.com/k-vswitch/ofcodec/buffer"
	"github.com/k-vswitch/ofcodec/openflow"
	"github.com/k-vswitch/ofcodec/openflow/internal/wire"
)

// Action type codes.
const (
	OFPAT_OUTPUT  = 0
	OFPAT_ENQUEUE = 11
	OFPAT_VENDOR  = 0xffff
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
	case OFPAT_OUTPUT:
		action = openflow.ActionOutput{Port: PortFromWire(r.Uint16()), MaxLen: r.Uint16()}
	case OFPAT_ENQUEUE:
		port := PortFromWire(r.Uint16())
		r.Skip(6)
		action = openflow.ActionEnqueue{Port: port, QueueID: r.Uint32()}
	case OFPAT_VENDOR:
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
		port, err := PortToWire(a.Port)
		if err != nil {
			return openflow.WrapStructure("output action", err)
		}
		w.Uint16(OFPAT_OUTPUT)
		slot := w.Mark()
		w.Uint16(port)
		w.Uint16(a.MaxLen)
		w.Patch(slot, start)
	case openflow.ActionEnqueue:
		port, err := PortToWire(a.Port)
		if err != nil {
			return openflow.WrapStructure("enqueue action", err)
		}
		w.Uint16(OFPAT_ENQUEUE)
		slot := w.Mark()
		w.Uint16(port)
		w.Pad(6)
		w.Uint32(a.QueueID)
		w.Patch(slot, start)
	case openflow.ActionExperimenter:
		w.Uint16(OFPAT_VENDOR)
		slot := w.Mark()
		w.Uint32(a.Experimenter)
		w.Bytes(a.Data)
		w.Align(start, 8)
		w.Patch(slot, start)
	default:
		return &openflow.UnsupportedError{Version: openflow.Version10, What: fmt.Sprintf("action %T", action)}
	}
	return openflow.WrapStructure("action", w.Err())
}
