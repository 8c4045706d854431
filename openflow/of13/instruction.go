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

	"github.com/k-vswitch/ofcodec/buffer"
	"github.com/k-vswitch/ofcodec/openflow"
	"github.com/k-vswitch/ofcodec/openflow/internal/wire"
)

func decodeInstructions(b *buffer.Buffer) ([]openflow.Instruction, error) {
	return openflow.DecodeList(b, "instructions", openflow.LenField("instruction", 2, 8), decodeInstruction)
}

func decodeInstruction(b *buffer.Buffer) (openflow.Instruction, error) {
	r := wire.NewReader(b)
	code := r.Uint16()
	t := openflow.InstructionType(code)
	r.Skip(2)

	var inst openflow.Instruction
	switch code {
	case ofp13.OFPIT_GOTO_TABLE:
		inst = openflow.InstructionGotoTable{TableID: r.Uint8()}
	case ofp13.OFPIT_WRITE_METADATA:
		r.Skip(4)
		inst = openflow.InstructionWriteMetadata{Metadata: r.Uint64(), MetadataMask: r.Uint64()}
	case ofp13.OFPIT_WRITE_ACTIONS, ofp13.OFPIT_APPLY_ACTIONS, ofp13.OFPIT_CLEAR_ACTIONS:
		r.Skip(4)
		if err := r.Err(); err != nil {
			return nil, openflow.WrapStructure("instruction", err)
		}
		actions, err := decodeActions(b)
		if err != nil {
			return nil, openflow.WrapStructure("actions instruction", err)
		}
		inst = openflow.InstructionActions{Type: t, Actions: actions}
	case ofp13.OFPIT_METER:
		inst = openflow.InstructionMeter{MeterID: r.Uint32()}
	case ofp13.OFPIT_EXPERIMENTER:
		inst = openflow.InstructionExperimenter{Experimenter: r.Uint32(), Data: r.Rest()}
	default:
		return nil, openflow.WrapStructure("instruction", &openflow.UnknownValueError{Field: "instruction type", Value: uint32(t)})
	}
	if err := r.Err(); err != nil {
		return nil, openflow.WrapStructure(fmt.Sprintf("instruction %d", t), err)
	}
	return inst, nil
}

func encodeInstructions(b *buffer.Buffer, insts []openflow.Instruction) error {
	return openflow.EncodeList(b, insts, encodeInstruction)
}

func encodeInstruction(b *buffer.Buffer, inst openflow.Instruction) error {
	w := wire.NewWriter(b)
	start := w.Position()
	w.Uint16(uint16(inst.InstructionType()))
	slot := w.Mark()

	switch i := inst.(type) {
	case openflow.InstructionGotoTable:
		w.Uint8(i.TableID)
		w.Pad(3)
	case openflow.InstructionWriteMetadata:
		w.Pad(4)
		w.Uint64(i.Metadata)
		w.Uint64(i.MetadataMask)
	case openflow.InstructionActions:
		w.Pad(4)
		if err := w.Err(); err != nil {
			return openflow.WrapStructure("instruction", err)
		}
		if err := encodeActions(b, i.Actions); err != nil {
			return openflow.WrapStructure("actions instruction", err)
		}
	case openflow.InstructionMeter:
		w.Uint32(i.MeterID)
	case openflow.InstructionExperimenter:
		w.Uint32(i.Experimenter)
		w.Bytes(i.Data)
		w.Align(start, 8)
	default:
		return &openflow.UnsupportedError{Version: openflow.Version13, What: fmt.Sprintf("instruction %T", inst)}
	}
	w.Patch(slot, start)
	return openflow.WrapStructure("instruction", w.Err())
}
