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

// errorTypes maps wire error types to their version independent value.
var errorTypes = map[uint16]openflow.ErrorType{
	ofp13.OFPET_HELLO_FAILED:          openflow.ErrorTypeHelloFailed,
	ofp13.OFPET_BAD_REQUEST:           openflow.ErrorTypeBadRequest,
	ofp13.OFPET_BAD_ACTION:            openflow.ErrorTypeBadAction,
	ofp13.OFPET_BAD_INSTRUCTION:       openflow.ErrorTypeBadInstruction,
	ofp13.OFPET_BAD_MATCH:             openflow.ErrorTypeBadMatch,
	ofp13.OFPET_FLOW_MOD_FAILED:       openflow.ErrorTypeFlowModFailed,
	ofp13.OFPET_GROUP_MOD_FAILED:      openflow.ErrorTypeGroupModFailed,
	ofp13.OFPET_PORT_MOD_FAILED:       openflow.ErrorTypePortModFailed,
	ofp13.OFPET_TABLE_MOD_FAILED:      openflow.ErrorTypeTableModFailed,
	ofp13.OFPET_QUEUE_OP_FAILED:       openflow.ErrorTypeQueueOpFailed,
	ofp13.OFPET_SWITCH_CONFIG_FAILED:  openflow.ErrorTypeSwitchConfigFailed,
	ofp13.OFPET_ROLE_REQUEST_FAILED:   openflow.ErrorTypeRoleRequestFailed,
	ofp13.OFPET_METER_MOD_FAILED:      openflow.ErrorTypeMeterModFailed,
	ofp13.OFPET_TABLE_FEATURES_FAILED: openflow.ErrorTypeTableFeaturesFailed,
	ofp13.OFPET_EXPERIMENTER:          openflow.ErrorTypeExperimenter,
}

var errorTypeCodes = func() map[openflow.ErrorType]uint16 {
	codes := make(map[openflow.ErrorType]uint16, len(errorTypes))
	for code, t := range errorTypes {
		codes[t] = code
	}
	return codes
}()

func decodeError(h openflow.Header, body *buffer.Buffer) (openflow.Message, error) {
	r := wire.NewReader(body)
	code := r.Uint16()
	if err := r.Err(); err != nil {
		return nil, openflow.WrapStructure("error", err)
	}
	t, ok := errorTypes[code]
	if !ok {
		return nil, openflow.WrapStructure("error", &openflow.UnknownValueError{Field: "error type", Value: uint32(code)})
	}

	msg := &openflow.Error{Header: h, Type: t}
	if t == openflow.ErrorTypeExperimenter {
		msg.ExpType = r.Uint16()
		msg.Experimenter = r.Uint32()
	} else {
		msg.Code = r.Uint16()
	}
	msg.Data = r.Rest()
	if err := r.Err(); err != nil {
		return nil, openflow.WrapStructure("error", err)
	}
	return msg, nil
}

func encodeError(m openflow.Message, body *buffer.Buffer) error {
	msg, ok := m.(*openflow.Error)
	if !ok {
		return unexpected(m, "error")
	}
	code, ok := errorTypeCodes[msg.Type]
	if !ok {
		return openflow.WrapStructure("error", &openflow.UnknownValueError{Field: "error type", Value: uint32(msg.Type)})
	}

	w := wire.NewWriter(body)
	w.Uint16(code)
	if msg.Type == openflow.ErrorTypeExperimenter {
		w.Uint16(msg.ExpType)
		w.Uint32(msg.Experimenter)
	} else {
		w.Uint16(msg.Code)
	}
	w.Bytes(msg.Data)
	return openflow.WrapStructure("error", w.Err())
}
