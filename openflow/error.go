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

import "fmt"

// ErrorType is the version independent error type. Each version codec
// maps it to and from its own wire values.
type ErrorType int

const (
	ErrorTypeHelloFailed ErrorType = iota + 1
	ErrorTypeBadRequest
	ErrorTypeBadAction
	ErrorTypeBadInstruction
	ErrorTypeBadMatch
	ErrorTypeFlowModFailed
	ErrorTypeGroupModFailed
	ErrorTypePortModFailed
	ErrorTypeTableModFailed
	ErrorTypeQueueOpFailed
	ErrorTypeSwitchConfigFailed
	ErrorTypeRoleRequestFailed
	ErrorTypeMeterModFailed
	ErrorTypeTableFeaturesFailed
	ErrorTypeExperimenter
)

var errorTypeNames = map[ErrorType]string{
	ErrorTypeHelloFailed:         "HELLO_FAILED",
	ErrorTypeBadRequest:          "BAD_REQUEST",
	ErrorTypeBadAction:           "BAD_ACTION",
	ErrorTypeBadInstruction:      "BAD_INSTRUCTION",
	ErrorTypeBadMatch:            "BAD_MATCH",
	ErrorTypeFlowModFailed:       "FLOW_MOD_FAILED",
	ErrorTypeGroupModFailed:      "GROUP_MOD_FAILED",
	ErrorTypePortModFailed:       "PORT_MOD_FAILED",
	ErrorTypeTableModFailed:      "TABLE_MOD_FAILED",
	ErrorTypeQueueOpFailed:       "QUEUE_OP_FAILED",
	ErrorTypeSwitchConfigFailed:  "SWITCH_CONFIG_FAILED",
	ErrorTypeRoleRequestFailed:   "ROLE_REQUEST_FAILED",
	ErrorTypeMeterModFailed:      "METER_MOD_FAILED",
	ErrorTypeTableFeaturesFailed: "TABLE_FEATURES_FAILED",
	ErrorTypeExperimenter:        "EXPERIMENTER",
}

func (t ErrorType) String() string {
	if name, ok := errorTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ERROR_TYPE(%d)", int(t))
}

// Hello failed codes.
const (
	HelloFailedIncompatible uint16 = 0
	HelloFailedEPerm        uint16 = 1
)

// Bad request codes.
const (
	BadRequestBadVersion uint16 = iota
	BadRequestBadType
	BadRequestBadMultipart
	BadRequestBadExperimenter
	BadRequestBadExpType
	BadRequestEPerm
	BadRequestBadLen
	BadRequestBufferEmpty
	BadRequestBufferUnknown
	BadRequestBadTableID
	BadRequestIsSlave
	BadRequestBadPort
	BadRequestBadPacket
	BadRequestMultipartBufferOverflow
)

// errorCodeNames interprets codes relative to their type. Names follow
// OpenFlow 1.3; the 1.0 codes that exist share their numbers.
var errorCodeNames = map[ErrorType][]string{
	ErrorTypeHelloFailed: {"INCOMPATIBLE", "EPERM"},
	ErrorTypeBadRequest: {"BAD_VERSION", "BAD_TYPE", "BAD_MULTIPART", "BAD_EXPERIMENTER",
		"BAD_EXP_TYPE", "EPERM", "BAD_LEN", "BUFFER_EMPTY", "BUFFER_UNKNOWN",
		"BAD_TABLE_ID", "IS_SLAVE", "BAD_PORT", "BAD_PACKET", "MULTIPART_BUFFER_OVERFLOW"},
	ErrorTypeBadAction: {"BAD_TYPE", "BAD_LEN", "BAD_EXPERIMENTER", "BAD_EXP_TYPE",
		"BAD_OUT_PORT", "BAD_ARGUMENT", "EPERM", "TOO_MANY", "BAD_QUEUE", "BAD_OUT_GROUP",
		"MATCH_INCONSISTENT", "UNSUPPORTED_ORDER", "BAD_TAG", "BAD_SET_TYPE",
		"BAD_SET_LEN", "BAD_SET_ARGUMENT"},
	ErrorTypeBadInstruction: {"UNKNOWN_INST", "UNSUP_INST", "BAD_TABLE_ID",
		"UNSUP_METADATA", "UNSUP_METADATA_MASK", "BAD_EXPERIMENTER", "BAD_EXP_TYPE",
		"BAD_LEN", "EPERM"},
	ErrorTypeBadMatch: {"BAD_TYPE", "BAD_LEN", "BAD_TAG", "BAD_DL_ADDR_MASK",
		"BAD_NW_ADDR_MASK", "BAD_WILDCARDS", "BAD_FIELD", "BAD_VALUE", "BAD_MASK",
		"BAD_PREREQ", "DUP_FIELD", "EPERM"},
	ErrorTypeFlowModFailed: {"UNKNOWN", "TABLE_FULL", "BAD_TABLE_ID", "OVERLAP",
		"EPERM", "BAD_TIMEOUT", "BAD_COMMAND", "BAD_FLAGS"},
	ErrorTypeGroupModFailed: {"GROUP_EXISTS", "INVALID_GROUP", "WEIGHT_UNSUPPORTED",
		"OUT_OF_GROUPS", "OUT_OF_BUCKETS", "CHAINING_UNSUPPORTED", "WATCH_UNSUPPORTED",
		"LOOP", "UNKNOWN_GROUP", "CHAINED_GROUP", "BAD_TYPE", "BAD_COMMAND",
		"BAD_BUCKET", "BAD_WATCH", "EPERM"},
	ErrorTypePortModFailed:       {"BAD_PORT", "BAD_HW_ADDR", "BAD_CONFIG", "BAD_ADVERTISE", "EPERM"},
	ErrorTypeTableModFailed:      {"BAD_TABLE", "BAD_CONFIG", "EPERM"},
	ErrorTypeQueueOpFailed:       {"BAD_PORT", "BAD_QUEUE", "EPERM"},
	ErrorTypeSwitchConfigFailed:  {"BAD_FLAGS", "BAD_LEN", "EPERM"},
	ErrorTypeRoleRequestFailed:   {"STALE", "UNSUP", "BAD_ROLE"},
	ErrorTypeMeterModFailed: {"UNKNOWN", "METER_EXISTS", "INVALID_METER",
		"UNKNOWN_METER", "BAD_COMMAND", "BAD_FLAGS", "BAD_RATE", "BAD_BURST",
		"BAD_BAND", "BAD_BAND_VALUE", "OUT_OF_METERS", "OUT_OF_BANDS"},
	ErrorTypeTableFeaturesFailed: {"BAD_TABLE", "BAD_METADATA", "BAD_TYPE", "BAD_LEN",
		"BAD_ARGUMENT", "EPERM"},
}

// Error is the ERROR message. For experimenter errors ExpType,
// Experimenter and Data are set and Code is unused; Data is opaque. For
// every other type Data is a copy of the offending message, usually
// truncated, or nil when the switch sent none.
type Error struct {
	Header
	Type         ErrorType
	Code         uint16
	ExpType      uint16
	Experimenter uint32
	Data         []byte
}

func (*Error) Kind() Kind { return KindError }

// CodeName interprets Code relative to Type.
func (e *Error) CodeName() string {
	if e.Type == ErrorTypeExperimenter {
		return fmt.Sprintf("EXPERIMENTER(0x%08x, %d)", e.Experimenter, e.ExpType)
	}
	names := errorCodeNames[e.Type]
	if int(e.Code) < len(names) {
		return names[e.Code]
	}
	return fmt.Sprintf("CODE(%d)", e.Code)
}

// Offending re-parses Data as the request that caused the error. It
// returns nil when the error carries no data. The copy in Data is often
// truncated by the switch; the re-parse then fails with ErrIncomplete.
func (e *Error) Offending(f *Factory) (Message, error) {
	if e.Type == ErrorTypeExperimenter {
		return nil, ErrExperimenterPayload
	}
	if e.Data == nil {
		return nil, nil
	}
	return f.Unmarshal(e.Data)
}
