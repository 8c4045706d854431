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

// Package openflow holds the version independent model of OpenFlow
// messages together with the machinery that frames a byte stream into
// messages: the type registry, the list decoder and the message factory.
// Per-version structure codecs live in the of10 and of13 sub-packages.
package openflow

import "fmt"

// HeaderLen is the size of the header that prefixes every message.
const HeaderLen = 8

// Version is the wire protocol version carried in the first header byte.
type Version uint8

const (
	Version10 Version = 0x01
	Version13 Version = 0x04
)

func (v Version) String() string {
	switch v {
	case Version10:
		return "OpenFlow 1.0"
	case Version13:
		return "OpenFlow 1.3"
	}
	return fmt.Sprintf("OpenFlow version 0x%02x", uint8(v))
}

// Header is the fixed prefix of every message. Length covers the whole
// message, header and nested structures included.
type Header struct {
	Version Version
	Type    uint8
	Length  uint16
	Xid     uint32
}

// Hdr gives access to the header embedded in every message variant.
func (h *Header) Hdr() *Header {
	return h
}

// Kind identifies a message variant independently of the protocol
// version. The wire type code of a kind is version specific and is
// resolved through the Registry.
type Kind int

const (
	KindHello Kind = iota + 1
	KindError
	KindEchoRequest
	KindEchoReply
	KindExperimenter
	KindFeaturesRequest
	KindFeaturesReply
	KindGetConfigRequest
	KindGetConfigReply
	KindSetConfig
	KindPacketIn
	KindPacketOut
	KindFlowMod
	KindBarrierRequest
	KindBarrierReply
	KindQueueGetConfigRequest
	KindQueueGetConfigReply
)

var kindNames = map[Kind]string{
	KindHello:                 "HELLO",
	KindError:                 "ERROR",
	KindEchoRequest:           "ECHO_REQUEST",
	KindEchoReply:             "ECHO_REPLY",
	KindExperimenter:          "EXPERIMENTER",
	KindFeaturesRequest:       "FEATURES_REQUEST",
	KindFeaturesReply:         "FEATURES_REPLY",
	KindGetConfigRequest:      "GET_CONFIG_REQUEST",
	KindGetConfigReply:        "GET_CONFIG_REPLY",
	KindSetConfig:             "SET_CONFIG",
	KindPacketIn:              "PACKET_IN",
	KindPacketOut:             "PACKET_OUT",
	KindFlowMod:               "FLOW_MOD",
	KindBarrierRequest:        "BARRIER_REQUEST",
	KindBarrierReply:          "BARRIER_REPLY",
	KindQueueGetConfigRequest: "QUEUE_GET_CONFIG_REQUEST",
	KindQueueGetConfigReply:   "QUEUE_GET_CONFIG_REPLY",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KIND(%d)", int(k))
}

// Message is implemented by every message variant.
type Message interface {
	Hdr() *Header
	Kind() Kind
}
