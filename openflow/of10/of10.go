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

// Package of10 implements the OpenFlow 1.0 structure codecs.
package of10

import (
	"fmt"

	"github.com/k-vswitch/ofcodec/openflow"
)

// Message type codes.
const (
	OFPT_HELLO                    = 0
	OFPT_ERROR                    = 1
	OFPT_ECHO_REQUEST             = 2
	OFPT_ECHO_REPLY               = 3
	OFPT_VENDOR                   = 4
	OFPT_FEATURES_REQUEST         = 5
	OFPT_FEATURES_REPLY           = 6
	OFPT_GET_CONFIG_REQUEST       = 7
	OFPT_GET_CONFIG_REPLY         = 8
	OFPT_SET_CONFIG               = 9
	OFPT_PACKET_IN                = 10
	OFPT_PACKET_OUT               = 13
	OFPT_BARRIER_REQUEST          = 18
	OFPT_BARRIER_REPLY            = 19
	OFPT_QUEUE_GET_CONFIG_REQUEST = 20
	OFPT_QUEUE_GET_CONFIG_REPLY   = 21
)

// Register adds the 1.0 codecs to b. FLOW_MOD has no 1.0 codec.
func Register(b *openflow.RegistryBuilder) {
	v := openflow.Version10
	b.Register(v, OFPT_HELLO, openflow.KindHello, decodeHello, encodeEmpty)
	b.Register(v, OFPT_ERROR, openflow.KindError, decodeError, encodeError)
	b.Register(v, OFPT_ECHO_REQUEST, openflow.KindEchoRequest, decodeEchoRequest, encodeEchoRequest)
	b.Register(v, OFPT_ECHO_REPLY, openflow.KindEchoReply, decodeEchoReply, encodeEchoReply)
	b.Register(v, OFPT_VENDOR, openflow.KindExperimenter, decodeVendor, encodeVendor)
	b.Register(v, OFPT_FEATURES_REQUEST, openflow.KindFeaturesRequest, decodeFeaturesRequest, encodeEmpty)
	b.Register(v, OFPT_FEATURES_REPLY, openflow.KindFeaturesReply, decodeFeaturesReply, encodeFeaturesReply)
	b.Register(v, OFPT_GET_CONFIG_REQUEST, openflow.KindGetConfigRequest, decodeGetConfigRequest, encodeEmpty)
	b.Register(v, OFPT_GET_CONFIG_REPLY, openflow.KindGetConfigReply, decodeGetConfigReply, encodeSwitchConfig)
	b.Register(v, OFPT_SET_CONFIG, openflow.KindSetConfig, decodeSetConfig, encodeSwitchConfig)
	b.Register(v, OFPT_PACKET_IN, openflow.KindPacketIn, decodePacketIn, encodePacketIn)
	b.Register(v, OFPT_PACKET_OUT, openflow.KindPacketOut, decodePacketOut, encodePacketOut)
	b.Register(v, OFPT_BARRIER_REQUEST, openflow.KindBarrierRequest, decodeBarrierRequest, encodeEmpty)
	b.Register(v, OFPT_BARRIER_REPLY, openflow.KindBarrierReply, decodeBarrierReply, encodeEmpty)
	b.Register(v, OFPT_QUEUE_GET_CONFIG_REQUEST, openflow.KindQueueGetConfigRequest, decodeQueueGetConfigRequest, encodeQueueGetConfigRequest)
	b.Register(v, OFPT_QUEUE_GET_CONFIG_REPLY, openflow.KindQueueGetConfigReply, decodeQueueGetConfigReply, encodeQueueGetConfigReply)
}

// OFPP_MAX is the last physical port number; reserved ports follow it.
const OFPP_MAX = 0xff00

// PortFromWire widens a 1.0 port number to the 32-bit numbering used by
// the message types.
func PortFromWire(port uint16) uint32 {
	if port >= OFPP_MAX {
		return 0xffff0000 | uint32(port)
	}
	return uint32(port)
}

// PortToWire narrows a port number to 16 bits. Ports that exist neither
// as 1.0 physical ports nor as reserved ports fail.
func PortToWire(port uint32) (uint16, error) {
	switch {
	case port >= openflow.PortMax:
		return uint16(port), nil
	case port < OFPP_MAX:
		return uint16(port), nil
	}
	return 0, &openflow.UnknownValueError{Field: "port", Value: port}
}

func unexpected(m openflow.Message, want string) error {
	return fmt.Errorf("of10: expected %s, got %T", want, m)
}
