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

// Package of13 implements the OpenFlow 1.3 structure codecs.
package of13

import (
	"fmt"

	"github.com/Kmotiko/gofc/ofprotocol/ofp13"

	"github.com/k-vswitch/ofcodec/openflow"
)

// Register adds the 1.3 codecs to b.
func Register(b *openflow.RegistryBuilder) {
	v := openflow.Version13
	b.Register(v, ofp13.OFPT_HELLO, openflow.KindHello, decodeHello, encodeHello)
	b.Register(v, ofp13.OFPT_ERROR, openflow.KindError, decodeError, encodeError)
	b.Register(v, ofp13.OFPT_ECHO_REQUEST, openflow.KindEchoRequest, decodeEchoRequest, encodeEchoRequest)
	b.Register(v, ofp13.OFPT_ECHO_REPLY, openflow.KindEchoReply, decodeEchoReply, encodeEchoReply)
	b.Register(v, ofp13.OFPT_EXPERIMENTER, openflow.KindExperimenter, decodeExperimenter, encodeExperimenter)
	b.Register(v, ofp13.OFPT_FEATURES_REQUEST, openflow.KindFeaturesRequest, decodeFeaturesRequest, encodeEmpty)
	b.Register(v, ofp13.OFPT_FEATURES_REPLY, openflow.KindFeaturesReply, decodeFeaturesReply, encodeFeaturesReply)
	b.Register(v, ofp13.OFPT_GET_CONFIG_REQUEST, openflow.KindGetConfigRequest, decodeGetConfigRequest, encodeEmpty)
	b.Register(v, ofp13.OFPT_GET_CONFIG_REPLY, openflow.KindGetConfigReply, decodeGetConfigReply, encodeSwitchConfig)
	b.Register(v, ofp13.OFPT_SET_CONFIG, openflow.KindSetConfig, decodeSetConfig, encodeSwitchConfig)
	b.Register(v, ofp13.OFPT_PACKET_IN, openflow.KindPacketIn, decodePacketIn, encodePacketIn)
	b.Register(v, ofp13.OFPT_PACKET_OUT, openflow.KindPacketOut, decodePacketOut, encodePacketOut)
	b.Register(v, ofp13.OFPT_FLOW_MOD, openflow.KindFlowMod, decodeFlowMod, encodeFlowMod)
	b.Register(v, ofp13.OFPT_BARRIER_REQUEST, openflow.KindBarrierRequest, decodeBarrierRequest, encodeEmpty)
	b.Register(v, ofp13.OFPT_BARRIER_REPLY, openflow.KindBarrierReply, decodeBarrierReply, encodeEmpty)
	b.Register(v, ofp13.OFPT_QUEUE_GET_CONFIG_REQUEST, openflow.KindQueueGetConfigRequest, decodeQueueGetConfigRequest, encodeQueueGetConfigRequest)
	b.Register(v, ofp13.OFPT_QUEUE_GET_CONFIG_REPLY, openflow.KindQueueGetConfigReply, decodeQueueGetConfigReply, encodeQueueGetConfigReply)
}

func unexpected(m openflow.Message, want string) error {
	return fmt.Errorf("of13: expected %s, got %T", want, m)
}

func align8(n int) int {
	return (n + 7) &^ 7
}
