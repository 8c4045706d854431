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

import "net"

// Reserved port numbers, in their 32-bit form. OpenFlow 1.0 codecs
// translate them to and from the 16-bit 0xff00 range.
const (
	PortMax        uint32 = 0xffffff00
	PortInPort     uint32 = 0xfffffff8
	PortTable      uint32 = 0xfffffff9
	PortNormal     uint32 = 0xfffffffa
	PortFlood      uint32 = 0xfffffffb
	PortAll        uint32 = 0xfffffffc
	PortController uint32 = 0xfffffffd
	PortLocal      uint32 = 0xfffffffe
	PortAny        uint32 = 0xffffffff
)

const (
	// NoBuffer marks packets that are not buffered on the switch.
	NoBuffer uint32 = 0xffffffff
	// GroupAny is the wildcard group for FLOW_MOD deletes.
	GroupAny uint32 = 0xffffffff
	// ControllerMaxLenNoBuffer asks the switch to send the full packet.
	ControllerMaxLenNoBuffer uint16 = 0xffff
)

// HelloElemVersionBitmap is the only hello element type defined by
// OpenFlow 1.3.
const HelloElemVersionBitmap uint16 = 1

// HelloElement is one TLV of a 1.3 HELLO body. Bitmaps is set for
// version bitmap elements, Data holds the body of any other type.
type HelloElement struct {
	Type    uint16
	Bitmaps []uint32
	Data    []byte
}

// VersionBitmap builds a version bitmap hello element advertising
// versions.
func VersionBitmap(versions ...Version) HelloElement {
	var bitmap uint32
	for _, v := range versions {
		bitmap |= 1 << uint(v)
	}
	return HelloElement{Type: HelloElemVersionBitmap, Bitmaps: []uint32{bitmap}}
}

type Hello struct {
	Header
	Elements []HelloElement
}

func (*Hello) Kind() Kind { return KindHello }

// SupportsVersion reports whether the version bitmap elements of h
// advertise v. A hello without bitmap only advertises its header version.
func (h *Hello) SupportsVersion(v Version) bool {
	found := false
	for _, elem := range h.Elements {
		if elem.Type != HelloElemVersionBitmap {
			continue
		}
		found = true
		word := int(v) / 32
		if word < len(elem.Bitmaps) && elem.Bitmaps[word]&(1<<(uint(v)%32)) != 0 {
			return true
		}
	}
	if !found {
		return h.Version == v
	}
	return false
}

type EchoRequest struct {
	Header
	Data []byte
}

func (*EchoRequest) Kind() Kind { return KindEchoRequest }

type EchoReply struct {
	Header
	Data []byte
}

func (*EchoReply) Kind() Kind { return KindEchoReply }

// Experimenter is the VENDOR message of 1.0 and the EXPERIMENTER message
// of 1.3. ExpType only exists on the 1.3 wire.
type Experimenter struct {
	Header
	Experimenter uint32
	ExpType      uint32
	Data         []byte
}

func (*Experimenter) Kind() Kind { return KindExperimenter }

type FeaturesRequest struct {
	Header
}

func (*FeaturesRequest) Kind() Kind { return KindFeaturesRequest }

// FeaturesReply describes a datapath. Actions and Ports are 1.0 only,
// AuxiliaryID and Reserved are 1.3 only.
type FeaturesReply struct {
	Header
	DatapathID   uint64
	NBuffers     uint32
	NTables      uint8
	AuxiliaryID  uint8
	Capabilities uint32
	Actions      uint32
	Reserved     uint32
	Ports        []Port
}

func (*FeaturesReply) Kind() Kind { return KindFeaturesReply }

// Port is the 1.0 ofp_phy_port description carried by FEATURES_REPLY.
type Port struct {
	PortNo     uint32
	HWAddr     net.HardwareAddr
	Name       string
	Config     uint32
	State      uint32
	Curr       uint32
	Advertised uint32
	Supported  uint32
	Peer       uint32
}

type GetConfigRequest struct {
	Header
}

func (*GetConfigRequest) Kind() Kind { return KindGetConfigRequest }

type GetConfigReply struct {
	Header
	Flags       uint16
	MissSendLen uint16
}

func (*GetConfigReply) Kind() Kind { return KindGetConfigReply }

type SetConfig struct {
	Header
	Flags       uint16
	MissSendLen uint16
}

func (*SetConfig) Kind() Kind { return KindSetConfig }

// PacketIn carries a packet from the switch. InPort is 1.0 only; 1.3
// reports the ingress port inside Match.
type PacketIn struct {
	Header
	BufferID uint32
	TotalLen uint16
	InPort   uint32
	Reason   uint8
	TableID  uint8
	Cookie   uint64
	Match    Match
	Data     []byte
}

func (*PacketIn) Kind() Kind { return KindPacketIn }

type PacketOut struct {
	Header
	BufferID uint32
	InPort   uint32
	Actions  []Action
	Data     []byte
}

func (*PacketOut) Kind() Kind { return KindPacketOut }

type FlowModCommand uint8

const (
	FlowAdd FlowModCommand = iota
	FlowModify
	FlowModifyStrict
	FlowDelete
	FlowDeleteStrict
)

// FlowMod is only defined for OpenFlow 1.3.
type FlowMod struct {
	Header
	Cookie       uint64
	CookieMask   uint64
	TableID      uint8
	Command      FlowModCommand
	IdleTimeout  uint16
	HardTimeout  uint16
	Priority     uint16
	BufferID     uint32
	OutPort      uint32
	OutGroup     uint32
	Flags        uint16
	Match        Match
	Instructions []Instruction
}

func (*FlowMod) Kind() Kind { return KindFlowMod }

type BarrierRequest struct {
	Header
}

func (*BarrierRequest) Kind() Kind { return KindBarrierRequest }

type BarrierReply struct {
	Header
}

func (*BarrierReply) Kind() Kind { return KindBarrierReply }

type QueueGetConfigRequest struct {
	Header
	Port uint32
}

func (*QueueGetConfigRequest) Kind() Kind { return KindQueueGetConfigRequest }

type QueueGetConfigReply struct {
	Header
	Port   uint32
	Queues []Queue
}

func (*QueueGetConfigReply) Kind() Kind { return KindQueueGetConfigReply }
