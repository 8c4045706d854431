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

import (
	"encoding/binary"
	"net"

	"github.com/google/gopacket/layers"
)

// MatchTypeOXM is the only match type defined by OpenFlow 1.3.
const MatchTypeOXM uint16 = 1

const (
	OxmClassOpenflowBasic uint16 = 0x8000
	OxmClassExperimenter  uint16 = 0xffff
)

// OpenFlow basic OXM field codes.
const (
	OxmFieldInPort    uint8 = 0
	OxmFieldInPhyPort uint8 = 1
	OxmFieldMetadata  uint8 = 2
	OxmFieldEthDst    uint8 = 3
	OxmFieldEthSrc    uint8 = 4
	OxmFieldEthType   uint8 = 5
	OxmFieldVlanVid   uint8 = 6
	OxmFieldVlanPcp   uint8 = 7
	OxmFieldIPDscp    uint8 = 8
	OxmFieldIPEcn     uint8 = 9
	OxmFieldIPProto   uint8 = 10
	OxmFieldIPv4Src   uint8 = 11
	OxmFieldIPv4Dst   uint8 = 12
	OxmFieldTCPSrc    uint8 = 13
	OxmFieldTCPDst    uint8 = 14
	OxmFieldUDPSrc    uint8 = 15
	OxmFieldUDPDst    uint8 = 16
	OxmFieldArpOp     uint8 = 21
	OxmFieldArpSpa    uint8 = 22
	OxmFieldArpTpa    uint8 = 23
	OxmFieldArpSha    uint8 = 24
	OxmFieldArpTha    uint8 = 25
	OxmFieldTunnelID  uint8 = 38
)

// Match is the OXM match of OpenFlow 1.3. Fields keep wire order.
type Match struct {
	Type   uint16
	Fields []OxmField
}

// NewMatch returns an OXM match holding fields.
func NewMatch(fields ...OxmField) Match {
	return Match{Type: MatchTypeOXM, Fields: fields}
}

// Field returns the first field with the given basic class code.
func (m Match) Field(field uint8) (OxmField, bool) {
	for _, f := range m.Fields {
		if f.Class == OxmClassOpenflowBasic && f.Field == field {
			return f, true
		}
	}
	return OxmField{}, false
}

// OxmField is one type-length-value match entry. Mask is only present
// when HasMask is set and has the length of Value.
type OxmField struct {
	Class   uint16
	Field   uint8
	HasMask bool
	Value   []byte
	Mask    []byte
}

func basic(field uint8, value []byte) OxmField {
	return OxmField{Class: OxmClassOpenflowBasic, Field: field, Value: value}
}

func u16(v uint16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, v)
	return b
}

func u32(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

func u64(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

func ipv4(ip net.IP) []byte {
	v := make([]byte, 4)
	copy(v, ip.To4())
	return v
}

func mac(addr net.HardwareAddr) []byte {
	v := make([]byte, 6)
	copy(v, addr)
	return v
}

func NewOxmInPort(port uint32) OxmField {
	return basic(OxmFieldInPort, u32(port))
}

func NewOxmMetadata(metadata uint64) OxmField {
	return basic(OxmFieldMetadata, u64(metadata))
}

func NewOxmEthType(ethType layers.EthernetType) OxmField {
	return basic(OxmFieldEthType, u16(uint16(ethType)))
}

func NewOxmEthDst(addr net.HardwareAddr) OxmField {
	return basic(OxmFieldEthDst, mac(addr))
}

func NewOxmEthSrc(addr net.HardwareAddr) OxmField {
	return basic(OxmFieldEthSrc, mac(addr))
}

func NewOxmVlanVid(vid uint16) OxmField {
	return basic(OxmFieldVlanVid, u16(vid))
}

func NewOxmIPProto(proto layers.IPProtocol) OxmField {
	return basic(OxmFieldIPProto, []byte{uint8(proto)})
}

func NewOxmIPv4Src(ip net.IP) OxmField {
	return basic(OxmFieldIPv4Src, ipv4(ip))
}

func NewOxmIPv4Dst(ip net.IP) OxmField {
	return basic(OxmFieldIPv4Dst, ipv4(ip))
}

// NewOxmIPv4DstMasked matches destinations inside network.
func NewOxmIPv4DstMasked(network *net.IPNet) OxmField {
	f := basic(OxmFieldIPv4Dst, ipv4(network.IP))
	f.HasMask = true
	f.Mask = ipv4(net.IP(network.Mask))
	return f
}

func NewOxmTCPDst(port uint16) OxmField {
	return basic(OxmFieldTCPDst, u16(port))
}

func NewOxmUDPDst(port uint16) OxmField {
	return basic(OxmFieldUDPDst, u16(port))
}

func NewOxmArpSpa(ip net.IP) OxmField {
	return basic(OxmFieldArpSpa, ipv4(ip))
}

func NewOxmArpTpa(ip net.IP) OxmField {
	return basic(OxmFieldArpTpa, ipv4(ip))
}

func NewOxmTunnelID(id uint64) OxmField {
	return basic(OxmFieldTunnelID, u64(id))
}

// Uint returns Value as a big-endian unsigned integer. Values wider than
// 8 bytes are truncated to their low 8 bytes.
func (f OxmField) Uint() uint64 {
	value := f.Value
	if len(value) > 8 {
		value = value[len(value)-8:]
	}
	var v uint64
	for _, b := range value {
		v = v<<8 | uint64(b)
	}
	return v
}

// IP returns Value as an address for 4 and 16 byte fields.
func (f OxmField) IP() net.IP {
	if len(f.Value) != net.IPv4len && len(f.Value) != net.IPv6len {
		return nil
	}
	return net.IP(f.Value)
}

// HardwareAddr returns Value as a MAC address for 6 byte fields.
func (f OxmField) HardwareAddr() net.HardwareAddr {
	if len(f.Value) != 6 {
		return nil
	}
	return net.HardwareAddr(f.Value)
}
