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
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

// Packet decodes the Ethernet frame carried by a PACKET_IN. It returns
// nil when the message carries no data.
func (m *PacketIn) Packet() gopacket.Packet {
	return decodeFrame(m.Data)
}

// Packet decodes the Ethernet frame carried by a PACKET_OUT. It returns
// nil when the packet is referenced by buffer id only.
func (m *PacketOut) Packet() gopacket.Packet {
	return decodeFrame(m.Data)
}

func decodeFrame(data []byte) gopacket.Packet {
	if len(data) == 0 {
		return nil
	}
	return gopacket.NewPacket(data, layers.LayerTypeEthernet, gopacket.DecodeOptions{NoCopy: true, Lazy: true})
}
