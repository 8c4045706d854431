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

package flows

import (
	"fmt"
	"net"
	"strings"

	"github.com/google/gopacket/layers"

	"github.com/k-vswitch/ofcodec/openflow"
)

// Flow is one ovs-ofctl flow line. Matches and actions render in the
// order they were added.
type Flow struct {
	command     openflow.FlowModCommand
	table       int
	priority    int
	cookie      uint64
	idleTimeout int
	hardTimeout int

	protocol string
	matches  []string
	actions  []string
}

func NewFlow() *Flow {
	return &Flow{}
}

var commandNames = map[openflow.FlowModCommand]string{
	openflow.FlowModify:       "modify",
	openflow.FlowModifyStrict: "modify_strict",
	openflow.FlowDelete:       "delete",
	openflow.FlowDeleteStrict: "delete_strict",
}

func (f *Flow) String() string {
	flow := fmt.Sprintf("table=%d priority=%d", f.table, f.priority)
	if name, ok := commandNames[f.command]; ok {
		flow = fmt.Sprintf("%s %s", name, flow)
	}

	if f.cookie != 0 {
		flow = fmt.Sprintf("%s cookie=0x%x", flow, f.cookie)
	}

	if f.idleTimeout != 0 {
		flow = fmt.Sprintf("%s idle_timeout=%d", flow, f.idleTimeout)
	}

	if f.hardTimeout != 0 {
		flow = fmt.Sprintf("%s hard_timeout=%d", flow, f.hardTimeout)
	}

	if f.protocol != "" {
		flow = fmt.Sprintf("%s %s", flow, f.protocol)
	}

	for _, match := range f.matches {
		flow = fmt.Sprintf("%s %s", flow, match)
	}

	// delete commands carry no actions
	if f.command == openflow.FlowDelete || f.command == openflow.FlowDeleteStrict {
		return flow
	}

	actionSet := f.actions
	if len(actionSet) == 0 {
		actionSet = []string{"drop"}
	}
	return fmt.Sprintf("%s actions=%s", flow, strings.Join(actionSet, ","))
}

func (f *Flow) WithCommand(command openflow.FlowModCommand) *Flow {
	f.command = command
	return f
}

func (f *Flow) WithTable(table int) *Flow {
	f.table = table
	return f
}

func (f *Flow) WithPriority(priority int) *Flow {
	f.priority = priority
	return f
}

func (f *Flow) WithCookie(cookie uint64) *Flow {
	f.cookie = cookie
	return f
}

func (f *Flow) WithTimeouts(idle, hard int) *Flow {
	f.idleTimeout = idle
	f.hardTimeout = hard
	return f
}

func (f *Flow) WithProtocol(protocol string) *Flow {
	f.protocol = protocol
	return f
}

func (f *Flow) WithMatch(field, value string) *Flow {
	f.matches = append(f.matches, fmt.Sprintf("%s=%s", field, value))
	return f
}

func (f *Flow) WithAction(action string) *Flow {
	f.actions = append(f.actions, action)
	return f
}

// FromFlowMod renders a decoded FLOW_MOD.
func FromFlowMod(fm *openflow.FlowMod) *Flow {
	flow := NewFlow().
		WithCommand(fm.Command).
		WithTable(int(fm.TableID)).
		WithPriority(int(fm.Priority)).
		WithCookie(fm.Cookie).
		WithTimeouts(int(fm.IdleTimeout), int(fm.HardTimeout))

	addMatch(flow, fm.Match)
	for _, inst := range fm.Instructions {
		addInstruction(flow, inst)
	}
	return flow
}

func protocolName(m openflow.Match) (string, bool) {
	ethType, ok := m.Field(openflow.OxmFieldEthType)
	if !ok {
		return "", false
	}
	switch layers.EthernetType(ethType.Uint()) {
	case layers.EthernetTypeARP:
		return "arp", false
	case layers.EthernetTypeIPv6:
		return "ipv6", false
	case layers.EthernetTypeIPv4:
		proto, ok := m.Field(openflow.OxmFieldIPProto)
		if !ok {
			return "ip", false
		}
		switch layers.IPProtocol(proto.Uint()) {
		case layers.IPProtocolTCP:
			return "tcp", true
		case layers.IPProtocolUDP:
			return "udp", true
		case layers.IPProtocolICMPv4:
			return "icmp", true
		}
		return "ip", false
	}
	return fmt.Sprintf("dl_type=0x%04x", ethType.Uint()), false
}

func addMatch(flow *Flow, m openflow.Match) {
	protocol, protoConsumed := protocolName(m)
	flow.WithProtocol(protocol)

	for _, field := range m.Fields {
		if field.Class != openflow.OxmClassOpenflowBasic {
			flow.WithMatch(fmt.Sprintf("oxm(0x%04x:%d)", field.Class, field.Field), fmt.Sprintf("0x%x", field.Value))
			continue
		}
		switch field.Field {
		case openflow.OxmFieldEthType:
		case openflow.OxmFieldIPProto:
			if !protoConsumed {
				flow.WithMatch("nw_proto", fmt.Sprintf("%d", field.Uint()))
			}
		case openflow.OxmFieldInPort:
			flow.WithMatch("in_port", portName(uint32(field.Uint())))
		case openflow.OxmFieldMetadata:
			flow.WithMatch("metadata", maskedHex(field))
		case openflow.OxmFieldEthDst:
			flow.WithMatch("dl_dst", field.HardwareAddr().String())
		case openflow.OxmFieldEthSrc:
			flow.WithMatch("dl_src", field.HardwareAddr().String())
		case openflow.OxmFieldVlanVid:
			flow.WithMatch("dl_vlan", fmt.Sprintf("%d", field.Uint()&0x0fff))
		case openflow.OxmFieldIPv4Src:
			flow.WithMatch("nw_src", maskedIP(field))
		case openflow.OxmFieldIPv4Dst:
			flow.WithMatch("nw_dst", maskedIP(field))
		case openflow.OxmFieldTCPSrc:
			flow.WithMatch("tcp_src", fmt.Sprintf("%d", field.Uint()))
		case openflow.OxmFieldTCPDst:
			flow.WithMatch("tcp_dst", fmt.Sprintf("%d", field.Uint()))
		case openflow.OxmFieldUDPSrc:
			flow.WithMatch("udp_src", fmt.Sprintf("%d", field.Uint()))
		case openflow.OxmFieldUDPDst:
			flow.WithMatch("udp_dst", fmt.Sprintf("%d", field.Uint()))
		case openflow.OxmFieldArpOp:
			flow.WithMatch("arp_op", fmt.Sprintf("%d", field.Uint()))
		case openflow.OxmFieldArpSpa:
			flow.WithMatch("arp_spa", maskedIP(field))
		case openflow.OxmFieldArpTpa:
			flow.WithMatch("arp_tpa", maskedIP(field))
		case openflow.OxmFieldTunnelID:
			flow.WithMatch("tun_id", maskedHex(field))
		default:
			flow.WithMatch(fmt.Sprintf("oxm(%d)", field.Field), maskedHex(field))
		}
	}
}

func maskedIP(field openflow.OxmField) string {
	ip := field.IP()
	if ip == nil {
		return fmt.Sprintf("0x%x", field.Value)
	}
	if !field.HasMask {
		return ip.String()
	}
	if ones, bits := net.IPMask(field.Mask).Size(); bits != 0 {
		return fmt.Sprintf("%s/%d", ip, ones)
	}
	return fmt.Sprintf("%s/%s", ip, net.IP(field.Mask))
}

func maskedHex(field openflow.OxmField) string {
	if field.HasMask {
		return fmt.Sprintf("0x%x/0x%x", field.Uint(), openflow.OxmField{Value: field.Mask}.Uint())
	}
	return fmt.Sprintf("0x%x", field.Uint())
}

var reservedPorts = map[uint32]string{
	openflow.PortInPort:     "in_port",
	openflow.PortTable:      "table",
	openflow.PortNormal:     "normal",
	openflow.PortFlood:      "flood",
	openflow.PortAll:        "all",
	openflow.PortController: "controller",
	openflow.PortLocal:      "local",
	openflow.PortAny:        "any",
}

func portName(port uint32) string {
	if name, ok := reservedPorts[port]; ok {
		return name
	}
	return fmt.Sprintf("%d", port)
}

func addInstruction(flow *Flow, inst openflow.Instruction) {
	switch i := inst.(type) {
	case openflow.InstructionActions:
		switch i.Type {
		case openflow.InstructionApplyActionsType:
			for _, action := range i.Actions {
				flow.WithAction(actionString(action))
			}
		case openflow.InstructionWriteActionsType:
			var actions []string
			for _, action := range i.Actions {
				actions = append(actions, actionString(action))
			}
			flow.WithAction(fmt.Sprintf("write_actions(%s)", strings.Join(actions, ",")))
		case openflow.InstructionClearActionsType:
			flow.WithAction("clear_actions")
		}
	case openflow.InstructionGotoTable:
		flow.WithAction(fmt.Sprintf("goto_table:%d", i.TableID))
	case openflow.InstructionWriteMetadata:
		flow.WithAction(fmt.Sprintf("write_metadata:0x%x/0x%x", i.Metadata, i.MetadataMask))
	case openflow.InstructionMeter:
		flow.WithAction(fmt.Sprintf("meter:%d", i.MeterID))
	case openflow.InstructionExperimenter:
		flow.WithAction(fmt.Sprintf("experimenter(0x%08x)", i.Experimenter))
	}
}

var setFieldNames = map[uint8]string{
	openflow.OxmFieldEthDst:   "eth_dst",
	openflow.OxmFieldEthSrc:   "eth_src",
	openflow.OxmFieldIPv4Src:  "ip_src",
	openflow.OxmFieldIPv4Dst:  "ip_dst",
	openflow.OxmFieldTunnelID: "tun_id",
	openflow.OxmFieldMetadata: "metadata",
	openflow.OxmFieldVlanVid:  "vlan_vid",
	openflow.OxmFieldArpOp:    "arp_op",
	openflow.OxmFieldArpSpa:   "arp_spa",
	openflow.OxmFieldArpTpa:   "arp_tpa",
}

func actionString(action openflow.Action) string {
	switch a := action.(type) {
	case openflow.ActionOutput:
		if a.Port == openflow.PortController {
			return fmt.Sprintf("CONTROLLER:%d", a.MaxLen)
		}
		if name, ok := reservedPorts[a.Port]; ok {
			return name
		}
		return fmt.Sprintf("output:%d", a.Port)
	case openflow.ActionEnqueue:
		return fmt.Sprintf("enqueue:%s:%d", portName(a.Port), a.QueueID)
	case openflow.ActionSetQueue:
		return fmt.Sprintf("set_queue:%d", a.QueueID)
	case openflow.ActionGroup:
		return fmt.Sprintf("group:%d", a.GroupID)
	case openflow.ActionPushVlan:
		return fmt.Sprintf("push_vlan:0x%04x", uint16(a.EtherType))
	case openflow.ActionPopVlan:
		return "pop_vlan"
	case openflow.ActionDecNwTtl:
		return "dec_ttl"
	case openflow.ActionSetField:
		return setFieldString(a.Field)
	case openflow.ActionExperimenter:
		return fmt.Sprintf("experimenter(0x%08x)", a.Experimenter)
	}
	return fmt.Sprintf("%T", action)
}

func setFieldString(field openflow.OxmField) string {
	name, ok := setFieldNames[field.Field]
	if !ok || field.Class != openflow.OxmClassOpenflowBasic {
		return fmt.Sprintf("set_field:0x%x->oxm(0x%04x:%d)", field.Value, field.Class, field.Field)
	}
	var value string
	switch {
	case field.HardwareAddr() != nil:
		value = field.HardwareAddr().String()
	case field.IP() != nil:
		value = field.IP().String()
	default:
		value = fmt.Sprintf("0x%x", field.Uint())
	}
	return fmt.Sprintf("set_field:%s->%s", value, name)
}
