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
	"testing"

	"github.com/google/gopacket/layers"

	"github.com/k-vswitch/ofcodec/openflow"
)

func Test_Flow(t *testing.T) {
	tests := []struct {
		name       string
		flow       *Flow
		flowString string
	}{
		{
			name:       "flow, no match with output port",
			flow:       NewFlow().WithPriority(100).WithAction("output:1"),
			flowString: "table=0 priority=100 actions=output:1",
		},
		{
			name:       "flow, with ipv4 match and output port",
			flow:       NewFlow().WithPriority(100).WithProtocol("ip").WithMatch("nw_dst", "10.0.0.1").WithAction("output:1"),
			flowString: "table=0 priority=100 ip nw_dst=10.0.0.1 actions=output:1",
		},
		{
			name:       "flow without actions drops",
			flow:       NewFlow().WithTable(20).WithPriority(5),
			flowString: "table=20 priority=5 actions=drop",
		},
		{
			name:       "delete renders no actions",
			flow:       NewFlow().WithCommand(openflow.FlowDelete).WithTable(10).WithAction("output:1"),
			flowString: "delete table=10 priority=0",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actualFlow := fmt.Sprintf("%s", test.flow)
			if actualFlow != test.flowString {
				t.Logf("actual flow: %q", actualFlow)
				t.Logf("expected flow: %q", test.flowString)
				t.Errorf("flow string did not match")
			}
		})
	}
}

func Test_FromFlowMod(t *testing.T) {
	_, podCIDR, _ := net.ParseCIDR("10.0.1.0/24")
	mac, _ := net.ParseMAC("aa:bb:cc:dd:ee:ff")

	tests := []struct {
		name       string
		flowMod    *openflow.FlowMod
		flowString string
	}{
		{
			name: "ipv4 match with tunneling and output port",
			flowMod: &openflow.FlowMod{
				TableID:  30,
				Priority: 100,
				Match: openflow.NewMatch(
					openflow.NewOxmEthType(layers.EthernetTypeIPv4),
					openflow.NewOxmIPv4Dst(net.ParseIP("10.0.0.1")),
				),
				Instructions: []openflow.Instruction{
					openflow.ApplyActions(
						openflow.ActionSetField{Field: openflow.NewOxmTunnelID(0x64)},
						openflow.ActionOutput{Port: 1},
					),
				},
			},
			flowString: "table=30 priority=100 ip nw_dst=10.0.0.1 actions=set_field:0x64->tun_id,output:1",
		},
		{
			name: "tcp match with masked destination and goto table",
			flowMod: &openflow.FlowMod{
				Cookie:      0x1f,
				Priority:    200,
				IdleTimeout: 60,
				Match: openflow.NewMatch(
					openflow.NewOxmEthType(layers.EthernetTypeIPv4),
					openflow.NewOxmIPProto(layers.IPProtocolTCP),
					openflow.NewOxmIPv4DstMasked(podCIDR),
					openflow.NewOxmTCPDst(8080),
				),
				Instructions: []openflow.Instruction{
					openflow.ApplyActions(openflow.ActionSetField{Field: openflow.NewOxmEthDst(mac)}),
					openflow.InstructionGotoTable{TableID: 10},
				},
			},
			flowString: "table=0 priority=200 cookie=0x1f idle_timeout=60 tcp nw_dst=10.0.1.0/24 tcp_dst=8080 actions=set_field:aa:bb:cc:dd:ee:ff->eth_dst,goto_table:10",
		},
		{
			name: "arp responder to controller",
			flowMod: &openflow.FlowMod{
				TableID:  20,
				Priority: 500,
				Match: openflow.NewMatch(
					openflow.NewOxmInPort(3),
					openflow.NewOxmEthType(layers.EthernetTypeARP),
					openflow.NewOxmArpTpa(net.ParseIP("10.0.0.2")),
				),
				Instructions: []openflow.Instruction{
					openflow.ApplyActions(openflow.ActionOutput{Port: openflow.PortController, MaxLen: openflow.ControllerMaxLenNoBuffer}),
				},
			},
			flowString: "table=20 priority=500 arp in_port=3 arp_tpa=10.0.0.2 actions=CONTROLLER:65535",
		},
		{
			name: "modify with local output",
			flowMod: &openflow.FlowMod{
				Command:  openflow.FlowModify,
				Priority: 10,
				Instructions: []openflow.Instruction{
					openflow.ApplyActions(openflow.ActionOutput{Port: openflow.PortLocal}),
				},
			},
			flowString: "modify table=0 priority=10 actions=local",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actualFlow := FromFlowMod(test.flowMod).String()
			if actualFlow != test.flowString {
				t.Logf("actual flow: %q", actualFlow)
				t.Logf("expected flow: %q", test.flowString)
				t.Errorf("flow string did not match")
			}
		})
	}
}
