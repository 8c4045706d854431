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
	"bytes"
	"testing"

	"github.com/k-vswitch/ofcodec/openflow"
)

func Test_AddFlow(t *testing.T) {
	flows := []*Flow{
		NewFlow().WithPriority(10).WithAction("output:1"),
		NewFlow().WithPriority(10).WithProtocol("ip").WithMatch("nw_dst", "10.0.0.1").WithAction("goto_table:10"),
		NewFlow().WithTable(20).WithPriority(5).WithProtocol("arp").WithMatch("arp_tpa", "10.0.0.2").WithAction("output:5"),
	}

	expectedBufferString := `table=0 priority=10 actions=output:1
table=0 priority=10 ip nw_dst=10.0.0.1 actions=goto_table:10
table=20 priority=5 arp arp_tpa=10.0.0.2 actions=output:5
`

	flowsBuffer := NewFlowsBuffer()
	for _, flow := range flows {
		flowsBuffer.AddFlow(flow)
	}

	actualBufferString := flowsBuffer.String()
	if actualBufferString != expectedBufferString {
		t.Logf("actual buffer string: %q", actualBufferString)
		t.Logf("expected buffer string: %q", expectedBufferString)
		t.Errorf("unexpected buffer string")
	}

	var out bytes.Buffer
	if _, err := flowsBuffer.WriteTo(&out); err != nil {
		t.Fatalf("error writing flows: %v", err)
	}
	if out.String() != expectedBufferString {
		t.Errorf("unexpected written flows: %q", out.String())
	}
	if flowsBuffer.String() != "" {
		t.Errorf("buffer not drained after WriteTo")
	}
}

func Test_AddMessage(t *testing.T) {
	flowsBuffer := NewFlowsBuffer()

	if flowsBuffer.AddMessage(&openflow.BarrierReply{}) {
		t.Errorf("barrier reply should not render as a flow")
	}
	if !flowsBuffer.AddMessage(&openflow.FlowMod{TableID: 1, Priority: 2}) {
		t.Errorf("flow mod should render as a flow")
	}
	if got := flowsBuffer.String(); got != "table=1 priority=2 actions=drop\n" {
		t.Errorf("unexpected buffer string: %q", got)
	}
}
