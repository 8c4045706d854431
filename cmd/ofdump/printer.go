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

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"k8s.io/klog"

	"github.com/k-vswitch/ofcodec/config"
	"github.com/k-vswitch/ofcodec/flows"
	"github.com/k-vswitch/ofcodec/openflow"
	"github.com/k-vswitch/ofcodec/ports"
)

type printer struct {
	out     io.Writer
	format  string
	factory *openflow.Factory
	flows   *flows.FlowsBuffer
	dumper  *spew.ConfigState
	ports   *ports.Cache
}

func newPrinter(out io.Writer, format string, factory *openflow.Factory) *printer {
	return &printer{
		out:     out,
		format:  format,
		factory: factory,
		flows:   flows.NewFlowsBuffer(),
		dumper:  &spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true, SortKeys: true},
		ports:   ports.NewCache(),
	}
}

func (p *printer) print(msg openflow.Message) {
	if reply, ok := msg.(*openflow.FeaturesReply); ok {
		p.ports.Learn(reply)
	}

	switch p.format {
	case config.FormatSpew:
		p.dumper.Fdump(p.out, msg)
	case config.FormatFlows:
		p.flows.AddMessage(msg)
	default:
		line := summary(msg, p.factory)
		if packetIn, ok := msg.(*openflow.PacketIn); ok {
			if port, exists := p.ports.Get(packetIn.InPort); exists {
				line = fmt.Sprintf("%s in_port_name=%s", line, port.Name)
			}
		}
		fmt.Fprintln(p.out, line)
	}
}

func (p *printer) flush() {
	if _, err := p.flows.WriteTo(p.out); err != nil {
		klog.Errorf("%v", err)
	}
}

// summary renders msg on one line.
func summary(msg openflow.Message, factory *openflow.Factory) string {
	h := msg.Hdr()
	line := fmt.Sprintf("%s %s xid=%d len=%d", h.Version, msg.Kind(), h.Xid, h.Length)

	switch m := msg.(type) {
	case *openflow.Hello:
		var versions []string
		for _, v := range []openflow.Version{openflow.Version10, openflow.Version13} {
			if m.SupportsVersion(v) {
				versions = append(versions, v.String())
			}
		}
		line = fmt.Sprintf("%s versions=[%s]", line, strings.Join(versions, ","))
	case *openflow.Error:
		line = fmt.Sprintf("%s type=%s code=%s", line, m.Type, m.CodeName())
		offending, err := m.Offending(factory)
		switch {
		case err != nil:
			line = fmt.Sprintf("%s data=%d bytes", line, len(m.Data))
		case offending != nil:
			line = fmt.Sprintf("%s offending=%s(xid=%d)", line, offending.Kind(), offending.Hdr().Xid)
		}
	case *openflow.FeaturesReply:
		line = fmt.Sprintf("%s dpid=%016x tables=%d buffers=%d ports=%d", line, m.DatapathID, m.NTables, m.NBuffers, len(m.Ports))
	case *openflow.PacketIn:
		line = fmt.Sprintf("%s buffer=0x%x in_port=%d reason=%d", line, m.BufferID, m.InPort, m.Reason)
		if pkt := m.Packet(); pkt != nil {
			var names []string
			for _, layer := range pkt.Layers() {
				names = append(names, layer.LayerType().String())
			}
			line = fmt.Sprintf("%s packet=%s", line, strings.Join(names, "/"))
		}
	case *openflow.PacketOut:
		line = fmt.Sprintf("%s buffer=0x%x in_port=%d actions=%d data=%d bytes", line, m.BufferID, m.InPort, len(m.Actions), len(m.Data))
	case *openflow.FlowMod:
		line = fmt.Sprintf("%s %s", line, flows.FromFlowMod(m))
	case *openflow.QueueGetConfigReply:
		line = fmt.Sprintf("%s port=%d queues=%d", line, m.Port, len(m.Queues))
	case *openflow.Experimenter:
		line = fmt.Sprintf("%s experimenter=0x%08x exp_type=%d", line, m.Experimenter, m.ExpType)
	}
	return line
}
