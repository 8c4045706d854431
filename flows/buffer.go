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
	"fmt"
	"io"

	"github.com/k-vswitch/ofcodec/openflow"
)

// FlowsBuffer collects flow lines in the format read by
// "ovs-ofctl add-flows".
type FlowsBuffer struct {
	buffer *bytes.Buffer
}

func NewFlowsBuffer() *FlowsBuffer {
	buffer := bytes.NewBuffer(nil)

	return &FlowsBuffer{
		buffer: buffer,
	}
}

func (f *FlowsBuffer) AddFlow(flow *Flow) {
	f.buffer.WriteString(flow.String())
	f.buffer.WriteByte('\n')
}

// AddMessage renders msg when it is a FLOW_MOD and reports whether it was.
func (f *FlowsBuffer) AddMessage(msg openflow.Message) bool {
	fm, ok := msg.(*openflow.FlowMod)
	if !ok {
		return false
	}
	f.AddFlow(FromFlowMod(fm))
	return true
}

func (f *FlowsBuffer) String() string {
	return f.buffer.String()
}

func (f *FlowsBuffer) Reset() {
	f.buffer.Reset()
}

// WriteTo flushes the buffered lines to w and resets the buffer.
func (f *FlowsBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := f.buffer.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("error writing flows: %v", err)
	}
	return n, nil
}
