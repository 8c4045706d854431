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
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k-vswitch/ofcodec/codec"
	"github.com/k-vswitch/ofcodec/openflow"
)

const (
	// 1.3 HELLO with a version bitmap for 1.0 and 1.3
	helloHex = "04 00 00 10 00 00 00 01 00 01 00 08 00 00 00 12"
	// 1.3 ECHO_REQUEST carrying two bytes
	echoHex = "04 02 00 0a 00 00 00 02 ab cd"
)

func runDecode(t *testing.T, input string, args ...string) string {
	t.Helper()
	opts := &options{}
	cmd := decodeCmd(opts)
	cmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "", "")

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func Test_DecodeHexSummary(t *testing.T) {
	for _, chunk := range []string{"1", "3", "4096"} {
		out := runDecode(t, helloHex+"\n"+echoHex, "--hex", "--chunk", chunk)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 2, "chunk %s", chunk)
		assert.Equal(t, "OpenFlow 1.3 HELLO xid=1 len=16 versions=[OpenFlow 1.0,OpenFlow 1.3]", lines[0])
		assert.Equal(t, "OpenFlow 1.3 ECHO_REQUEST xid=2 len=10", lines[1])
	}
}

func Test_DecodeFlowsFormat(t *testing.T) {
	f := codec.NewFactory()
	data, err := f.Encode(&openflow.FlowMod{
		Header:   openflow.Header{Version: openflow.Version13, Xid: 7},
		TableID:  10,
		Priority: 100,
		Match:    openflow.NewMatch(openflow.NewOxmInPort(2)),
		Instructions: []openflow.Instruction{
			openflow.ApplyActions(openflow.ActionOutput{Port: 1}),
		},
	})
	require.NoError(t, err)

	out := runDecode(t, string(data), "--format", "flows")
	assert.Equal(t, "table=10 priority=100 in_port=2 actions=output:1\n", out)
}

func Test_SummaryOfError(t *testing.T) {
	f := codec.NewFactory()
	hello, err := f.Encode(&openflow.Hello{Header: openflow.Header{Version: openflow.Version13, Xid: 9}})
	require.NoError(t, err)

	msg := &openflow.Error{
		Header: openflow.Header{Version: openflow.Version13, Xid: 9, Length: 20},
		Type:   openflow.ErrorTypeHelloFailed,
		Code:   openflow.HelloFailedIncompatible,
		Data:   hello,
	}
	assert.Equal(t, "OpenFlow 1.3 ERROR xid=9 len=20 type=HELLO_FAILED code=INCOMPATIBLE offending=HELLO(xid=9)", summary(msg, f))
}

func Test_RespondToEcho(t *testing.T) {
	req := &openflow.EchoRequest{Header: openflow.Header{Version: openflow.Version13, Xid: 4}, Data: []byte{1}}

	reply, ok := respond(req, true).(*openflow.EchoReply)
	require.True(t, ok)
	assert.Equal(t, uint32(4), reply.Xid)
	assert.Equal(t, []byte{1}, reply.Data)

	assert.Nil(t, respond(req, false))
	assert.Nil(t, respond(&openflow.BarrierReply{}, true))
}

func Test_DecodeNamesLearnedPorts(t *testing.T) {
	f := codec.NewFactory()
	var stream []byte
	for _, msg := range []openflow.Message{
		&openflow.FeaturesReply{
			Header:     openflow.Header{Version: openflow.Version10, Xid: 1},
			DatapathID: 1,
			Ports:      []openflow.Port{{PortNo: 3, Name: "veth3"}},
		},
		&openflow.PacketIn{
			Header:   openflow.Header{Version: openflow.Version10, Xid: 2},
			BufferID: openflow.NoBuffer,
			InPort:   3,
		},
	} {
		data, err := f.Encode(msg)
		require.NoError(t, err)
		stream = append(stream, data...)
	}

	out := runDecode(t, string(stream))
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "OpenFlow 1.0 FEATURES_REPLY xid=1 len=80 dpid=0000000000000001 tables=0 buffers=0 ports=1", lines[0])
	assert.Equal(t, "OpenFlow 1.0 PACKET_IN xid=2 len=18 buffer=0xffffffff in_port=3 reason=0 in_port_name=veth3", lines[1])
}

func Test_FlagNormalization(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetNormalizeFunc(wordSepNormalizeFunc)
	dir := fs.String("log_dir", "", "")

	require.NoError(t, fs.Parse([]string{"--log-dir", "/tmp/ofdump"}))
	assert.Equal(t, "/tmp/ofdump", *dir)
	assert.NotNil(t, fs.Lookup("log_dir"))
}
