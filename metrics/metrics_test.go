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

package metrics

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k-vswitch/ofcodec/buffer"
	"github.com/k-vswitch/ofcodec/openflow"
)

func Test_CollectorCountsDecodedMessages(t *testing.T) {
	c := NewCollector()
	h := openflow.Header{Version: openflow.Version13, Type: 0, Length: 8}

	c.Decoded(h, openflow.KindHello, 0)
	c.Decoded(h, openflow.KindHello, 0)
	c.Decoded(h, openflow.KindEchoRequest, 4)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.decoded.WithLabelValues("OpenFlow 1.3", "HELLO")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.decoded.WithLabelValues("OpenFlow 1.3", "ECHO_REQUEST")))
	assert.Equal(t, 4.0, testutil.ToFloat64(c.skipped.WithLabelValues("OpenFlow 1.3", "ECHO_REQUEST")))
	assert.Equal(t, 0, testutil.CollectAndCount(c.failures))
}

func Test_CollectorCountsFailures(t *testing.T) {
	c := NewCollector()
	h := openflow.Header{Version: openflow.Version10, Type: 99, Length: 8}

	c.Failed(h, &openflow.UnknownTypeError{Version: openflow.Version10, Type: 99})
	c.Failed(h, openflow.WrapStructure("queue", &buffer.UnderflowError{Need: 4}))

	assert.Equal(t, 1.0, testutil.ToFloat64(c.failures.WithLabelValues("OpenFlow 1.0", "unknown_type")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.failures.WithLabelValues("OpenFlow 1.0", "underflow")))
}

func Test_CollectorRegisters(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	c := NewCollector()
	require.NoError(t, reg.Register(c))

	c.Decoded(openflow.Header{Version: openflow.Version13}, openflow.KindBarrierReply, 0)
	count, err := testutil.GatherAndCount(reg, "ofcodec_decoder_messages_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func Test_Reason(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&openflow.TruncatedListError{List: "queues"}, "truncated_list"},
		{openflow.WrapStructure("hello", &openflow.InvalidLengthError{Structure: "hello element"}), "invalid_length"},
		{&openflow.UnknownValueError{Field: "error type", Value: 77}, "unknown_value"},
		{fmt.Errorf("boom"), "other"},
	}
	for _, test := range tests {
		if got := Reason(test.err); got != test.want {
			t.Errorf("Reason(%v) = %q, want %q", test.err, got, test.want)
		}
	}
}
