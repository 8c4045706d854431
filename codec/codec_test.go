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

package codec

import (
	"errors"
	"testing"

	"github.com/Kmotiko/gofc/ofprotocol/ofp13"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k-vswitch/ofcodec/openflow"
	"github.com/k-vswitch/ofcodec/openflow/of10"
)

func Test_DefaultRegistryIsShared(t *testing.T) {
	r := DefaultRegistry()
	require.NotNil(t, r)
	assert.Same(t, r, DefaultRegistry())
	assert.Equal(t, []openflow.Version{openflow.Version10, openflow.Version13}, r.Versions())
}

func Test_DefaultRegistryResolves(t *testing.T) {
	r := DefaultRegistry()

	tests := []struct {
		version openflow.Version
		code    uint8
		kind    openflow.Kind
	}{
		{openflow.Version10, of10.OFPT_VENDOR, openflow.KindExperimenter},
		{openflow.Version10, of10.OFPT_BARRIER_REQUEST, openflow.KindBarrierRequest},
		{openflow.Version10, of10.OFPT_QUEUE_GET_CONFIG_REPLY, openflow.KindQueueGetConfigReply},
		{openflow.Version13, ofp13.OFPT_BARRIER_REQUEST, openflow.KindBarrierRequest},
		{openflow.Version13, ofp13.OFPT_FLOW_MOD, openflow.KindFlowMod},
		{openflow.Version13, ofp13.OFPT_QUEUE_GET_CONFIG_REPLY, openflow.KindQueueGetConfigReply},
	}
	for _, test := range tests {
		kind, _, err := r.ResolveDecoder(test.version, test.code)
		require.NoError(t, err)
		assert.Equal(t, test.kind, kind)

		code, _, err := r.ResolveEncoder(test.kind, test.version)
		require.NoError(t, err)
		assert.Equal(t, test.code, code)
	}
}

func Test_FlowModHasNoOpenFlow10Encoding(t *testing.T) {
	f := NewFactory()
	_, err := f.Encode(&openflow.FlowMod{Header: openflow.Header{Version: openflow.Version10}})

	var unsupported *openflow.UnsupportedVersionError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, openflow.KindFlowMod, unsupported.Kind)
	assert.Equal(t, openflow.Version10, unsupported.Version)
}

func Test_SameKindAcrossVersions(t *testing.T) {
	f := NewFactory()
	for _, v := range []openflow.Version{openflow.Version10, openflow.Version13} {
		data, err := f.Encode(&openflow.QueueGetConfigRequest{Header: openflow.Header{Version: v, Xid: 5}, Port: 3})
		require.NoError(t, err)

		msg, err := f.Unmarshal(data)
		require.NoError(t, err)
		req, ok := msg.(*openflow.QueueGetConfigRequest)
		require.True(t, ok, "%s decoded as %T", v, msg)
		assert.Equal(t, v, req.Version)
		assert.Equal(t, uint32(3), req.Port)
	}
}
