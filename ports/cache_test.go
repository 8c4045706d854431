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

package ports

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/k-vswitch/ofcodec/openflow"
)

func features(dpid uint64, ports ...openflow.Port) *openflow.FeaturesReply {
	return &openflow.FeaturesReply{DatapathID: dpid, Ports: ports}
}

func Test_Cache(t *testing.T) {
	c := NewCache()
	eth1 := openflow.Port{PortNo: 1, Name: "eth1", HWAddr: net.HardwareAddr{2, 0, 0, 0, 0, 1}}
	local := openflow.Port{PortNo: openflow.PortLocal, Name: "br0"}

	c.Learn(features(1, eth1, local))
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, "eth1", c.Name(1))
	assert.Equal(t, "br0", c.Name(openflow.PortLocal))
	assert.Equal(t, "7", c.Name(7))

	port, exists := c.Get(1)
	assert.True(t, exists)
	assert.Equal(t, eth1, port)

	c.Delete(1)
	_, exists = c.Get(1)
	assert.False(t, exists)

	// same datapath adds to what is known
	c.Learn(features(1, openflow.Port{PortNo: 2, Name: "eth2"}))
	assert.Equal(t, 2, c.Len())

	// another datapath starts over
	c.Learn(features(2, openflow.Port{PortNo: 3, Name: "veth3"}))
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, "2", c.Name(2))
	assert.Equal(t, "veth3", c.Name(3))
}
