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
	"fmt"
	"sync"

	"k8s.io/klog"

	"github.com/k-vswitch/ofcodec/openflow"
)

// Cache remembers the port descriptions announced by a datapath in its
// FEATURES_REPLY so later messages can refer to ports by name.
type Cache struct {
	sync.Mutex

	datapath uint64
	store    map[uint32]openflow.Port
}

func NewCache() *Cache {
	return &Cache{
		store: make(map[uint32]openflow.Port),
	}
}

// Learn replaces the cached ports with those of reply. A reply from a
// different datapath drops everything learned before.
func (c *Cache) Learn(reply *openflow.FeaturesReply) {
	c.Lock()
	defer c.Unlock()

	if reply.DatapathID != c.datapath {
		klog.V(4).Infof("port cache switching from datapath %016x to %016x", c.datapath, reply.DatapathID)
		c.store = make(map[uint32]openflow.Port, len(reply.Ports))
		c.datapath = reply.DatapathID
	}
	for _, port := range reply.Ports {
		c.store[port.PortNo] = port
	}
}

func (c *Cache) Get(portNo uint32) (openflow.Port, bool) {
	c.Lock()
	defer c.Unlock()

	port, exists := c.store[portNo]
	return port, exists
}

func (c *Cache) Delete(portNo uint32) {
	c.Lock()
	defer c.Unlock()

	delete(c.store, portNo)
}

// Name returns the port name, or the number when the port is unknown.
func (c *Cache) Name(portNo uint32) string {
	port, exists := c.Get(portNo)
	if !exists || port.Name == "" {
		return fmt.Sprintf("%d", portNo)
	}
	return port.Name
}

func (c *Cache) Len() int {
	c.Lock()
	defer c.Unlock()

	return len(c.store)
}
