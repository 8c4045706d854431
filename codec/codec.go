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

// Package codec wires the OpenFlow 1.0 and 1.3 codecs into a shared
// registry.
package codec

import (
	"sync"

	"k8s.io/klog"

	"github.com/k-vswitch/ofcodec/openflow"
	"github.com/k-vswitch/ofcodec/openflow/of10"
	"github.com/k-vswitch/ofcodec/openflow/of13"
)

var (
	registryOnce sync.Once
	registry     *openflow.Registry
)

// DefaultRegistry returns the registry holding every supported version.
// It is built on first use and never changes afterwards.
func DefaultRegistry() *openflow.Registry {
	registryOnce.Do(func() {
		b := openflow.NewRegistryBuilder()
		of10.Register(b)
		of13.Register(b)

		r, err := b.Build()
		if err != nil {
			// registrations are static, so this is a programming error
			klog.Fatalf("error building OpenFlow registry: %v", err)
		}
		registry = r
	})
	return registry
}

// NewFactory returns a factory over the default registry.
func NewFactory(opts ...openflow.Option) *openflow.Factory {
	return openflow.NewFactory(DefaultRegistry(), opts...)
}
