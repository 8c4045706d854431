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

package openflow

import "fmt"

// Queue is one packet queue of a QUEUE_GET_CONFIG_REPLY. Port is not on
// the 1.0 wire.
type Queue struct {
	QueueID    uint32
	Port       uint32
	Properties []QueueProperty
}

type QueuePropertyKind uint16

const (
	PropertyNone         QueuePropertyKind = 0
	PropertyMinRate      QueuePropertyKind = 1
	PropertyMaxRate      QueuePropertyKind = 2
	PropertyExperimenter QueuePropertyKind = 0xffff
)

var queuePropertyNames = map[QueuePropertyKind]string{
	PropertyNone:         "NONE",
	PropertyMinRate:      "MIN_RATE",
	PropertyMaxRate:      "MAX_RATE",
	PropertyExperimenter: "EXPERIMENTER",
}

func (k QueuePropertyKind) String() string {
	if name, ok := queuePropertyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("PROPERTY(%d)", uint16(k))
}

// QueueProperty is implemented by the queue property variants.
type QueueProperty interface {
	Property() QueuePropertyKind
}

// QueuePropertyNone is the empty property of OpenFlow 1.0.
type QueuePropertyNone struct{}

func (QueuePropertyNone) Property() QueuePropertyKind { return PropertyNone }

// QueuePropertyMinRate guarantees a rate in 1/10 of a percent. Values
// above 1000 disable the guarantee.
type QueuePropertyMinRate struct {
	Rate uint16
}

func (QueuePropertyMinRate) Property() QueuePropertyKind { return PropertyMinRate }

type QueuePropertyMaxRate struct {
	Rate uint16
}

func (QueuePropertyMaxRate) Property() QueuePropertyKind { return PropertyMaxRate }

type QueuePropertyExperimenter struct {
	Experimenter uint32
	Data         []byte
}

func (QueuePropertyExperimenter) Property() QueuePropertyKind { return PropertyExperimenter }
