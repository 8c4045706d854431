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

import "github.com/google/gopacket/layers"

// Action is implemented by the action variants. Which variants a version
// can carry is decided by its codec.
type Action interface {
	action()
}

// ActionOutput sends the packet to Port. MaxLen bounds the bytes sent to
// the controller when Port is PortController.
type ActionOutput struct {
	Port   uint32
	MaxLen uint16
}

// ActionEnqueue is the 1.0 enqueue action.
type ActionEnqueue struct {
	Port    uint32
	QueueID uint32
}

type ActionSetQueue struct {
	QueueID uint32
}

type ActionGroup struct {
	GroupID uint32
}

type ActionPushVlan struct {
	EtherType layers.EthernetType
}

type ActionPopVlan struct{}

type ActionDecNwTtl struct{}

type ActionSetField struct {
	Field OxmField
}

// ActionExperimenter carries a vendor action. Data excludes the action
// header and the experimenter id.
type ActionExperimenter struct {
	Experimenter uint32
	Data         []byte
}

func (ActionOutput) action()       {}
func (ActionEnqueue) action()      {}
func (ActionSetQueue) action()     {}
func (ActionGroup) action()        {}
func (ActionPushVlan) action()     {}
func (ActionPopVlan) action()      {}
func (ActionDecNwTtl) action()     {}
func (ActionSetField) action()     {}
func (ActionExperimenter) action() {}
