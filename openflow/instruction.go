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

// InstructionType values follow the OpenFlow 1.3 wire.
type InstructionType uint16

const (
	InstructionGotoTableType     InstructionType = 1
	InstructionWriteMetadataType InstructionType = 2
	InstructionWriteActionsType  InstructionType = 3
	InstructionApplyActionsType  InstructionType = 4
	InstructionClearActionsType  InstructionType = 5
	InstructionMeterType         InstructionType = 6
	InstructionExperimenterType  InstructionType = 0xffff
)

// Instruction is implemented by the 1.3 instruction variants.
type Instruction interface {
	InstructionType() InstructionType
}

type InstructionGotoTable struct {
	TableID uint8
}

func (InstructionGotoTable) InstructionType() InstructionType { return InstructionGotoTableType }

type InstructionWriteMetadata struct {
	Metadata     uint64
	MetadataMask uint64
}

func (InstructionWriteMetadata) InstructionType() InstructionType {
	return InstructionWriteMetadataType
}

// InstructionActions is the write, apply or clear actions instruction,
// selected by Type. Clear carries no actions.
type InstructionActions struct {
	Type    InstructionType
	Actions []Action
}

func (i InstructionActions) InstructionType() InstructionType { return i.Type }

// ApplyActions is a shorthand for an apply-actions instruction.
func ApplyActions(actions ...Action) InstructionActions {
	return InstructionActions{Type: InstructionApplyActionsType, Actions: actions}
}

// WriteActions is a shorthand for a write-actions instruction.
func WriteActions(actions ...Action) InstructionActions {
	return InstructionActions{Type: InstructionWriteActionsType, Actions: actions}
}

type InstructionMeter struct {
	MeterID uint32
}

func (InstructionMeter) InstructionType() InstructionType { return InstructionMeterType }

type InstructionExperimenter struct {
	Experimenter uint32
	Data         []byte
}

func (InstructionExperimenter) InstructionType() InstructionType {
	return InstructionExperimenterType
}
