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

import (
	"errors"
	"fmt"
)

var (
	// ErrIncomplete is returned by Unmarshal when fewer bytes than the
	// header declares are available.
	ErrIncomplete = errors.New("openflow: incomplete message")

	// ErrExperimenterPayload is returned when an experimenter error is
	// asked for an offending message. Its data is opaque.
	ErrExperimenterPayload = errors.New("openflow: experimenter error data is not a message")
)

// MalformedHeaderError reports a header whose length is smaller than the
// header itself. Framing cannot continue past it.
type MalformedHeaderError struct {
	Header Header
}

func (e *MalformedHeaderError) Error() string {
	return fmt.Sprintf("openflow: malformed header: length %d is smaller than header size %d (version 0x%02x, type %d, xid %d)",
		e.Header.Length, HeaderLen, uint8(e.Header.Version), e.Header.Type, e.Header.Xid)
}

// UnknownTypeError reports a (version, type) pair with no registered
// decoder.
type UnknownTypeError struct {
	Version Version
	Type    uint8
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("openflow: no decoder registered for type %d in %s", e.Type, e.Version)
}

// UnsupportedVersionError reports an encode request for a message kind
// that has no encoder in the requested version.
type UnsupportedVersionError struct {
	Kind    Kind
	Version Version
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("openflow: no %s encoder registered for %s", e.Kind, e.Version)
}

// TruncatedListError reports a repeated structure whose byte budget cannot
// hold the next element.
type TruncatedListError struct {
	List      string
	Offset    int
	Need      int
	Remaining int
}

func (e *TruncatedListError) Error() string {
	return fmt.Sprintf("openflow: truncated %s list at offset %d: element needs %d bytes, %d remaining",
		e.List, e.Offset, e.Need, e.Remaining)
}

// InvalidLengthError reports a length sub-field that cannot describe the
// structure carrying it.
type InvalidLengthError struct {
	Structure string
	Length    int
	Min       int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("openflow: %s length %d is smaller than its minimum %d", e.Structure, e.Length, e.Min)
}

// UnknownValueError reports an enumerated wire value that has no entry in
// its lookup table.
type UnknownValueError struct {
	Field string
	Value uint32
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("openflow: unknown %s value %d", e.Field, e.Value)
}

// UnsupportedError reports a sub-structure variant or value that the
// target protocol version cannot carry.
type UnsupportedError struct {
	Version Version
	What    string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("openflow: %s is not supported by %s", e.What, e.Version)
}

// StructureError attributes a decode or encode failure to the structure
// being processed. Nested structures produce nested errors.
type StructureError struct {
	Structure string
	Err       error
}

func (e *StructureError) Error() string {
	return "openflow: " + e.path()
}

func (e *StructureError) path() string {
	if inner, ok := e.Err.(*StructureError); ok {
		return e.Structure + ": " + inner.path()
	}
	return fmt.Sprintf("%s: %v", e.Structure, e.Err)
}

func (e *StructureError) Unwrap() error {
	return e.Err
}

// WrapStructure attributes err to structure. A nil err stays nil.
func WrapStructure(structure string, err error) error {
	if err == nil {
		return nil
	}
	return &StructureError{Structure: structure, Err: err}
}
