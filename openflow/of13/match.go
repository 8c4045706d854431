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

package of13

import (
	"github.com/Kmotiko/gofc/ofprotocol/ofp13"

	"github.com/k-vswitch/ofcodec/buffer"
	"github.com/k-vswitch/ofcodec/openflow"
	"github.com/k-vswitch/ofcodec/openflow/internal/wire"
)

const (
	matchHeaderLen = 4
	oxmHeaderLen   = 4
)

// decodeMatch reads an ofp_match and the padding that follows it.
func decodeMatch(b *buffer.Buffer) (openflow.Match, error) {
	var m openflow.Match
	r := wire.NewReader(b)
	m.Type = r.Uint16()
	length := int(r.Uint16())
	if err := r.Err(); err != nil {
		return m, openflow.WrapStructure("match", err)
	}
	if m.Type != ofp13.OFPMT_OXM {
		return m, openflow.WrapStructure("match", &openflow.UnknownValueError{Field: "match type", Value: uint32(m.Type)})
	}
	if length < matchHeaderLen {
		return m, openflow.WrapStructure("match", &openflow.InvalidLengthError{Structure: "match", Length: length, Min: matchHeaderLen})
	}

	fields := r.Slice(length - matchHeaderLen)
	r.Skip(align8(length) - length)
	if err := r.Err(); err != nil {
		return m, openflow.WrapStructure("match", err)
	}

	var err error
	if m.Fields, err = openflow.DecodeList(fields, "oxm fields", oxmLen, decodeOxm); err != nil {
		return m, openflow.WrapStructure("match", err)
	}
	return m, nil
}

func oxmLen(b *buffer.Buffer) (int, error) {
	n, err := b.PeekUint8(3)
	if err != nil {
		return 0, err
	}
	return oxmHeaderLen + int(n), nil
}

func decodeOxm(b *buffer.Buffer) (openflow.OxmField, error) {
	r := wire.NewReader(b)
	header := r.Uint32()
	f := openflow.OxmField{
		Class:   uint16(header >> 16),
		Field:   uint8(header>>9) & 0x7f,
		HasMask: header&0x100 != 0,
	}
	length := int(header & 0xff)
	if f.HasMask {
		if length%2 != 0 {
			return f, openflow.WrapStructure("oxm", &openflow.InvalidLengthError{Structure: "masked oxm", Length: length, Min: 2})
		}
		f.Value = r.Bytes(length / 2)
		f.Mask = r.Bytes(length / 2)
	} else {
		f.Value = r.Bytes(length)
	}
	return f, openflow.WrapStructure("oxm", r.Err())
}

func encodeMatch(b *buffer.Buffer, m openflow.Match) error {
	w := wire.NewWriter(b)
	start := w.Position()
	matchType := m.Type
	if matchType == 0 {
		matchType = ofp13.OFPMT_OXM
	}
	w.Uint16(matchType)
	slot := w.Mark()
	if err := w.Err(); err != nil {
		return openflow.WrapStructure("match", err)
	}
	if err := openflow.EncodeList(b, m.Fields, encodeOxm); err != nil {
		return openflow.WrapStructure("match", err)
	}
	w.Patch(slot, start)
	w.Align(start, 8)
	return openflow.WrapStructure("match", w.Err())
}

func encodeOxm(b *buffer.Buffer, f openflow.OxmField) error {
	length := len(f.Value)
	if f.HasMask {
		if len(f.Mask) != len(f.Value) {
			return &openflow.InvalidLengthError{Structure: "oxm mask", Length: len(f.Mask), Min: len(f.Value)}
		}
		length *= 2
	}
	if length > 0xff {
		return &openflow.InvalidLengthError{Structure: "oxm", Length: length, Min: 0}
	}

	header := uint32(f.Class)<<16 | uint32(f.Field&0x7f)<<9 | uint32(length)
	if f.HasMask {
		header |= 0x100
	}
	w := wire.NewWriter(b)
	w.Uint32(header)
	w.Bytes(f.Value)
	if f.HasMask {
		w.Bytes(f.Mask)
	}
	return openflow.WrapStructure("oxm", w.Err())
}
