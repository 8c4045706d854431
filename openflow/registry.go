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
	"fmt"
	"sort"

	"github.com/k-vswitch/ofcodec/buffer"
)

// DecodeFunc decodes a message body. body is bounded to the length the
// header declares and positioned just after the header.
type DecodeFunc func(h Header, body *buffer.Buffer) (Message, error)

// EncodeFunc writes a message body. The header and the length field are
// written by the Factory.
type EncodeFunc func(m Message, body *buffer.Buffer) error

type decoderKey struct {
	version Version
	code    uint8
}

type encoderKey struct {
	kind    Kind
	version Version
}

type decoderEntry struct {
	kind   Kind
	decode DecodeFunc
}

type encoderEntry struct {
	code   uint8
	encode EncodeFunc
}

// Registry maps (version, type code) pairs to decoders and (kind,
// version) pairs to encoders. A Registry is immutable once built and safe
// for concurrent use.
type Registry struct {
	decoders map[decoderKey]decoderEntry
	encoders map[encoderKey]encoderEntry
	versions []Version
}

// RegistryBuilder collects registrations for a Registry.
type RegistryBuilder struct {
	decoders map[decoderKey]decoderEntry
	encoders map[encoderKey]encoderEntry
	versions map[Version]struct{}
	errs     []error
}

func NewRegistryBuilder() *RegistryBuilder {
	return &RegistryBuilder{
		decoders: make(map[decoderKey]decoderEntry),
		encoders: make(map[encoderKey]encoderEntry),
		versions: make(map[Version]struct{}),
	}
}

// Register binds a wire type code of version to kind. Either function may
// be nil for decode-only or encode-only kinds.
func (b *RegistryBuilder) Register(version Version, code uint8, kind Kind, decode DecodeFunc, encode EncodeFunc) *RegistryBuilder {
	b.versions[version] = struct{}{}

	if decode != nil {
		key := decoderKey{version: version, code: code}
		if existing, found := b.decoders[key]; found {
			b.errs = append(b.errs, fmt.Errorf("type %d in %s already registered for %s", code, version, existing.kind))
		} else {
			b.decoders[key] = decoderEntry{kind: kind, decode: decode}
		}
	}

	if encode != nil {
		key := encoderKey{kind: kind, version: version}
		if _, found := b.encoders[key]; found {
			b.errs = append(b.errs, fmt.Errorf("%s encoder for %s already registered", kind, version))
		} else {
			b.encoders[key] = encoderEntry{code: code, encode: encode}
		}
	}

	return b
}

// Build returns the Registry. It fails if any registration conflicted.
func (b *RegistryBuilder) Build() (*Registry, error) {
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("invalid registry: %v", b.errs)
	}

	r := &Registry{
		decoders: make(map[decoderKey]decoderEntry, len(b.decoders)),
		encoders: make(map[encoderKey]encoderEntry, len(b.encoders)),
	}
	for k, v := range b.decoders {
		r.decoders[k] = v
	}
	for k, v := range b.encoders {
		r.encoders[k] = v
	}
	for v := range b.versions {
		r.versions = append(r.versions, v)
	}
	sort.Slice(r.versions, func(i, j int) bool { return r.versions[i] < r.versions[j] })

	return r, nil
}

// ResolveDecoder returns the decoder for a wire type code.
func (r *Registry) ResolveDecoder(version Version, code uint8) (Kind, DecodeFunc, error) {
	entry, found := r.decoders[decoderKey{version: version, code: code}]
	if !found {
		return 0, nil, &UnknownTypeError{Version: version, Type: code}
	}
	return entry.kind, entry.decode, nil
}

// ResolveEncoder returns the wire type code and encoder for a kind.
func (r *Registry) ResolveEncoder(kind Kind, version Version) (uint8, EncodeFunc, error) {
	entry, found := r.encoders[encoderKey{kind: kind, version: version}]
	if !found {
		return 0, nil, &UnsupportedVersionError{Kind: kind, Version: version}
	}
	return entry.code, entry.encode, nil
}

// Versions lists the protocol versions with at least one registration.
func (r *Registry) Versions() []Version {
	out := make([]Version, len(r.versions))
	copy(out, r.versions)
	return out
}
