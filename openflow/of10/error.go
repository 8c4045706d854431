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

package of10

import (
	"github.com/k-vswitch/ofcodec/buffer"
	"github.com/k-vswitch/ofcodec/openflow"
	"github.com/k-vswitch/ofcodec/openflow/internal/wire"
)

var errorTypes = map[uint16]openflow.ErrorType{
	0: openflow.ErrorTypeHelloFailed,
	1: openflow.ErrorTypeBadRequest,
	2: openflow.ErrorTypeBadAction,
	3: openflow.ErrorTypeFlowModFailed,
	4: openflow.ErrorTypePortModFailed,
	5: openflow.ErrorTypeQueueOpFailed,
}

var errorTypeCodes = func() map[openflow.ErrorType]uint16 {
	codes := make(map[openflow.ErrorType]uint16, len(errorTypes))
	for code, t := range errorTypes {
		codes[t] = code
	}
	return codes
}()

func decodeError(h openflow.Header, body *buffer.Buffer) (openflow.Message, error) {
	r := wire.NewReader(body)
	code := r.Uint16()
	msg := &openflow.Error{Header: h, Code: r.Uint16()}
	if err := r.Err(); err != nil {
		return nil, openflow.WrapStructure("error", err)
	}
	t, ok := errorTypes[code]
	if !ok {
		return nil, openflow.WrapStructure("error", &openflow.UnknownValueError{Field: "error type", Value: uint32(code)})
	}
	msg.Type = t
	msg.Data = r.Rest()
	return msg, nil
}

func encodeError(m openflow.Message, body *buffer.Buffer) error {
	msg, ok := m.(*openflow.Error)
	if !ok {
		return unexpected(m, "error")
	}
	code, ok := errorTypeCodes[msg.Type]
	if !ok {
		return openflow.WrapStructure("error", &openflow.UnsupportedError{Version: openflow.Version10, What: "error type " + msg.Type.String()})
	}
	w := wire.NewWriter(body)
	w.Uint16(code)
	w.Uint16(msg.Code)
	w.Bytes(msg.Data)
	return openflow.WrapStructure("error", w.Err())
}
