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

	"github.com/k-vswitch/ofcodec/buffer"
)

// ElementLen reports the encoded size of the element at the cursor
// without consuming it.
type ElementLen func(b *buffer.Buffer) (int, error)

// FixedLen is the ElementLen of fixed-size elements.
func FixedLen(n int) ElementLen {
	return func(*buffer.Buffer) (int, error) {
		return n, nil
	}
}

// LenField reads the element size from a 16-bit field at offset within
// the element. Sizes below min are rejected.
func LenField(structure string, offset, min int) ElementLen {
	return func(b *buffer.Buffer) (int, error) {
		n, err := b.PeekUint16(offset)
		if err != nil {
			return 0, err
		}
		if int(n) < min {
			return 0, &InvalidLengthError{Structure: structure, Length: int(n), Min: min}
		}
		return int(n), nil
	}
}

// DecodeList decodes elements until b is exhausted. The byte budget of b,
// not a count, decides how many elements exist. Each element is decoded
// from a sub-buffer bounded to its own size. An empty budget yields a nil
// slice.
func DecodeList[T any](b *buffer.Buffer, list string, size ElementLen, decode func(*buffer.Buffer) (T, error)) ([]T, error) {
	var out []T
	for b.Remaining() > 0 {
		offset := b.Position()

		n, err := size(b)
		if err != nil {
			var underflow *buffer.UnderflowError
			if errors.As(err, &underflow) {
				return nil, &TruncatedListError{List: list, Offset: offset, Need: underflow.Need, Remaining: b.Remaining()}
			}
			return nil, err
		}
		if n <= 0 {
			return nil, &InvalidLengthError{Structure: list, Length: n, Min: 1}
		}
		if n > b.Remaining() {
			return nil, &TruncatedListError{List: list, Offset: offset, Need: n, Remaining: b.Remaining()}
		}

		elem, err := b.Slice(n)
		if err != nil {
			return nil, err
		}
		v, err := decode(elem)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// EncodeList writes items in order.
func EncodeList[T any](b *buffer.Buffer, items []T, encode func(*buffer.Buffer, T) error) error {
	for _, item := range items {
		if err := encode(b, item); err != nil {
			return err
		}
	}
	return nil
}
