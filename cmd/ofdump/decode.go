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

package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/k-vswitch/ofcodec/codec"
	"github.com/k-vswitch/ofcodec/connection"
	"github.com/k-vswitch/ofcodec/openflow"
)

func decodeCmd(opts *options) *cobra.Command {
	var (
		hexInput bool
		chunk    int
	)

	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode a captured OpenFlow byte stream",
		Long: `Decode every message in a raw OpenFlow byte stream read from file,
or from stdin when no file or "-" is given. With --hex the input is
hexadecimal text; whitespace is ignored.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if chunk <= 0 {
				chunk = cfg.ReadBufferSize
			}

			in, err := readInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if hexInput {
				if in, err = decodeHex(in); err != nil {
					return err
				}
			}

			factory := codec.NewFactory()
			p := newPrinter(cmd.OutOrStdout(), cfg.Format, factory)
			err = connection.ReadMessages(bytes.NewReader(in), factory, chunk, func(msg openflow.Message) {
				p.print(msg)
			})
			p.flush()
			return err
		},
	}

	cmd.Flags().BoolVar(&hexInput, "hex", false, "input is hexadecimal text")
	cmd.Flags().IntVar(&chunk, "chunk", 0, "feed the decoder this many bytes at a time (defaults to read_buffer_size)")

	return cmd
}

func readInput(args []string, stdin io.Reader) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %v", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %v", args[0], err)
	}
	return data, nil
}

func decodeHex(in []byte) ([]byte, error) {
	text := strings.Join(strings.Fields(string(in)), "")
	data, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("error decoding hex input: %v", err)
	}
	return data, nil
}
