// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/blinklabs-io/cborjson"
	"github.com/blinklabs-io/cborjson/cbor"
)

type cmdFlags struct {
	flagset       *flag.FlagSet
	input         string
	hexInput      bool
	stringifyKeys bool
}

func newCmdFlags() *cmdFlags {
	f := &cmdFlags{
		flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.input,
		"in",
		"",
		"file to read CBOR from (defaults to stdin)",
	)
	f.flagset.BoolVar(
		&f.hexInput,
		"hex",
		false,
		"treat input as hex-encoded CBOR",
	)
	f.flagset.BoolVar(
		&f.stringifyKeys,
		"stringify-keys",
		false,
		"convert non-string map keys to JSON strings instead of failing",
	)
	return f
}

func main() {
	f := newCmdFlags()
	if err := f.flagset.Parse(os.Args[1:]); err != nil {
		fmt.Printf("failed to parse commandline: %s\n", err)
		os.Exit(1)
	}

	var data []byte
	var err error
	if f.input == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(f.input)
	}
	if err != nil {
		fmt.Printf("ERROR: failed to read input: %s\n", err)
		os.Exit(1)
	}
	if f.hexInput {
		data, err = hex.DecodeString(
			strings.Join(strings.Fields(string(data)), ""),
		)
		if err != nil {
			fmt.Printf("ERROR: failed to decode hex input: %s\n", err)
			os.Exit(1)
		}
	}

	var flags cborjson.Flags
	if f.stringifyKeys {
		flags |= cborjson.StringifyMapKeys
	}

	// Transcode every top-level value in the stream, one JSON text per line
	rdr := cbor.NewReader(data)
	for !rdr.AtEnd() {
		if err := cborjson.Transcode(os.Stdout, rdr, flags); err != nil {
			fmt.Printf("\nERROR: %s\n", err)
			os.Exit(1)
		}
		fmt.Println()
	}
}
