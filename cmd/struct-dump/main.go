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

// struct-dump declares a sample packet schema, prints its layout and
// fingerprint, and round-trips an instance through the codec.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/blinklabs-io/wirestruct"
	"github.com/blinklabs-io/wirestruct/validators"
)

type cmdFlags struct {
	order   string
	hexData string
	noCheck bool
}

func main() {
	f := cmdFlags{}
	flag.StringVar(&f.order, "order", "little", "byte order (little or big)")
	flag.StringVar(&f.hexData, "decode", "", "hex-encoded packet to decode instead of the sample")
	flag.BoolVar(&f.noCheck, "no-validate", false, "disable decode-time validation")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	switch f.order {
	case "little":
		wirestruct.SetDefaultByteOrder(wirestruct.LittleEndian)
	case "big":
		wirestruct.SetDefaultByteOrder(wirestruct.BigEndian)
	default:
		slog.Error("unknown byte order", "order", f.order)
		os.Exit(1)
	}
	if f.noCheck {
		wirestruct.SetValidateEnabled(false)
	}

	header := wirestruct.MustDefine("Header", []wirestruct.Field{
		{Name: "Magic", Formatter: wirestruct.Uint16(0xcafe), Validator: validators.ExactValue(0xcafe)},
		{Name: "Version", Formatter: wirestruct.Uint8(1), Validator: validators.Range(1, 3)},
		{Name: "DataLength", Formatter: wirestruct.Uint32(0), Validator: validators.BitSize(10)},
	})
	packet := wirestruct.MustDefine("Packet", []wirestruct.Field{
		{Name: "Header", Formatter: wirestruct.Nested(header, wirestruct.WithFieldDefault("DataLength", 16))},
		{Name: "Flags", Formatter: wirestruct.Uint8(0)},
		{Name: "Payload", Formatter: wirestruct.Bytes(16)},
		{Name: "Crc", Formatter: wirestruct.Uint32(0)},
	})

	dumpLayout(packet)

	fingerprint, err := packet.FingerprintString()
	if err != nil {
		slog.Error("failed to compute fingerprint", "error", err)
		os.Exit(1)
	}
	fmt.Printf("fingerprint: %s\n\n", fingerprint)

	var data []byte
	if f.hexData != "" {
		data, err = hex.DecodeString(f.hexData)
		if err != nil {
			slog.Error("invalid hex input", "error", err)
			os.Exit(1)
		}
	} else {
		inst := packet.New()
		inst.MustSet("Flags", 0x01)
		inst.MustSet("Payload", []byte("hello, wirestruct"[:16]))
		data, err = inst.Serialize()
		if err != nil {
			slog.Error("serialize failed", "error", err)
			os.Exit(1)
		}
		slog.Info("serialized sample packet", "bytes", len(data))
	}
	fmt.Printf("wire: %s\n\n", hex.EncodeToString(data))

	decoded, err := packet.Deserialize(data)
	if err != nil {
		slog.Error("deserialize failed", "error", err)
		os.Exit(1)
	}
	fmt.Printf("decoded: %s\n", decoded)
}

func dumpLayout(def *wirestruct.Definition) {
	fmt.Printf("%s: %d bytes\n", def.Name(), def.Size())
	for _, field := range def.Fields() {
		fmt.Printf(
			"  %-12s index=%d offset=%-4d width=%d\n",
			field.Name,
			field.Index,
			field.Offset,
			field.Width,
		)
	}
	fmt.Println()
}
