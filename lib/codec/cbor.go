// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"github.com/fxamacker/cbor/v2"
)

// Decoding limits. An identity set is a small map holding one array of
// flat records, so export never comes near these. They bound what a
// corrupt or hostile file can make the decoder allocate.
const (
	MaxNestedLevels  = 8
	MaxArrayElements = 1 << 20
	MaxMapPairs      = 64
)

var (
	encMode  = newEncMode()
	decMode  = newDecMode()
	diagMode = newDiagMode()
)

// newEncMode returns a Core Deterministic (RFC 8949 §4.2) encoder, so
// exporting the same identities twice produces byte-identical files
// and identical digests.
func newEncMode() cbor.EncMode {
	options := cbor.CoreDetEncOptions()
	// SIDs and principal kinds carry unexported state and serialize as
	// their text form ("S-1-5-32-544", "alias").
	options.TextMarshaler = cbor.TextMarshalerTextString
	options.Time = cbor.TimeRFC3339Nano
	mode, err := options.EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}
	return mode
}

// newDecMode returns the decoder for identity set files. A map that
// repeats a key is rejected: two "name" entries in one record would
// let the file say one thing to this decoder and another to a decoder
// that keeps the first occurrence.
func newDecMode() cbor.DecMode {
	mode, err := cbor.DecOptions{
		DupMapKey:        cbor.DupMapKeyEnforcedAPF,
		MaxNestedLevels:  MaxNestedLevels,
		MaxArrayElements: MaxArrayElements,
		MaxMapPairs:      MaxMapPairs,
		TextUnmarshaler:  cbor.TextUnmarshalerTextString,
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
	return mode
}

func newDiagMode() cbor.DiagMode {
	mode, err := cbor.DiagOptions{
		ByteStringEncoding: cbor.ByteStringBase16Encoding,
		MaxNestedLevels:    MaxNestedLevels,
		MaxArrayElements:   MaxArrayElements,
		MaxMapPairs:        MaxMapPairs,
	}.DiagMode()
	if err != nil {
		panic("codec: CBOR diagnostic initialization failed: " + err.Error())
	}
	return mode
}

// Marshal encodes v to deterministic CBOR.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes a single CBOR item from data into v. Trailing
// bytes, duplicate map keys and input beyond the decoding limits are
// errors.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// Canonical reports whether data is exactly what Marshal would produce
// for the value it holds. A file that decodes cleanly but is not
// canonical was written by something other than export, or edited.
func Canonical(data []byte) (bool, error) {
	var value any
	if err := decMode.Unmarshal(data, &value); err != nil {
		return false, err
	}
	reencoded, err := encMode.Marshal(value)
	if err != nil {
		return false, err
	}
	return string(reencoded) == string(data), nil
}

// Diagnose returns the CBOR diagnostic notation (RFC 8949 §8) for
// data. It works on input that fails to decode into a Go value, which
// is when it is most useful.
func Diagnose(data []byte) (string, error) {
	return diagMode.Diagnose(data)
}
