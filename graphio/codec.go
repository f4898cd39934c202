// SPDX-License-Identifier: MIT
// Package: graphio
//
// codec.go - pluggable Document encoders.

package graphio

import (
	"encoding/gob"
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
)

// Format names accepted by CodecFor.
const (
	FormatJSON = "json"
	FormatGob  = "gob"
)

// Codec encodes and decodes a Document on a stream.
type Codec interface {
	// Ext is the file extension without the dot.
	Ext() string
	Encode(w io.Writer, d *Document) error
	Decode(r io.Reader) (*Document, error)
}

// JSON is the node-link JSON codec.
type JSON struct {
	// Indent, when non-empty, pretty-prints with this indent string.
	Indent string
}

// Ext implements Codec.
func (JSON) Ext() string { return FormatJSON }

// Encode implements Codec.
func (c JSON) Encode(w io.Writer, d *Document) error {
	enc := json.NewEncoder(w)
	if c.Indent != "" {
		enc.SetIndent("", c.Indent)
	}
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("JSON.Encode: %w", err)
	}
	return nil
}

// Decode implements Codec.
func (JSON) Decode(r io.Reader) (*Document, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("JSON.Decode: %w", err)
	}
	return &d, nil
}

// Gob is the encoding/gob codec.
type Gob struct{}

// Ext implements Codec.
func (Gob) Ext() string { return FormatGob }

// Encode implements Codec.
func (Gob) Encode(w io.Writer, d *Document) error {
	if err := gob.NewEncoder(w).Encode(d); err != nil {
		return fmt.Errorf("Gob.Encode: %w", err)
	}
	return nil
}

// Decode implements Codec.
func (Gob) Decode(r io.Reader) (*Document, error) {
	var d Document
	if err := gob.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("Gob.Decode: %w", err)
	}
	return &d, nil
}

// CodecFor returns the codec registered under format (case-insensitive).
func CodecFor(format string) (Codec, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		return JSON{}, nil
	case FormatGob:
		return Gob{}, nil
	default:
		return nil, fmt.Errorf("CodecFor(%q): %w", format, ErrUnknownFormat)
	}
}
