// SPDX-License-Identifier: MIT
// Package: graphio
//
// file.go - one graph per file.

package graphio

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/baranwa2/RandomWalkGCN/core"
)

// FileName returns "graph_<i>.<ext>".
func FileName(i int, ext string) string {
	return "graph_" + strconv.Itoa(i) + "." + ext
}

// Path joins dir with FileName(i, c.Ext()).
func Path(dir string, i int, c Codec) string {
	return filepath.Join(dir, FileName(i, c.Ext()))
}

// WriteFile exports g and writes it to path with codec c, truncating any
// existing file. The file is flushed and closed before WriteFile returns;
// a close error is reported.
func WriteFile(path string, g *core.Graph, blockKey string, c Codec) (err error) {
	doc, err := FromGraph(g, blockKey)
	if err != nil {
		return fmt.Errorf("WriteFile(%s): %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("WriteFile: %w", cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if err = c.Encode(w, doc); err != nil {
		return fmt.Errorf("WriteFile(%s): %w", path, err)
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("WriteFile(%s): %w", path, err)
	}
	return nil
}

// ReadDocument decodes the document stored at path with codec c.
func ReadDocument(path string, c Codec) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadDocument: %w", err)
	}
	defer f.Close()

	doc, err := c.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("ReadDocument(%s): %w", path, err)
	}
	return doc, nil
}

// ReadFile decodes path with codec c and rebuilds the graph.
func ReadFile(path, blockKey string, c Codec) (*core.Graph, error) {
	doc, err := ReadDocument(path, c)
	if err != nil {
		return nil, err
	}
	g, err := doc.ToGraph(blockKey)
	if err != nil {
		return nil, fmt.Errorf("ReadFile(%s): %w", path, err)
	}
	return g, nil
}
