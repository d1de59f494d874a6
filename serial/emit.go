// SPDX-License-Identifier: MIT
// Package: peertopo/serial
//
// emit.go - C declarations for the simulator build.
//
// Layout (values are the contract, formatting is not):
//
//	Topology.h  #define N_NODES / MIN_PEERS / MAX_PEERS + extern declarations
//	Topology.c  peer_list_sizes[N_NODES] and peer_lists[N_NODES][MAX_PEERS]
//
// Rows are written up to Degree[i]; the C compiler zero-fills the rest.
// A node without peers is written as {0} so the initializer stays valid C99.

package serial

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

const (
	// HeaderFile is the file name of the constants/declarations header.
	HeaderFile = "Topology.h"
	// SourceFile is the file name of the array definitions.
	SourceFile = "Topology.c"
	// SimulatorHeader is included by HeaderFile for node_id_t and size_t.
	SimulatorHeader = "RBlockSim.h"
)

// WriteHeader writes the constants and extern declarations for s.
func WriteHeader(w io.Writer, s *SerializedTopology) error {
	if err := s.Check(); err != nil {
		return fmt.Errorf("WriteHeader: %w", err)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "#pragma once\n")
	fmt.Fprintf(bw, "#include %q\n\n", SimulatorHeader)
	fmt.Fprintf(bw, "#define N_NODES %d\n", s.NNodes)
	fmt.Fprintf(bw, "#define MIN_PEERS %d\n", s.MinPeers)
	fmt.Fprintf(bw, "#define MAX_PEERS %d\n\n", s.MaxPeers)
	fmt.Fprintf(bw, "extern const size_t peer_list_sizes[N_NODES]; /// Holds the size of the peer list for each node\n")
	fmt.Fprintf(bw, "extern const node_id_t peer_lists[N_NODES][MAX_PEERS]; /// Holds the list of peers for each node\n")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteHeader: %w", err)
	}
	return nil
}

// WriteSource writes the degree and peer array definitions for s.
func WriteSource(w io.Writer, s *SerializedTopology) error {
	if err := s.Check(); err != nil {
		return fmt.Errorf("WriteSource: %w", err)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "#include %q\n\n", HeaderFile)

	bw.WriteString("const size_t peer_list_sizes[N_NODES] = {")
	for i, d := range s.Degree {
		if i > 0 {
			bw.WriteString(", ")
		}
		bw.WriteString(strconv.Itoa(d))
	}
	bw.WriteString("};\n")

	bw.WriteString("const node_id_t peer_lists[N_NODES][MAX_PEERS] = {\n")
	for i := 0; i < s.NNodes; i++ {
		bw.WriteString("{")
		row := s.Row(i)
		if len(row) == 0 {
			bw.WriteString("0")
		}
		for k, p := range row {
			if k > 0 {
				bw.WriteString(", ")
			}
			bw.WriteString(strconv.Itoa(p))
		}
		if i < s.NNodes-1 {
			bw.WriteString("},\n")
		} else {
			bw.WriteString("}\n")
		}
	}
	bw.WriteString("};\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteSource: %w", err)
	}
	return nil
}

// WriteFiles writes HeaderFile and SourceFile into dir, creating dir if
// needed. It returns the two paths written.
func WriteFiles(dir string, s *SerializedTopology) (header, source string, err error) {
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("WriteFiles: %w", err)
	}
	header = filepath.Join(dir, HeaderFile)
	source = filepath.Join(dir, SourceFile)
	if err = writeFile(header, s, WriteHeader); err != nil {
		return "", "", err
	}
	if err = writeFile(source, s, WriteSource); err != nil {
		return "", "", err
	}
	return header, source, nil
}

func writeFile(path string, s *SerializedTopology, emit func(io.Writer, *SerializedTopology) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFiles: %w", err)
	}
	if err := emit(f, s); err != nil {
		f.Close()
		return fmt.Errorf("WriteFiles: %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("WriteFiles: %s: %w", path, err)
	}
	return nil
}
