package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image/png"
	"io/fs"
	"os"
)

// errBundleNoInput reports that none of the candidate PNGs exist.
var errBundleNoInput = errors.New("no input images for icon bundle")

// bundleEntry is one image going into the ICO container.
type bundleEntry struct {
	data   []byte // PNG payload, stored verbatim
	width  int
	height int
}

// writeBundle packs every candidate PNG that exists on disk into a
// multi-resolution ICO at dest; consumers pick the best entry at load
// time. Returns errBundleNoInput when no candidate exists, in which
// case no file is written.
func writeBundle(pngPaths []string, dest string) error {
	var entries []bundleEntry
	for _, path := range pngPaths {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		cfg, err := png.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
		entries = append(entries, bundleEntry{data: data, width: cfg.Width, height: cfg.Height})
	}
	if len(entries) == 0 {
		return errBundleNoInput
	}
	if err := os.WriteFile(dest, encodeICO(entries), 0644); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}
	return nil
}

// encodeICO builds an ICO container with one PNG-compressed entry per
// image. PNG-in-ICO is supported since Vista.
func encodeICO(entries []bundleEntry) []byte {
	const headerSize = 6
	const entrySize = 16

	total := headerSize + entrySize*len(entries)
	for _, e := range entries {
		total += len(e.data)
	}
	buf := make([]byte, total)

	// ICONDIR header
	binary.LittleEndian.PutUint16(buf[0:], 0)                    // reserved
	binary.LittleEndian.PutUint16(buf[2:], 1)                    // type: ICO
	binary.LittleEndian.PutUint16(buf[4:], uint16(len(entries))) // image count

	dataOff := headerSize + entrySize*len(entries)
	for i, e := range entries {
		off := headerSize + entrySize*i
		buf[off+0] = icoDimension(e.width)
		buf[off+1] = icoDimension(e.height)
		buf[off+2] = 0                                                  // color count (0 for truecolor)
		buf[off+3] = 0                                                  // reserved
		binary.LittleEndian.PutUint16(buf[off+4:], 1)                   // planes
		binary.LittleEndian.PutUint16(buf[off+6:], 32)                  // bits per pixel
		binary.LittleEndian.PutUint32(buf[off+8:], uint32(len(e.data))) // payload size
		binary.LittleEndian.PutUint32(buf[off+12:], uint32(dataOff))    // payload offset
		copy(buf[dataOff:], e.data)
		dataOff += len(e.data)
	}
	return buf
}

// icoDimension maps a pixel dimension to its ICO directory byte.
// 0 means 256 or larger.
func icoDimension(v int) byte {
	if v >= 256 {
		return 0
	}
	return byte(v)
}
