// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package load

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// ColorFormat records the per-pixel channel layout of a decoded Image.
type ColorFormat int

const (
	BGR  ColorFormat = 24 // 3 bytes per pixel, no alpha.
	BGRA ColorFormat = 32 // 4 bytes per pixel.
)

// Image is a decoded true-color raster: a row-major pixel buffer in the
// same BGR(A) byte order the render pipeline's color buffer uses, so a
// fragment program can sample it directly without a channel swizzle.
type Image struct {
	Width, Height int
	Format        ColorFormat
	Pix           []byte // len == Width*Height*(Format/8)
}

// BytesPerPixel returns the image's pixel stride in bytes.
func (img *Image) BytesPerPixel() int { return int(img.Format) / 8 }

// tgaDataType is the subset of the TGA datatype codes this loader
// recognizes. Only RLE-compressed true color (type 10) is supported; the
// remaining constants exist so the loader can name what it is rejecting.
type tgaDataType int

const (
	tgaNoData              tgaDataType = 0
	tgaUncompColormapped   tgaDataType = 1
	tgaUncompRGB           tgaDataType = 2
	tgaUncompBW            tgaDataType = 3
	tgaRLEColormapped      tgaDataType = 9
	tgaRLERGB              tgaDataType = 10
	tgaCompBW              tgaDataType = 11
	tgaCompColormapped     tgaDataType = 32
	tgaCompColormappedQuad tgaDataType = 33
)

type tgaHeader struct {
	idLength        uint8
	colorMapType    uint8
	dataTypeCode    uint8
	colorMapOrigin  uint16
	colorMapLength  uint16
	colorMapDepth   uint8
	xOrigin         uint16
	yOrigin         uint16
	width           uint16
	height          uint16
	bitsPerPixel    uint8
	imageDescriptor uint8
}

// TGA reads a type-10 (RLE true color) Targa image. 24- and 32-bit
// pixels are supported; an uncompressed colormap (colorMapType != 0) or
// any datatype other than RLE true color is rejected. See
// http://www.paulbourke.net/dataformats/tga/ for the format this
// mirrors.
func TGA(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load.TGA: %w", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	header, err := readTGAHeader(r)
	if err != nil {
		return nil, fmt.Errorf("load.TGA: %s: %w", path, err)
	}
	if header.colorMapType != 0 {
		return nil, fmt.Errorf("load.TGA: %s: colormapped TGA files are not supported", path)
	}
	if tgaDataType(header.dataTypeCode) != tgaRLERGB {
		return nil, fmt.Errorf("load.TGA: %s: unsupported datatype code %d, only RLE true color (10) is supported", path, header.dataTypeCode)
	}
	if header.bitsPerPixel != 24 && header.bitsPerPixel != 32 {
		return nil, fmt.Errorf("load.TGA: %s: unsupported bit depth %d", path, header.bitsPerPixel)
	}

	// skip the image identification field.
	if header.idLength > 0 {
		if _, err := io.CopyN(io.Discard, r, int64(header.idLength)); err != nil {
			return nil, fmt.Errorf("load.TGA: %s: reading id field: %w", path, err)
		}
	}

	format := BGR
	if header.bitsPerPixel == 32 {
		format = BGRA
	}
	img := &Image{
		Width:  int(header.width),
		Height: int(header.height),
		Format: format,
	}
	img.Pix, err = readRLEBuffer(r, img.BytesPerPixel(), img.Width*img.Height)
	if err != nil {
		return nil, fmt.Errorf("load.TGA: %s: %w", path, err)
	}
	return img, nil
}

func readTGAHeader(r *bufio.Reader) (tgaHeader, error) {
	var h tgaHeader
	fields := []struct {
		dst  any
		size int
	}{
		{&h.idLength, 1}, {&h.colorMapType, 1}, {&h.dataTypeCode, 1},
		{&h.colorMapOrigin, 2}, {&h.colorMapLength, 2}, {&h.colorMapDepth, 1},
		{&h.xOrigin, 2}, {&h.yOrigin, 2}, {&h.width, 2}, {&h.height, 2},
		{&h.bitsPerPixel, 1}, {&h.imageDescriptor, 1},
	}
	for _, fld := range fields {
		if err := binary.Read(r, binary.LittleEndian, fld.dst); err != nil {
			return h, fmt.Errorf("reading header: %w", err)
		}
	}
	return h, nil
}

// readRLEBuffer decodes a TGA run-length-encoded pixel stream. Each
// packet is one header byte -- high bit set means a run-length packet
// (the single following pixel repeats low7+1 times), clear means a raw
// packet (low7+1 distinct pixels follow) -- matching the original
// format's packet layout exactly.
func readRLEBuffer(r *bufio.Reader, bytesPerPixel, pixelCount int) ([]byte, error) {
	buf := make([]byte, pixelCount*bytesPerPixel)
	pixel := make([]byte, bytesPerPixel)
	count := 0
	for count < pixelCount {
		head, err := r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("reading packet header at pixel %d: %w", count, err)
		}
		run := int(head&0x7f) + 1
		if count+run > pixelCount {
			return nil, fmt.Errorf("packet at pixel %d overruns image (run %d, remaining %d)", count, run, pixelCount-count)
		}
		if head&0x80 != 0 {
			if _, err := io.ReadFull(r, pixel); err != nil {
				return nil, fmt.Errorf("reading run-length pixel at %d: %w", count, err)
			}
			for i := 0; i < run; i++ {
				copy(buf[(count+i)*bytesPerPixel:], pixel)
			}
		} else {
			raw := buf[count*bytesPerPixel : (count+run)*bytesPerPixel]
			if _, err := io.ReadFull(r, raw); err != nil {
				return nil, fmt.Errorf("reading raw packet at %d: %w", count, err)
			}
		}
		count += run
	}
	return buf, nil
}
