// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package load

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tgaHeaderBytes builds an 18-byte TGA header for a type-10 (RLE true
// color) image with no colormap and no identification field.
func tgaHeaderBytes(width, height uint16, bitsPerPixel byte) []byte {
	h := make([]byte, 18)
	h[0] = 0    // idLength
	h[1] = 0    // colorMapType
	h[2] = 10   // dataTypeCode: RLE RGB
	// colorMapOrigin, colorMapLength, colorMapDepth all zero.
	h[12] = byte(width)
	h[13] = byte(width >> 8)
	h[14] = byte(height)
	h[15] = byte(height >> 8)
	h[16] = bitsPerPixel
	h[17] = 0
	return h
}

func TestTGA24BitRunLengthAndRaw(t *testing.T) {
	// a 2x1 image: pixel 0 is a run-length packet of one blue pixel,
	// pixel 1 is a raw packet of one green pixel.
	header := tgaHeaderBytes(2, 1, 24)
	body := []byte{
		0x80, 0xFF, 0x00, 0x00, // RLE packet: run of 1, color (B=FF,G=00,R=00)
		0x00, 0x00, 0xFF, 0x00, // raw packet: 1 pixel, color (B=00,G=FF,R=00)
	}
	path := filepath.Join(t.TempDir(), "two.tga")
	require.NoError(t, os.WriteFile(path, append(header, body...), 0o644))

	img, err := TGA(path)
	require.NoError(t, err)
	assert.Equal(t, 2, img.Width)
	assert.Equal(t, 1, img.Height)
	assert.Equal(t, BGR, img.Format)
	assert.Equal(t, 3, img.BytesPerPixel())
	assert.Equal(t, []byte{0xFF, 0x00, 0x00, 0x00, 0xFF, 0x00}, img.Pix)
}

func TestTGA32BitRunLengthPacket(t *testing.T) {
	// a 3x1 image, one RLE packet of 3 identical BGRA pixels.
	header := tgaHeaderBytes(3, 1, 32)
	body := []byte{
		0x82, 0x10, 0x20, 0x30, 0x40, // run of 3, color (B,G,R,A)
	}
	path := filepath.Join(t.TempDir(), "run.tga")
	require.NoError(t, os.WriteFile(path, append(header, body...), 0o644))

	img, err := TGA(path)
	require.NoError(t, err)
	assert.Equal(t, BGRA, img.Format)
	assert.Equal(t, 4, img.BytesPerPixel())
	want := []byte{
		0x10, 0x20, 0x30, 0x40,
		0x10, 0x20, 0x30, 0x40,
		0x10, 0x20, 0x30, 0x40,
	}
	assert.Equal(t, want, img.Pix)
}

func TestTGARejectsColormapped(t *testing.T) {
	header := tgaHeaderBytes(1, 1, 24)
	header[1] = 1 // colorMapType
	path := filepath.Join(t.TempDir(), "cmap.tga")
	require.NoError(t, os.WriteFile(path, append(header, 0x80, 1, 2, 3), 0o644))

	_, err := TGA(path)
	assert.Error(t, err)
}

func TestTGARejectsNonRLEDatatype(t *testing.T) {
	header := tgaHeaderBytes(1, 1, 24)
	header[2] = 2 // uncompressed true color
	path := filepath.Join(t.TempDir(), "uncomp.tga")
	require.NoError(t, os.WriteFile(path, append(header, 1, 2, 3), 0o644))

	_, err := TGA(path)
	assert.Error(t, err)
}

func TestTGARejectsUnsupportedBitDepth(t *testing.T) {
	header := tgaHeaderBytes(1, 1, 16)
	path := filepath.Join(t.TempDir(), "bad-depth.tga")
	require.NoError(t, os.WriteFile(path, append(header, 0x80, 1, 2), 0o644))

	_, err := TGA(path)
	assert.Error(t, err)
}

func TestTGATruncatedFile(t *testing.T) {
	header := tgaHeaderBytes(4, 1, 24)
	path := filepath.Join(t.TempDir(), "short.tga")
	require.NoError(t, os.WriteFile(path, append(header, 0x80, 1, 2), 0o644)) // run of 1, but only 2 of its 3 pixel bytes present

	_, err := TGA(path)
	assert.Error(t, err)
}
