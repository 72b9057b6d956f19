// Package meshio reads and writes vecmath meshes in a compact binary form.
//
// Format:
//
//	Magic       (4 bytes) "VMSH"
//	Version     (1 byte)
//	IndexWidth  (1 byte)  2 or 4
//	Compression (1 byte)
//	Flags       (1 byte)  bit 0: normals present
//	Floats      (4 bytes) length of the vertex buffer
//	Indices     (4 bytes) length of the index buffer
//	Checksum    (4 bytes) CRC32 of the uncompressed payload
//	RawSize     (4 bytes) payload size before compression
//	StoredSize  (4 bytes) payload size on the wire, 0 when stored uncompressed
//	Payload:
//	  Vertices (Floats x float32)
//	  Indices  (Indices x IndexWidth)
//	  Normals  (Floats x float32, if flagged)
//
// All integers and floats are little-endian.
package meshio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"math"
	"unsafe"

	"github.com/hupe1980/vecmath"
)

const (
	magic      = 0x48534D56 // "VMSH"
	version    = 1
	headerSize = 28

	flagNormals = 1 << 0

	// maxElements bounds buffer lengths read from untrusted headers.
	maxElements = 1 << 28
	// maxPayloadSize bounds the uncompressed payload in bytes. It fits in
	// int on 32-bit platforms.
	maxPayloadSize = 1 << 30
)

var (
	// ErrInvalidMagic is returned when the input is not a mesh stream.
	ErrInvalidMagic = errors.New("meshio: invalid magic")
	// ErrUnsupportedVersion is returned for streams written by a newer version.
	ErrUnsupportedVersion = errors.New("meshio: unsupported version")
	// ErrIndexWidth is returned when the stream's index type differs from
	// the requested one.
	ErrIndexWidth = errors.New("meshio: index width mismatch")
	// ErrChecksum is returned when the payload does not match its checksum.
	ErrChecksum = errors.New("meshio: checksum mismatch")
	// ErrCorrupt is returned for inconsistent headers.
	ErrCorrupt = errors.New("meshio: corrupt stream")
)

func indexWidth[I vecmath.Index]() int {
	var zero I
	return int(unsafe.Sizeof(zero))
}

func payloadSize(floats, indices uint64, width int, withNormals bool) uint64 {
	size := floats*4 + indices*uint64(width)
	if withNormals {
		size += floats * 4
	}
	return size
}

// Encode writes m to w. Normals are included when the normal buffer
// matches the vertex buffer in length.
func Encode[I vecmath.Index](w io.Writer, m *vecmath.Mesh[I], c Compression) error {
	if len(m.Vertices) > maxElements || len(m.Indices) > maxElements {
		return fmt.Errorf("meshio: mesh too large: %d floats, %d indices", len(m.Vertices), len(m.Indices))
	}

	width := indexWidth[I]()
	withNormals := len(m.Normals) == len(m.Vertices) && len(m.Normals) > 0

	size := payloadSize(uint64(len(m.Vertices)), uint64(len(m.Indices)), width, withNormals)
	if size > maxPayloadSize {
		return fmt.Errorf("meshio: mesh too large: %d byte payload", size)
	}

	payload := make([]byte, 0, int(size))
	payload = appendFloats(payload, m.Vertices)
	for _, idx := range m.Indices {
		if width == 2 {
			payload = binary.LittleEndian.AppendUint16(payload, uint16(idx))
		} else {
			payload = binary.LittleEndian.AppendUint32(payload, uint32(idx))
		}
	}
	var flags byte
	if withNormals {
		payload = appendFloats(payload, m.Normals)
		flags |= flagNormals
	}

	stored, err := compress(payload, c)
	if err != nil {
		return fmt.Errorf("meshio: compress %s: %w", c, err)
	}
	if stored == nil {
		c = CompressionNone
	}

	header := make([]byte, headerSize)
	binary.LittleEndian.PutUint32(header[0:4], magic)
	header[4] = version
	header[5] = byte(width)
	header[6] = byte(c)
	header[7] = flags
	binary.LittleEndian.PutUint32(header[8:12], uint32(len(m.Vertices)))
	binary.LittleEndian.PutUint32(header[12:16], uint32(len(m.Indices)))
	binary.LittleEndian.PutUint32(header[16:20], crc32.ChecksumIEEE(payload))
	binary.LittleEndian.PutUint32(header[20:24], uint32(len(payload)))
	binary.LittleEndian.PutUint32(header[24:28], uint32(len(stored)))

	if _, err := w.Write(header); err != nil {
		return err
	}
	if stored == nil {
		stored = payload
	}
	if _, err := w.Write(stored); err != nil {
		return err
	}
	return nil
}

// Decode reads a mesh written by Encode. The options are passed to
// vecmath.NewMesh. The decoded mesh is not validated.
func Decode[I vecmath.Index](r io.Reader, optFns ...vecmath.Option) (*vecmath.Mesh[I], error) {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, err
	}

	if binary.LittleEndian.Uint32(header[0:4]) != magic {
		return nil, ErrInvalidMagic
	}
	if header[4] != version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, header[4])
	}
	width := int(header[5])
	if width != indexWidth[I]() {
		return nil, fmt.Errorf("%w: stream has %d-byte indices, want %d", ErrIndexWidth, width, indexWidth[I]())
	}
	c := Compression(header[6])
	flags := header[7]
	floats := binary.LittleEndian.Uint32(header[8:12])
	indices := binary.LittleEndian.Uint32(header[12:16])
	checksum := binary.LittleEndian.Uint32(header[16:20])
	rawSize := binary.LittleEndian.Uint32(header[20:24])
	storedSize := binary.LittleEndian.Uint32(header[24:28])

	if floats > maxElements || indices > maxElements {
		return nil, fmt.Errorf("%w: %d floats, %d indices", ErrCorrupt, floats, indices)
	}
	want := payloadSize(uint64(floats), uint64(indices), width, flags&flagNormals != 0)
	if want > maxPayloadSize {
		return nil, fmt.Errorf("%w: payload size %d exceeds %d", ErrCorrupt, want, maxPayloadSize)
	}
	if uint64(rawSize) != want {
		return nil, fmt.Errorf("%w: payload size %d, want %d", ErrCorrupt, rawSize, want)
	}

	var payload []byte
	if storedSize == 0 {
		payload = make([]byte, rawSize)
		if _, err := io.ReadFull(r, payload); err != nil {
			return nil, err
		}
	} else {
		if storedSize > rawSize {
			return nil, fmt.Errorf("%w: stored size %d exceeds raw size %d", ErrCorrupt, storedSize, rawSize)
		}
		stored := make([]byte, storedSize)
		if _, err := io.ReadFull(r, stored); err != nil {
			return nil, err
		}
		var err error
		payload, err = decompress(stored, c, int(rawSize))
		if err != nil {
			return nil, fmt.Errorf("meshio: decompress %s: %w", c, err)
		}
	}

	if crc32.ChecksumIEEE(payload) != checksum {
		return nil, ErrChecksum
	}

	vertices := make([]float32, floats)
	payload = readFloats(payload, vertices)

	idx := make([]I, indices)
	for i := range idx {
		if width == 2 {
			idx[i] = I(binary.LittleEndian.Uint16(payload[i*2:]))
		} else {
			idx[i] = I(binary.LittleEndian.Uint32(payload[i*4:]))
		}
	}
	payload = payload[len(idx)*width:]

	mesh := vecmath.NewMesh(vertices, idx, optFns...)
	if flags&flagNormals != 0 {
		readFloats(payload, mesh.Normals)
	}
	return mesh, nil
}

func appendFloats(dst []byte, src []float32) []byte {
	for _, f := range src {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
	}
	return dst
}

// readFloats fills dst from src and returns the unread remainder.
func readFloats(src []byte, dst []float32) []byte {
	for i := range dst {
		dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(src[i*4:]))
	}
	return src[len(dst)*4:]
}
