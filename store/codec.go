package store

import (
	"encoding/binary"
	"fmt"
	"strings"
	"sync"

	"github.com/katalvlaran/minspan/mst"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec selects the blob compression.
type Codec uint8

const (
	// CodecNone stores the packed edges as-is.
	CodecNone Codec = 0
	// CodecLZ4 uses LZ4 block compression.
	CodecLZ4 Codec = 1
	// CodecZSTD uses ZSTD at the default level.
	CodecZSTD Codec = 2
)

const blobHeaderSize = 5

// ParseCodec maps none, lz4 and zstd to a Codec.
func ParseCodec(s string) (Codec, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return CodecNone, nil
	case "lz4":
		return CodecLZ4, nil
	case "zstd":
		return CodecZSTD, nil
	default:
		return 0, fmt.Errorf("store: unknown codec %q", s)
	}
}

func (c Codec) String() string {
	switch c {
	case CodecNone:
		return "none"
	case CodecLZ4:
		return "lz4"
	case CodecZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("codec(%d)", uint8(c))
	}
}

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() (*zstd.Encoder, error) {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("store: zstd encoder: %w", err)
	}

	return enc, nil
}

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("store: zstd decoder: %w", err)
	}

	return dec, nil
}

// packEdges writes both endpoints of every edge as uvarints.
func packEdges(edges []mst.Edge) []byte {
	out := make([]byte, 0, 2*len(edges)*binary.MaxVarintLen32)
	for _, e := range edges {
		out = binary.AppendUvarint(out, uint64(e.From))
		out = binary.AppendUvarint(out, uint64(e.To))
	}

	return out
}

func unpackEdges(raw []byte, n int) ([]mst.Edge, error) {
	edges := make([]mst.Edge, 0, n)
	for len(raw) > 0 {
		from, k := binary.Uvarint(raw)
		if k <= 0 {
			return nil, ErrCorrupt
		}
		raw = raw[k:]
		to, k := binary.Uvarint(raw)
		if k <= 0 {
			return nil, ErrCorrupt
		}
		raw = raw[k:]
		edges = append(edges, mst.Edge{From: int(from), To: int(to)})
	}
	if len(edges) != n {
		return nil, fmt.Errorf("%w: %d edges, want %d", ErrCorrupt, len(edges), n)
	}

	return edges, nil
}

// encodeBlob packs and compresses edges. LZ4 falls back to CodecNone when the
// compressed block is not smaller than the input.
func encodeBlob(edges []mst.Edge, codec Codec) ([]byte, error) {
	raw := packEdges(edges)
	if len(raw) == 0 {
		codec = CodecNone
	}

	var payload []byte
	switch codec {
	case CodecNone:
		payload = raw
	case CodecLZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(raw)))
		n, err := lz4.CompressBlock(raw, buf, nil)
		if err != nil {
			return nil, err
		}
		if n == 0 || n >= len(raw) {
			// Incompressible.
			codec, payload = CodecNone, raw
		} else {
			payload = buf[:n]
		}
	case CodecZSTD:
		enc, err := getZstdEncoder()
		if err != nil {
			return nil, err
		}
		payload = enc.EncodeAll(raw, nil)
		zstdEncoderPool.Put(enc)
	default:
		return nil, fmt.Errorf("store: unknown codec %d", codec)
	}

	blob := make([]byte, blobHeaderSize+len(payload))
	blob[0] = byte(codec)
	binary.LittleEndian.PutUint32(blob[1:], uint32(len(raw)))
	copy(blob[blobHeaderSize:], payload)

	return blob, nil
}

// decodeBlob reverses encodeBlob; n is the expected edge count.
func decodeBlob(blob []byte, n int) ([]mst.Edge, error) {
	if len(blob) < blobHeaderSize {
		return nil, fmt.Errorf("%w: blob of %d bytes", ErrCorrupt, len(blob))
	}
	codec := Codec(blob[0])
	size := binary.LittleEndian.Uint32(blob[1:])
	payload := blob[blobHeaderSize:]

	var raw []byte
	switch codec {
	case CodecNone:
		raw = payload
	case CodecLZ4:
		raw = make([]byte, size)
		k, err := lz4.UncompressBlock(payload, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		raw = raw[:k]
	case CodecZSTD:
		dec, err := getZstdDecoder()
		if err != nil {
			return nil, err
		}
		out, err := dec.DecodeAll(payload, make([]byte, 0, size))
		zstdDecoderPool.Put(dec)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		raw = out
	default:
		return nil, fmt.Errorf("%w: codec %d", ErrCorrupt, codec)
	}
	if uint32(len(raw)) != size {
		return nil, fmt.Errorf("%w: %d raw bytes, header says %d", ErrCorrupt, len(raw), size)
	}

	return unpackEdges(raw, n)
}
