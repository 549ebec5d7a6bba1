package vector

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/fxamacker/cbor/v2"
	"github.com/zeebo/blake3"
)

// snapshot is the wire form of a vector: a CBOR map with integer keys.
// Sum is the BLAKE3-256 digest of Data.
type snapshot struct {
	ElemSize int    `cbor:"1,keyasint"`
	Length   int    `cbor:"2,keyasint"`
	Data     []byte `cbor:"3,keyasint"`
	Sum      []byte `cbor:"4,keyasint"`
}

// encMode uses Core Deterministic Encoding, so equal vectors produce
// identical snapshots.
var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("vector: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("vector: CBOR decoder initialization failed: " + err.Error())
	}
}

// MarshalBinary encodes the element size and live elements of v.
func (v *Raw) MarshalBinary() ([]byte, error) {
	if err := v.check("marshal"); err != nil {
		return nil, err
	}
	data := v.Bytes()
	sum := blake3.Sum256(data)
	return encMode.Marshal(snapshot{
		ElemSize: v.elemSize,
		Length:   v.length,
		Data:     data,
		Sum:      sum[:],
	})
}

// DecodeRaw creates a vector from a snapshot produced by MarshalBinary.
// Its capacity follows the normal growth policy for the decoded length.
func DecodeRaw(data []byte, opts ...Option) (*Raw, error) {
	s, err := decodeSnapshot(data)
	if err != nil {
		return nil, err
	}
	return fromSnapshot(s, opts)
}

func decodeSnapshot(data []byte) (snapshot, error) {
	var s snapshot
	if err := decMode.Unmarshal(data, &s); err != nil {
		return s, opErr("decode", fmt.Errorf("%w: %w", ErrCorruptSnapshot, err))
	}
	if s.ElemSize <= 0 || s.Length < 0 || s.Length > math.MaxInt/s.ElemSize {
		return s, opErr("decode", fmt.Errorf("%w: element size %d, length %d", ErrCorruptSnapshot, s.ElemSize, s.Length))
	}
	if len(s.Data) != s.ElemSize*s.Length {
		return s, opErr("decode", fmt.Errorf("%w: %d data bytes, want %d", ErrCorruptSnapshot, len(s.Data), s.ElemSize*s.Length))
	}
	sum := blake3.Sum256(s.Data)
	if !bytes.Equal(sum[:], s.Sum) {
		return s, opErr("decode", fmt.Errorf("%w: checksum mismatch", ErrCorruptSnapshot))
	}
	return s, nil
}

func fromSnapshot(s snapshot, opts []Option) (*Raw, error) {
	v, err := NewRaw(s.ElemSize, opts...)
	if err != nil {
		return nil, err
	}
	if s.Length == 0 {
		return v, nil
	}
	if err := v.Append(s.Data); err != nil {
		return nil, errors.Join(err, v.Free())
	}
	return v, nil
}

// MarshalBinary encodes v in the same format as Raw.MarshalBinary.
func (v *Vector[T]) MarshalBinary() ([]byte, error) {
	return v.Raw().MarshalBinary()
}

// Decode creates a vector of T from a snapshot. The snapshot's element
// size must equal the size of T.
func Decode[T any](data []byte, opts ...Option) (*Vector[T], error) {
	s, err := decodeSnapshot(data)
	if err != nil {
		return nil, err
	}
	size, err := elemSizeOf[T]("decode")
	if err != nil {
		return nil, err
	}
	if s.ElemSize != size {
		return nil, opErr("decode", fmt.Errorf("%w: element size %d, want %d", ErrInvalidArgument, s.ElemSize, size))
	}
	raw, err := fromSnapshot(s, opts)
	if err != nil {
		return nil, err
	}
	return &Vector[T]{raw: raw}, nil
}
