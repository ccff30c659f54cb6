package rational

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"

	"github.com/dchest/siphash"
	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v4"
)

// String renders r as "(Rational n/d)".
func (r Rational) String() string {
	n, d := r.parts()
	return fmt.Sprintf("(Rational %d/%d)", n, d)
}

// Hash returns a hash consistent with Equal. Whole values hash their
// numerator; other values hash their float32 projection, which relies on
// r being reduced.
func (r Rational) Hash() uint64 {
	var buf [8]byte
	n, d := r.parts()
	if d == 1 {
		binary.LittleEndian.PutUint64(buf[:], uint64(n))
	} else {
		binary.LittleEndian.PutUint64(buf[:], uint64(math.Float32bits(r.Float32())))
	}
	return siphash.Hash(hashKey0, hashKey1, buf[:])
}

type jsonRational struct {
	Numerator   int64 `json:"numerator"`
	Denominator int64 `json:"denominator"`
}

func (r Rational) MarshalJSON() ([]byte, error) {
	n, d := r.parts()
	return json.Marshal(jsonRational{Numerator: n, Denominator: d})
}

// UnmarshalJSON reduces the decoded fraction. A zero denominator is an error.
func (r *Rational) UnmarshalJSON(b []byte) error {
	var v jsonRational
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	decoded, err := TryNew(v.Numerator, v.Denominator)
	if err != nil {
		return err
	}
	*r = decoded
	return nil
}

// MarshalMsgpack encodes r as the array [numerator, denominator].
func (r Rational) MarshalMsgpack() ([]byte, error) {
	n, d := r.parts()
	return msgpack.Marshal([]int64{n, d})
}

func (r *Rational) UnmarshalMsgpack(data []byte) error {
	var v []int64
	if err := msgpack.Unmarshal(data, &v); err != nil {
		return err
	}
	if len(v) != 2 {
		return fmt.Errorf("%w: %d msgpack elements", ErrInvalidEncoding, len(v))
	}
	decoded, err := TryNew(v[0], v[1])
	if err != nil {
		return err
	}
	*r = decoded
	return nil
}

// MarshalZerologObject formats this object for logging purposes
func (r Rational) MarshalZerologObject(e *zerolog.Event) {
	n, d := r.parts()
	e.Int64("numerator", n)
	e.Int64("denominator", d)
	e.Float64("value", r.Float64())
}
