package storage

import (
	"fmt"

	"snake/internal/domain"

	"google.golang.org/protobuf/encoding/protowire"
)

// Save file field numbers, written in this order.
const (
	fieldXs          protowire.Number = 1
	fieldYs          protowire.Number = 2
	fieldLength      protowire.Number = 3
	fieldApplesEaten protowire.Number = 4
	fieldHeading     protowire.Number = 5
	fieldRunning     protowire.Number = 6
)

func EncodeSession(saved domain.SavedSession) []byte {
	var b []byte

	b = appendPacked(b, fieldXs, saved.Xs)
	b = appendPacked(b, fieldYs, saved.Ys)

	b = protowire.AppendTag(b, fieldLength, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(saved.Length))

	b = protowire.AppendTag(b, fieldApplesEaten, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(saved.ApplesEaten))

	b = protowire.AppendTag(b, fieldHeading, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(saved.Heading.Code()))

	b = protowire.AppendTag(b, fieldRunning, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeBool(saved.Running))

	return b
}

func appendPacked(b []byte, num protowire.Number, values []int32) []byte {
	var packed []byte
	for _, v := range values {
		packed = protowire.AppendVarint(packed, protowire.EncodeZigZag(int64(v)))
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, packed)
}

// DecodeSession parses a save payload. Every field must be present exactly
// once; anything else is reported as ErrMalformedSave.
func DecodeSession(b []byte) (domain.SavedSession, error) {
	var saved domain.SavedSession
	seen := make(map[protowire.Number]bool, 6)

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return saved, malformed("tag", protowire.ParseError(n))
		}
		b = b[n:]

		if seen[num] {
			return saved, fmt.Errorf("%w: duplicate field %d", ErrMalformedSave, num)
		}
		seen[num] = true

		switch num {
		case fieldXs, fieldYs:
			if typ != protowire.BytesType {
				return saved, fmt.Errorf("%w: field %d has wire type %d", ErrMalformedSave, num, typ)
			}
			raw, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return saved, malformed("coordinates", protowire.ParseError(n))
			}
			b = b[n:]

			values, err := unpack(raw)
			if err != nil {
				return saved, err
			}
			if num == fieldXs {
				saved.Xs = values
			} else {
				saved.Ys = values
			}

		case fieldLength, fieldApplesEaten, fieldHeading, fieldRunning:
			if typ != protowire.VarintType {
				return saved, fmt.Errorf("%w: field %d has wire type %d", ErrMalformedSave, num, typ)
			}
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return saved, malformed("varint", protowire.ParseError(n))
			}
			b = b[n:]

			if err := assignScalar(&saved, num, v); err != nil {
				return saved, err
			}

		default:
			return saved, fmt.Errorf("%w: unknown field %d", ErrMalformedSave, num)
		}
	}

	for num := fieldXs; num <= fieldRunning; num++ {
		if !seen[num] {
			return saved, fmt.Errorf("%w: missing field %d", ErrMalformedSave, num)
		}
	}

	if len(saved.Xs) != len(saved.Ys) {
		return saved, fmt.Errorf("%w: %d x coordinates but %d y coordinates",
			ErrMalformedSave, len(saved.Xs), len(saved.Ys))
	}
	if saved.Length < 1 || saved.Length > len(saved.Xs) {
		return saved, fmt.Errorf("%w: length %d with %d cells", ErrMalformedSave, saved.Length, len(saved.Xs))
	}

	return saved, nil
}

func assignScalar(saved *domain.SavedSession, num protowire.Number, v uint64) error {
	const maxInt32 = 1<<31 - 1

	switch num {
	case fieldLength:
		if v > maxInt32 {
			return fmt.Errorf("%w: length %d out of range", ErrMalformedSave, v)
		}
		saved.Length = int(v)
	case fieldApplesEaten:
		if v > maxInt32 {
			return fmt.Errorf("%w: apples eaten %d out of range", ErrMalformedSave, v)
		}
		saved.ApplesEaten = int(v)
	case fieldHeading:
		dir, ok := domain.DirectionFromCode(rune(v))
		if !ok || v > 0x7f {
			return fmt.Errorf("%w: heading code %d", ErrMalformedSave, v)
		}
		saved.Heading = dir
	case fieldRunning:
		if v > 1 {
			return fmt.Errorf("%w: running flag %d", ErrMalformedSave, v)
		}
		saved.Running = protowire.DecodeBool(v)
	}
	return nil
}

func unpack(raw []byte) ([]int32, error) {
	values := make([]int32, 0, len(raw))
	for len(raw) > 0 {
		v, n := protowire.ConsumeVarint(raw)
		if n < 0 {
			return nil, malformed("packed coordinate", protowire.ParseError(n))
		}
		raw = raw[n:]

		decoded := protowire.DecodeZigZag(v)
		if decoded < -1<<31 || decoded > 1<<31-1 {
			return nil, fmt.Errorf("%w: coordinate %d out of range", ErrMalformedSave, decoded)
		}
		values = append(values, int32(decoded))
	}
	return values, nil
}

func malformed(what string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrMalformedSave, what, err)
}
