package registrypb

import (
	"errors"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var errUnexpectedWireType = errors.New("registrypb: unexpected wire type")

// wireMessage は EmployeeRegistry のメッセージを protobuf ワイヤ形式で読み書きします。
type wireMessage interface {
	marshalWire(b []byte) ([]byte, error)
	unmarshalWire(b []byte) error
}

// proto3 と同様に既定値のフィールドは出力しません。
func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(v))
}

func appendMessage(b []byte, num protowire.Number, raw []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, raw)
}

func appendTimestamp(b []byte, num protowire.Number, ts *timestamppb.Timestamp) ([]byte, error) {
	if ts == nil {
		return b, nil
	}
	raw, err := proto.Marshal(ts)
	if err != nil {
		return nil, err
	}
	return appendMessage(b, num, raw), nil
}

func appendEmployee(b []byte, num protowire.Number, e *Employee) ([]byte, error) {
	if e == nil {
		return b, nil
	}
	raw, err := e.marshalWire(nil)
	if err != nil {
		return nil, err
	}
	return appendMessage(b, num, raw), nil
}

// rangeFields は b に含まれるフィールドを順に fn へ渡します。v はタグを除いた値の部分です。
func rangeFields(b []byte, fn func(num protowire.Number, typ protowire.Type, v []byte) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		m := protowire.ConsumeFieldValue(num, typ, b)
		if m < 0 {
			return protowire.ParseError(m)
		}
		if err := fn(num, typ, b[:m]); err != nil {
			return err
		}
		b = b[m:]
	}
	return nil
}

func consumeBytes(typ protowire.Type, v []byte) ([]byte, error) {
	if typ != protowire.BytesType {
		return nil, errUnexpectedWireType
	}
	raw, n := protowire.ConsumeBytes(v)
	if n < 0 {
		return nil, protowire.ParseError(n)
	}
	return raw, nil
}

func consumeString(typ protowire.Type, v []byte) (string, error) {
	raw, err := consumeBytes(typ, v)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func consumeBool(typ protowire.Type, v []byte) (bool, error) {
	if typ != protowire.VarintType {
		return false, errUnexpectedWireType
	}
	x, n := protowire.ConsumeVarint(v)
	if n < 0 {
		return false, protowire.ParseError(n)
	}
	return protowire.DecodeBool(x), nil
}

func consumeTimestamp(typ protowire.Type, v []byte) (*timestamppb.Timestamp, error) {
	raw, err := consumeBytes(typ, v)
	if err != nil {
		return nil, err
	}
	ts := &timestamppb.Timestamp{}
	if err := proto.Unmarshal(raw, ts); err != nil {
		return nil, err
	}
	return ts, nil
}

func consumeEmployee(typ protowire.Type, v []byte) (*Employee, error) {
	raw, err := consumeBytes(typ, v)
	if err != nil {
		return nil, err
	}
	e := &Employee{}
	if err := e.unmarshalWire(raw); err != nil {
		return nil, err
	}
	return e, nil
}

func unmarshalAddress(b []byte, address *string) error {
	return rangeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) error {
		if num != 1 {
			return nil
		}
		var err error
		*address, err = consumeString(typ, v)
		return err
	})
}

func unmarshalEmployeeField(b []byte, employee **Employee) error {
	return rangeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) error {
		if num != 1 {
			return nil
		}
		e, err := consumeEmployee(typ, v)
		if err != nil {
			return err
		}
		*employee = e
		return nil
	})
}
