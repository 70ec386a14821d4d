package registrypb

import (
	"fmt"

	"google.golang.org/grpc/encoding"
	encodingproto "google.golang.org/grpc/encoding/proto"
	"google.golang.org/grpc/mem"
)

// codec は gRPC 既定の proto コーデックを置き換えます。
// EmployeeRegistry のメッセージは protobuf ワイヤ形式で直接読み書きし、
// それ以外の protobuf メッセージ (ヘルスチェックなど) は元のコーデックへ委譲します。
type codec struct {
	fallback encoding.CodecV2
}

func (c codec) Marshal(v any) (mem.BufferSlice, error) {
	m, ok := v.(wireMessage)
	if !ok {
		return c.fallback.Marshal(v)
	}
	b, err := m.marshalWire(nil)
	if err != nil {
		return nil, fmt.Errorf("registrypb: marshal %T: %w", v, err)
	}
	return mem.BufferSlice{mem.SliceBuffer(b)}, nil
}

func (c codec) Unmarshal(data mem.BufferSlice, v any) error {
	m, ok := v.(wireMessage)
	if !ok {
		return c.fallback.Unmarshal(data, v)
	}
	if err := m.unmarshalWire(data.Materialize()); err != nil {
		return fmt.Errorf("registrypb: unmarshal %T: %w", v, err)
	}
	return nil
}

func (codec) Name() string {
	return encodingproto.Name
}

func init() {
	encoding.RegisterCodecV2(codec{fallback: encoding.GetCodecV2(encodingproto.Name)})
}
