package document

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToStruct converts a decoded document to a protobuf Struct, for callers
// that pass records between services as google.protobuf.Struct.
func ToStruct(doc map[string]any) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(doc)
	if err != nil {
		return nil, fmt.Errorf("converting document to struct: %w", err)
	}
	return s, nil
}

// FromStruct converts a protobuf Struct back to the shape Decode produces.
// A nil Struct yields an empty document.
func FromStruct(s *structpb.Struct) map[string]any {
	if s == nil {
		return map[string]any{}
	}
	return s.AsMap()
}

// ValueOf converts any extractor result to a protobuf Value.
func ValueOf(v any) (*structpb.Value, error) {
	pv, err := structpb.NewValue(normalize(v))
	if err != nil {
		return nil, fmt.Errorf("converting value: %w", err)
	}
	return pv, nil
}

// MarshalProtoJSON renders v through protojson, which gives stable key
// ordering.
func MarshalProtoJSON(v any) ([]byte, error) {
	pv, err := ValueOf(v)
	if err != nil {
		return nil, err
	}
	return protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(pv)
}

// UnmarshalProtoJSON decodes a document from protojson Struct encoding.
func UnmarshalProtoJSON(data []byte) (map[string]any, error) {
	var s structpb.Struct
	if err := protojson.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding protojson: %w", err)
	}
	return FromStruct(&s), nil
}

// normalize rewrites the typed slices and maps our packages return into
// the []any and map[string]any shapes structpb accepts. Other composite
// values go through their JSON encoding.
func normalize(v any) any {
	switch val := v.(type) {
	case []string:
		out := make([]any, len(val))
		for i, s := range val {
			out[i] = s
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}
		return out
	case map[string][]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalize(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalize(item)
		}
		return out
	case nil, bool, string, float64, float32, int, int32, int64, uint, uint32, uint64, json.Number:
		return v
	}
	data, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return v
	}
	return generic
}
