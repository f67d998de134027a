package feed

import (
	"fmt"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// Format selects the wire encoding of a feed response.
type Format string

const (
	// FormatPBF is the protobuf binary encoding, the default.
	FormatPBF Format = "pbf"
	// FormatJSON is the JSON encoding mirroring the protobuf schema.
	FormatJSON Format = "json"
)

// ParseFormat interprets the f query parameter. Only "json" is recognized;
// an absent or unrecognized value selects the binary encoding.
func ParseFormat(s string) Format {
	if s == "json" {
		return FormatJSON
	}
	return FormatPBF
}

// ContentType returns the response MIME type for the format.
func (f Format) ContentType() string {
	if f == FormatJSON {
		return "application/json"
	}
	return "application/octet-stream"
}

// Render serializes a feed message in the requested format. Binary output is
// deterministic for a fixed message. A message violating the protocol
// schema, such as a trip update without a trip descriptor, fails in either
// format; no partial payload is returned.
func Render(msg *gtfsrtpb.FeedMessage, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		buf, err := protojson.MarshalOptions{UseProtoNames: true}.Marshal(msg)
		if err != nil {
			return nil, fmt.Errorf("encode feed message as json: %w", err)
		}
		return buf, nil
	default:
		buf, err := proto.MarshalOptions{Deterministic: true}.Marshal(msg)
		if err != nil {
			return nil, fmt.Errorf("encode feed message: %w", err)
		}
		return buf, nil
	}
}
