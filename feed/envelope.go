package feed

import (
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

// Version is the GTFS-Realtime protocol version emitted in every header.
const Version = "2.0"

// NewFeedMessage wraps an entity sequence in the fixed feed envelope. Every
// response is a full dataset snapshot; the header timestamp is the assembly
// time, not a timestamp carried by the data.
func NewFeedMessage(entities []*gtfsrtpb.FeedEntity, now time.Time) *gtfsrtpb.FeedMessage {
	incrementality := gtfsrtpb.FeedHeader_FULL_DATASET
	return &gtfsrtpb.FeedMessage{
		Header: &gtfsrtpb.FeedHeader{
			GtfsRealtimeVersion: proto.String(Version),
			Incrementality:      &incrementality,
			Timestamp:           proto.Uint64(uint64(now.Unix())),
		},
		Entity: entities,
	}
}
