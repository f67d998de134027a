package feed

import (
	"fmt"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"github.com/theoremus-urban-solutions/gtfslake-realtime/lake"
)

// AssembleVehiclePositions returns one feed entity per vehicle position row,
// in row order. Vehicle positions have no child rows to join.
func AssembleVehiclePositions(positions []lake.VehiclePositionRow) ([]*gtfsrtpb.FeedEntity, error) {
	out := make([]*gtfsrtpb.FeedEntity, 0, len(positions))
	for _, row := range positions {
		vp, err := buildVehiclePosition(row)
		if err != nil {
			return nil, fmt.Errorf("vehicle position %s: %w", row.ID, err)
		}
		out = append(out, &gtfsrtpb.FeedEntity{
			Id:      proto.String(row.ID),
			Vehicle: vp,
		})
	}
	return out, nil
}

func buildVehiclePosition(row lake.VehiclePositionRow) (*gtfsrtpb.VehiclePosition, error) {
	trip, err := BuildTripDescriptor(row.Trip)
	if err != nil {
		return nil, err
	}
	vehicle, err := BuildVehicleDescriptor(row.Vehicle)
	if err != nil {
		return nil, err
	}
	vp := &gtfsrtpb.VehiclePosition{
		Trip:    trip,
		Vehicle: vehicle,
		Position: &gtfsrtpb.Position{
			Latitude:  proto.Float32(row.Latitude),
			Longitude: proto.Float32(row.Longitude),
			Bearing:   row.Bearing,
			Odometer:  row.Odometer,
			Speed:     row.Speed,
		},
		StopId:    row.StopID,
		Timestamp: row.Timestamp,
	}
	if row.CurrentStopSequence != nil {
		seq := *row.CurrentStopSequence
		vp.CurrentStopSequence = &seq
	}
	if row.CurrentStatus != nil {
		status, err := vehicleStopStatus(*row.CurrentStatus)
		if err != nil {
			return nil, err
		}
		vp.CurrentStatus = &status
	}
	if row.CongestionLevel != nil {
		level, err := congestionLevel(*row.CongestionLevel)
		if err != nil {
			return nil, err
		}
		vp.CongestionLevel = &level
	}
	return vp, nil
}
