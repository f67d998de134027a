package feed

import (
	"fmt"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"github.com/theoremus-urban-solutions/gtfslake-realtime/lake"
)

// AssembleTripUpdates joins trip update rows with their stop time update
// child rows and returns one feed entity per trip update, in the parent row
// order.
func AssembleTripUpdates(updates []lake.TripUpdateRow, stopTimes []lake.StopTimeUpdateRow) ([]*gtfsrtpb.FeedEntity, error) {
	stopTimesByUpdate := map[string][]lake.StopTimeUpdateRow{}
	for _, s := range stopTimes {
		stopTimesByUpdate[s.TripUpdateID] = append(stopTimesByUpdate[s.TripUpdateID], s)
	}

	out := make([]*gtfsrtpb.FeedEntity, 0, len(updates))
	for _, row := range updates {
		tu, err := buildTripUpdate(row, stopTimesByUpdate[row.ID])
		if err != nil {
			return nil, fmt.Errorf("trip update %s: %w", row.ID, err)
		}
		out = append(out, &gtfsrtpb.FeedEntity{
			Id:         proto.String(row.ID),
			TripUpdate: tu,
		})
	}
	return out, nil
}

func buildTripUpdate(row lake.TripUpdateRow, stopTimes []lake.StopTimeUpdateRow) (*gtfsrtpb.TripUpdate, error) {
	trip, err := BuildTripDescriptor(row.Trip)
	if err != nil {
		return nil, err
	}
	vehicle, err := BuildVehicleDescriptor(row.Vehicle)
	if err != nil {
		return nil, err
	}
	// Trip may end up nil here; the serializer rejects the message then,
	// since the schema requires a trip descriptor on every trip update.
	tu := &gtfsrtpb.TripUpdate{
		Trip:           trip,
		Vehicle:        vehicle,
		StopTimeUpdate: make([]*gtfsrtpb.TripUpdate_StopTimeUpdate, 0, len(stopTimes)),
	}
	for _, s := range stopTimes {
		stu, err := buildStopTimeUpdate(s)
		if err != nil {
			return nil, err
		}
		tu.StopTimeUpdate = append(tu.StopTimeUpdate, stu)
	}
	return tu, nil
}

func buildStopTimeUpdate(row lake.StopTimeUpdateRow) (*gtfsrtpb.TripUpdate_StopTimeUpdate, error) {
	stu := &gtfsrtpb.TripUpdate_StopTimeUpdate{
		StopId: row.StopID,
	}
	if row.StopSequence != nil {
		seq := *row.StopSequence
		stu.StopSequence = &seq
	}

	// Arrival and departure blocks are always attached and carry exactly
	// the present-valued subset of time/delay/uncertainty. A zero value is
	// present; only NULL is absent.
	arrival := &gtfsrtpb.TripUpdate_StopTimeEvent{
		Time:        row.ArrivalTime,
		Delay:       row.ArrivalDelay,
		Uncertainty: row.ArrivalUncertainty,
	}
	departure := &gtfsrtpb.TripUpdate_StopTimeEvent{
		Time:        row.DepartureTime,
		Delay:       row.DepartureDelay,
		Uncertainty: row.DepartureUncertainty,
	}
	stu.Arrival = arrival
	stu.Departure = departure

	// schedule_relationship is emitted on every stop time update; a NULL
	// column maps to the protocol default.
	rel := gtfsrtpb.TripUpdate_StopTimeUpdate_SCHEDULED
	if row.ScheduleRelationship != nil {
		var err error
		rel, err = stopTimeScheduleRelationship(*row.ScheduleRelationship)
		if err != nil {
			return nil, err
		}
	}
	stu.ScheduleRelationship = &rel
	return stu, nil
}
