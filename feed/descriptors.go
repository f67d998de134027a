package feed

import (
	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"

	"github.com/theoremus-urban-solutions/gtfslake-realtime/lake"
)

// BuildTripDescriptor turns the trip-reference columns of a row into a
// TripDescriptor. It returns (nil, nil) when all six columns are NULL; the
// descriptor is then omitted from output entirely.
func BuildTripDescriptor(ref lake.TripRef) (*gtfsrtpb.TripDescriptor, error) {
	if ref.Empty() {
		return nil, nil
	}
	td := &gtfsrtpb.TripDescriptor{
		TripId:    ref.TripID,
		RouteId:   ref.RouteID,
		StartTime: ref.StartTime,
		StartDate: ref.StartDate,
	}
	if ref.DirectionID != nil {
		d := *ref.DirectionID
		td.DirectionId = &d
	}
	if ref.ScheduleRelationship != nil {
		rel, err := tripScheduleRelationship(*ref.ScheduleRelationship)
		if err != nil {
			return nil, err
		}
		td.ScheduleRelationship = &rel
	}
	return td, nil
}

// BuildVehicleDescriptor turns the vehicle-reference columns of a row into a
// VehicleDescriptor, following the same all-NULL omission rule over its four
// columns.
func BuildVehicleDescriptor(ref lake.VehicleRef) (*gtfsrtpb.VehicleDescriptor, error) {
	if ref.Empty() {
		return nil, nil
	}
	vd := &gtfsrtpb.VehicleDescriptor{
		Id:           ref.VehicleID,
		Label:        ref.Label,
		LicensePlate: ref.LicensePlate,
	}
	if ref.WheelchairAccessible != nil {
		wa, err := wheelchairAccessible(*ref.WheelchairAccessible)
		if err != nil {
			return nil, err
		}
		vd.WheelchairAccessible = &wa
	}
	return vd, nil
}
