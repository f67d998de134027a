package feed

import (
	"fmt"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
)

// Enum columns store GTFS-RT enum names (CONSTRUCTION, DETOUR, SKIPPED, ...).
// Resolution goes through the generated value maps so the accepted names
// always match the protocol schema exactly.

func alertCause(name string) (gtfsrtpb.Alert_Cause, error) {
	v, ok := gtfsrtpb.Alert_Cause_value[name]
	if !ok {
		return 0, fmt.Errorf("unknown alert cause %q", name)
	}
	return gtfsrtpb.Alert_Cause(v), nil
}

func alertEffect(name string) (gtfsrtpb.Alert_Effect, error) {
	v, ok := gtfsrtpb.Alert_Effect_value[name]
	if !ok {
		return 0, fmt.Errorf("unknown alert effect %q", name)
	}
	return gtfsrtpb.Alert_Effect(v), nil
}

func tripScheduleRelationship(name string) (gtfsrtpb.TripDescriptor_ScheduleRelationship, error) {
	v, ok := gtfsrtpb.TripDescriptor_ScheduleRelationship_value[name]
	if !ok {
		return 0, fmt.Errorf("unknown trip schedule relationship %q", name)
	}
	return gtfsrtpb.TripDescriptor_ScheduleRelationship(v), nil
}

func stopTimeScheduleRelationship(name string) (gtfsrtpb.TripUpdate_StopTimeUpdate_ScheduleRelationship, error) {
	v, ok := gtfsrtpb.TripUpdate_StopTimeUpdate_ScheduleRelationship_value[name]
	if !ok {
		return 0, fmt.Errorf("unknown stop time schedule relationship %q", name)
	}
	return gtfsrtpb.TripUpdate_StopTimeUpdate_ScheduleRelationship(v), nil
}

func wheelchairAccessible(name string) (gtfsrtpb.VehicleDescriptor_WheelchairAccessible, error) {
	v, ok := gtfsrtpb.VehicleDescriptor_WheelchairAccessible_value[name]
	if !ok {
		return 0, fmt.Errorf("unknown wheelchair accessibility %q", name)
	}
	return gtfsrtpb.VehicleDescriptor_WheelchairAccessible(v), nil
}

func vehicleStopStatus(name string) (gtfsrtpb.VehiclePosition_VehicleStopStatus, error) {
	v, ok := gtfsrtpb.VehiclePosition_VehicleStopStatus_value[name]
	if !ok {
		return 0, fmt.Errorf("unknown vehicle stop status %q", name)
	}
	return gtfsrtpb.VehiclePosition_VehicleStopStatus(v), nil
}

func congestionLevel(name string) (gtfsrtpb.VehiclePosition_CongestionLevel, error) {
	v, ok := gtfsrtpb.VehiclePosition_CongestionLevel_value[name]
	if !ok {
		return 0, fmt.Errorf("unknown congestion level %q", name)
	}
	return gtfsrtpb.VehiclePosition_CongestionLevel(v), nil
}
