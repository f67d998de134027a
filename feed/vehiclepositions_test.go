package feed

import (
	"testing"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"

	"github.com/theoremus-urban-solutions/gtfslake-realtime/lake"
)

func TestAssembleVehiclePositionsMinimal(t *testing.T) {
	positions := []lake.VehiclePositionRow{
		{ID: "VP1", Latitude: 52.52, Longitude: 13.405},
	}

	entities, err := AssembleVehiclePositions(positions)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if len(entities) != 1 || entities[0].GetId() != "VP1" {
		t.Fatalf("entities = %+v", entities)
	}
	vp := entities[0].GetVehicle()
	if vp.GetPosition().GetLatitude() != 52.52 || vp.GetPosition().GetLongitude() != 13.405 {
		t.Errorf("position = %+v", vp.GetPosition())
	}
	if vp.Trip != nil || vp.Vehicle != nil {
		t.Errorf("descriptors emitted without reference columns: %+v", vp)
	}
	if vp.CurrentStopSequence != nil || vp.StopId != nil || vp.CurrentStatus != nil ||
		vp.Timestamp != nil || vp.CongestionLevel != nil {
		t.Errorf("optional fields emitted without values: %+v", vp)
	}
	if vp.GetPosition().Bearing != nil || vp.GetPosition().Odometer != nil || vp.GetPosition().Speed != nil {
		t.Errorf("optional position fields emitted without values: %+v", vp.GetPosition())
	}
}

func TestAssembleVehiclePositionsFull(t *testing.T) {
	positions := []lake.VehiclePositionRow{
		{
			ID:                  "VP1",
			Trip:                lake.TripRef{TripID: str("T1")},
			Vehicle:             lake.VehicleRef{VehicleID: str("V1")},
			Latitude:            48.137,
			Longitude:           11.575,
			Bearing:             f32(270),
			Odometer:            func() *float64 { v := 9876.5; return &v }(),
			Speed:               f32(12.5),
			CurrentStopSequence: u32(7),
			StopID:              str("S3"),
			CurrentStatus:       str("STOPPED_AT"),
			Timestamp:           u64(1756380000),
			CongestionLevel:     str("CONGESTION"),
		},
	}

	entities, err := AssembleVehiclePositions(positions)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	vp := entities[0].GetVehicle()
	if vp.GetTrip().GetTripId() != "T1" || vp.GetVehicle().GetId() != "V1" {
		t.Errorf("descriptors = %+v / %+v", vp.GetTrip(), vp.GetVehicle())
	}
	pos := vp.GetPosition()
	if pos.GetBearing() != 270 || pos.GetOdometer() != 9876.5 || pos.GetSpeed() != 12.5 {
		t.Errorf("position = %+v", pos)
	}
	if vp.GetCurrentStopSequence() != 7 || vp.GetStopId() != "S3" || vp.GetTimestamp() != 1756380000 {
		t.Errorf("progress fields = %+v", vp)
	}
	if vp.GetCurrentStatus() != gtfsrtpb.VehiclePosition_STOPPED_AT {
		t.Errorf("current status = %v", vp.GetCurrentStatus())
	}
	if vp.GetCongestionLevel() != gtfsrtpb.VehiclePosition_CONGESTION {
		t.Errorf("congestion level = %v", vp.GetCongestionLevel())
	}
}

func TestAssembleVehiclePositionsUnknownEnum(t *testing.T) {
	positions := []lake.VehiclePositionRow{
		{ID: "VP1", Latitude: 1, Longitude: 2, CurrentStatus: str("PARKED")},
	}
	if _, err := AssembleVehiclePositions(positions); err == nil {
		t.Fatal("expected error for unknown vehicle stop status name")
	}
	positions[0].CurrentStatus = nil
	positions[0].CongestionLevel = str("GRIDLOCKED")
	if _, err := AssembleVehiclePositions(positions); err == nil {
		t.Fatal("expected error for unknown congestion level name")
	}
}

func TestAssembleVehiclePositionsZeroCoordinates(t *testing.T) {
	// Null Island is a legitimate coordinate pair and must be emitted.
	entities, err := AssembleVehiclePositions([]lake.VehiclePositionRow{{ID: "VP1"}})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	pos := entities[0].GetVehicle().GetPosition()
	if pos.Latitude == nil || pos.Longitude == nil {
		t.Fatalf("coordinates dropped: %+v", pos)
	}
}
