package feed

import (
	"testing"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"

	"github.com/theoremus-urban-solutions/gtfslake-realtime/lake"
)

func TestAssembleTripUpdates(t *testing.T) {
	updates := []lake.TripUpdateRow{
		{
			ID:      "TU1",
			Trip:    lake.TripRef{TripID: str("T1"), RouteID: str("R1")},
			Vehicle: lake.VehicleRef{VehicleID: str("V1")},
		},
	}
	stopTimes := []lake.StopTimeUpdateRow{
		{TripUpdateID: "TU1", StopSequence: u32(1), StopID: str("S1"), ArrivalDelay: i32(120)},
		{TripUpdateID: "TU1", StopSequence: u32(2), StopID: str("S2"), ArrivalTime: i64(1756380000), DepartureTime: i64(1756380060)},
	}

	entities, err := AssembleTripUpdates(updates, stopTimes)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if len(entities) != 1 || entities[0].GetId() != "TU1" {
		t.Fatalf("entities = %+v", entities)
	}
	tu := entities[0].GetTripUpdate()
	if tu.GetTrip().GetTripId() != "T1" || tu.GetVehicle().GetId() != "V1" {
		t.Errorf("descriptors = %+v / %+v", tu.GetTrip(), tu.GetVehicle())
	}
	if len(tu.GetStopTimeUpdate()) != 2 {
		t.Fatalf("stop time updates = %d", len(tu.GetStopTimeUpdate()))
	}

	first := tu.GetStopTimeUpdate()[0]
	if first.GetStopSequence() != 1 || first.GetStopId() != "S1" {
		t.Errorf("first stop time = %+v", first)
	}
	if first.Arrival.Delay == nil || first.GetArrival().GetDelay() != 120 {
		t.Errorf("arrival delay = %+v", first.Arrival)
	}
	if first.Arrival.Time != nil || first.Arrival.Uncertainty != nil {
		t.Errorf("absent arrival fields emitted: %+v", first.Arrival)
	}

	second := tu.GetStopTimeUpdate()[1]
	if second.Arrival.Time == nil || *second.Arrival.Time != 1756380000 {
		t.Errorf("arrival time = %+v", second.Arrival)
	}
	if second.Departure.Time == nil || *second.Departure.Time != 1756380060 {
		t.Errorf("departure time = %+v", second.Departure)
	}
}

func TestStopTimeUpdateZeroDelayIsPresent(t *testing.T) {
	stu, err := buildStopTimeUpdate(lake.StopTimeUpdateRow{ArrivalDelay: i32(0)})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if stu.Arrival.Delay == nil {
		t.Fatal("zero delay dropped")
	}
	if *stu.Arrival.Delay != 0 {
		t.Errorf("delay = %d", *stu.Arrival.Delay)
	}
}

func TestStopTimeUpdateScheduleRelationshipDefault(t *testing.T) {
	stu, err := buildStopTimeUpdate(lake.StopTimeUpdateRow{StopID: str("S1")})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if stu.ScheduleRelationship == nil {
		t.Fatal("schedule relationship not set")
	}
	if *stu.ScheduleRelationship != gtfsrtpb.TripUpdate_StopTimeUpdate_SCHEDULED {
		t.Errorf("schedule relationship = %v", *stu.ScheduleRelationship)
	}

	stu, err = buildStopTimeUpdate(lake.StopTimeUpdateRow{ScheduleRelationship: str("NO_DATA")})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if *stu.ScheduleRelationship != gtfsrtpb.TripUpdate_StopTimeUpdate_NO_DATA {
		t.Errorf("schedule relationship = %v", *stu.ScheduleRelationship)
	}
}

func TestAssembleTripUpdatesUnknownEnum(t *testing.T) {
	updates := []lake.TripUpdateRow{{ID: "TU1", Trip: lake.TripRef{TripID: str("T1")}}}
	stopTimes := []lake.StopTimeUpdateRow{{TripUpdateID: "TU1", ScheduleRelationship: str("POSTPONED")}}
	if _, err := AssembleTripUpdates(updates, stopTimes); err == nil {
		t.Fatal("expected error for unknown schedule relationship name")
	}
}

func TestAssembleTripUpdatesWithoutTripReference(t *testing.T) {
	// Assembly succeeds; the schema violation surfaces at serialization.
	entities, err := AssembleTripUpdates([]lake.TripUpdateRow{{ID: "TU1"}}, nil)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if entities[0].GetTripUpdate().Trip != nil {
		t.Errorf("trip descriptor = %+v, want nil", entities[0].GetTripUpdate().Trip)
	}
}
