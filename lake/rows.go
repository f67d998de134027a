package lake

// Nullable columns are modeled as pointers. A nil pointer means the column
// was NULL; a non-nil pointer to a zero value is still a present value and
// is emitted downstream.

// TripRef holds the six trip-reference columns shared by informed entities,
// trip updates and vehicle positions.
type TripRef struct {
	TripID               *string
	RouteID              *string
	DirectionID          *uint32
	StartTime            *string
	StartDate            *string
	ScheduleRelationship *string
}

// Empty reports whether all six trip-reference columns are NULL.
func (t TripRef) Empty() bool {
	return t.TripID == nil && t.RouteID == nil && t.DirectionID == nil &&
		t.StartTime == nil && t.StartDate == nil && t.ScheduleRelationship == nil
}

// VehicleRef holds the four vehicle-reference columns.
type VehicleRef struct {
	VehicleID            *string
	Label                *string
	LicensePlate         *string
	WheelchairAccessible *string
}

// Empty reports whether all four vehicle-reference columns are NULL.
func (v VehicleRef) Empty() bool {
	return v.VehicleID == nil && v.Label == nil && v.LicensePlate == nil &&
		v.WheelchairAccessible == nil
}

// ServiceAlertRow is one row of realtime_service_alerts. Cause and Effect
// hold GTFS-RT enum names such as CONSTRUCTION or DETOUR.
type ServiceAlertRow struct {
	ID              string
	Cause           string
	Effect          string
	HeaderText      string
	DescriptionText string
}

// AlertActivePeriodRow is one validity window of an alert.
type AlertActivePeriodRow struct {
	AlertID string
	Start   *int64
	End     *int64
}

// AlertInformedEntityRow scopes an alert to an agency, route, stop or trip.
type AlertInformedEntityRow struct {
	AlertID   string
	AgencyID  *string
	RouteID   *string
	RouteType *int32
	StopID    *string
	Trip      TripRef
}

// TripUpdateRow is one row of realtime_trip_updates.
type TripUpdateRow struct {
	ID      string
	Trip    TripRef
	Vehicle VehicleRef
}

// StopTimeUpdateRow is one predicted arrival/departure of a trip update.
type StopTimeUpdateRow struct {
	TripUpdateID         string
	StopSequence         *uint32
	StopID               *string
	ArrivalTime          *int64
	ArrivalDelay         *int32
	ArrivalUncertainty   *int32
	DepartureTime        *int64
	DepartureDelay       *int32
	DepartureUncertainty *int32
	ScheduleRelationship *string
}

// VehiclePositionRow is one row of realtime_vehicle_positions. Latitude and
// longitude are NOT NULL in the schema and therefore plain values.
type VehiclePositionRow struct {
	ID                  string
	Trip                TripRef
	Vehicle             VehicleRef
	Latitude            float32
	Longitude           float32
	Bearing             *float32
	Odometer            *float64
	Speed               *float32
	CurrentStopSequence *uint32
	StopID              *string
	CurrentStatus       *string
	Timestamp           *uint64
	CongestionLevel     *string
}
