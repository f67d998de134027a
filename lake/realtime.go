package lake

import (
	"context"
	"database/sql"
	"fmt"
)

// FetchServiceAlerts returns the service alert snapshot: the alert rows plus
// their active period and informed entity child rows. All three row sets are
// read inside one transaction and keep insertion order.
func (l *Lake) FetchServiceAlerts(ctx context.Context) ([]ServiceAlertRow, []AlertActivePeriodRow, []AlertInformedEntityRow, error) {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("begin snapshot read: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	alerts, err := scanServiceAlerts(ctx, tx)
	if err != nil {
		return nil, nil, nil, err
	}
	periods, err := scanActivePeriods(ctx, tx)
	if err != nil {
		return nil, nil, nil, err
	}
	entities, err := scanInformedEntities(ctx, tx)
	if err != nil {
		return nil, nil, nil, err
	}
	return alerts, periods, entities, nil
}

// FetchTripUpdates returns the trip update snapshot: the trip update rows
// plus their stop time update child rows, read inside one transaction.
func (l *Lake) FetchTripUpdates(ctx context.Context) ([]TripUpdateRow, []StopTimeUpdateRow, error) {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("begin snapshot read: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	updates, err := scanTripUpdates(ctx, tx)
	if err != nil {
		return nil, nil, err
	}
	stopTimes, err := scanStopTimeUpdates(ctx, tx)
	if err != nil {
		return nil, nil, err
	}
	return updates, stopTimes, nil
}

// FetchVehiclePositions returns the vehicle position snapshot.
func (l *Lake) FetchVehiclePositions(ctx context.Context) ([]VehiclePositionRow, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT vehicle_position_id,
		       trip_id, trip_route_id, trip_direction_id, trip_start_time, trip_start_date, trip_schedule_relationship,
		       vehicle_id, vehicle_label, vehicle_license_plate, vehicle_wheelchair_accessible,
		       position_latitude, position_longitude, position_bearing, position_odometer, position_speed,
		       current_stop_sequence, stop_id, current_status, timestamp, congestion_level
		FROM realtime_vehicle_positions ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query vehicle positions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []VehiclePositionRow
	for rows.Next() {
		var r VehiclePositionRow
		var trip nullTripRef
		var veh nullVehicleRef
		var bearing, odometer, speed sql.NullFloat64
		var stopSeq, ts sql.NullInt64
		var stopID, status, congestion sql.NullString
		if err := rows.Scan(&r.ID,
			&trip.tripID, &trip.routeID, &trip.directionID, &trip.startTime, &trip.startDate, &trip.schedRel,
			&veh.vehicleID, &veh.label, &veh.licensePlate, &veh.wheelchair,
			&r.Latitude, &r.Longitude, &bearing, &odometer, &speed,
			&stopSeq, &stopID, &status, &ts, &congestion); err != nil {
			return nil, fmt.Errorf("scan vehicle position: %w", err)
		}
		r.Trip = trip.ref()
		r.Vehicle = veh.ref()
		r.Bearing = f32Ptr(bearing)
		r.Odometer = f64Ptr(odometer)
		r.Speed = f32Ptr(speed)
		r.CurrentStopSequence = u32Ptr(stopSeq)
		r.StopID = strPtr(stopID)
		r.CurrentStatus = strPtr(status)
		r.Timestamp = u64Ptr(ts)
		r.CongestionLevel = strPtr(congestion)
		out = append(out, r)
	}
	return out, rows.Err()
}

func scanServiceAlerts(ctx context.Context, tx *sql.Tx) ([]ServiceAlertRow, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT service_alert_id, cause, effect, header_text, description_text
		FROM realtime_service_alerts ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query service alerts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []ServiceAlertRow
	for rows.Next() {
		var r ServiceAlertRow
		if err := rows.Scan(&r.ID, &r.Cause, &r.Effect, &r.HeaderText, &r.DescriptionText); err != nil {
			return nil, fmt.Errorf("scan service alert: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func scanActivePeriods(ctx context.Context, tx *sql.Tx) ([]AlertActivePeriodRow, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT service_alert_id, start_timestamp, end_timestamp
		FROM realtime_alert_active_periods ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query active periods: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []AlertActivePeriodRow
	for rows.Next() {
		var r AlertActivePeriodRow
		var start, end sql.NullInt64
		if err := rows.Scan(&r.AlertID, &start, &end); err != nil {
			return nil, fmt.Errorf("scan active period: %w", err)
		}
		r.Start = i64Ptr(start)
		r.End = i64Ptr(end)
		out = append(out, r)
	}
	return out, rows.Err()
}

func scanInformedEntities(ctx context.Context, tx *sql.Tx) ([]AlertInformedEntityRow, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT service_alert_id, agency_id, route_id, route_type, stop_id,
		       trip_id, trip_route_id, trip_direction_id, trip_start_time, trip_start_date, trip_schedule_relationship
		FROM realtime_alert_informed_entities ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query informed entities: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []AlertInformedEntityRow
	for rows.Next() {
		var r AlertInformedEntityRow
		var agency, route, stop sql.NullString
		var routeType sql.NullInt64
		var trip nullTripRef
		if err := rows.Scan(&r.AlertID, &agency, &route, &routeType, &stop,
			&trip.tripID, &trip.routeID, &trip.directionID, &trip.startTime, &trip.startDate, &trip.schedRel); err != nil {
			return nil, fmt.Errorf("scan informed entity: %w", err)
		}
		r.AgencyID = strPtr(agency)
		r.RouteID = strPtr(route)
		r.RouteType = i32Ptr(routeType)
		r.StopID = strPtr(stop)
		r.Trip = trip.ref()
		out = append(out, r)
	}
	return out, rows.Err()
}

func scanTripUpdates(ctx context.Context, tx *sql.Tx) ([]TripUpdateRow, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT trip_update_id,
		       trip_id, trip_route_id, trip_direction_id, trip_start_time, trip_start_date, trip_schedule_relationship,
		       vehicle_id, vehicle_label, vehicle_license_plate, vehicle_wheelchair_accessible
		FROM realtime_trip_updates ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query trip updates: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []TripUpdateRow
	for rows.Next() {
		var r TripUpdateRow
		var trip nullTripRef
		var veh nullVehicleRef
		if err := rows.Scan(&r.ID,
			&trip.tripID, &trip.routeID, &trip.directionID, &trip.startTime, &trip.startDate, &trip.schedRel,
			&veh.vehicleID, &veh.label, &veh.licensePlate, &veh.wheelchair); err != nil {
			return nil, fmt.Errorf("scan trip update: %w", err)
		}
		r.Trip = trip.ref()
		r.Vehicle = veh.ref()
		out = append(out, r)
	}
	return out, rows.Err()
}

func scanStopTimeUpdates(ctx context.Context, tx *sql.Tx) ([]StopTimeUpdateRow, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT trip_update_id, stop_sequence, stop_id,
		       arrival_time, arrival_delay, arrival_uncertainty,
		       departure_time, departure_delay, departure_uncertainty,
		       schedule_relationship
		FROM realtime_trip_stop_time_updates ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query stop time updates: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []StopTimeUpdateRow
	for rows.Next() {
		var r StopTimeUpdateRow
		var stopSeq sql.NullInt64
		var stopID, schedRel sql.NullString
		var arrTime, arrDelay, arrUnc, depTime, depDelay, depUnc sql.NullInt64
		if err := rows.Scan(&r.TripUpdateID, &stopSeq, &stopID,
			&arrTime, &arrDelay, &arrUnc,
			&depTime, &depDelay, &depUnc,
			&schedRel); err != nil {
			return nil, fmt.Errorf("scan stop time update: %w", err)
		}
		r.StopSequence = u32Ptr(stopSeq)
		r.StopID = strPtr(stopID)
		r.ArrivalTime = i64Ptr(arrTime)
		r.ArrivalDelay = i32Ptr(arrDelay)
		r.ArrivalUncertainty = i32Ptr(arrUnc)
		r.DepartureTime = i64Ptr(depTime)
		r.DepartureDelay = i32Ptr(depDelay)
		r.DepartureUncertainty = i32Ptr(depUnc)
		r.ScheduleRelationship = strPtr(schedRel)
		out = append(out, r)
	}
	return out, rows.Err()
}

// nullTripRef collects the scanned trip-reference columns before conversion
// to pointer form.
type nullTripRef struct {
	tripID      sql.NullString
	routeID     sql.NullString
	directionID sql.NullInt64
	startTime   sql.NullString
	startDate   sql.NullString
	schedRel    sql.NullString
}

func (n nullTripRef) ref() TripRef {
	return TripRef{
		TripID:               strPtr(n.tripID),
		RouteID:              strPtr(n.routeID),
		DirectionID:          u32Ptr(n.directionID),
		StartTime:            strPtr(n.startTime),
		StartDate:            strPtr(n.startDate),
		ScheduleRelationship: strPtr(n.schedRel),
	}
}

type nullVehicleRef struct {
	vehicleID    sql.NullString
	label        sql.NullString
	licensePlate sql.NullString
	wheelchair   sql.NullString
}

func (n nullVehicleRef) ref() VehicleRef {
	return VehicleRef{
		VehicleID:            strPtr(n.vehicleID),
		Label:                strPtr(n.label),
		LicensePlate:         strPtr(n.licensePlate),
		WheelchairAccessible: strPtr(n.wheelchair),
	}
}

func strPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func i64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}

func i32Ptr(v sql.NullInt64) *int32 {
	if !v.Valid {
		return nil
	}
	n := int32(v.Int64)
	return &n
}

func u32Ptr(v sql.NullInt64) *uint32 {
	if !v.Valid {
		return nil
	}
	n := uint32(v.Int64)
	return &n
}

func u64Ptr(v sql.NullInt64) *uint64 {
	if !v.Valid {
		return nil
	}
	n := uint64(v.Int64)
	return &n
}

func f32Ptr(v sql.NullFloat64) *float32 {
	if !v.Valid {
		return nil
	}
	n := float32(v.Float64)
	return &n
}

func f64Ptr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	n := v.Float64
	return &n
}
