package lake

import (
	"context"
	"fmt"
)

// InsertServiceAlert stores an alert row together with its child rows.
func (l *Lake) InsertServiceAlert(ctx context.Context, alert ServiceAlertRow, periods []AlertActivePeriodRow, entities []AlertInformedEntityRow) error {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO realtime_service_alerts (service_alert_id, cause, effect, header_text, description_text)
		VALUES (?, ?, ?, ?, ?)`,
		alert.ID, alert.Cause, alert.Effect, alert.HeaderText, alert.DescriptionText); err != nil {
		return fmt.Errorf("insert service alert %s: %w", alert.ID, err)
	}
	for _, p := range periods {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO realtime_alert_active_periods (service_alert_id, start_timestamp, end_timestamp)
			VALUES (?, ?, ?)`,
			p.AlertID, p.Start, p.End); err != nil {
			return fmt.Errorf("insert active period for %s: %w", p.AlertID, err)
		}
	}
	for _, e := range entities {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO realtime_alert_informed_entities
			(service_alert_id, agency_id, route_id, route_type, stop_id,
			 trip_id, trip_route_id, trip_direction_id, trip_start_time, trip_start_date, trip_schedule_relationship)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.AlertID, e.AgencyID, e.RouteID, e.RouteType, e.StopID,
			e.Trip.TripID, e.Trip.RouteID, e.Trip.DirectionID, e.Trip.StartTime, e.Trip.StartDate, e.Trip.ScheduleRelationship); err != nil {
			return fmt.Errorf("insert informed entity for %s: %w", e.AlertID, err)
		}
	}
	return tx.Commit()
}

// InsertTripUpdate stores a trip update row together with its stop time
// update child rows.
func (l *Lake) InsertTripUpdate(ctx context.Context, update TripUpdateRow, stopTimes []StopTimeUpdateRow) error {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO realtime_trip_updates
		(trip_update_id, trip_id, trip_route_id, trip_direction_id, trip_start_time, trip_start_date, trip_schedule_relationship,
		 vehicle_id, vehicle_label, vehicle_license_plate, vehicle_wheelchair_accessible)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		update.ID,
		update.Trip.TripID, update.Trip.RouteID, update.Trip.DirectionID, update.Trip.StartTime, update.Trip.StartDate, update.Trip.ScheduleRelationship,
		update.Vehicle.VehicleID, update.Vehicle.Label, update.Vehicle.LicensePlate, update.Vehicle.WheelchairAccessible); err != nil {
		return fmt.Errorf("insert trip update %s: %w", update.ID, err)
	}
	for _, s := range stopTimes {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO realtime_trip_stop_time_updates
			(trip_update_id, stop_sequence, stop_id,
			 arrival_time, arrival_delay, arrival_uncertainty,
			 departure_time, departure_delay, departure_uncertainty,
			 schedule_relationship)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			s.TripUpdateID, s.StopSequence, s.StopID,
			s.ArrivalTime, s.ArrivalDelay, s.ArrivalUncertainty,
			s.DepartureTime, s.DepartureDelay, s.DepartureUncertainty,
			s.ScheduleRelationship); err != nil {
			return fmt.Errorf("insert stop time update for %s: %w", s.TripUpdateID, err)
		}
	}
	return tx.Commit()
}

// InsertVehiclePosition stores one vehicle position row.
func (l *Lake) InsertVehiclePosition(ctx context.Context, pos VehiclePositionRow) error {
	if _, err := l.db.ExecContext(ctx, `
		INSERT INTO realtime_vehicle_positions
		(vehicle_position_id,
		 trip_id, trip_route_id, trip_direction_id, trip_start_time, trip_start_date, trip_schedule_relationship,
		 vehicle_id, vehicle_label, vehicle_license_plate, vehicle_wheelchair_accessible,
		 position_latitude, position_longitude, position_bearing, position_odometer, position_speed,
		 current_stop_sequence, stop_id, current_status, timestamp, congestion_level)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		pos.ID,
		pos.Trip.TripID, pos.Trip.RouteID, pos.Trip.DirectionID, pos.Trip.StartTime, pos.Trip.StartDate, pos.Trip.ScheduleRelationship,
		pos.Vehicle.VehicleID, pos.Vehicle.Label, pos.Vehicle.LicensePlate, pos.Vehicle.WheelchairAccessible,
		pos.Latitude, pos.Longitude, pos.Bearing, pos.Odometer, pos.Speed,
		pos.CurrentStopSequence, pos.StopID, pos.CurrentStatus, pos.Timestamp, pos.CongestionLevel); err != nil {
		return fmt.Errorf("insert vehicle position %s: %w", pos.ID, err)
	}
	return nil
}

// ClearRealtime empties all realtime snapshot tables.
func (l *Lake) ClearRealtime(ctx context.Context) error {
	for _, tbl := range RealtimeTables {
		if _, err := l.db.ExecContext(ctx, "DELETE FROM "+tbl); err != nil {
			return fmt.Errorf("clear %s: %w", tbl, err)
		}
	}
	return nil
}
