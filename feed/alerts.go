package feed

import (
	"fmt"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"github.com/theoremus-urban-solutions/gtfslake-realtime/lake"
)

// translationLanguage is the language tag attached to alert text blocks.
const translationLanguage = "de-DE"

// AssembleServiceAlerts joins alert rows with their active period and
// informed entity child rows and returns one feed entity per alert, in the
// alert row order. Child rows keep their own order; a child row whose alert
// id matches no alert is dropped.
func AssembleServiceAlerts(alerts []lake.ServiceAlertRow, periods []lake.AlertActivePeriodRow, entities []lake.AlertInformedEntityRow) ([]*gtfsrtpb.FeedEntity, error) {
	periodsByAlert := map[string][]lake.AlertActivePeriodRow{}
	for _, p := range periods {
		periodsByAlert[p.AlertID] = append(periodsByAlert[p.AlertID], p)
	}
	entitiesByAlert := map[string][]lake.AlertInformedEntityRow{}
	for _, e := range entities {
		entitiesByAlert[e.AlertID] = append(entitiesByAlert[e.AlertID], e)
	}

	out := make([]*gtfsrtpb.FeedEntity, 0, len(alerts))
	for _, row := range alerts {
		alert, err := buildAlert(row, periodsByAlert[row.ID], entitiesByAlert[row.ID])
		if err != nil {
			return nil, fmt.Errorf("alert %s: %w", row.ID, err)
		}
		out = append(out, &gtfsrtpb.FeedEntity{
			Id:    proto.String(row.ID),
			Alert: alert,
		})
	}
	return out, nil
}

func buildAlert(row lake.ServiceAlertRow, periods []lake.AlertActivePeriodRow, entities []lake.AlertInformedEntityRow) (*gtfsrtpb.Alert, error) {
	cause, err := alertCause(row.Cause)
	if err != nil {
		return nil, err
	}
	effect, err := alertEffect(row.Effect)
	if err != nil {
		return nil, err
	}
	alert := &gtfsrtpb.Alert{
		Cause:           &cause,
		Effect:          &effect,
		HeaderText:      singleTranslation(row.HeaderText),
		DescriptionText: singleTranslation(row.DescriptionText),
		ActivePeriod:    make([]*gtfsrtpb.TimeRange, 0, len(periods)),
		InformedEntity:  make([]*gtfsrtpb.EntitySelector, 0, len(entities)),
	}
	for _, p := range periods {
		tr := &gtfsrtpb.TimeRange{}
		if p.Start != nil {
			tr.Start = proto.Uint64(uint64(*p.Start))
		}
		if p.End != nil {
			tr.End = proto.Uint64(uint64(*p.End))
		}
		alert.ActivePeriod = append(alert.ActivePeriod, tr)
	}
	for _, e := range entities {
		sel := &gtfsrtpb.EntitySelector{
			AgencyId: e.AgencyID,
			RouteId:  e.RouteID,
			StopId:   e.StopID,
		}
		if e.RouteType != nil {
			rt := *e.RouteType
			sel.RouteType = &rt
		}
		// A trip reference on the informed entity row becomes a nested
		// trip descriptor; with no reference the field stays absent.
		trip, err := BuildTripDescriptor(e.Trip)
		if err != nil {
			return nil, err
		}
		sel.Trip = trip
		alert.InformedEntity = append(alert.InformedEntity, sel)
	}
	return alert, nil
}

func singleTranslation(text string) *gtfsrtpb.TranslatedString {
	return &gtfsrtpb.TranslatedString{
		Translation: []*gtfsrtpb.TranslatedString_Translation{
			{
				Text:     proto.String(text),
				Language: proto.String(translationLanguage),
			},
		},
	}
}
