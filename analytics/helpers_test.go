package analytics

import (
	"fmt"
	"time"

	"kucukaslan/interactions/domain"
)

var base = time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC) // a Monday

var seq int

func click(actor, target string, at time.Time) domain.InteractionEvent {
	seq++
	return domain.InteractionEvent{
		ID:         fmt.Sprintf("evt-%04d", seq),
		Type:       domain.InteractionClick,
		TargetKind: domain.TargetCustomLink,
		TargetID:   target,
		OwnerID:    "owner-1",
		ActorID:    actor,
		TargetURL:  "https://example.com/" + target,
		Timestamp:  at,
	}
}

func view(actor, target string, at time.Time) domain.InteractionEvent {
	e := click(actor, target, at)
	e.Type = domain.InteractionView
	e.TargetKind = domain.TargetPage
	return e
}

func at(dayOffset, hour int) time.Time {
	return base.AddDate(0, 0, dayOffset).Add(time.Duration(hour) * time.Hour)
}

func located(e domain.InteractionEvent, lng, lat float64) domain.InteractionEvent {
	e.Coordinates = domain.Coordinates{Longitude: lng, Latitude: lat}
	e.LocationLabel = e.Coordinates.Label()
	return e
}
