package analytics

import (
	"slices"

	"kucukaslan/interactions/domain"
)

type linkGroup struct {
	bucket domain.LinkBucket
	actors actorSet
}

// Links groups events by target id. Display metadata comes from the earliest
// event of each target, since it was captured when the link was first clicked.
func Links(events []domain.InteractionEvent) domain.LinkReport {
	buckets, actors := groupLinks(events)
	return domain.LinkReport{
		Links: buckets,
		Summary: domain.LinkSummary{
			TotalClicks:  len(events),
			TotalLinks:   len(buckets),
			UniqueActors: actors,
		},
	}
}

func groupLinks(events []domain.InteractionEvent) ([]domain.LinkBucket, int) {
	groups := make(map[string]*linkGroup)
	actors := make(actorSet)

	for _, e := range events {
		g, ok := groups[e.TargetID]
		if !ok {
			g = &linkGroup{
				bucket: domain.LinkBucket{TargetID: e.TargetID},
				actors: make(actorSet),
			}
			groups[e.TargetID] = g
		}

		b := &g.bucket
		if b.Clicks == 0 || e.Timestamp.Before(b.FirstClick) {
			b.FirstClick = e.Timestamp
			b.TargetKind = e.TargetKind
			b.URL = e.TargetURL
			b.Title = e.TargetTitle
			b.Thumbnail = e.TargetThumbnail
		}
		if e.Timestamp.After(b.LastClick) {
			b.LastClick = e.Timestamp
		}
		b.Clicks++
		g.actors.add(e.ActorID)
		actors.add(e.ActorID)
	}

	buckets := make([]domain.LinkBucket, 0, len(groups))
	for _, g := range groups {
		b := g.bucket
		b.UniqueClicks = len(g.actors)
		b.Percentage = percentage(b.Clicks, len(events))
		b.ClickThroughRate = b.Percentage
		buckets = append(buckets, b)
	}
	slices.SortFunc(buckets, func(a, b domain.LinkBucket) int {
		return byActivity(a.Clicks, b.Clicks, a.LastClick, b.LastClick, a.TargetID, b.TargetID)
	})
	return buckets, len(actors)
}

// DefaultTopLinksLimit caps the top links ranking when the caller gives no limit.
const DefaultTopLinksLimit = 10

// TopLinks ranks custom-link clicks whose widget still exists. Links whose widget
// was deleted are dropped before ranking, so they affect neither ranks nor shares.
func TopLinks(events []domain.InteractionEvent, widgets map[string]domain.Widget, limit int) ([]domain.TopLinkEntry, int) {
	live := make([]domain.InteractionEvent, 0, len(events))
	for _, e := range events {
		if e.TargetKind != domain.TargetCustomLink {
			continue
		}
		if _, ok := widgets[e.TargetID]; ok {
			live = append(live, e)
		}
	}

	buckets, _ := groupLinks(live)
	buckets = truncate(buckets, limit)

	entries := make([]domain.TopLinkEntry, 0, len(buckets))
	for i, b := range buckets {
		entries = append(entries, domain.TopLinkEntry{
			Rank:   i + 1,
			Link:   b,
			Widget: widgets[b.TargetID],
		})
	}
	return entries, len(live)
}
