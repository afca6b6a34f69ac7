package analytics

import "kucukaslan/interactions/domain"

// Summarize totals clicks and views. Unique actors and targets count both kinds.
func Summarize(clicks, views []domain.InteractionEvent) domain.Summary {
	actors := make(actorSet)
	targets := make(actorSet)
	for _, set := range [][]domain.InteractionEvent{clicks, views} {
		for _, e := range set {
			actors.add(e.ActorID)
			targets.add(e.TargetID)
		}
	}
	return domain.Summary{
		TotalClicks:   len(clicks),
		TotalViews:    len(views),
		UniqueActors:  len(actors),
		UniqueTargets: len(targets),
	}
}
