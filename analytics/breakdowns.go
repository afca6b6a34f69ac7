package analytics

import (
	"net/url"
	"slices"
	"strings"

	"kucukaslan/interactions/domain"

	"github.com/mssola/useragent"
)

const (
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceDesktop = "desktop"
	DeviceBot     = "bot"
	DeviceUnknown = "unknown"

	// DirectReferrer is reported for events without a referrer.
	DirectReferrer = "direct"

	DefaultReferrerLimit = 10
)

var (
	// Clients the parser reads as ordinary browsers or weird agents.
	automationMarkers = []string{"bot", "crawler", "spider", "slurp", "curl", "wget", "headless"}
	tabletMarkers     = []string{"ipad", "tablet", "kindle", "silk", "playbook"}
	mobileMarkers     = []string{"mobi", "iphone", "ipod", "android", "windows phone", "blackberry", "opera mini"}
)

// DeviceClass maps a user agent string to a coarse device class. The parser
// settles bots and mobile platforms; tablets are split off by platform and by
// Android agents that do not announce "Mobile".
func DeviceClass(userAgent string) string {
	raw := strings.TrimSpace(userAgent)
	if raw == "" {
		return DeviceUnknown
	}

	ua := useragent.New(raw)
	lower := strings.ToLower(raw)
	switch {
	case ua.Bot() || containsAny(lower, automationMarkers):
		return DeviceBot
	case isTablet(ua, lower):
		return DeviceTablet
	case ua.Mobile() || isHandheld(ua.Platform()) || containsAny(lower, mobileMarkers):
		return DeviceMobile
	default:
		return DeviceDesktop
	}
}

func isTablet(ua *useragent.UserAgent, lower string) bool {
	if ua.Platform() == "iPad" || containsAny(lower, tabletMarkers) {
		return true
	}
	android := strings.Contains(strings.ToLower(ua.OS()), "android") || strings.Contains(lower, "android")
	return android && !strings.Contains(lower, "mobile")
}

func isHandheld(platform string) bool {
	switch platform {
	case "iPhone", "iPod", "BlackBerry", "Symbian", "webOS":
		return true
	}
	return false
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// ReferrerSource reduces a referrer to its host without a leading "www.".
// Values that do not parse as a URL are kept as given.
func ReferrerSource(referrer string) string {
	referrer = strings.TrimSpace(referrer)
	if referrer == "" {
		return DirectReferrer
	}

	raw := referrer
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return strings.ToLower(referrer)
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}

type countGroup struct {
	key    string
	count  int
	actors actorSet
}

// groupBy counts events and distinct actors per key, ordered by count desc then key.
func groupBy(events []domain.InteractionEvent, key func(domain.InteractionEvent) string) []*countGroup {
	index := make(map[string]*countGroup)
	for _, e := range events {
		k := key(e)
		g, ok := index[k]
		if !ok {
			g = &countGroup{key: k, actors: make(actorSet)}
			index[k] = g
		}
		g.count++
		g.actors.add(e.ActorID)
	}

	groups := make([]*countGroup, 0, len(index))
	for _, g := range index {
		groups = append(groups, g)
	}
	slices.SortFunc(groups, func(a, b *countGroup) int {
		if a.count != b.count {
			return b.count - a.count
		}
		return strings.Compare(a.key, b.key)
	})
	return groups
}

func Devices(events []domain.InteractionEvent) domain.DeviceReport {
	groups := groupBy(events, func(e domain.InteractionEvent) string { return DeviceClass(e.UserAgent) })

	report := domain.DeviceReport{Devices: make([]domain.DeviceBucket, 0, len(groups)), Total: len(events)}
	for _, g := range groups {
		report.Devices = append(report.Devices, domain.DeviceBucket{
			Device:       g.key,
			Count:        g.count,
			UniqueActors: len(g.actors),
			Percentage:   percentage(g.count, len(events)),
		})
	}
	return report
}

func Referrers(events []domain.InteractionEvent, limit int) domain.ReferrerReport {
	groups := groupBy(events, func(e domain.InteractionEvent) string { return ReferrerSource(e.Referrer) })

	buckets := make([]domain.ReferrerBucket, 0, len(groups))
	for _, g := range groups {
		buckets = append(buckets, domain.ReferrerBucket{
			Source:       g.key,
			Count:        g.count,
			UniqueActors: len(g.actors),
			Percentage:   percentage(g.count, len(events)),
		})
	}
	return domain.ReferrerReport{Referrers: truncate(buckets, limit), Total: len(events)}
}
