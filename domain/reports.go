package domain

import "time"

// LocationBucket groups interactions by an exact coordinate pair.
type LocationBucket struct {
	Key          string    `json:"key" example:"28.9784,41.0082"`
	Longitude    float64   `json:"longitude" example:"28.9784"`
	Latitude     float64   `json:"latitude" example:"41.0082"`
	Label        string    `json:"label" example:"41.0082, 28.9784"`
	Count        int       `json:"count" example:"12"`
	UniqueClicks int       `json:"unique_clicks" example:"9"`
	Percentage   float64   `json:"percentage" example:"37.5"`
	LastClick    time.Time `json:"last_click"`
}

type LocationSummary struct {
	TotalClicks     int `json:"total_clicks" example:"32"`
	UniqueLocations int `json:"unique_locations" example:"5"`
	UniqueActors    int `json:"unique_actors" example:"21"`
}

type LocationReport struct {
	Window    Window           `json:"window"`
	Locations []LocationBucket `json:"locations"`
	Summary   LocationSummary  `json:"summary"`
}

// LinkBucket groups interactions by target id.
type LinkBucket struct {
	TargetID     string     `json:"target_id" example:"wdg_123"`
	TargetKind   TargetKind `json:"target_kind" example:"custom_link"`
	URL          string     `json:"url" example:"https://example.com/shop"`
	Title        string     `json:"title" example:"Shop"`
	Thumbnail    string     `json:"thumbnail,omitempty"`
	Clicks       int        `json:"clicks" example:"14"`
	UniqueClicks int        `json:"unique_clicks" example:"11"`
	Percentage   float64    `json:"percentage" example:"43.75"`
	// ClickThroughRate is the link's share of all clicks in the result set.
	ClickThroughRate float64   `json:"click_through_rate" example:"43.75"`
	FirstClick       time.Time `json:"first_click"`
	LastClick        time.Time `json:"last_click"`
}

type LinkSummary struct {
	TotalClicks  int `json:"total_clicks" example:"32"`
	TotalLinks   int `json:"total_links" example:"4"`
	UniqueActors int `json:"unique_actors" example:"21"`
}

type LinkReport struct {
	Window  Window       `json:"window"`
	Links   []LinkBucket `json:"links"`
	Summary LinkSummary  `json:"summary"`
}

type HourBucket struct {
	Hour           int     `json:"hour" example:"14"`
	Interactions   int     `json:"interactions" example:"6"`
	Views          int     `json:"views" example:"6"`
	UniqueActors   int     `json:"unique_actors" example:"5"`
	EngagementRate float64 `json:"engagement_rate" example:"100"`
}

type DayBucket struct {
	Weekday        int     `json:"weekday" example:"1"`
	Name           string  `json:"name" example:"Monday"`
	Interactions   int     `json:"interactions" example:"10"`
	Views          int     `json:"views" example:"10"`
	UniqueActors   int     `json:"unique_actors" example:"8"`
	EngagementRate float64 `json:"engagement_rate" example:"100"`
}

// RankedSlot is an hour or weekday ordered by activity.
type RankedSlot struct {
	Slot         int    `json:"slot" example:"14"`
	Label        string `json:"label" example:"14:00"`
	Interactions int    `json:"interactions" example:"6"`
}

type PeakInsights struct {
	PeakHour          int     `json:"peak_hour" example:"14"`
	QuietestHour      int     `json:"quietest_hour" example:"3"`
	PeakDay           int     `json:"peak_day" example:"1"`
	QuietestDay       int     `json:"quietest_day" example:"0"`
	AvgViewsPerHour   float64 `json:"avg_views_per_hour" example:"1.33"`
	TotalInteractions int     `json:"total_interactions" example:"32"`
}

// PeakReport always carries all 24 hours and all 7 weekdays.
type PeakReport struct {
	Window   Window         `json:"window"`
	GroupBy  string         `json:"group_by" example:"hour"`
	Hours    [24]HourBucket `json:"hours"`
	Days     [7]DayBucket   `json:"days"`
	Ranked   []RankedSlot   `json:"ranked"`
	Insights PeakInsights   `json:"insights"`
}

type PeriodBucket struct {
	Period       string    `json:"period" example:"2026-10-12"`
	Start        time.Time `json:"start"`
	TotalClicks  int       `json:"total_clicks" example:"7"`
	UniqueClicks int       `json:"unique_clicks" example:"5"`
}

type Trend struct {
	Percentage      float64 `json:"percentage" example:"12.5"`
	Direction       string  `json:"direction" example:"up"`
	RecentAverage   float64 `json:"recent_average" example:"4.5"`
	PreviousAverage float64 `json:"previous_average" example:"4"`
}

type TimeSeriesReport struct {
	Window      Window         `json:"window"`
	Granularity string         `json:"granularity" example:"day"`
	Buckets     []PeriodBucket `json:"buckets"`
	TotalClicks int            `json:"total_clicks" example:"32"`
	Trend       Trend          `json:"trend"`
}

type TopLinkEntry struct {
	Rank   int        `json:"rank" example:"1"`
	Link   LinkBucket `json:"link"`
	Widget Widget     `json:"widget"`
}

type TopLinksReport struct {
	Window      Window         `json:"window"`
	Links       []TopLinkEntry `json:"links"`
	TotalClicks int            `json:"total_clicks" example:"32"`
}

type DeviceBucket struct {
	Device       string  `json:"device" example:"mobile"`
	Count        int     `json:"count" example:"20"`
	UniqueActors int     `json:"unique_actors" example:"15"`
	Percentage   float64 `json:"percentage" example:"62.5"`
}

type DeviceReport struct {
	Window  Window         `json:"window"`
	Devices []DeviceBucket `json:"devices"`
	Total   int            `json:"total" example:"32"`
}

type ReferrerBucket struct {
	Source       string  `json:"source" example:"instagram.com"`
	Count        int     `json:"count" example:"11"`
	UniqueActors int     `json:"unique_actors" example:"9"`
	Percentage   float64 `json:"percentage" example:"34.38"`
}

type ReferrerReport struct {
	Window    Window           `json:"window"`
	Referrers []ReferrerBucket `json:"referrers"`
	Total     int              `json:"total" example:"32"`
}

// Segmentation splits the actors of a reporting window into new and returning.
type Segmentation struct {
	PeriodActors    int     `json:"period_actors" example:"21"`
	Returning       int     `json:"returning" example:"6"`
	New             int     `json:"new" example:"15"`
	ReturningClicks int     `json:"returning_clicks" example:"11"`
	NewClicks       int     `json:"new_clicks" example:"21"`
	ReturningRate   float64 `json:"returning_rate" example:"28.57"`
	NewRate         float64 `json:"new_rate" example:"71.43"`

	ReturningActorIDs []string `json:"-"`
	NewActorIDs       []string `json:"-"`
}

type Summary struct {
	TotalClicks   int `json:"total_clicks" example:"32"`
	TotalViews    int `json:"total_views" example:"120"`
	UniqueActors  int `json:"unique_actors" example:"21"`
	UniqueTargets int `json:"unique_targets" example:"4"`
}

type CollectiveReport struct {
	Window       Window       `json:"window"`
	Summary      Summary      `json:"summary"`
	Segmentation Segmentation `json:"segmentation"`
}

// DashboardReport is keyed by sub-report name. Optional sections that failed are
// nil and their error message is listed in Errors.
type DashboardReport struct {
	Window       Window            `json:"window"`
	TimeSeries   TimeSeriesReport  `json:"timeseries"`
	Locations    *LocationReport   `json:"locations,omitempty"`
	Links        *LinkReport       `json:"links,omitempty"`
	PeakHours    *PeakReport       `json:"peak_hours,omitempty"`
	Devices      *DeviceReport     `json:"devices,omitempty"`
	Referrers    *ReferrerReport   `json:"referrers,omitempty"`
	Segmentation *Segmentation     `json:"segmentation,omitempty"`
	Errors       map[string]string `json:"errors,omitempty"`
}

type RealtimeReport struct {
	Window       Window             `json:"window"`
	Minutes      int                `json:"minutes" example:"30"`
	ActiveActors int                `json:"active_actors" example:"3"`
	Clicks       int                `json:"clicks" example:"5"`
	Views        int                `json:"views" example:"9"`
	Recent       []InteractionEvent `json:"recent"`
}
