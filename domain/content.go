package domain

// CustomLinkWidgetKind is the widget kind tag that makes a widget a link target.
const CustomLinkWidgetKind = "custom-link"

// Page is the subset of a published page the engine needs.
type Page struct {
	ID         string
	OwnerID    string
	Title      string
	Slug       string
	Thumbnail  string
	BusinessID string
}

// BusinessProfile is the subset of a business profile the engine needs.
type BusinessProfile struct {
	ID      string
	OwnerID string
	Name    string
	Slug    string
	Logo    string
}

// Widget is a page widget. Only widgets of kind "custom-link" are link targets.
type Widget struct {
	ID        string         `json:"id"`
	OwnerID   string         `json:"owner_id"`
	PageID    string         `json:"page_id"`
	Kind      string         `json:"kind"`
	Title     string         `json:"title"`
	URL       string         `json:"url"`
	Thumbnail string         `json:"thumbnail,omitempty"`
	Settings  map[string]any `json:"settings,omitempty" swaggertype:"object"`
}

// CounterField is a denormalized counter column on a content row.
type CounterField string

const (
	CounterViews  CounterField = "view_count"
	CounterClicks CounterField = "click_count"
)

// CounterDelta is one increment of a denormalized counter.
type CounterDelta struct {
	Kind  TargetKind
	ID    string
	Field CounterField
	Delta int64
}

// Key groups deltas that touch the same counter.
func (d CounterDelta) Key() string {
	return string(d.Kind) + "|" + d.ID + "|" + string(d.Field)
}
