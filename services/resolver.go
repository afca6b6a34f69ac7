package services

import (
	"context"
	"fmt"
	"strings"

	"kucukaslan/interactions/domain"
)

// TargetStrategy resolves a target id against one content collection. found is
// false when the collection has no matching row; err is reserved for store
// failures.
type TargetStrategy interface {
	Kind() domain.TargetKind
	TryResolve(ctx context.Context, id string) (target *domain.ResolvedTarget, found bool, err error)
}

// TargetResolver tries its strategies in order and returns the first match.
type TargetResolver struct {
	strategies []TargetStrategy
}

func NewTargetResolver(strategies ...TargetStrategy) *TargetResolver {
	return &TargetResolver{strategies: strategies}
}

// NewDefaultTargetResolver checks pages, then business profiles, then custom links.
func NewDefaultTargetResolver(content ContentReader, baseURL string) *TargetResolver {
	baseURL = strings.TrimRight(baseURL, "/")
	return NewTargetResolver(
		PageStrategy{content: content, baseURL: baseURL},
		BusinessProfileStrategy{content: content, baseURL: baseURL},
		CustomLinkStrategy{content: content, baseURL: baseURL},
	)
}

// Resolve returns the target for id. A store failure in any collection aborts
// resolution instead of falling through to the next one.
func (r *TargetResolver) Resolve(ctx context.Context, id string) (*domain.ResolvedTarget, error) {
	for _, s := range r.strategies {
		target, found, err := s.TryResolve(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("resolve %s %q: %w", s.Kind(), id, err)
		}
		if found {
			return target, nil
		}
	}
	return nil, domain.ErrNotFound(fmt.Sprintf("target %q not found", id))
}

func slugOrID(slug, id string) string {
	if slug != "" {
		return slug
	}
	return id
}

type PageStrategy struct {
	content ContentReader
	baseURL string
}

func (PageStrategy) Kind() domain.TargetKind { return domain.TargetPage }

func (s PageStrategy) TryResolve(ctx context.Context, id string) (*domain.ResolvedTarget, bool, error) {
	page, err := s.content.GetPage(ctx, id)
	if err != nil || page == nil {
		return nil, false, err
	}
	return &domain.ResolvedTarget{
		ID:         page.ID,
		Kind:       domain.TargetPage,
		OwnerID:    page.OwnerID,
		Title:      page.Title,
		Thumbnail:  page.Thumbnail,
		URL:        s.baseURL + "/" + slugOrID(page.Slug, page.ID),
		BusinessID: page.BusinessID,
	}, true, nil
}

type BusinessProfileStrategy struct {
	content ContentReader
	baseURL string
}

func (BusinessProfileStrategy) Kind() domain.TargetKind { return domain.TargetBusinessProfile }

func (s BusinessProfileStrategy) TryResolve(ctx context.Context, id string) (*domain.ResolvedTarget, bool, error) {
	profile, err := s.content.GetBusinessProfile(ctx, id)
	if err != nil || profile == nil {
		return nil, false, err
	}
	return &domain.ResolvedTarget{
		ID:        profile.ID,
		Kind:      domain.TargetBusinessProfile,
		OwnerID:   profile.OwnerID,
		Title:     profile.Name,
		Thumbnail: profile.Logo,
		URL:       s.baseURL + "/business/" + slugOrID(profile.Slug, profile.ID),
	}, true, nil
}

// CustomLinkStrategy only matches widgets of the custom-link kind.
type CustomLinkStrategy struct {
	content ContentReader
	baseURL string
}

func (CustomLinkStrategy) Kind() domain.TargetKind { return domain.TargetCustomLink }

func (s CustomLinkStrategy) TryResolve(ctx context.Context, id string) (*domain.ResolvedTarget, bool, error) {
	widget, err := s.content.GetWidget(ctx, id)
	if err != nil || widget == nil || widget.Kind != domain.CustomLinkWidgetKind {
		return nil, false, err
	}

	url := widget.URL
	if url == "" {
		url = s.baseURL + "/l/" + widget.ID
	}
	return &domain.ResolvedTarget{
		ID:        widget.ID,
		Kind:      domain.TargetCustomLink,
		OwnerID:   widget.OwnerID,
		Title:     widget.Title,
		Thumbnail: widget.Thumbnail,
		URL:       url,
	}, true, nil
}
