// Package service orchestrates topic searches and summary rendering on top
// of the hub fetch layer and the domain logic.
package service

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/datacube/topic-search/internal/domain"
	"github.com/datacube/topic-search/internal/logger"
)

// ErrNoSearchTerms is returned when a topic slug yields no usable terms.
var ErrNoSearchTerms = errors.New("topic yields no search terms")

// Default fan-out bound for concurrent period fetches.
const defaultFetchConcurrency = 4

// Config tunes the topic search pipeline.
type Config struct {
	PageSize       int
	MaxPeriods     int
	MaxPeriodChips int
	SiteBaseURL    string
}

func (c *Config) setDefaults() {
	if c.PageSize <= 0 {
		c.PageSize = domain.DefaultPageSize
	}
	if c.MaxPeriods <= 0 {
		c.MaxPeriods = 6
	}
	if c.MaxPeriodChips <= 0 {
		c.MaxPeriodChips = 12
	}
	if c.SiteBaseURL == "" {
		c.SiteBaseURL = "https://www.datacubeai.space"
	}
}

// ContentFetcher is the slice of the hub client the service needs.
type ContentFetcher interface {
	Tech(ctx context.Context, periodID string) (domain.TechDocument, error)
	Investment(ctx context.Context, periodID string) (domain.InvestmentDocument, error)
	Tips(ctx context.Context, periodID string) (domain.TipsDocument, error)
}

// PeriodSource resolves available periods.
type PeriodSource interface {
	PeriodIDs(ctx context.Context, max int) []string
	CurrentPeriod(ctx context.Context) string
	Contains(ctx context.Context, periodID string) bool
}

// TopicService runs topic searches across recent periods.
type TopicService struct {
	fetcher ContentFetcher
	periods PeriodSource
	config  Config
	logger  logger.Logger
}

// NewTopicService creates a TopicService.
func NewTopicService(fetcher ContentFetcher, periods PeriodSource, cfg Config, log logger.Logger) *TopicService {
	cfg.setDefaults()
	return &TopicService{
		fetcher: fetcher,
		periods: periods,
		config:  cfg,
		logger:  log,
	}
}

// TechEntry is a matched technology item with its permalink.
type TechEntry struct {
	domain.TechItem
	Anchor    string `json:"anchor"`
	Permalink string `json:"permalink"`
}

// PrimaryEntry is a matched primary-market item with its permalink.
type PrimaryEntry struct {
	domain.PrimaryInvestment
	Anchor    string `json:"anchor"`
	Permalink string `json:"permalink"`
}

// SecondaryEntry is a matched secondary-market item with its permalink.
type SecondaryEntry struct {
	domain.SecondaryInvestment
	Anchor    string `json:"anchor"`
	Permalink string `json:"permalink"`
}

// MAEntry is a matched M&A item with its permalink.
type MAEntry struct {
	domain.MergerAcquisition
	Anchor    string `json:"anchor"`
	Permalink string `json:"permalink"`
}

// TipEntry is a matched tip with its permalink.
type TipEntry struct {
	domain.Tip
	Anchor    string `json:"anchor"`
	Permalink string `json:"permalink"`
}

// PeriodResult is one period's matches in the response.
type PeriodResult struct {
	PeriodID  string           `json:"periodId"`
	Label     string           `json:"label"`
	Permalink string           `json:"permalink"`
	Tech      []TechEntry      `json:"tech,omitempty"`
	Primary   []PrimaryEntry   `json:"primaryMarket,omitempty"`
	Secondary []SecondaryEntry `json:"secondaryMarket,omitempty"`
	MA        []MAEntry        `json:"ma,omitempty"`
	Tips      []TipEntry       `json:"tips,omitempty"`
}

// TopicResult is the topic endpoint response body.
type TopicResult struct {
	Topic            string          `json:"topic"`
	Title            string          `json:"title"`
	Terms            []string        `json:"terms"`
	Lang             string          `json:"lang"`
	Section          domain.Section  `json:"section"`
	AvailablePeriods []string        `json:"availablePeriods"`
	TotalMatches     int             `json:"totalMatches"`
	Pagination       domain.PageInfo `json:"pagination"`
	Periods          []PeriodResult  `json:"periods"`
}

// Search runs the full topic pipeline: tokenize, fetch recent periods, match,
// project, filter, paginate, and decorate with permalinks.
func (s *TopicService) Search(ctx context.Context, q domain.TopicQuery) (*TopicResult, error) {
	terms := domain.SearchTerms(q.Topic)
	if len(terms) == 0 {
		return nil, ErrNoSearchTerms
	}

	periodIDs := s.periods.PeriodIDs(ctx, s.config.MaxPeriods)
	buckets := s.collectBuckets(ctx, periodIDs, q.Lang, terms)

	projected := domain.ProjectBuckets(buckets, q.Section)

	available := domain.PeriodIDs(projected)
	if len(available) > s.config.MaxPeriodChips {
		available = available[:s.config.MaxPeriodChips]
	}

	// A requested period is honored only when it actually has results;
	// anything else is silently ignored.
	selected := projected
	if q.Period != "" {
		for _, b := range projected {
			if b.PeriodID == q.Period {
				selected = []domain.PeriodBucket{b}
				break
			}
		}
	}

	totalMatches := 0
	for _, b := range selected {
		totalMatches += b.Count()
	}

	page, info := domain.Paginate(selected, q.Page, s.config.PageSize)

	result := &TopicResult{
		Topic:            q.Topic,
		Title:            domain.SlugToTitle(q.Topic),
		Terms:            terms,
		Lang:             q.Lang,
		Section:          q.Section,
		AvailablePeriods: available,
		TotalMatches:     totalMatches,
		Pagination:       info,
		Periods:          make([]PeriodResult, 0, len(page)),
	}
	for _, b := range page {
		result.Periods = append(result.Periods, s.decorate(b, q))
	}
	return result, nil
}

// collectBuckets fetches and filters the given periods concurrently,
// preserving catalog order in the returned slice.
func (s *TopicService) collectBuckets(ctx context.Context, periodIDs []string, lang string, terms []string) []domain.PeriodBucket {
	slots := make([]domain.PeriodBucket, len(periodIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultFetchConcurrency)
	for i, id := range periodIDs {
		i, id := i, id
		g.Go(func() error {
			content := s.fetchPeriodContent(gctx, id, lang)
			slots[i] = domain.BuildBucket(id, content, terms)
			return nil
		})
	}
	// Fetch errors degrade to empty categories, so Wait cannot fail.
	_ = g.Wait()

	buckets := make([]domain.PeriodBucket, 0, len(slots))
	for _, b := range slots {
		if !b.IsEmpty() {
			buckets = append(buckets, b)
		}
	}
	return buckets
}

// fetchPeriodContent fetches the three category documents of one period
// concurrently. Each fetch fails independently; a failed category is simply
// empty in the result.
func (s *TopicService) fetchPeriodContent(ctx context.Context, periodID, lang string) domain.PeriodContent {
	var (
		content domain.PeriodContent
		wg      sync.WaitGroup
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		doc, err := s.fetcher.Tech(ctx, periodID)
		if err != nil {
			s.logFetchFailure("tech", periodID, err)
			return
		}
		content.Tech = doc[lang]
	}()
	go func() {
		defer wg.Done()
		doc, err := s.fetcher.Investment(ctx, periodID)
		if err != nil {
			s.logFetchFailure("investment", periodID, err)
			return
		}
		content.Investment = doc.ForLanguage(lang)
	}()
	go func() {
		defer wg.Done()
		doc, err := s.fetcher.Tips(ctx, periodID)
		if err != nil {
			s.logFetchFailure("tips", periodID, err)
			return
		}
		content.Tips = doc[lang]
	}()
	wg.Wait()

	return content
}

func (s *TopicService) logFetchFailure(category, periodID string, err error) {
	s.logger.Warn("category fetch failed, continuing without it",
		logger.String("category", category),
		logger.String("period", periodID),
		logger.Error(err),
	)
}

// decorate attaches labels, anchors, and permalinks to a bucket.
func (s *TopicService) decorate(b domain.PeriodBucket, q domain.TopicQuery) PeriodResult {
	href := func(anchor string) string {
		return domain.BuildTopicHref(q.Lang, q.Topic, domain.HrefOptions{
			Period:  b.PeriodID,
			Section: q.Section,
			Anchor:  anchor,
		})
	}

	result := PeriodResult{
		PeriodID:  b.PeriodID,
		Label:     domain.PeriodLabel(b.PeriodID, q.Lang),
		Permalink: href(""),
	}

	for _, item := range b.Tech {
		anchor := domain.EntryAnchorID(b.PeriodID, domain.TagTech, strconv.Itoa(item.ID))
		result.Tech = append(result.Tech, TechEntry{TechItem: item, Anchor: anchor, Permalink: href(anchor)})
	}
	for _, item := range b.Primary {
		anchor := domain.EntryAnchorID(b.PeriodID, domain.TagPrimary, strconv.Itoa(item.ID))
		result.Primary = append(result.Primary, PrimaryEntry{PrimaryInvestment: item, Anchor: anchor, Permalink: href(anchor)})
	}
	for _, item := range b.Secondary {
		anchor := domain.EntryAnchorID(b.PeriodID, domain.TagSecondary, strconv.Itoa(item.ID))
		result.Secondary = append(result.Secondary, SecondaryEntry{SecondaryInvestment: item, Anchor: anchor, Permalink: href(anchor)})
	}
	for _, item := range b.MA {
		anchor := domain.EntryAnchorID(b.PeriodID, domain.TagMA, strconv.Itoa(item.ID))
		result.MA = append(result.MA, MAEntry{MergerAcquisition: item, Anchor: anchor, Permalink: href(anchor)})
	}
	for _, item := range b.Tips {
		anchor := domain.EntryAnchorID(b.PeriodID, domain.TagTips, strconv.Itoa(item.ID))
		result.Tips = append(result.Tips, TipEntry{Tip: item, Anchor: anchor, Permalink: href(anchor)})
	}
	return result
}
