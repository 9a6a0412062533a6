package service

import (
	"context"
	"errors"
	"strings"

	"github.com/datacube/topic-search/internal/domain"
)

// ErrNoPeriod is returned when no period is available to summarize, or when
// the requested period is not in the catalog.
var ErrNoPeriod = errors.New("no period available")

// SummaryRequest selects what the summary document covers. An empty
// PeriodID means the current period; an empty Topic means all content.
type SummaryRequest struct {
	Lang     string
	PeriodID string
	Section  domain.Section
	Topic    string
}

// Summary renders one period's content as a markdown document. With a topic
// set, only entries matching its terms appear; the section narrows the
// document the same way it narrows the topic page.
func (s *TopicService) Summary(ctx context.Context, req SummaryRequest) (string, error) {
	lang := domain.NormalizeLanguage(req.Lang)

	periodID := req.PeriodID
	if periodID == "" {
		periodID = s.periods.CurrentPeriod(ctx)
	} else if !s.periods.Contains(ctx, periodID) {
		return "", ErrNoPeriod
	}
	if periodID == "" {
		return "", ErrNoPeriod
	}

	content := s.fetchPeriodContent(ctx, periodID, lang)

	var bucket domain.PeriodBucket
	if req.Topic != "" {
		// Topics arrive as free text here, not as slugs, so normalize
		// before tokenizing. "openai gpt" matches like "openai-gpt".
		bucket = domain.BuildBucket(periodID, content, domain.SearchTerms(domain.ToSlug(req.Topic)))
	} else {
		bucket = domain.PeriodBucket{
			PeriodID:  periodID,
			Tech:      content.Tech,
			Primary:   content.Investment.Primary,
			Secondary: content.Investment.Secondary,
			MA:        content.Investment.MA,
			Tips:      content.Tips,
		}
	}
	bucket = bucket.Project(req.Section)

	return s.renderSummary(bucket, lang), nil
}

type summaryStrings struct {
	title      string
	tech       string
	videos     string
	investment string
	tips       string
	source     string
}

func summaryLocale(lang string) summaryStrings {
	if lang == "de" {
		return summaryStrings{
			title:      "DataCube AI - KI-News ",
			tech:       "## Technologie",
			videos:     "## Videos",
			investment: "## Investment",
			tips:       "## Tipps",
			source:     "Quelle",
		}
	}
	return summaryStrings{
		title:      "DataCube AI - AI News ",
		tech:       "## Technology",
		videos:     "## Videos",
		investment: "## Investment",
		tips:       "## Tips",
		source:     "Source",
	}
}

func (s *TopicService) renderSummary(bucket domain.PeriodBucket, lang string) string {
	loc := summaryLocale(lang)
	var b strings.Builder

	b.WriteString("# ")
	b.WriteString(loc.title)
	b.WriteString(domain.PeriodLabel(bucket.PeriodID, lang))
	b.WriteString("\n")

	articles, videos := splitVideos(bucket.Tech)

	if len(articles) > 0 {
		b.WriteString("\n")
		b.WriteString(loc.tech)
		b.WriteString("\n")
		for _, item := range articles {
			b.WriteString("\n### ")
			b.WriteString(item.Category)
			if item.Impact != "" {
				b.WriteString(" (")
				b.WriteString(item.Impact)
				b.WriteString(")")
			}
			b.WriteString("\n\n")
			b.WriteString(item.Content)
			b.WriteString("\n")
			if item.SourceURL != "" {
				b.WriteString("\n")
				b.WriteString(loc.source)
				b.WriteString(": [")
				if item.Source != "" {
					b.WriteString(item.Source)
				} else {
					b.WriteString(item.SourceURL)
				}
				b.WriteString("](")
				b.WriteString(item.SourceURL)
				b.WriteString(")\n")
			}
		}
	}

	if len(videos) > 0 {
		b.WriteString("\n")
		b.WriteString(loc.videos)
		b.WriteString("\n\n")
		for _, item := range videos {
			label := item.Content
			if label == "" {
				label = item.Category
			}
			b.WriteString("- [")
			b.WriteString(label)
			b.WriteString("](")
			b.WriteString(item.VideoURL())
			b.WriteString(")\n")
		}
	}

	if len(bucket.Primary) > 0 || len(bucket.Secondary) > 0 || len(bucket.MA) > 0 {
		b.WriteString("\n")
		b.WriteString(loc.investment)
		b.WriteString("\n")

		if len(bucket.Primary) > 0 {
			b.WriteString("\n| Company | Amount | Round |\n|---|---|---|\n")
			for _, p := range bucket.Primary {
				writeTableRow(&b, p.Company, p.Amount, p.Round)
			}
		}
		if len(bucket.Secondary) > 0 {
			b.WriteString("\n| Ticker | Price | Change |\n|---|---|---|\n")
			for _, sec := range bucket.Secondary {
				writeTableRow(&b, sec.Ticker, sec.Price, sec.Change)
			}
		}
		if len(bucket.MA) > 0 {
			b.WriteString("\n| Acquirer | Target | Value | Type |\n|---|---|---|---|\n")
			for _, m := range bucket.MA {
				writeTableRow(&b, m.Acquirer, m.Target, m.Value, m.DealType)
			}
		}
	}

	if len(bucket.Tips) > 0 {
		b.WriteString("\n")
		b.WriteString(loc.tips)
		b.WriteString("\n")
		for _, tip := range bucket.Tips {
			b.WriteString("\n### ")
			b.WriteString(tip.Category)
			b.WriteString("\n\n")
			b.WriteString(tip.Content)
			b.WriteString("\n")
			if tip.Tip != "" {
				b.WriteString("\n```\n")
				b.WriteString(tip.Tip)
				b.WriteString("\n```\n")
			}
		}
	}

	b.WriteString("\n*Updated daily. Visit [DataCube AI](")
	b.WriteString(s.config.SiteBaseURL)
	b.WriteString(") for the latest AI news.*\n")

	return b.String()
}

func splitVideos(items []domain.TechItem) (articles, videos []domain.TechItem) {
	for _, item := range items {
		if item.IsVideo() {
			videos = append(videos, item)
		} else {
			articles = append(articles, item)
		}
	}
	return articles, videos
}

// writeTableRow escapes pipes so cell content cannot break the table.
func writeTableRow(b *strings.Builder, cells ...string) {
	b.WriteString("|")
	for _, cell := range cells {
		b.WriteString(" ")
		b.WriteString(strings.ReplaceAll(cell, "|", "\\|"))
		b.WriteString(" |")
	}
	b.WriteString("\n")
}
