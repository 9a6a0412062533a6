package hub

import (
	"context"
	"encoding/json"
	"os"

	"github.com/datacube/topic-search/internal/domain"
	"github.com/datacube/topic-search/internal/logger"
)

// Catalog resolves the list of available periods. It prefers the live hub
// catalog and falls back to a static snapshot file when the hub is down or
// returns an empty list. When both fail the catalog is empty, never an
// error: topic pages degrade to "no results" rather than failing.
type Catalog struct {
	client       *Client
	snapshotPath string
	logger       logger.Logger
}

// NewCatalog creates a period catalog backed by the hub client and an
// optional snapshot file.
func NewCatalog(client *Client, snapshotPath string, log logger.Logger) *Catalog {
	return &Catalog{
		client:       client,
		snapshotPath: snapshotPath,
		logger:       log,
	}
}

// Weeks returns the period catalog, newest first as served by the hub.
func (c *Catalog) Weeks(ctx context.Context) []domain.Week {
	doc, err := c.client.Weeks(ctx)
	if err == nil && len(doc.Weeks) > 0 {
		return doc.Weeks
	}
	if err != nil {
		c.logger.Warn("live period catalog unavailable, trying snapshot", logger.Error(err))
	} else {
		c.logger.Warn("live period catalog empty, trying snapshot")
	}

	return c.snapshot()
}

func (c *Catalog) snapshot() []domain.Week {
	if c.snapshotPath == "" {
		return nil
	}

	data, err := os.ReadFile(c.snapshotPath)
	if err != nil {
		c.logger.Warn("period catalog snapshot unreadable",
			logger.String("path", c.snapshotPath), logger.Error(err))
		return nil
	}

	var doc domain.WeeksDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		c.logger.Warn("period catalog snapshot malformed",
			logger.String("path", c.snapshotPath), logger.Error(err))
		return nil
	}
	return doc.Weeks
}

// PeriodIDs returns up to max well-formed period identifiers in catalog
// order. Zero or negative max means no limit.
func (c *Catalog) PeriodIDs(ctx context.Context, max int) []string {
	weeks := c.Weeks(ctx)
	ids := make([]string, 0, len(weeks))
	for _, w := range weeks {
		if !domain.IsValidPeriodID(w.ID) {
			continue
		}
		ids = append(ids, w.ID)
		if max > 0 && len(ids) == max {
			break
		}
	}
	return ids
}

// CurrentPeriod returns the ID of the week marked current, or the first
// week when none is marked. An empty catalog yields an empty string.
func (c *Catalog) CurrentPeriod(ctx context.Context) string {
	weeks := c.Weeks(ctx)
	for _, w := range weeks {
		if w.Current {
			return w.ID
		}
	}
	if len(weeks) > 0 {
		return weeks[0].ID
	}
	return ""
}

// Contains reports whether id appears in the catalog, either as a week or
// as one of its days.
func (c *Catalog) Contains(ctx context.Context, id string) bool {
	for _, w := range c.Weeks(ctx) {
		if w.ID == id {
			return true
		}
		for _, d := range w.Days {
			if d.ID == id {
				return true
			}
		}
	}
	return false
}
