package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/eubelhor/house-scraper/app/member"
	"github.com/eubelhor/house-scraper/app/parser"
)

// Acquirer runs the ranked source list in order. The first source that
// yields records becomes the baseline; lower-ranked sources are consulted
// only while seats are still missing, and then only to add missing seats
// or fill empty fields. Higher-preference values win field-by-field.
type Acquirer struct {
	fetcher       *Fetcher
	configCache   *ConfigCache
	expectedSeats int
}

func NewAcquirer(fetcher *Fetcher, configCache *ConfigCache, expectedSeats int) *Acquirer {
	return &Acquirer{
		fetcher:       fetcher,
		configCache:   configCache,
		expectedSeats: expectedSeats,
	}
}

// Run acquires the full record set. It fails only when no source yields
// any record; per-record problems are skipped and counted in Stats.
func (a *Acquirer) Run(ctx context.Context) ([]member.Member, *Stats, error) {
	sources := a.configCache.GetConfigs()
	if len(sources) == 0 {
		return nil, nil, fmt.Errorf("no enabled sources configured")
	}

	stats := &Stats{
		PerSource: make(map[string]SourceStats),
	}
	seats := make(map[string]member.Member)
	var lastErr error

	startTime := time.Now()

	for _, source := range sources {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}

		if a.expectedSeats > 0 && len(seats) >= a.expectedSeats {
			slog.Debug("Record set complete, skipping lower-ranked source", "source", source.Name, "seats", len(seats))
			break
		}

		members, skipped, err := a.acquireSource(ctx, source)
		stats.Consulted = append(stats.Consulted, source.Name)
		if err != nil {
			lastErr = err
			stats.PerSource[source.Name] = SourceStats{Error: err.Error()}
			slog.Warn("Source failed, falling back", "source", source.Name, "error", err)
			continue
		}

		added, filled := a.mergeInto(seats, members)
		stats.PerSource[source.Name] = SourceStats{Parsed: len(members), Skipped: skipped}
		stats.Parsed += len(members)
		stats.Skipped += skipped

		slog.Info("Source acquired", "source", source.Name,
			"parsed", len(members), "skipped", skipped, "new_seats", added, "filled_seats", filled)
	}

	if len(seats) == 0 {
		if lastErr != nil {
			return nil, stats, fmt.Errorf("%w: %w", ErrNoRecords, lastErr)
		}
		return nil, stats, ErrNoRecords
	}

	result := make([]member.Member, 0, len(seats))
	for _, m := range seats {
		result = append(result, m)
	}
	member.Sort(result)
	stats.Seats = len(result)

	slog.Info("Acquisition complete", "seats", len(result),
		"parsed", stats.Parsed, "skipped", stats.Skipped, "duration", time.Since(startTime))

	return result, stats, nil
}

func (a *Acquirer) acquireSource(ctx context.Context, source *SourceConfig) ([]member.Member, int, error) {
	data, err := a.fetcher.Run(ctx, source)
	if err != nil {
		return nil, 0, err
	}

	p, err := parser.ForKind(source.Kind)
	if err != nil {
		return nil, 0, err
	}

	return p.Parse(data)
}

// mergeInto deduplicates by (state, district). Existing entries came from
// a higher-preference source, so they win field-by-field and the incoming
// record only fills their gaps.
func (a *Acquirer) mergeInto(seats map[string]member.Member, members []member.Member) (added, filled int) {
	for _, m := range members {
		key := m.SeatKey()
		if existing, ok := seats[key]; ok {
			merged := member.Merge(existing, m)
			if merged != existing {
				filled++
			}
			seats[key] = merged
			continue
		}
		seats[key] = m
		added++
	}
	return added, filled
}
