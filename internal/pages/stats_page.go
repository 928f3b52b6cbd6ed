package pages

import (
	"context"

	"github.com/youpv/personal-trainer/internal/stats"
	"github.com/youpv/personal-trainer/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

// StatsPage holds the per-activity duration chart data.
type StatsPage struct {
	client   ApiClient
	notifier Notifier

	loading bool
	stats   []stats.ActivityStat
}

func NewStatsPage(client ApiClient, notifier Notifier) *StatsPage {
	return &StatsPage{
		client:   client,
		notifier: notifier,
	}
}

func (p *StatsPage) Refresh(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "pages.stats.refresh")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	p.loading = true
	defer func() {
		p.loading = false
	}()

	fetched, err := p.client.Trainings(ctx)
	if err != nil {
		log.Errorf("stats page: refresh: %s", err)
		p.notifier.Error("Failed to fetch trainings")
		return err
	}

	aggregated, err := stats.Aggregate(fetched)
	if err != nil {
		// bad data in one row; prior stats stay on screen
		log.Errorf("stats page: aggregate: %s", err)
		p.notifier.Error("Failed to compute statistics")
		return err
	}

	p.stats = aggregated
	return nil
}

func (p *StatsPage) Loading() bool {
	return p.loading
}

func (p *StatsPage) Stats() []stats.ActivityStat {
	return p.stats
}
