package stats

import (
	"context"

	"github.com/youpv/personal-trainer/internal/telemetry/tracing"
	"github.com/youpv/personal-trainer/internal/trainings"
)

type trainingsSource interface {
	Trainings(ctx context.Context) ([]trainings.Training, error)
}

// Analyzer fetches trainings and derives aggregate statistics from them.
type Analyzer struct {
	src trainingsSource
}

func NewAnalyzer(src trainingsSource) *Analyzer {
	return &Analyzer{
		src: src,
	}
}

func (a *Analyzer) ActivityStats(ctx context.Context) (_ []ActivityStat, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.activityStats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	list, err := a.src.Trainings(ctx)
	if err != nil {
		return nil, err
	}

	return Aggregate(list)
}

// ActivityPercentages returns each activity's share of the total trained
// minutes, truncated to two decimals.
func (a *Analyzer) ActivityPercentages(ctx context.Context) (_ map[string]float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.activityPercentages")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	list, err := a.src.Trainings(ctx)
	if err != nil {
		return nil, err
	}

	aggregated, err := Aggregate(list)
	if err != nil {
		return nil, err
	}

	var total float64
	for _, stat := range aggregated {
		total += stat.Duration
	}

	percentages := make(map[string]float64, len(aggregated))
	for _, stat := range aggregated {
		if total == 0 {
			percentages[stat.Activity] = 0
			continue
		}
		p := stat.Duration / total * 100
		// leave only 2 decimals
		p = float64(int(p*100)) / 100
		percentages[stat.Activity] = p
	}

	return percentages, nil
}
