package pages

import (
	"context"

	"github.com/youpv/personal-trainer/internal/telemetry/tracing"
	"github.com/youpv/personal-trainer/internal/trainings"

	log "github.com/sirupsen/logrus"
)

// TrainingsPage holds the training list page state.
type TrainingsPage struct {
	client   ApiClient
	notifier Notifier

	loading  bool
	search   string
	all      []trainings.Training
	selected int64 // selected row id, 0 when nothing is selected
}

func NewTrainingsPage(client ApiClient, notifier Notifier) *TrainingsPage {
	return &TrainingsPage{
		client:   client,
		notifier: notifier,
	}
}

func (p *TrainingsPage) Refresh(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "pages.trainings.refresh")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	p.loading = true
	defer func() {
		p.loading = false
	}()

	fetched, err := p.client.Trainings(ctx)
	if err != nil {
		log.Errorf("trainings page: refresh: %s", err)
		p.notifier.Error("Failed to fetch trainings")
		return err
	}

	p.all = fetched
	return nil
}

func (p *TrainingsPage) Loading() bool {
	return p.loading
}

func (p *TrainingsPage) SetSearch(term string) {
	p.search = term
}

func (p *TrainingsPage) Visible() []trainings.Training {
	return trainings.Filter(p.search, p.all)
}

func (p *TrainingsPage) Select(id int64) {
	p.selected = id
}

func (p *TrainingsPage) Selected() int64 {
	return p.selected
}

// Add submits a new training (customer addressed by its resource URL) and
// re-fetches the full list.
func (p *TrainingsPage) Add(ctx context.Context, newTraining trainings.NewTraining) error {
	if err := p.client.AddTraining(ctx, newTraining); err != nil {
		log.Errorf("trainings page: add: %s", err)
		p.notifier.Error("Failed to add training")
		return err
	}

	p.notifier.Success("Training added")
	return p.Refresh(ctx)
}

func (p *TrainingsPage) Delete(ctx context.Context, id int64) error {
	if err := p.client.DeleteTraining(ctx, id); err != nil {
		log.Errorf("trainings page: delete %d: %s", id, err)
		p.notifier.Error("Failed to delete training")
		return err
	}

	if p.selected == id {
		p.selected = 0
	}
	p.notifier.Success("Training deleted")
	return p.Refresh(ctx)
}
