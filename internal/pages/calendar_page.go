package pages

import (
	"context"
	"fmt"

	"github.com/youpv/personal-trainer/internal/calendar"
	"github.com/youpv/personal-trainer/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

// CalendarPage derives calendar events from the training list on every
// refresh. Rows that cannot be transformed are reported through the notifier;
// the remaining events are still shown.
type CalendarPage struct {
	client   ApiClient
	notifier Notifier

	loading bool
	events  []calendar.Event
}

func NewCalendarPage(client ApiClient, notifier Notifier) *CalendarPage {
	return &CalendarPage{
		client:   client,
		notifier: notifier,
	}
}

func (p *CalendarPage) Refresh(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "pages.calendar.refresh")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	p.loading = true
	defer func() {
		p.loading = false
	}()

	fetched, err := p.client.Trainings(ctx)
	if err != nil {
		log.Errorf("calendar page: refresh: %s", err)
		p.notifier.Error("Failed to fetch trainings")
		return err
	}

	events, rowErrs := calendar.EventsFromTrainings(fetched)
	for _, rowErr := range rowErrs {
		log.Warnf("calendar page: %s", rowErr)
		p.notifier.Error(fmt.Sprintf("Skipped a training: %s", rowErr.Err))
	}

	p.events = events
	return nil
}

func (p *CalendarPage) Loading() bool {
	return p.loading
}

func (p *CalendarPage) Events() []calendar.Event {
	return p.events
}
