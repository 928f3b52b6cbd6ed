package instrumentation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Instrumentation struct {
	// counters
	CounterRequests           *prometheus.CounterVec
	CounterResets             prometheus.Counter
	CounterTrainingsAdded     prometheus.Counter
	CounterHandleRequestPanic prometheus.Counter

	// gauges
	GaugeCustomers  prometheus.Gauge
	GaugeTrainings  prometheus.Gauge
	GaugeLifeSignal prometheus.Gauge

	// histograms
	HistRequestDuration prometheus.Histogram
}

func NewInstrumentation(namespace, subsystem string) *Instrumentation {
	return NewInstrumentationWithRegisterer(namespace, subsystem, prometheus.DefaultRegisterer)
}

func NewTestInstrumentation() *Instrumentation {
	return NewInstrumentationWithRegisterer("trainerapi", "test_server", prometheus.NewRegistry())
}

func NewInstrumentationWithRegisterer(namespace, subsystem string, reg prometheus.Registerer) *Instrumentation {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterResets := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "resets",
		Help:      "The total number of database reset requests",
	})
	counterTrainingsAdded := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "trainings_added",
		Help:      "The total number of added trainings",
	})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})

	gaugeCustomers := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "customers",
		Help:      "Current number of stored customers",
	})
	gaugeTrainings := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "trainings",
		Help:      "Current number of stored trainings",
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})

	histReqDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "The duration of handled requests",
		Buckets:   prometheus.DefBuckets,
	})

	return &Instrumentation{
		CounterRequests:           counterRequests,
		CounterResets:             counterResets,
		CounterTrainingsAdded:     counterTrainingsAdded,
		CounterHandleRequestPanic: counterHandleRequestPanic,
		GaugeCustomers:            gaugeCustomers,
		GaugeTrainings:            gaugeTrainings,
		GaugeLifeSignal:           gaugeLifeSignal,
		HistRequestDuration:       histReqDuration,
	}
}
