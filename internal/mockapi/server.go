package mockapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/youpv/personal-trainer/internal/instrumentation"
	"github.com/youpv/personal-trainer/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/multierr"
)

// Server is a local, in-memory stand-in for the remote personal-training REST
// service, implementing its hypermedia contract for development and
// integration testing.
type Server struct {
	store         *Store
	instr         *instrumentation.Instrumentation
	promRegistry  *prometheus.Registry
	seedCustomers int
	seedTrainings int

	httpServer        *http.Server
	metricsHttpServer *http.Server
}

type NewServerParams struct {
	SeedCustomers int
	SeedTrainings int
}

func NewServer(params NewServerParams) *Server {
	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	s := &Server{
		store:         NewStore(),
		instr:         instrumentation.NewInstrumentationWithRegisterer("trainerapi", "mock", promRegistry),
		promRegistry:  promRegistry,
		seedCustomers: params.SeedCustomers,
		seedTrainings: params.SeedTrainings,
	}

	Seed(s.store, s.seedCustomers, s.seedTrainings)
	s.updateStoreGauges()

	return s
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("trainer-mock-api"))

	r.HandleFunc("/customers", s.handleListCustomers).Methods("GET", "OPTIONS")
	r.HandleFunc("/customers", s.handleAddCustomer).Methods("POST", "OPTIONS")
	r.HandleFunc("/customers/{id}", s.handleUpdateCustomer).Methods("PUT", "OPTIONS")
	r.HandleFunc("/customers/{id}", s.handleDeleteCustomer).Methods("DELETE", "OPTIONS")
	r.HandleFunc("/gettrainings", s.handleListTrainings).Methods("GET", "OPTIONS")
	r.HandleFunc("/trainings", s.handleAddTraining).Methods("POST", "OPTIONS")
	r.HandleFunc("/trainings/{id}", s.handleDeleteTraining).Methods("DELETE", "OPTIONS")
	r.HandleFunc("/reset", s.handleReset).Methods("POST", "OPTIONS")

	r.Use(middleware.PanicRecovery(s.instr))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestMetrics(s.instr))
	r.Use(middleware.Cors())

	return r
}

func (s *Server) Serve(_ context.Context, host string, port, metricsPort int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.Router(),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(host, strconv.Itoa(metricsPort))
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > mock api listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("mock api, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.instr.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() error {
	log.Debugln("mock api graceful shutdown initiated ...")
	s.instr.GaugeLifeSignal.Set(0)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var err error
	if s.httpServer != nil {
		err = multierr.Append(err, s.httpServer.Shutdown(ctx))
	}
	if s.metricsHttpServer != nil {
		err = multierr.Append(err, s.metricsHttpServer.Shutdown(ctx))
	}

	return err
}
