package mockapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/youpv/personal-trainer/internal/customers"
	"github.com/youpv/personal-trainer/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type customerLinks struct {
	Self struct {
		Href string `json:"href"`
	} `json:"self"`
}

type customerResponse struct {
	customers.Customer
	Links customerLinks `json:"_links"`
}

type customersEnvelope struct {
	Embedded struct {
		Customers []customerResponse `json:"customers"`
	} `json:"_embedded"`
}

type trainingResponse struct {
	ID       int64              `json:"id"`
	Date     string             `json:"date"`
	Duration int                `json:"duration"`
	Activity string             `json:"activity"`
	Customer customers.Customer `json:"customer"`
}

type newTrainingRequest struct {
	Date     string `json:"date"`
	Duration int    `json:"duration"`
	Activity string `json:"activity"`
	Customer string `json:"customer"` // customer self link URL
}

func (s *Server) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	ids, list := s.store.ListCustomers()

	var envelope customersEnvelope
	envelope.Embedded.Customers = make([]customerResponse, 0, len(list))
	for i, c := range list {
		res := customerResponse{Customer: c}
		res.Links.Self.Href = customerHref(r, ids[i])
		envelope.Embedded.Customers = append(envelope.Embedded.Customers, res)
	}

	pkg.WriteJSON(w, http.StatusOK, envelope)
}

func (s *Server) handleAddCustomer(w http.ResponseWriter, r *http.Request) {
	var customer customers.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		log.Errorf("add customer, unmarshal json params: %s", err)
		http.Error(w, "invalid customer payload", http.StatusBadRequest)
		return
	}

	id := s.store.AddCustomer(customer)
	s.updateStoreGauges()

	res := customerResponse{Customer: customer}
	res.Links.Self.Href = customerHref(r, id)
	pkg.WriteJSON(w, http.StatusCreated, res)
}

func (s *Server) handleUpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid customer id", http.StatusBadRequest)
		return
	}

	var customer customers.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		log.Errorf("update customer %d, unmarshal json params: %s", id, err)
		http.Error(w, "invalid customer payload", http.StatusBadRequest)
		return
	}

	if err := s.store.UpdateCustomer(id, customer); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	res := customerResponse{Customer: customer}
	res.Links.Self.Href = customerHref(r, id)
	pkg.WriteJSON(w, http.StatusOK, res)
}

func (s *Server) handleDeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid customer id", http.StatusBadRequest)
		return
	}

	if err := s.store.DeleteCustomer(id); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	s.updateStoreGauges()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListTrainings(w http.ResponseWriter, r *http.Request) {
	stored := s.store.ListTrainings()

	list := make([]trainingResponse, 0, len(stored))
	for _, t := range stored {
		customer, ok := s.store.GetCustomer(t.CustomerID)
		if !ok {
			// cascade delete should make this impossible
			log.Warnf("training %d references missing customer %d", t.ID, t.CustomerID)
			continue
		}
		list = append(list, trainingResponse{
			ID:       t.ID,
			Date:     t.Date,
			Duration: t.Duration,
			Activity: t.Activity,
			Customer: customer,
		})
	}

	pkg.WriteJSON(w, http.StatusOK, list)
}

func (s *Server) handleAddTraining(w http.ResponseWriter, r *http.Request) {
	var req newTrainingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("add training, unmarshal json params: %s", err)
		http.Error(w, "invalid training payload", http.StatusBadRequest)
		return
	}

	customerID, err := customerIDFromHref(req.Customer)
	if err != nil {
		log.Errorf("add training, parse customer link [%s]: %s", req.Customer, err)
		http.Error(w, "invalid customer link", http.StatusBadRequest)
		return
	}

	id, err := s.store.AddTraining(StoredTraining{
		Date:       req.Date,
		Duration:   req.Duration,
		Activity:   req.Activity,
		CustomerID: customerID,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	s.instr.CounterTrainingsAdded.Inc()
	s.updateStoreGauges()

	pkg.WriteJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (s *Server) handleDeleteTraining(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid training id", http.StatusBadRequest)
		return
	}

	if err := s.store.DeleteTraining(id); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	s.updateStoreGauges()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleReset(w http.ResponseWriter, _ *http.Request) {
	s.store.Wipe()
	Seed(s.store, s.seedCustomers, s.seedTrainings)
	s.instr.CounterResets.Inc()
	s.updateStoreGauges()

	log.Infof("store reset and reseeded")
	pkg.WriteResponse(w, "text/plain", "DB reset done\n")
}

func (s *Server) updateStoreGauges() {
	numCustomers, numTrainings := s.store.Counts()
	s.instr.GaugeCustomers.Set(float64(numCustomers))
	s.instr.GaugeTrainings.Set(float64(numTrainings))
}

func customerHref(r *http.Request, id int64) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/customers/%d", scheme, r.Host, id)
}

func pathID(r *http.Request) (int64, error) {
	vars := mux.Vars(r)
	return strconv.ParseInt(vars["id"], 10, 64)
}

// customerIDFromHref extracts the numeric id from a customer self link. The
// write side of the contract addresses customers by URL only.
func customerIDFromHref(href string) (int64, error) {
	idx := strings.LastIndex(href, "/")
	if idx == -1 || idx == len(href)-1 {
		return 0, fmt.Errorf("no id segment in [%s]", href)
	}
	return strconv.ParseInt(href[idx+1:], 10, 64)
}
