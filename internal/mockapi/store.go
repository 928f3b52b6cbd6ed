package mockapi

import (
	"errors"
	"sync"

	"github.com/youpv/personal-trainer/internal/customers"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrTrainingNotFound = errors.New("training not found")
)

// StoredTraining is the server-side shape: the customer is a foreign key, the
// embedding happens only when rendering the read response.
type StoredTraining struct {
	ID         int64
	Date       string
	Duration   int
	Activity   string
	CustomerID int64
}

// Store is the in-memory backing store of the mock service. The real service
// keeps this in a database; here reset/reseed is the whole persistence story.
type Store struct {
	mu sync.RWMutex

	nextCustomerID int64
	nextTrainingID int64

	customers     map[int64]customers.Customer
	trainings     map[int64]StoredTraining
	customerOrder []int64
	trainingOrder []int64
}

func NewStore() *Store {
	s := &Store{}
	s.wipeLocked()
	return s
}

func (s *Store) wipeLocked() {
	s.nextCustomerID = 1
	s.nextTrainingID = 1
	s.customers = make(map[int64]customers.Customer)
	s.trainings = make(map[int64]StoredTraining)
	s.customerOrder = nil
	s.trainingOrder = nil
}

// Wipe drops all data, resetting id counters.
func (s *Store) Wipe() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wipeLocked()
}

func (s *Store) AddCustomer(c customers.Customer) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextCustomerID
	s.nextCustomerID++
	s.customers[id] = c
	s.customerOrder = append(s.customerOrder, id)
	return id
}

func (s *Store) UpdateCustomer(id int64, c customers.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[id]; !ok {
		return ErrCustomerNotFound
	}
	s.customers[id] = c
	return nil
}

// DeleteCustomer removes the customer and cascades to its trainings.
func (s *Store) DeleteCustomer(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[id]; !ok {
		return ErrCustomerNotFound
	}
	delete(s.customers, id)
	s.customerOrder = removeID(s.customerOrder, id)

	for trainingID, t := range s.trainings {
		if t.CustomerID == id {
			delete(s.trainings, trainingID)
			s.trainingOrder = removeID(s.trainingOrder, trainingID)
		}
	}
	return nil
}

func (s *Store) GetCustomer(id int64) (customers.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.customers[id]
	return c, ok
}

// ListCustomers returns ids and customers in insertion order.
func (s *Store) ListCustomers() ([]int64, []customers.Customer) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.customerOrder))
	list := make([]customers.Customer, 0, len(s.customerOrder))
	for _, id := range s.customerOrder {
		ids = append(ids, id)
		list = append(list, s.customers[id])
	}
	return ids, list
}

func (s *Store) AddTraining(t StoredTraining) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[t.CustomerID]; !ok {
		return 0, ErrCustomerNotFound
	}

	id := s.nextTrainingID
	s.nextTrainingID++
	t.ID = id
	s.trainings[id] = t
	s.trainingOrder = append(s.trainingOrder, id)
	return id, nil
}

func (s *Store) DeleteTraining(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.trainings[id]; !ok {
		return ErrTrainingNotFound
	}
	delete(s.trainings, id)
	s.trainingOrder = removeID(s.trainingOrder, id)
	return nil
}

func (s *Store) ListTrainings() []StoredTraining {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]StoredTraining, 0, len(s.trainingOrder))
	for _, id := range s.trainingOrder {
		list = append(list, s.trainings[id])
	}
	return list
}

func (s *Store) Counts() (numCustomers, numTrainings int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.customers), len(s.trainings)
}

func removeID(ids []int64, id int64) []int64 {
	for i, candidate := range ids {
		if candidate == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
