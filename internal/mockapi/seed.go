package mockapi

import (
	"time"

	"github.com/youpv/personal-trainer/internal/customers"

	"github.com/brianvoe/gofakeit/v6"
	log "github.com/sirupsen/logrus"
)

var seedActivities = []string{
	"Yoga", "Spinning", "Zumba", "Jogging", "Gym training", "Fitness", "Boxing",
}

var seedDurations = []int{30, 45, 60, 90}

// Seed fills the store with generated customers and trainings. Dates land in
// a window around now so the calendar view has something to show.
func Seed(store *Store, numCustomers, numTrainings int) {
	faker := gofakeit.New(0)

	customerIDs := make([]int64, 0, numCustomers)
	for i := 0; i < numCustomers; i++ {
		id := store.AddCustomer(customers.Customer{
			Firstname:     faker.FirstName(),
			Lastname:      faker.LastName(),
			Streetaddress: faker.Street(),
			Postcode:      faker.Zip(),
			City:          faker.City(),
			Email:         faker.Email(),
			Phone:         faker.Phone(),
		})
		customerIDs = append(customerIDs, id)
	}

	if len(customerIDs) == 0 {
		return
	}

	now := time.Now()
	from := now.AddDate(0, 0, -14)
	to := now.AddDate(0, 0, 14)

	for i := 0; i < numTrainings; i++ {
		_, err := store.AddTraining(StoredTraining{
			Date:       faker.DateRange(from, to).Format(time.RFC3339),
			Duration:   seedDurations[faker.Number(0, len(seedDurations)-1)],
			Activity:   seedActivities[faker.Number(0, len(seedActivities)-1)],
			CustomerID: customerIDs[faker.Number(0, len(customerIDs)-1)],
		})
		if err != nil {
			log.Errorf("seed: add training: %s", err)
		}
	}

	log.Debugf("seeded %d customers and %d trainings", numCustomers, numTrainings)
}
