package mockapi_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/youpv/personal-trainer/internal/customers"
	"github.com/youpv/personal-trainer/internal/mockapi"
	"github.com/youpv/personal-trainer/internal/restapi"
	"github.com/youpv/personal-trainer/internal/trainings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	seedCustomers = 5
	seedTrainings = 9
)

// the mock service is exercised through the real client, covering both sides
// of the hypermedia contract at once
func newTestClient(t *testing.T) (*restapi.Client, func()) {
	t.Helper()

	server := mockapi.NewServer(mockapi.NewServerParams{
		SeedCustomers: seedCustomers,
		SeedTrainings: seedTrainings,
	})
	testServer := httptest.NewServer(server.Router())

	return restapi.NewClient(testServer.URL, testServer.Client()), testServer.Close
}

func TestServer_CustomersEnvelope(t *testing.T) {
	client, closeServer := newTestClient(t)
	defer closeServer()

	list, err := client.Customers(context.Background())
	require.NoError(t, err)
	require.Len(t, list, seedCustomers)

	for _, c := range list {
		assert.NotEmpty(t, c.Firstname)
		assert.False(t, c.Ref.IsZero(), "every stored customer must carry a self link")
	}
}

func TestServer_CustomerCRUD(t *testing.T) {
	client, closeServer := newTestClient(t)
	defer closeServer()
	ctx := context.Background()

	require.NoError(t, client.AddCustomer(ctx, customers.Customer{
		Firstname: "Maija",
		Lastname:  "Meikäläinen",
		City:      "Helsinki",
	}))

	list, err := client.Customers(ctx)
	require.NoError(t, err)
	require.Len(t, list, seedCustomers+1)

	added := list[len(list)-1]
	assert.Equal(t, "Maija", added.Firstname)

	added.City = "Vantaa"
	require.NoError(t, client.UpdateCustomer(ctx, added))

	list, err = client.Customers(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Vantaa", list[len(list)-1].City)

	require.NoError(t, client.DeleteCustomer(ctx, added.Ref))

	list, err = client.Customers(ctx)
	require.NoError(t, err)
	assert.Len(t, list, seedCustomers)
}

func TestServer_TrainingsEmbedCustomer(t *testing.T) {
	client, closeServer := newTestClient(t)
	defer closeServer()

	list, err := client.Trainings(context.Background())
	require.NoError(t, err)
	require.Len(t, list, seedTrainings)

	for _, training := range list {
		require.NotNil(t, training.Customer)
		assert.NotEmpty(t, training.Activity)

		minutes, err := training.Minutes()
		require.NoError(t, err)
		assert.Positive(t, minutes)
	}
}

func TestServer_AddAndDeleteTraining(t *testing.T) {
	client, closeServer := newTestClient(t)
	defer closeServer()
	ctx := context.Background()

	customersList, err := client.Customers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, customersList)

	require.NoError(t, client.AddTraining(ctx, trainings.NewTraining{
		Date:     "2024-03-12T10:00:00",
		Duration: 75,
		Activity: "Crossfit",
		Customer: customersList[0].Ref,
	}))

	list, err := client.Trainings(ctx)
	require.NoError(t, err)
	require.Len(t, list, seedTrainings+1)

	added := list[len(list)-1]
	assert.Equal(t, "Crossfit", added.Activity)
	assert.Equal(t, customersList[0].FullName(), added.CustomerName())

	require.NoError(t, client.DeleteTraining(ctx, added.ID))

	list, err = client.Trainings(ctx)
	require.NoError(t, err)
	assert.Len(t, list, seedTrainings)
}

func TestServer_DeleteCustomerCascadesTrainings(t *testing.T) {
	client, closeServer := newTestClient(t)
	defer closeServer()
	ctx := context.Background()

	customersList, err := client.Customers(ctx)
	require.NoError(t, err)
	target := customersList[0]

	trainingsBefore, err := client.Trainings(ctx)
	require.NoError(t, err)

	var owned int
	for _, training := range trainingsBefore {
		if training.CustomerName() == target.FullName() {
			owned++
		}
	}

	require.NoError(t, client.DeleteCustomer(ctx, target.Ref))

	trainingsAfter, err := client.Trainings(ctx)
	require.NoError(t, err)
	assert.Len(t, trainingsAfter, len(trainingsBefore)-owned)
}

func TestServer_ResetReseeds(t *testing.T) {
	client, closeServer := newTestClient(t)
	defer closeServer()
	ctx := context.Background()

	customersList, err := client.Customers(ctx)
	require.NoError(t, err)
	for _, c := range customersList {
		require.NoError(t, client.DeleteCustomer(ctx, c.Ref))
	}

	trainingsList, err := client.Trainings(ctx)
	require.NoError(t, err)
	require.Empty(t, trainingsList)

	require.NoError(t, client.Reset(ctx))

	customersList, err = client.Customers(ctx)
	require.NoError(t, err)
	assert.Len(t, customersList, seedCustomers)

	trainingsList, err = client.Trainings(ctx)
	require.NoError(t, err)
	assert.Len(t, trainingsList, seedTrainings)
}
