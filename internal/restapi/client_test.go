package restapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/youpv/personal-trainer/internal/customers"
	"github.com/youpv/personal-trainer/internal/restapi"
	"github.com/youpv/personal-trainer/internal/trainings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const customersEnvelopeResponse = `{
	"_embedded": {
		"customers": [
			{
				"firstname": "Maija",
				"lastname": "Meikäläinen",
				"streetaddress": "Mannerheimintie 1",
				"postcode": "00100",
				"city": "Helsinki",
				"email": "maija@example.com",
				"phone": "040-1234567",
				"_links": {
					"self": { "href": "http://test-host/customers/1" },
					"customer": { "href": "http://test-host/customers/1" },
					"trainings": { "href": "http://test-host/customers/1/trainings" }
				}
			},
			{
				"firstname": "John",
				"lastname": "Smith",
				"city": "Espoo",
				"email": "j.smith@example.com",
				"_links": {}
			}
		]
	}
}`

const trainingsResponse = `[
	{
		"id": 1,
		"date": "2024-03-12T10:00:00.000+00:00",
		"duration": 60,
		"activity": "Yoga",
		"customer": { "firstname": "Maija", "lastname": "Meikäläinen" }
	},
	{
		"id": 2,
		"date": "2024-03-13T18:00:00.000+00:00",
		"duration": 45.5,
		"activity": "Spinning",
		"customer": { "firstname": "John", "lastname": "Smith" }
	}
]`

func TestClient_Customers(t *testing.T) {
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/customers", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(customersEnvelopeResponse))
	}))
	defer testServer.Close()

	client := restapi.NewClient(testServer.URL, testServer.Client())

	list, err := client.Customers(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "Maija", list[0].Firstname)
	assert.Equal(t, "Helsinki", list[0].City)
	assert.Equal(t, customers.ResourceRef("http://test-host/customers/1"), list[0].Ref)

	// no self link -> read-only record
	assert.Equal(t, "John", list[1].Firstname)
	assert.True(t, list[1].Ref.IsZero())
}

func TestClient_Trainings(t *testing.T) {
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/gettrainings", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(trainingsResponse))
	}))
	defer testServer.Close()

	client := restapi.NewClient(testServer.URL, testServer.Client())

	list, err := client.Trainings(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, "Yoga", list[0].Activity)
	assert.Equal(t, "Maija Meikäläinen", list[0].CustomerName())

	// the service may send the duration as a float
	minutes, err := list[1].Minutes()
	require.NoError(t, err)
	assert.Equal(t, 45.5, minutes)
}

func TestClient_UpdateCustomer_UsesSelfLink(t *testing.T) {
	var gotPath, gotMethod string
	var gotBody []byte
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer testServer.Close()

	client := restapi.NewClient(testServer.URL, testServer.Client())

	customer := customers.Customer{
		Firstname: "Maija",
		Lastname:  "Meikäläinen",
		Ref:       customers.ResourceRef(testServer.URL + "/customers/1"),
	}
	require.NoError(t, client.UpdateCustomer(context.Background(), customer))

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/customers/1", gotPath)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(gotBody, &sent))
	assert.Equal(t, "Maija", sent["firstname"])
	// the self link is identity, not payload
	assert.NotContains(t, sent, "_links")
}

func TestClient_UpdateCustomer_MissingSelfLink(t *testing.T) {
	client := restapi.NewClient("http://unused", nil)

	err := client.UpdateCustomer(context.Background(), customers.Customer{Firstname: "Maija"})
	require.ErrorIs(t, err, restapi.ErrMissingSelfLink)

	err = client.DeleteCustomer(context.Background(), "")
	require.ErrorIs(t, err, restapi.ErrMissingSelfLink)
}

func TestClient_AddTraining_CustomerAsURL(t *testing.T) {
	var gotBody []byte
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/trainings", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer testServer.Close()

	client := restapi.NewClient(testServer.URL, testServer.Client())

	err := client.AddTraining(context.Background(), trainings.NewTraining{
		Date:     "2024-03-12T10:00:00",
		Duration: 60,
		Activity: "Yoga",
		Customer: "http://test-host/customers/1",
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"date": "2024-03-12T10:00:00",
		"duration": 60,
		"activity": "Yoga",
		"customer": "http://test-host/customers/1"
	}`, string(gotBody))
}

func TestClient_DeleteTrainingAndReset(t *testing.T) {
	var gotRequests []string
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequests = append(gotRequests, r.Method+" "+r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer testServer.Close()

	client := restapi.NewClient(testServer.URL, testServer.Client())

	require.NoError(t, client.DeleteTraining(context.Background(), 42))
	require.NoError(t, client.Reset(context.Background()))

	assert.Equal(t, []string{"DELETE /trainings/42", "POST /reset"}, gotRequests)
}

func TestClient_Non2xxStatus(t *testing.T) {
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer testServer.Close()

	client := restapi.NewClient(testServer.URL, testServer.Client())

	_, err := client.Customers(context.Background())
	require.Error(t, err)

	var statusErr *restapi.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)

	err = client.DeleteTraining(context.Background(), 1)
	require.True(t, errors.As(err, &statusErr))
}
