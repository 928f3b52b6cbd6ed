package customers_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/youpv/personal-trainer/internal/customers"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSV_HeaderAndOrder(t *testing.T) {
	var buf bytes.Buffer
	err := customers.ExportCSV(&buf, []customers.Customer{
		{
			Firstname:     "Maija",
			Lastname:      "Meikäläinen",
			Email:         "maija@example.com",
			Phone:         "040-1234567",
			Streetaddress: "Mannerheimintie 1",
			Postcode:      "00100",
			City:          "Helsinki",
		},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"firstname","lastname","email","phone","streetaddress","postcode","city"`, lines[0])
	assert.Equal(t, `"Maija","Meikäläinen","maija@example.com","040-1234567","Mannerheimintie 1","00100","Helsinki"`, lines[1])
}

func TestExportCSV_RoundTripWithEmbeddedQuotes(t *testing.T) {
	faker := gofakeit.New(42)
	list := []customers.Customer{
		{
			Firstname:     `Tuomas "Tupu"`,
			Lastname:      faker.LastName(),
			Email:         faker.Email(),
			Phone:         faker.Phone(),
			Streetaddress: `3rd "B" Street, apt. 4`,
			Postcode:      faker.Zip(),
			City:          faker.City(),
		},
		{
			Firstname: faker.FirstName(),
			Lastname:  faker.LastName(),
			City:      `so called "city"`,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, customers.ExportCSV(&buf, list))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(list)+1)

	for i, c := range list {
		row := records[i+1]
		assert.Equal(t, []string{
			c.Firstname, c.Lastname, c.Email, c.Phone, c.Streetaddress, c.Postcode, c.City,
		}, row)
	}
}

func TestExportCSV_EmptyListStillWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, customers.ExportCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "firstname", records[0][0])
}
