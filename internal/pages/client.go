package pages

import (
	"context"

	"github.com/youpv/personal-trainer/internal/customers"
	"github.com/youpv/personal-trainer/internal/trainings"
)

//go:generate mockgen -source=client.go -destination=api_client_mock.go -package=pages

// ApiClient is what the page controllers need from the remote service.
// *restapi.Client satisfies it.
type ApiClient interface {
	Customers(ctx context.Context) ([]customers.Customer, error)
	AddCustomer(ctx context.Context, customer customers.Customer) error
	UpdateCustomer(ctx context.Context, customer customers.Customer) error
	DeleteCustomer(ctx context.Context, ref customers.ResourceRef) error
	Trainings(ctx context.Context) ([]trainings.Training, error)
	AddTraining(ctx context.Context, newTraining trainings.NewTraining) error
	DeleteTraining(ctx context.Context, id int64) error
	Reset(ctx context.Context) error
}
