package restapi

import (
	"errors"
	"fmt"
)

// ErrMissingSelfLink means the customer record carried no _links.self.href, so
// it cannot be addressed for update, delete or new trainings.
var ErrMissingSelfLink = errors.New("customer has no self link")

// StatusError is a non-2xx response from the remote service.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected response status: %d", e.Code)
}
