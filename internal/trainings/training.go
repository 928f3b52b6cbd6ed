package trainings

import (
	"encoding/json"
	"fmt"

	"github.com/youpv/personal-trainer/internal/customers"
)

// Training is the read-side shape: the customer comes embedded as a full
// object. Duration is kept as json.Number since the service may send it as an
// integer or a float; it is checked only at the point of use, never silently
// coerced.
type Training struct {
	ID       int64               `json:"id"`
	Date     string              `json:"date"`
	Duration json.Number         `json:"duration"`
	Activity string              `json:"activity"`
	Customer *customers.Customer `json:"customer"`
}

// Minutes returns the duration as a number of minutes.
func (t Training) Minutes() (float64, error) {
	minutes, err := t.Duration.Float64()
	if err != nil {
		return 0, &TypeMismatchError{
			TrainingID: t.ID,
			Activity:   t.Activity,
			Raw:        t.Duration.String(),
		}
	}
	return minutes, nil
}

func (t Training) CustomerName() string {
	if t.Customer == nil {
		return ""
	}
	return t.Customer.FullName()
}

// NewTraining is the write-side shape: the customer is addressed by its
// resource URL, not embedded. The read/write asymmetry is the remote service's
// fixed contract.
type NewTraining struct {
	Date     string                `json:"date"`
	Duration int                   `json:"duration"`
	Activity string                `json:"activity"`
	Customer customers.ResourceRef `json:"customer"`
}

// TypeMismatchError reports a duration value that is not numeric on the wire.
type TypeMismatchError struct {
	TrainingID int64
	Activity   string
	Raw        string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf(
		"training %d (%s): duration [%s] is not numeric",
		e.TrainingID, e.Activity, e.Raw,
	)
}
