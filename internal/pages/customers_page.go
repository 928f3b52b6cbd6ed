package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/youpv/personal-trainer/internal/customers"
	"github.com/youpv/personal-trainer/internal/restapi"
	"github.com/youpv/personal-trainer/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

// CustomersPage holds the customer list page state: the fetched collection,
// the search term, the loading flag and the editor dialog. State only moves
// through the defined transitions (refresh, search, open/close editor, save,
// delete); fetched data is never mutated in place, only replaced wholesale.
type CustomersPage struct {
	client   ApiClient
	notifier Notifier

	loading    bool
	search     string
	all        []customers.Customer
	dialogOpen bool
	editing    bool // editor holds an existing customer vs. a new one
	draft      customers.Customer
}

func NewCustomersPage(client ApiClient, notifier Notifier) *CustomersPage {
	return &CustomersPage{
		client:   client,
		notifier: notifier,
	}
}

// Refresh replaces the whole collection with a fresh fetch. On failure the
// last-good data stays on screen and only the loading flag is cleared.
func (p *CustomersPage) Refresh(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "pages.customers.refresh")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	p.loading = true
	defer func() {
		p.loading = false
	}()

	fetched, err := p.client.Customers(ctx)
	if err != nil {
		log.Errorf("customers page: refresh: %s", err)
		p.notifier.Error("Failed to fetch customers")
		return err
	}

	p.all = fetched
	return nil
}

func (p *CustomersPage) Loading() bool {
	return p.loading
}

func (p *CustomersPage) SetSearch(term string) {
	p.search = term
}

// Visible returns the rows matching the current search term, recomputed from
// the full in-memory collection on every call.
func (p *CustomersPage) Visible() []customers.Customer {
	return customers.Filter(p.search, p.all)
}

func (p *CustomersPage) DialogOpen() bool {
	return p.dialogOpen
}

func (p *CustomersPage) Draft() customers.Customer {
	return p.draft
}

// OpenEditor opens the dialog for the customer behind ref. A record without a
// self link cannot be edited.
func (p *CustomersPage) OpenEditor(ref customers.ResourceRef) error {
	if ref.IsZero() {
		return restapi.ErrMissingSelfLink
	}
	for _, c := range p.all {
		if c.Ref == ref {
			p.draft = c
			p.editing = true
			p.dialogOpen = true
			return nil
		}
	}
	return fmt.Errorf("customer %s not in the fetched list", ref)
}

// OpenNew opens the dialog with an empty customer.
func (p *CustomersPage) OpenNew() {
	p.draft = customers.Customer{}
	p.editing = false
	p.dialogOpen = true
}

func (p *CustomersPage) SetDraft(c customers.Customer) {
	c.Ref = p.draft.Ref
	p.draft = c
}

func (p *CustomersPage) CloseDialog() {
	p.dialogOpen = false
	p.draft = customers.Customer{}
}

// Save submits the dialog draft, then re-fetches the full list. No optimistic
// update: the collection changes only through the fetch.
func (p *CustomersPage) Save(ctx context.Context) error {
	var err error
	if p.editing {
		err = p.client.UpdateCustomer(ctx, p.draft)
	} else {
		err = p.client.AddCustomer(ctx, p.draft)
	}
	if err != nil {
		log.Errorf("customers page: save: %s", err)
		p.notifier.Error("Failed to save customer")
		return err
	}

	p.notifier.Success("Customer saved")
	p.CloseDialog()
	return p.Refresh(ctx)
}

func (p *CustomersPage) Delete(ctx context.Context, ref customers.ResourceRef) error {
	if err := p.client.DeleteCustomer(ctx, ref); err != nil {
		log.Errorf("customers page: delete: %s", err)
		p.notifier.Error("Failed to delete customer")
		return err
	}

	p.notifier.Success("Customer deleted")
	return p.Refresh(ctx)
}

// ExportCSV writes the current unfiltered collection as CSV.
func (p *CustomersPage) ExportCSV(w io.Writer) error {
	if err := customers.ExportCSV(w, p.all); err != nil {
		p.notifier.Error("Failed to export customers")
		return err
	}
	return nil
}
