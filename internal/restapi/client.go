package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/youpv/personal-trainer/internal/customers"
	"github.com/youpv/personal-trainer/internal/telemetry/tracing"
	"github.com/youpv/personal-trainer/internal/trainings"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Client talks to the remote personal-training REST service. The service is
// the sole source of truth: nothing fetched through here is cached, and every
// mutation is expected to be followed by a full re-fetch on the caller side.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// customersEnvelope is the hypermedia read shape of GET /customers.
type customersEnvelope struct {
	Embedded struct {
		Customers []customerResource `json:"customers"`
	} `json:"_embedded"`
}

type customerResource struct {
	customers.Customer
	Links struct {
		Self struct {
			Href string `json:"href"`
		} `json:"self"`
	} `json:"_links"`
}

func (c *Client) Customers(ctx context.Context) (_ []customers.Customer, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "restapi.customers")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var envelope customersEnvelope
	if err := c.get(ctx, c.baseURL+"/customers", &envelope); err != nil {
		return nil, err
	}

	list := make([]customers.Customer, 0, len(envelope.Embedded.Customers))
	for _, res := range envelope.Embedded.Customers {
		customer := res.Customer
		// a customer without the self link stays read-only
		customer.Ref = customers.ResourceRef(res.Links.Self.Href)
		list = append(list, customer)
	}

	log.Debugf("restapi: fetched %d customers", len(list))

	return list, nil
}

func (c *Client) AddCustomer(ctx context.Context, customer customers.Customer) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "restapi.addCustomer")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return c.send(ctx, http.MethodPost, c.baseURL+"/customers", customer)
}

func (c *Client) UpdateCustomer(ctx context.Context, customer customers.Customer) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "restapi.updateCustomer")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if customer.Ref.IsZero() {
		return ErrMissingSelfLink
	}

	return c.send(ctx, http.MethodPut, customer.Ref.String(), customer)
}

func (c *Client) DeleteCustomer(ctx context.Context, ref customers.ResourceRef) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "restapi.deleteCustomer")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if ref.IsZero() {
		return ErrMissingSelfLink
	}

	return c.send(ctx, http.MethodDelete, ref.String(), nil)
}

func (c *Client) Trainings(ctx context.Context) (_ []trainings.Training, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "restapi.trainings")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var list []trainings.Training
	if err := c.get(ctx, c.baseURL+"/gettrainings", &list); err != nil {
		return nil, err
	}

	log.Debugf("restapi: fetched %d trainings", len(list))

	return list, nil
}

func (c *Client) AddTraining(ctx context.Context, newTraining trainings.NewTraining) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "restapi.addTraining")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if newTraining.Customer.IsZero() {
		return ErrMissingSelfLink
	}

	return c.send(ctx, http.MethodPost, c.baseURL+"/trainings", newTraining)
}

func (c *Client) DeleteTraining(ctx context.Context, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "restapi.deleteTraining")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return c.send(ctx, http.MethodDelete, fmt.Sprintf("%s/trainings/%d", c.baseURL, id), nil)
}

// Reset wipes and reseeds the remote backing store.
func (c *Client) Reset(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "restapi.reset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return c.send(ctx, http.MethodPost, c.baseURL+"/reset", nil)
}

func (c *Client) get(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Code: resp.StatusCode}
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response bytes: %w", err)
	}

	if err := json.Unmarshal(respBytes, out); err != nil {
		return fmt.Errorf("unmarshal response from %s: %w", url, err)
	}

	return nil
}

func (c *Client) send(ctx context.Context, method, url string, body any) error {
	var reqBody io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	// drain so the connection can be reused
	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		log.Tracef("restapi: drain response body: %s", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Code: resp.StatusCode}
	}

	return nil
}
