package api

import (
	"context"
	"net/url"

	"licboard/internal/core"
)

type SubscriptionFilter struct {
	ListQuery
	CustomerID string
	ProductID  string
	Plan       string
}

func (f SubscriptionFilter) values() url.Values {
	params := pageParams(f.ListQuery)
	if f.CustomerID != "" {
		params.Set("customer_id", f.CustomerID)
	}
	if f.ProductID != "" {
		params.Set("product_id", f.ProductID)
	}
	if f.Plan != "" {
		params.Set("plan", f.Plan)
	}
	return params
}

type SubscriptionCreate struct {
	CustomerID string `json:"customer_id"`
	ProductID  string `json:"product_id"`
	Plan       string `json:"plan"`
	Seats      int    `json:"seats"`
}

type Subscriptions struct {
	res resource[core.Subscription]
}

func newSubscriptions(t *Transport) *Subscriptions {
	return &Subscriptions{res: resource[core.Subscription]{t: t, path: "/subscriptions", plural: "subscriptions"}}
}

func (c *Subscriptions) List(ctx context.Context, f SubscriptionFilter) (List[core.Subscription], error) {
	return c.res.list(ctx, f.values(), f.ListQuery)
}

func (c *Subscriptions) Get(ctx context.Context, id string) (core.Subscription, error) {
	return c.res.get(ctx, id)
}

func (c *Subscriptions) Create(ctx context.Context, in SubscriptionCreate) (core.Subscription, error) {
	if err := validateID("customer id", in.CustomerID); err != nil {
		return core.Subscription{}, err
	}
	if err := validateID("product id", in.ProductID); err != nil {
		return core.Subscription{}, err
	}
	if err := validateSeats(in.Seats); err != nil {
		return core.Subscription{}, err
	}
	return c.res.create(ctx, in)
}

func (c *Subscriptions) Delete(ctx context.Context, id string) error {
	return c.res.delete(ctx, id)
}
