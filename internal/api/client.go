// Package api is the sole translator between the management backend's wire
// contract and the canonical shapes the rest of the program consumes. UI-side
// code only ever sees List values, entities and APIErrors; raw response
// envelopes never escape this package.
package api

import (
	"licboard/internal/config"
	"licboard/internal/session"
)

// Client bundles one facade per backend resource family over a shared
// transport. Facades are stateless between calls; the only shared mutable
// state is the injected session store.
type Client struct {
	Products      *Products
	Versions      *Versions
	Customers     *Customers
	Tenants       *Tenants
	Deployments   *Deployments
	Subscriptions *Subscriptions
	Licenses      *Licenses
	Allocations   *Allocations
	Notifications *Notifications
	AuditLogs     *AuditLogs
	Compatibility *Compatibility
	UpgradePaths  *UpgradePaths
	Detections    *UpdateDetections
	Pending       *PendingUpdates
	Rollouts      *Rollouts
	Packages      *Packages
	Dashboard     *Dashboard
}

func New(cfg config.APICfg, sess session.Store) *Client {
	return NewWithTransport(NewTransport(cfg, sess))
}

// NewWithTransport lets tests inject a transport pointed at a local server.
func NewWithTransport(t *Transport) *Client {
	c := &Client{
		Products:      newProducts(t),
		Versions:      newVersions(t),
		Customers:     newCustomers(t),
		Tenants:       newTenants(t),
		Deployments:   newDeployments(t),
		Subscriptions: newSubscriptions(t),
		Licenses:      newLicenses(t),
		Allocations:   newAllocations(t),
		Notifications: newNotifications(t),
		AuditLogs:     newAuditLogs(t),
		Compatibility: newCompatibility(t),
		UpgradePaths:  newUpgradePaths(t),
		Detections:    newUpdateDetections(t),
		Pending:       newPendingUpdates(t),
		Rollouts:      newRollouts(t),
		Packages:      newPackages(t),
	}
	c.Dashboard = newDashboard(c.Products, c.Versions, c.Rollouts, c.Customers, c.AuditLogs)
	return c
}
