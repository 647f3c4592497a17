package api

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"licboard/internal/core"
)

// Dashboard fans out to the other facades concurrently and joins their
// first pages and totals into one summary. A failed branch contributes its
// zero value instead of failing the whole load; the dashboard renders with
// whatever arrived.
type Dashboard struct {
	products  *Products
	versions  *Versions
	rollouts  *Rollouts
	customers *Customers
	audit     *AuditLogs
}

func newDashboard(products *Products, versions *Versions, rollouts *Rollouts, customers *Customers, audit *AuditLogs) *Dashboard {
	return &Dashboard{
		products:  products,
		versions:  versions,
		rollouts:  rollouts,
		customers: customers,
		audit:     audit,
	}
}

func (d *Dashboard) Summary(ctx context.Context) core.DashboardSummary {
	var summary core.DashboardSummary
	firstPage := ListQuery{Page: 1, Limit: 5}

	// Plain context, not errgroup.WithContext: one failing branch must not
	// cancel the siblings.
	var g errgroup.Group
	g.Go(func() error {
		out, err := d.products.List(ctx, ProductFilter{ListQuery: firstPage})
		if err != nil {
			logBranchFailure("products", err)
			return nil
		}
		summary.ProductCount = out.PageInfo.Total
		summary.RecentProducts = out.Items
		return nil
	})
	g.Go(func() error {
		out, err := d.versions.List(ctx, VersionFilter{ListQuery: firstPage})
		if err != nil {
			logBranchFailure("versions", err)
			return nil
		}
		summary.VersionCount = out.PageInfo.Total
		return nil
	})
	g.Go(func() error {
		out, err := d.rollouts.List(ctx, RolloutFilter{ListQuery: firstPage, Status: core.RolloutRunning})
		if err != nil {
			logBranchFailure("rollouts", err)
			return nil
		}
		summary.RolloutCount = out.PageInfo.Total
		summary.ActiveRollouts = out.Items
		return nil
	})
	g.Go(func() error {
		out, err := d.customers.List(ctx, CustomerFilter{ListQuery: firstPage})
		if err != nil {
			logBranchFailure("customers", err)
			return nil
		}
		summary.CustomerCount = out.PageInfo.Total
		return nil
	})
	g.Go(func() error {
		out, err := d.audit.List(ctx, AuditLogFilter{ListQuery: firstPage})
		if err != nil {
			logBranchFailure("audit-logs", err)
			return nil
		}
		summary.RecentAuditLogs = out.Items
		return nil
	})
	_ = g.Wait()

	if summary.RecentProducts == nil {
		summary.RecentProducts = []core.Product{}
	}
	if summary.ActiveRollouts == nil {
		summary.ActiveRollouts = []core.UpdateRollout{}
	}
	if summary.RecentAuditLogs == nil {
		summary.RecentAuditLogs = []core.AuditLog{}
	}
	return summary
}

func logBranchFailure(name string, err error) {
	log.Warn().
		Str("branch", name).
		Str("kind", string(ErrorKind(err))).
		Err(err).
		Msg("dashboard branch failed, using defaults")
}
