package stub

import (
	"fmt"
	"time"

	"licboard/internal/core"
)

// seed loads a small deterministic dataset so listings paginate predictably.
func (s *Server) seed() {
	base := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

	for i := 1; i <= 3; i++ {
		id := fmt.Sprintf("prod-%02d", i)
		s.products[id] = core.Product{
			ID:        id,
			Name:      fmt.Sprintf("Product %d", i),
			Category:  "platform",
			Active:    true,
			CreatedAt: base,
			UpdatedAt: base,
		}
	}

	s.versions["ver-01"] = core.Version{
		ID:        "ver-01",
		ProductID: "prod-01",
		Version:   "1.2.0",
		Status:    core.VersionDraft,
		CreatedAt: base,
		UpdatedAt: base,
	}
	released := base.Add(24 * time.Hour)
	s.versions["ver-02"] = core.Version{
		ID:         "ver-02",
		ProductID:  "prod-01",
		Version:    "1.1.0",
		Status:     core.VersionReleased,
		ReleasedAt: &released,
		CreatedAt:  base,
		UpdatedAt:  released,
	}

	s.customers["cust-01"] = core.Customer{
		ID:        "cust-01",
		Name:      "Acme Industrial",
		Company:   "Acme",
		Active:    true,
		CreatedAt: base,
	}

	s.licenses["lic-01"] = core.License{
		ID:             "lic-01",
		SubscriptionID: "sub-01",
		Key:            "ACME-AAAA-BBBB",
		Status:         core.LicenseActive,
		Seats:          10,
		SeatsUsed:      4,
		ExpiresAt:      base.AddDate(1, 0, 0),
		CreatedAt:      base,
	}

	for i := 1; i <= 4; i++ {
		id := fmt.Sprintf("ntf-%02d", i)
		s.notifications[id] = core.Notification{
			ID:        id,
			Level:     "info",
			Title:     fmt.Sprintf("Notification %d", i),
			Read:      i%2 == 0,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
	}

	for i := 1; i <= 5; i++ {
		id := fmt.Sprintf("aud-%02d", i)
		s.auditLogs[id] = core.AuditLog{
			ID:         id,
			ActorID:    "user-1",
			Action:     "update",
			EntityType: "product",
			EntityID:   "prod-01",
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
		}
	}

	s.deployments["dep-01"] = core.Deployment{
		ID:         "dep-01",
		TenantID:   "ten-01",
		ProductID:  "prod-01",
		VersionID:  "ver-02",
		Hostname:   "edge-01.acme.example",
		Status:     "healthy",
		DeployedAt: base,
	}
	s.deployments["dep-02"] = core.Deployment{
		ID:         "dep-02",
		TenantID:   "ten-01",
		ProductID:  "prod-02",
		VersionID:  "ver-02",
		Hostname:   "edge-02.acme.example",
		Status:     "healthy",
		DeployedAt: base,
	}

	s.pending["pu-01"] = core.PendingUpdate{
		ID:           "pu-01",
		DeploymentID: "dep-01",
		VersionID:    "ver-01",
		Severity:     "security",
		CreatedAt:    base,
	}

	s.rollouts["ro-01"] = core.UpdateRollout{
		ID:          "ro-01",
		ProductID:   "prod-01",
		VersionID:   "ver-02",
		Status:      core.RolloutRunning,
		TargetCount: 25,
		DoneCount:   12,
		StartedAt:   &base,
	}
}
