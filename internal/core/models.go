package core

import "time"

// VersionStatus is the server-owned lifecycle state of a product version.
// The client never validates transitions; it only carries the string through
// so the UI can decide which actions to offer.
type VersionStatus string

const (
	VersionDraft         VersionStatus = "draft"
	VersionPendingReview VersionStatus = "pending_review"
	VersionApproved      VersionStatus = "approved"
	VersionReleased      VersionStatus = "released"
	VersionDeprecated    VersionStatus = "deprecated"
	VersionEOL           VersionStatus = "eol"
)

type LicenseStatus string

const (
	LicenseActive  LicenseStatus = "active"
	LicenseExpired LicenseStatus = "expired"
	LicenseBlocked LicenseStatus = "blocked"
)

type RolloutStatus string

const (
	RolloutScheduled RolloutStatus = "scheduled"
	RolloutRunning   RolloutStatus = "running"
	RolloutPaused    RolloutStatus = "paused"
	RolloutCompleted RolloutStatus = "completed"
)

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Version struct {
	ID           string        `json:"id"`
	ProductID    string        `json:"product_id"`
	Version      string        `json:"version"`
	Status       VersionStatus `json:"status"`
	Changelog    string        `json:"changelog,omitempty"`
	ReleasedAt   *time.Time    `json:"released_at,omitempty"`
	DeprecatedAt *time.Time    `json:"deprecated_at,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Company   string    `json:"company,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type Tenant struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Name       string    `json:"name"`
	Region     string    `json:"region,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type Deployment struct {
	ID         string    `json:"id"`
	TenantID   string    `json:"tenant_id"`
	ProductID  string    `json:"product_id"`
	VersionID  string    `json:"version_id"`
	Hostname   string    `json:"hostname,omitempty"`
	Status     string    `json:"status"`
	DeployedAt time.Time `json:"deployed_at"`
}

type Subscription struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	ProductID  string    `json:"product_id"`
	Plan       string    `json:"plan"`
	Seats      int       `json:"seats"`
	StartsAt   time.Time `json:"starts_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

type License struct {
	ID             string        `json:"id"`
	SubscriptionID string        `json:"subscription_id"`
	Key            string        `json:"key"`
	Status         LicenseStatus `json:"status"`
	Seats          int           `json:"seats"`
	SeatsUsed      int           `json:"seats_used"`
	ExpiresAt      time.Time     `json:"expires_at"`
	CreatedAt      time.Time     `json:"created_at"`
}

type LicenseAllocation struct {
	ID          string    `json:"id"`
	LicenseID   string    `json:"license_id"`
	TenantID    string    `json:"tenant_id"`
	Seats       int       `json:"seats"`
	AllocatedAt time.Time `json:"allocated_at"`
}

type Notification struct {
	ID        string    `json:"id"`
	Level     string    `json:"level"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type AuditLog struct {
	ID         string    `json:"id"`
	ActorID    string    `json:"actor_id"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Detail     string    `json:"detail,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// CompatibilityRule records which product versions may coexist. The rules
// themselves are evaluated server-side.
type CompatibilityRule struct {
	ID             string `json:"id"`
	ProductID      string `json:"product_id"`
	VersionRange   string `json:"version_range"`
	DependsOn      string `json:"depends_on"`
	DependsOnRange string `json:"depends_on_range"`
	Note           string `json:"note,omitempty"`
}

type UpgradePath struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	FromVersion string `json:"from_version"`
	ToVersion   string `json:"to_version"`
	Mandatory   bool   `json:"mandatory"`
	Note        string `json:"note,omitempty"`
}

type UpdateDetection struct {
	ID           string    `json:"id"`
	DeploymentID string    `json:"deployment_id"`
	FromVersion  string    `json:"from_version"`
	ToVersion    string    `json:"to_version"`
	DetectedAt   time.Time `json:"detected_at"`
}

type UpdateRollout struct {
	ID          string        `json:"id"`
	ProductID   string        `json:"product_id"`
	VersionID   string        `json:"version_id"`
	Status      RolloutStatus `json:"status"`
	TargetCount int           `json:"target_count"`
	DoneCount   int           `json:"done_count"`
	StartedAt   *time.Time    `json:"started_at,omitempty"`
}

type PendingUpdate struct {
	ID           string    `json:"id"`
	DeploymentID string    `json:"deployment_id"`
	VersionID    string    `json:"version_id"`
	Severity     string    `json:"severity"`
	CreatedAt    time.Time `json:"created_at"`
}

type Package struct {
	ID           string    `json:"id"`
	VersionID    string    `json:"version_id"`
	Filename     string    `json:"filename"`
	PackageType  string    `json:"package_type"`
	OS           string    `json:"os,omitempty"`
	Architecture string    `json:"architecture,omitempty"`
	SizeBytes    int64     `json:"size_bytes"`
	Checksum     string    `json:"checksum,omitempty"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

// DashboardSummary is the joined result of the dashboard fan-out. Counts come
// from each list's pagination total; the item slices hold first pages only.
type DashboardSummary struct {
	ProductCount    int             `json:"product_count"`
	VersionCount    int             `json:"version_count"`
	RolloutCount    int             `json:"rollout_count"`
	CustomerCount   int             `json:"customer_count"`
	RecentProducts  []Product       `json:"recent_products"`
	ActiveRollouts  []UpdateRollout `json:"active_rollouts"`
	RecentAuditLogs []AuditLog      `json:"recent_audit_logs"`
}
