package stub

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"licboard/internal/core"
)

// --- products: {success, data, meta} vocabulary ---

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := sortedValues(s.products)
	if cat := r.URL.Query().Get("category"); cat != "" {
		filtered := all[:0:0]
		for _, p := range all {
			if p.Category == cat {
				filtered = append(filtered, p)
			}
		}
		all = filtered
	}
	if q := r.URL.Query().Get("search"); q != "" {
		filtered := all[:0:0]
		for _, p := range all {
			if strings.Contains(strings.ToLower(p.Name), strings.ToLower(q)) {
				filtered = append(filtered, p)
			}
		}
		all = filtered
	}
	p := parsePage(r)
	page, total := slicePage(all, p)
	writeSuccessMeta(w, page, p, total)
}

func (s *Server) createProduct(w http.ResponseWriter, r *http.Request) {
	var in struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Category    string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "malformed JSON body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.products[in.ID]; exists {
		writeError(w, http.StatusConflict, "DUPLICATE_ID", "Product already exists")
		return
	}
	now := time.Now().UTC()
	prod := core.Product{
		ID:          in.ID,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.products[in.ID] = prod
	writeEntity(w, http.StatusCreated, prod)
}

// getProduct mirrors the backend quirk the client must cope with: a missing
// product still answers 200 with a null data field.
func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prod, ok := s.products[chi.URLParam(r, "id")]
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": nil})
		return
	}
	writeEntity(w, http.StatusOK, prod)
}

func (s *Server) updateProduct(w http.ResponseWriter, r *http.Request) {
	var patch struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Category    *string `json:"category"`
		Active      *bool   `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "malformed JSON body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := chi.URLParam(r, "id")
	prod, ok := s.products[id]
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "product not found")
		return
	}
	if patch.Name != nil {
		prod.Name = *patch.Name
	}
	if patch.Description != nil {
		prod.Description = *patch.Description
	}
	if patch.Category != nil {
		prod.Category = *patch.Category
	}
	if patch.Active != nil {
		prod.Active = *patch.Active
	}
	prod.UpdatedAt = time.Now().UTC()
	s.products[id] = prod
	writeEntity(w, http.StatusOK, prod)
}

func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := chi.URLParam(r, "id")
	if _, ok := s.products[id]; !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "product not found")
		return
	}
	delete(s.products, id)
	// delete confirms with an empty 204; the client must not need a body
	w.WriteHeader(http.StatusNoContent)
}

// --- versions ---

func (s *Server) listVersions(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := sortedValues(s.versions)
	if pid := r.URL.Query().Get("product_id"); pid != "" {
		filtered := all[:0:0]
		for _, v := range all {
			if v.ProductID == pid {
				filtered = append(filtered, v)
			}
		}
		all = filtered
	}
	if st := r.URL.Query().Get("status"); st != "" {
		filtered := all[:0:0]
		for _, v := range all {
			if string(v.Status) == st {
				filtered = append(filtered, v)
			}
		}
		all = filtered
	}
	p := parsePage(r)
	page, total := slicePage(all, p)
	writeSuccessMeta(w, page, p, total)
}

func (s *Server) createVersion(w http.ResponseWriter, r *http.Request) {
	var in struct {
		ProductID string `json:"product_id"`
		Version   string `json:"version"`
		Changelog string `json:"changelog"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "malformed JSON body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[in.ProductID]; !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "product not found")
		return
	}
	for _, v := range s.versions {
		if v.ProductID == in.ProductID && v.Version == in.Version {
			writeError(w, http.StatusConflict, "DUPLICATE_VERSION", "version already exists for product")
			return
		}
	}
	now := time.Now().UTC()
	ver := core.Version{
		ID:        uuid.NewString(),
		ProductID: in.ProductID,
		Version:   in.Version,
		Status:    core.VersionDraft,
		Changelog: in.Changelog,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.versions[ver.ID] = ver
	writeEntity(w, http.StatusCreated, ver)
}

func (s *Server) getVersion(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ver, ok := s.versions[chi.URLParam(r, "id")]
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "version not found")
		return
	}
	writeEntity(w, http.StatusOK, ver)
}

// versionAction flips the lifecycle status. The stub does not model the full
// transition table; it exists to exercise the client's action plumbing.
func (s *Server) versionAction(next core.VersionStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		id := chi.URLParam(r, "id")
		ver, ok := s.versions[id]
		if !ok {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "version not found")
			return
		}
		ver.Status = next
		now := time.Now().UTC()
		if next == core.VersionReleased {
			ver.ReleasedAt = &now
		}
		if next == core.VersionDeprecated {
			ver.DeprecatedAt = &now
		}
		ver.UpdatedAt = now
		s.versions[id] = ver
		writeEntity(w, http.StatusOK, ver)
	}
}

// --- customers ---

func (s *Server) listCustomers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := parsePage(r)
	page, total := slicePage(sortedValues(s.customers), p)
	writeSuccessMeta(w, page, p, total)
}

func (s *Server) getCustomer(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.customers[chi.URLParam(r, "id")]
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "customer not found")
		return
	}
	writeEntity(w, http.StatusOK, c)
}

// --- licenses: resource-named {licenses, pagination} vocabulary ---

func (s *Server) listLicenses(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := sortedValues(s.licenses)
	if sub := r.URL.Query().Get("subscription_id"); sub != "" {
		filtered := all[:0:0]
		for _, l := range all {
			if l.SubscriptionID == sub {
				filtered = append(filtered, l)
			}
		}
		all = filtered
	}
	p := parsePage(r)
	page, total := slicePage(all, p)
	writeNamedList(w, "licenses", page, p, total)
}

func (s *Server) getLicense(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lic, ok := s.licenses[chi.URLParam(r, "id")]
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "license not found")
		return
	}
	writeEntity(w, http.StatusOK, lic)
}

func (s *Server) allocateLicense(w http.ResponseWriter, r *http.Request) {
	var in struct {
		TenantID string `json:"tenant_id"`
		Seats    int    `json:"seats"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "malformed JSON body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := chi.URLParam(r, "id")
	lic, ok := s.licenses[id]
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "license not found")
		return
	}
	if lic.SeatsUsed+in.Seats > lic.Seats {
		writeError(w, http.StatusConflict, "SEATS_EXHAUSTED",
			fmt.Sprintf("requested %d seats but only %d remain", in.Seats, lic.Seats-lic.SeatsUsed))
		return
	}
	alloc := core.LicenseAllocation{
		ID:          uuid.NewString(),
		LicenseID:   id,
		TenantID:    in.TenantID,
		Seats:       in.Seats,
		AllocatedAt: time.Now().UTC(),
	}
	lic.SeatsUsed += in.Seats
	s.licenses[id] = lic
	s.allocations[alloc.ID] = alloc
	writeEntity(w, http.StatusCreated, alloc)
}

func (s *Server) listLicenseAllocations(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := chi.URLParam(r, "id")
	all := sortedValues(s.allocations)
	filtered := all[:0:0]
	for _, a := range all {
		if a.LicenseID == id {
			filtered = append(filtered, a)
		}
	}
	p := parsePage(r)
	page, total := slicePage(filtered, p)
	writeNamedList(w, "allocations", page, p, total)
}

func (s *Server) blockLicense(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := chi.URLParam(r, "id")
	lic, ok := s.licenses[id]
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "license not found")
		return
	}
	lic.Status = core.LicenseBlocked
	s.licenses[id] = lic
	writeEntity(w, http.StatusOK, lic)
}

// --- notifications: bare array, no envelope at all ---

func (s *Server) listNotifications(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := sortedValues(s.notifications)
	if r.URL.Query().Get("unread") == "true" {
		filtered := all[:0:0]
		for _, n := range all {
			if !n.Read {
				filtered = append(filtered, n)
			}
		}
		all = filtered
	}
	writeJSON(w, http.StatusOK, all)
}

// --- audit logs: {data, pagination} vocabulary ---

func (s *Server) listAuditLogs(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := sortedValues(s.auditLogs)
	if et := r.URL.Query().Get("entity_type"); et != "" {
		filtered := all[:0:0]
		for _, a := range all {
			if a.EntityType == et {
				filtered = append(filtered, a)
			}
		}
		all = filtered
	}
	p := parsePage(r)
	page, total := slicePage(all, p)
	writeDataPagination(w, page, p, total)
}

// --- deployments and pending updates ---

func (s *Server) listDeployments(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := sortedValues(s.deployments)
	if tid := r.URL.Query().Get("tenant_id"); tid != "" {
		filtered := all[:0:0]
		for _, d := range all {
			if d.TenantID == tid {
				filtered = append(filtered, d)
			}
		}
		all = filtered
	}
	p := parsePage(r)
	page, total := slicePage(all, p)
	writeSuccessMeta(w, page, p, total)
}

func (s *Server) getDeployment(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.deployments[chi.URLParam(r, "id")]
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "deployment not found")
		return
	}
	writeEntity(w, http.StatusOK, d)
}

func (s *Server) listPendingUpdates(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := chi.URLParam(r, "id")
	all := sortedValues(s.pending)
	filtered := all[:0:0]
	for _, u := range all {
		if u.DeploymentID == id {
			filtered = append(filtered, u)
		}
	}
	writeJSON(w, http.StatusOK, filtered)
}

// --- rollouts ---

func (s *Server) listRollouts(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := sortedValues(s.rollouts)
	if st := r.URL.Query().Get("status"); st != "" {
		filtered := all[:0:0]
		for _, ro := range all {
			if string(ro.Status) == st {
				filtered = append(filtered, ro)
			}
		}
		all = filtered
	}
	p := parsePage(r)
	page, total := slicePage(all, p)
	writeSuccessMeta(w, page, p, total)
}

func (s *Server) getRollout(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ro, ok := s.rollouts[chi.URLParam(r, "id")]
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "rollout not found")
		return
	}
	writeEntity(w, http.StatusOK, ro)
}

func (s *Server) rolloutAction(next core.RolloutStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		id := chi.URLParam(r, "id")
		ro, ok := s.rollouts[id]
		if !ok {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "rollout not found")
			return
		}
		ro.Status = next
		s.rollouts[id] = ro
		writeEntity(w, http.StatusOK, ro)
	}
}

// --- packages ---

func (s *Server) listPackages(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := parsePage(r)
	page, total := slicePage(sortedValues(s.packages), p)
	writeSuccessMeta(w, page, p, total)
}

func (s *Server) uploadPackage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "expected multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "file field is required")
		return
	}
	defer file.Close()
	size, err := io.Copy(io.Discard, file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "unreadable file")
		return
	}
	pkgType := r.FormValue("package_type")
	if pkgType == "" {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "package_type field is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	versionID := chi.URLParam(r, "id")
	if _, ok := s.versions[versionID]; !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "version not found")
		return
	}
	pkg := core.Package{
		ID:           uuid.NewString(),
		VersionID:    versionID,
		Filename:     header.Filename,
		PackageType:  pkgType,
		OS:           r.FormValue("os"),
		Architecture: r.FormValue("architecture"),
		SizeBytes:    size,
		UploadedAt:   time.Now().UTC(),
	}
	s.packages[pkg.ID] = pkg
	writeEntity(w, http.StatusCreated, pkg)
}
