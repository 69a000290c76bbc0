// Package vendors manages the supplier catalog. Vendor websites are
// normalized to their registrable domain (eTLD+1) so the same supplier
// entered with different URLs dedupes on one key.
package vendors

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/publicsuffix"

	"aigov/internal/domain"
	"aigov/internal/ports"
)

type Service struct {
	vendors ports.VendorRepository
	now     func() time.Time
}

func New(vendors ports.VendorRepository) *Service {
	return &Service{vendors: vendors, now: time.Now}
}

type VendorInput struct {
	Name         string
	Website      *string
	Jurisdiction string
}

func (s *Service) Create(ctx context.Context, orgID string, in VendorInput) (domain.Vendor, error) {
	v := domain.Vendor{
		ID:        uuid.NewString(),
		OrgID:     orgID,
		CreatedAt: s.now(),
	}
	applyInput(&v, in)
	if err := s.vendors.CreateVendor(ctx, v); err != nil {
		return domain.Vendor{}, fmt.Errorf("create vendor: %w", err)
	}
	return v, nil
}

func (s *Service) Update(ctx context.Context, orgID, id string, in VendorInput) (domain.Vendor, error) {
	v, err := s.vendors.GetVendor(ctx, orgID, id)
	if err != nil {
		return domain.Vendor{}, err
	}
	applyInput(&v, in)
	if err := s.vendors.UpdateVendor(ctx, v); err != nil {
		return domain.Vendor{}, fmt.Errorf("update vendor: %w", err)
	}
	return v, nil
}

func (s *Service) Get(ctx context.Context, orgID, id string) (domain.Vendor, error) {
	return s.vendors.GetVendor(ctx, orgID, id)
}

func (s *Service) List(ctx context.Context, orgID string) ([]domain.Vendor, error) {
	return s.vendors.ListVendors(ctx, orgID)
}

func (s *Service) Delete(ctx context.Context, orgID, id string) error {
	return s.vendors.DeleteVendor(ctx, orgID, id)
}

func applyInput(v *domain.Vendor, in VendorInput) {
	v.Name = in.Name
	v.Website = in.Website
	v.Jurisdiction = in.Jurisdiction
	v.RegistrableDomain = nil
	if in.Website != nil {
		if reg := normalizeWebsite(*in.Website); reg != "" {
			v.RegistrableDomain = &reg
		}
	}
}

// normalizeWebsite extracts the lowercase eTLD+1 from a vendor URL. A bare
// hostname without scheme is accepted; an unparsable value yields "".
func normalizeWebsite(raw string) string {
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return ""
	}
	registrable, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return registrable
}
