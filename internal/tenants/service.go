package tenants

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/goliatone/go-landing/internal/logging"
	"github.com/goliatone/go-landing/landing"
	"github.com/goliatone/go-landing/pkg/interfaces"
	landingtemplates "github.com/goliatone/go-landing/templates"
)

// Service exposes tenant and builder lifecycle capabilities. Every builder
// edit mutates exactly one section override or the order list and persists
// the full landing blob; resolution re-reads it from scratch.
type Service interface {
	CreateTenant(ctx context.Context, input CreateTenantInput) (*Tenant, error)
	GetTenant(ctx context.Context, id uuid.UUID) (*Tenant, error)
	GetTenantBySlug(ctx context.Context, slugValue string) (*Tenant, error)
	ListTenants(ctx context.Context) ([]*Tenant, error)

	ChooseTemplate(ctx context.Context, tenantID uuid.UUID, templateID string) (*Tenant, error)
	UpdateSection(ctx context.Context, input UpdateSectionInput) (*Tenant, error)
	ReorderSections(ctx context.Context, tenantID uuid.UUID, order []string) (*Tenant, error)

	AddTestimonial(ctx context.Context, input AddTestimonialInput) (*TestimonialRecord, error)
	ListTestimonialPayloads(ctx context.Context, tenantID uuid.UUID) ([]any, error)
	DeleteTestimonial(ctx context.Context, id uuid.UUID) error
}

// CreateTenantInput captures the information required to onboard a tenant.
// The landing config starts as "template defaults, no overrides".
type CreateTenantInput struct {
	Name       string
	Slug       string
	Domain     *string
	TemplateID string
}

// UpdateSectionInput replaces one section's override. Props, when present,
// replaces the stored props wholesale; the builder UI writes a full props
// object per edit.
type UpdateSectionInput struct {
	TenantID uuid.UUID
	Section  string
	Enabled  *bool
	Variant  *string
	Props    map[string]any
}

// AddTestimonialInput appends a raw testimonial payload for a tenant.
type AddTestimonialInput struct {
	TenantID uuid.UUID
	Position int
	Payload  map[string]any
}

var (
	ErrTenantRepositoryRequired      = errors.New("tenants: tenant repository required")
	ErrTestimonialRepositoryRequired = errors.New("tenants: testimonial repository required")

	ErrTenantNameRequired = errors.New("tenants: name required")
	ErrTenantSlugInvalid  = errors.New("tenants: slug invalid")
	ErrTenantExists       = errors.New("tenants: tenant already exists")
	ErrTenantNotFound     = errors.New("tenants: tenant not found")

	ErrTemplateUnknown          = errors.New("tenants: template not registered")
	ErrSectionTypeInvalid       = errors.New("tenants: unknown section type")
	ErrTestimonialPayloadEmpty  = errors.New("tenants: testimonial payload required")
	ErrTestimonialNotFound      = errors.New("tenants: testimonial not found")
	ErrSectionOrderEmpty        = errors.New("tenants: section order required")
	ErrSectionOrderUnrecognized = errors.New("tenants: section order has no known entries")
)

// IDGenerator produces unique identifiers.
type IDGenerator func() uuid.UUID

// ServiceOption configures service behaviour.
type ServiceOption func(*service)

// WithIDGenerator overrides the default ID generator.
func WithIDGenerator(generator IDGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithClock overrides the time source (primarily for tests).
func WithClock(now func() time.Time) ServiceOption {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger attaches a logger for builder lifecycle events.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	tenants      TenantRepository
	testimonials TestimonialRepository
	catalog      landingtemplates.Catalog
	id           IDGenerator
	now          func() time.Time
	logger       interfaces.Logger
}

// NewService constructs a tenant service instance.
func NewService(tenantRepo TenantRepository, testimonialRepo TestimonialRepository, catalog landingtemplates.Catalog, opts ...ServiceOption) Service {
	if tenantRepo == nil {
		panic(ErrTenantRepositoryRequired)
	}
	if testimonialRepo == nil {
		panic(ErrTestimonialRepositoryRequired)
	}
	if catalog == nil {
		panic(landing.ErrCatalogRequired)
	}

	s := &service{
		tenants:      tenantRepo,
		testimonials: testimonialRepo,
		catalog:      catalog,
		id:           uuid.New,
		now:          time.Now,
		logger:       logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) CreateTenant(ctx context.Context, input CreateTenantInput) (*Tenant, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTenantNameRequired
	}

	slugValue := strings.TrimSpace(input.Slug)
	if slugValue == "" {
		slugValue = name
	}
	normalized, err := slug.Normalize(slugValue)
	if err != nil || normalized == "" {
		return nil, ErrTenantSlugInvalid
	}

	templateID := strings.TrimSpace(input.TemplateID)
	if templateID == "" {
		templateID = s.catalog.FallbackTemplateID()
	}
	if _, found := s.catalog.Get(templateID); !found {
		return nil, ErrTemplateUnknown
	}

	if existing, err := s.tenants.GetBySlug(ctx, normalized); err == nil && existing != nil {
		return nil, ErrTenantExists
	} else if err != nil {
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			return nil, err
		}
	}

	record := &Tenant{
		ID:     s.id(),
		Name:   name,
		Slug:   normalized,
		Domain: cloneString(input.Domain),
		Landing: landing.Override{
			TemplateID: templateID,
		},
		CreatedAt: s.now().UTC(),
		UpdatedAt: s.now().UTC(),
	}

	created, err := s.tenants.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return cloneTenant(created), nil
}

func (s *service) GetTenant(ctx context.Context, id uuid.UUID) (*Tenant, error) {
	if id == uuid.Nil {
		return nil, ErrTenantNotFound
	}
	tenant, err := s.tenants.GetByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, ErrTenantNotFound)
	}
	return cloneTenant(tenant), nil
}

func (s *service) GetTenantBySlug(ctx context.Context, slugValue string) (*Tenant, error) {
	slugValue = strings.TrimSpace(slugValue)
	if slugValue == "" {
		return nil, ErrTenantNotFound
	}
	tenant, err := s.tenants.GetBySlug(ctx, slugValue)
	if err != nil {
		return nil, translateRepoError(err, ErrTenantNotFound)
	}
	return cloneTenant(tenant), nil
}

func (s *service) ListTenants(ctx context.Context) ([]*Tenant, error) {
	records, err := s.tenants.List(ctx)
	if err != nil {
		return nil, err
	}
	return cloneTenantSlice(records), nil
}

// ChooseTemplate switches the tenant's template. Existing section overrides
// are retained: they merge against the new template's defaults on the next
// resolution, and variant selection corrects anything the new template does
// not register.
func (s *service) ChooseTemplate(ctx context.Context, tenantID uuid.UUID, templateID string) (*Tenant, error) {
	templateID = strings.TrimSpace(templateID)
	if _, found := s.catalog.Get(templateID); !found {
		return nil, ErrTemplateUnknown
	}

	return s.mutateLanding(ctx, tenantID, func(override *landing.Override) error {
		override.TemplateID = templateID
		return nil
	})
}

func (s *service) UpdateSection(ctx context.Context, input UpdateSectionInput) (*Tenant, error) {
	sectionKey := strings.ToLower(strings.TrimSpace(input.Section))
	if !landing.IsSectionType(sectionKey) {
		return nil, ErrSectionTypeInvalid
	}

	return s.mutateLanding(ctx, input.TenantID, func(override *landing.Override) error {
		if override.Sections == nil {
			override.Sections = make(map[string]landing.SectionOverride)
		}
		section := override.Sections[sectionKey]
		if input.Enabled != nil {
			value := *input.Enabled
			section.Enabled = &value
		}
		if input.Variant != nil {
			value := strings.TrimSpace(*input.Variant)
			section.Variant = &value
		}
		if input.Props != nil {
			section.Props = cloneMap(input.Props)
		}
		override.Sections[sectionKey] = section
		return nil
	})
}

func (s *service) ReorderSections(ctx context.Context, tenantID uuid.UUID, order []string) (*Tenant, error) {
	if len(order) == 0 {
		return nil, ErrSectionOrderEmpty
	}
	cleaned := make([]string, 0, len(order))
	for _, entry := range order {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if landing.IsSectionType(entry) {
			cleaned = append(cleaned, entry)
		}
	}
	if len(cleaned) == 0 {
		return nil, ErrSectionOrderUnrecognized
	}

	return s.mutateLanding(ctx, tenantID, func(override *landing.Override) error {
		override.SectionOrder = cleaned
		return nil
	})
}

func (s *service) AddTestimonial(ctx context.Context, input AddTestimonialInput) (*TestimonialRecord, error) {
	if input.TenantID == uuid.Nil {
		return nil, ErrTenantNotFound
	}
	if len(input.Payload) == 0 {
		return nil, ErrTestimonialPayloadEmpty
	}
	if _, err := s.tenants.GetByID(ctx, input.TenantID); err != nil {
		return nil, translateRepoError(err, ErrTenantNotFound)
	}

	record := &TestimonialRecord{
		ID:        s.id(),
		TenantID:  input.TenantID,
		Position:  input.Position,
		Payload:   cloneMap(input.Payload),
		CreatedAt: s.now().UTC(),
		UpdatedAt: s.now().UTC(),
	}
	created, err := s.testimonials.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return cloneTestimonialRecord(created), nil
}

// ListTestimonialPayloads returns the raw persisted payloads in stored order,
// shaped for the resolver input boundary. Normalization happens inside the
// engine, not here.
func (s *service) ListTestimonialPayloads(ctx context.Context, tenantID uuid.UUID) ([]any, error) {
	records, err := s.testimonials.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]any, 0, len(records))
	for _, record := range records {
		out = append(out, cloneMap(record.Payload))
	}
	return out, nil
}

func (s *service) DeleteTestimonial(ctx context.Context, id uuid.UUID) error {
	if err := s.testimonials.Delete(ctx, id); err != nil {
		return translateRepoError(err, ErrTestimonialNotFound)
	}
	return nil
}

func (s *service) mutateLanding(ctx context.Context, tenantID uuid.UUID, mutate func(*landing.Override) error) (*Tenant, error) {
	if tenantID == uuid.Nil {
		return nil, ErrTenantNotFound
	}
	tenant, err := s.tenants.GetByID(ctx, tenantID)
	if err != nil {
		return nil, translateRepoError(err, ErrTenantNotFound)
	}

	override := cloneOverride(tenant.Landing)
	if err := mutate(&override); err != nil {
		return nil, err
	}

	tenant.Landing = override
	tenant.UpdatedAt = s.now().UTC()

	updated, err := s.tenants.Update(ctx, tenant)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("tenants.landing.updated", "tenant_id", tenantID.String())
	return cloneTenant(updated), nil
}

func translateRepoError(err error, fallback error) error {
	if err == nil {
		return nil
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return fallback
	}
	return err
}
