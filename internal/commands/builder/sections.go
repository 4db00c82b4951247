package buildercmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-landing/internal/commands"
	"github.com/goliatone/go-landing/internal/logging"
	"github.com/goliatone/go-landing/internal/tenants"
	"github.com/goliatone/go-landing/landing"
	"github.com/goliatone/go-landing/pkg/interfaces"
)

const (
	updateSectionMessageType   = "landing.builder.update_section"
	reorderSectionsMessageType = "landing.builder.reorder_sections"
	chooseTemplateMessageType  = "landing.builder.choose_template"
)

// UpdateSectionCommand replaces one section's override on a tenant's landing
// blob. Props, when supplied, replaces the stored props wholesale.
type UpdateSectionCommand struct {
	// TenantID selects the tenant whose landing config is edited.
	TenantID uuid.UUID `json:"tenant_id"`
	// Section names the section type being edited (hero, about, ...).
	Section string `json:"section"`
	// Enabled toggles the section when present.
	Enabled *bool `json:"enabled,omitempty"`
	// Variant selects the presentational implementation when present.
	Variant *string `json:"variant,omitempty"`
	// Props carries the full props object written by the builder UI.
	Props map[string]any `json:"props,omitempty"`
}

// Type implements command.Message.
func (UpdateSectionCommand) Type() string { return updateSectionMessageType }

// Validate ensures the edit targets a tenant and a known section type.
func (cmd UpdateSectionCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.TenantID, validation.By(tenantIDRequired)),
		validation.Field(&cmd.Section, validation.Required, validation.By(knownSectionType)),
	)
}

// UpdateSectionHandler persists a single-section builder edit.
type UpdateSectionHandler struct {
	inner *commands.Handler[UpdateSectionCommand]
}

// NewUpdateSectionHandler constructs a handler wired to the tenant service.
func NewUpdateSectionHandler(service tenants.Service, logger interfaces.Logger, opts ...commands.HandlerOption[UpdateSectionCommand]) *UpdateSectionHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, cmd UpdateSectionCommand) error {
		tenant, err := service.UpdateSection(ctx, tenants.UpdateSectionInput{
			TenantID: cmd.TenantID,
			Section:  cmd.Section,
			Enabled:  cmd.Enabled,
			Variant:  cmd.Variant,
			Props:    cmd.Props,
		})
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"tenant_id": tenant.ID.String(),
			"section":   cmd.Section,
		}).Info("builder.section.updated")
		return nil
	}

	options := append([]commands.HandlerOption[UpdateSectionCommand]{
		commands.WithLogger[UpdateSectionCommand](baseLogger),
		commands.WithOperation[UpdateSectionCommand]("builder.update_section"),
	}, opts...)

	return &UpdateSectionHandler{inner: commands.NewHandler(exec, options...)}
}

// Execute satisfies command.Commander.
func (h *UpdateSectionHandler) Execute(ctx context.Context, cmd UpdateSectionCommand) error {
	return h.inner.Execute(ctx, cmd)
}

// ReorderSectionsCommand replaces the tenant's stored section order.
type ReorderSectionsCommand struct {
	TenantID uuid.UUID `json:"tenant_id"`
	Order    []string  `json:"order"`
}

// Type implements command.Message.
func (ReorderSectionsCommand) Type() string { return reorderSectionsMessageType }

// Validate ensures the new order is present and names known section types.
func (cmd ReorderSectionsCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.TenantID, validation.By(tenantIDRequired)),
		validation.Field(&cmd.Order, validation.Required, validation.By(func(value any) error {
			entries, _ := value.([]string)
			for _, entry := range entries {
				if !landing.IsSectionType(strings.ToLower(strings.TrimSpace(entry))) {
					return validation.NewError("landing.builder.reorder_sections.unknown_section", "order contains unknown section type")
				}
			}
			return nil
		})),
	)
}

// ReorderSectionsHandler persists a section order edit.
type ReorderSectionsHandler struct {
	inner *commands.Handler[ReorderSectionsCommand]
}

// NewReorderSectionsHandler constructs a handler wired to the tenant service.
func NewReorderSectionsHandler(service tenants.Service, logger interfaces.Logger, opts ...commands.HandlerOption[ReorderSectionsCommand]) *ReorderSectionsHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, cmd ReorderSectionsCommand) error {
		tenant, err := service.ReorderSections(ctx, cmd.TenantID, cmd.Order)
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"tenant_id": tenant.ID.String(),
			"order":     strings.Join(cmd.Order, ","),
		}).Info("builder.sections.reordered")
		return nil
	}

	options := append([]commands.HandlerOption[ReorderSectionsCommand]{
		commands.WithLogger[ReorderSectionsCommand](baseLogger),
		commands.WithOperation[ReorderSectionsCommand]("builder.reorder_sections"),
	}, opts...)

	return &ReorderSectionsHandler{inner: commands.NewHandler(exec, options...)}
}

// Execute satisfies command.Commander.
func (h *ReorderSectionsHandler) Execute(ctx context.Context, cmd ReorderSectionsCommand) error {
	return h.inner.Execute(ctx, cmd)
}

// ChooseTemplateCommand switches the tenant's template; existing overrides
// are retained and re-merged against the new defaults on the next resolution.
type ChooseTemplateCommand struct {
	TenantID   uuid.UUID `json:"tenant_id"`
	TemplateID string    `json:"template_id"`
}

// Type implements command.Message.
func (ChooseTemplateCommand) Type() string { return chooseTemplateMessageType }

// Validate ensures the target template id is present.
func (cmd ChooseTemplateCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.TenantID, validation.By(tenantIDRequired)),
		validation.Field(&cmd.TemplateID, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("landing.builder.choose_template.template_required", "template id is required")
			}
			return nil
		})),
	)
}

// ChooseTemplateHandler persists a template switch.
type ChooseTemplateHandler struct {
	inner *commands.Handler[ChooseTemplateCommand]
}

// NewChooseTemplateHandler constructs a handler wired to the tenant service.
func NewChooseTemplateHandler(service tenants.Service, logger interfaces.Logger, opts ...commands.HandlerOption[ChooseTemplateCommand]) *ChooseTemplateHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, cmd ChooseTemplateCommand) error {
		tenant, err := service.ChooseTemplate(ctx, cmd.TenantID, cmd.TemplateID)
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"tenant_id":   tenant.ID.String(),
			"template_id": cmd.TemplateID,
		}).Info("builder.template.chosen")
		return nil
	}

	options := append([]commands.HandlerOption[ChooseTemplateCommand]{
		commands.WithLogger[ChooseTemplateCommand](baseLogger),
		commands.WithOperation[ChooseTemplateCommand]("builder.choose_template"),
	}, opts...)

	return &ChooseTemplateHandler{inner: commands.NewHandler(exec, options...)}
}

// Execute satisfies command.Commander.
func (h *ChooseTemplateHandler) Execute(ctx context.Context, cmd ChooseTemplateCommand) error {
	return h.inner.Execute(ctx, cmd)
}

func tenantIDRequired(value any) error {
	id, _ := value.(uuid.UUID)
	if id == uuid.Nil {
		return validation.NewError("landing.builder.tenant_required", "tenant id is required")
	}
	return nil
}

func knownSectionType(value any) error {
	section, _ := value.(string)
	if !landing.IsSectionType(strings.ToLower(strings.TrimSpace(section))) {
		return validation.NewError("landing.builder.unknown_section", "unknown section type")
	}
	return nil
}
