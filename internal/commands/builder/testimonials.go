package buildercmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-landing/internal/commands"
	"github.com/goliatone/go-landing/internal/logging"
	"github.com/goliatone/go-landing/internal/markdown"
	"github.com/goliatone/go-landing/internal/tenants"
	"github.com/goliatone/go-landing/pkg/interfaces"
)

const importTestimonialsMessageType = "landing.builder.import_testimonials"

// ImportTestimonialsCommand loads markdown testimonial documents from
// Directory and appends their payloads to the tenant's testimonial records.
type ImportTestimonialsCommand struct {
	// TenantID selects the tenant receiving the testimonials.
	TenantID uuid.UUID `json:"tenant_id"`
	// Directory is the filesystem path holding .md testimonial documents.
	Directory string `json:"directory"`
}

// Type implements command.Message.
func (ImportTestimonialsCommand) Type() string { return importTestimonialsMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd ImportTestimonialsCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.TenantID, validation.By(tenantIDRequired)),
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("landing.builder.import_testimonials.directory_required", "directory is required")
			}
			return nil
		})),
	)
}

// ImportTestimonialsHandler orchestrates the markdown import.
type ImportTestimonialsHandler struct {
	inner *commands.Handler[ImportTestimonialsCommand]
}

// NewImportTestimonialsHandler constructs a handler wired to the tenant service.
func NewImportTestimonialsHandler(service tenants.Service, logger interfaces.Logger, opts ...commands.HandlerOption[ImportTestimonialsCommand]) *ImportTestimonialsHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, cmd ImportTestimonialsCommand) error {
		payloads, err := markdown.LoadDirectory(cmd.Directory)
		if err != nil {
			return err
		}
		for position, payload := range payloads {
			if _, err := service.AddTestimonial(ctx, tenants.AddTestimonialInput{
				TenantID: cmd.TenantID,
				Position: position,
				Payload:  payload,
			}); err != nil {
				return err
			}
		}
		logging.WithFields(baseLogger, map[string]any{
			"tenant_id": cmd.TenantID.String(),
			"imported":  len(payloads),
		}).Info("builder.testimonials.imported")
		return nil
	}

	options := append([]commands.HandlerOption[ImportTestimonialsCommand]{
		commands.WithLogger[ImportTestimonialsCommand](baseLogger),
		commands.WithOperation[ImportTestimonialsCommand]("builder.import_testimonials"),
	}, opts...)

	return &ImportTestimonialsHandler{inner: commands.NewHandler(exec, options...)}
}

// Execute satisfies command.Commander.
func (h *ImportTestimonialsHandler) Execute(ctx context.Context, cmd ImportTestimonialsCommand) error {
	return h.inner.Execute(ctx, cmd)
}
