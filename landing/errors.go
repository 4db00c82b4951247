package landing

import "errors"

var (
	ErrCatalogRequired = errors.New("landing: template catalog required")

	ErrTemplateIDRequired = errors.New("landing: template id required")
	ErrTemplateNotFound   = errors.New("landing: template not found")

	ErrCatalogIntegrity         = errors.New("landing: catalog integrity violation")
	ErrSectionDefaultMissing    = errors.New("landing: section type missing default config")
	ErrSectionVariantsMissing   = errors.New("landing: section type has no registered variants")
	ErrDefaultVariantUnknown    = errors.New("landing: default variant not in registered set")
	ErrDefaultPropsSchemaFailed = errors.New("landing: default props rejected by section schema")
)
