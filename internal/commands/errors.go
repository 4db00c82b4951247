package commands

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes carried on wrapped builder command errors so API layers can map
// them without parsing messages.
const (
	builderValidationCode      = "LANDING_BUILDER_VALIDATION_FAILED"
	builderContextCanceledCode = "LANDING_BUILDER_CANCELED"
	builderContextTimeoutCode  = "LANDING_BUILDER_TIMEOUT"
	builderContextErrorCode    = "LANDING_BUILDER_CONTEXT_ERROR"
	builderExecuteFailedCode   = "LANDING_BUILDER_EXECUTION_FAILED"
)

func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "builder command validation failed").
		WithTextCode(builderValidationCode)
}

func wrapContextError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	switch err {
	case context.Canceled:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "builder command cancelled").
			WithTextCode(builderContextCanceledCode)
	case context.DeadlineExceeded:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "builder command deadline exceeded").
			WithTextCode(builderContextTimeoutCode)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "builder command context error").
			WithTextCode(builderContextErrorCode)
	}
}

func wrapExecuteError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "builder command execution failed").
		WithTextCode(builderExecuteFailedCode)
}
