package di

import (
	"time"

	"github.com/goliatone/go-command"

	"github.com/goliatone/go-landing/internal/commands"
)

func commandTimeout[T command.Message](timeout time.Duration) []commands.HandlerOption[T] {
	if timeout <= 0 {
		return nil
	}
	return []commands.HandlerOption[T]{commands.WithTimeout[T](timeout)}
}
