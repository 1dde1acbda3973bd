package middleware

import (
	"errors"

	"github.com/wikisync/wikisync/internal/errs"
	"github.com/wikisync/wikisync/internal/logger"
)

var ErrLogged = errors.New("already logged")

func FlagComboError(code errs.Code, a ...any) error {
	msg := errs.Msg(code, a...)
	logger.LogError("%s", msg)
	return ErrLogged
}
