package filelog

import (
	"fmt"
	"sync"

	"github.com/Station-Manager/errors"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate
var once sync.Once

func validateConfig(cfg *Config) error {
	const op errors.Op = "filelog.validateConfig"
	if cfg == nil {
		return preconditionError(op, errMsgConfigInvalid)
	}

	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	if err := validate.Struct(cfg); err != nil {
		return errors.New(op).Err(fmt.Errorf("%w: %w", errPrecondition, err)).Msg(errMsgConfigInvalid)
	}

	return nil
}
