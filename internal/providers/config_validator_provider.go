package providers

import (
	"fauna/internal/structures"
	"fmt"

	"github.com/gookit/validate"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (c *CnfValidator) Validate() error {
	v := validate.Struct(c.conf)
	if !v.Validate() {
		return v.Errors
	}
	if c.conf.Store.Driver != "memory" && c.conf.Store.Path == "" {
		return fmt.Errorf("store.path is required for the %s driver", c.conf.Store.Driver)
	}
	if c.conf.Store.Driver == "file" && c.conf.Store.SaveInterval <= 0 {
		return fmt.Errorf("store.saveInterval must be positive for the file driver")
	}
	return nil
}
