package names

import (
	"errors"
	"fmt"
	"net/http"
)

// Config holds the env-loadable handler settings.
type Config struct {
	// InvalidStatus is the status of a POST rejected for a blank name.
	InvalidStatus int `env:"NAMES_INVALID_STATUS" envDefault:"200"`
}

// HandlerOptions converts cfg into handler options. A status outside 200-599
// yields an error matching ErrInvalidConfig.
func (cfg Config) HandlerOptions() ([]HandlerOption, error) {
	if cfg.InvalidStatus == 0 {
		return nil, nil
	}
	if !validStatus(cfg.InvalidStatus) {
		return nil, errors.Join(ErrInvalidConfig,
			fmt.Errorf("NAMES_INVALID_STATUS %d is outside 200-599", cfg.InvalidStatus))
	}
	return []HandlerOption{WithInvalidInputStatus(cfg.InvalidStatus)}, nil
}

func validStatus(code int) bool {
	return code >= http.StatusOK && code <= 599
}
