package integrationtest

import (
	"sync"

	"github.com/humanbelnik/cinevault/internal/config"
)

var (
	cfg     *config.Config
	cfgOnce sync.Once
)

func getConfig() *config.Config {
	cfgOnce.Do(func() {
		cfg = config.MustLoad("")
	})
	return cfg
}
