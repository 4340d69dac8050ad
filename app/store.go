package app

import (
	"github.com/soocke/firescreen-go/config"
	"github.com/soocke/firescreen-go/domain/recorder"
)

// configStore persists settings applied from the dialog into the config file.
type configStore struct {
	cfg  *config.Config
	path string
}

func (s configStore) Persist(st recorder.Settings) error {
	s.cfg.SetSettings(st)
	if s.path == "" {
		return nil
	}
	return s.cfg.Save(s.path)
}
