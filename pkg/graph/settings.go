package graph

import (
	"fmt"

	"github.com/justtrackio/graphmail/pkg/cfg"
)

type Settings struct {
	Tenant       string `cfg:"tenant" default:"common"`
	ClientId     string `cfg:"client_id"`
	ClientSecret string `cfg:"client_secret"`
}

func readSettings(config cfg.Config) (*Settings, error) {
	settings := &Settings{}
	if err := config.UnmarshalKey("graph_mail", settings); err != nil {
		return nil, fmt.Errorf("can not unmarshal graph mail settings: %w", err)
	}

	return settings, nil
}
