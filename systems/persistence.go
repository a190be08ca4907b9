package systems

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/fireworks/config"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

const optionsItem = "options"

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for options storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "fireworks",
	})
	if err != nil {
		return fmt.Errorf("open persistence: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadOptions loads the last saved options over base.
// Missing storage or an empty item returns base unchanged.
func LoadOptions(base cfg.Options) (cfg.Options, error) {
	if gdataManager == nil {
		return base, nil
	}

	data, err := gdataManager.LoadItem(optionsItem)
	if err != nil {
		return base, fmt.Errorf("load options: %w", err)
	}
	if len(data) == 0 {
		// Nothing saved yet
		return base, nil
	}

	opts := base
	if err := json.Unmarshal(data, &opts); err != nil {
		return base, fmt.Errorf("parse saved options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return base, err
	}
	return opts, nil
}

// SaveOptions stores opts for the next session
func SaveOptions(opts cfg.Options) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(opts)
	if err != nil {
		return fmt.Errorf("serialize options: %w", err)
	}
	if err := gdataManager.SaveItem(optionsItem, data); err != nil {
		return fmt.Errorf("save options: %w", err)
	}
	zap.S().Debugw("options saved", "shellType", opts.ShellType, "quality", opts.Quality)
	return nil
}
