package main

import (
	"fmt"

	"skn_admin/config"
	"skn_admin/internal/catalog/client"
	"skn_admin/internal/catalog/credential"
	"skn_admin/internal/catalog/store"
	"skn_admin/internal/global"
	"skn_admin/internal/logger"
)

// InitApp dựng toàn bộ dependency theo thứ tự:
// config → logger → validator → api client → credential store → store.
// Store được truyền tường minh cho các command, không có singleton.
func InitApp() (*store.Store, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("không khởi tạo được config: %w", err)
	}

	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.Format = cfg.LogFormat
	logCfg.Output = cfg.LogOutput
	logCfg.LogPath = cfg.LogPath
	if err := logger.Init(logCfg); err != nil {
		return nil, fmt.Errorf("không khởi tạo được logger: %w", err)
	}

	global.InitValidator()

	apiClient := client.NewApiClient(cfg)
	creds := credential.NewFileStore(cfg.ResolveCredentialFile())

	return store.NewStore(apiClient, creds), nil
}
