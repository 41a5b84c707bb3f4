package main

import "path/filepath"

const defaultDataDir = "data"

func defaultConfig() Config {
	return Config{
		ListenAddr:     "0.0.0.0:3333",
		StatusAddr:     "127.0.0.1:8080",
		MaxConns:       1000,
		DataDir:        defaultDataDir,
		LogLevel:       "info",
		WorkerPrefix:   "goproxy",
		FeePercent:     0,
		FeeWorkerName:  "fee",
		FeeAddresses:   map[string]string{},
		HealthInterval: defaultHealthCheckInterval,
		HealthTimeout:  defaultHealthProbeTimeout,
	}
}

func defaultConfigPath() string {
	return filepath.Join(defaultDataDir, "config", "config.toml")
}

func defaultSecretsPath(dataDir string) string {
	if dataDir == "" {
		dataDir = defaultDataDir
	}
	return filepath.Join(dataDir, "config", "secrets.toml")
}
