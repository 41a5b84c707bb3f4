package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml"
)

func loadConfig(configPath, secretsPath string) Config {
	cfg := defaultConfig()

	if configPath == "" {
		configPath = defaultConfigPath()
	}

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		examplePath := configPath + ".example"
		writeExampleConfigFiles(examplePath, defaultSecretsPath(cfg.DataDir)+".example")

		fmt.Printf("\nConfiguration file is missing: %s\n\n", configPath)
		fmt.Printf("   To get started:\n")
		fmt.Printf("   1. Copy the example: %s\n", examplePath)
		fmt.Printf("   2. To:               %s\n", configPath)
		fmt.Printf("   3. Edit the file and configure your upstream pools\n")
		fmt.Printf("   4. Restart %s\n\n", proxySoftwareName)
		os.Exit(1)
	}
	if err != nil {
		fatal("config file", err, "path", configPath)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		fatal("config file parse", err, "path", configPath)
	}
	applyFileConfig(&cfg, fc)

	if secretsPath == "" {
		secretsPath = defaultSecretsPath(cfg.DataDir)
	}
	if sdata, err := os.ReadFile(secretsPath); err == nil {
		var sc secretsFileConfig
		if err := toml.Unmarshal(sdata, &sc); err != nil {
			fatal("secrets file parse", err, "path", secretsPath)
		}
		applySecretsConfig(&cfg, sc)
	} else if !os.IsNotExist(err) {
		fatal("secrets file", err, "path", secretsPath)
	}

	return cfg
}

func applyFileConfig(cfg *Config, fc fileConfig) {
	if v := strings.TrimSpace(fc.Proxy.ListenAddr); v != "" {
		cfg.ListenAddr = v
	}
	if v := strings.TrimSpace(fc.Proxy.StatusAddr); v != "" {
		cfg.StatusAddr = v
	}
	if fc.Proxy.MaxConns != nil {
		cfg.MaxConns = *fc.Proxy.MaxConns
	}
	if v := strings.TrimSpace(fc.Proxy.DataDir); v != "" {
		cfg.DataDir = v
	}
	if v := strings.TrimSpace(fc.Proxy.LogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(fc.Proxy.WorkerPrefix); v != "" {
		cfg.WorkerPrefix = v
	}

	if fc.Fee.Percent != nil {
		cfg.FeePercent = *fc.Fee.Percent
	}
	if v := strings.TrimSpace(fc.Fee.WorkerName); v != "" {
		cfg.FeeWorkerName = v
	}
	if cfg.FeeAddresses == nil {
		cfg.FeeAddresses = map[string]string{}
	}
	if v := strings.TrimSpace(fc.Fee.BTCAddress); v != "" {
		cfg.FeeAddresses[coinBTC] = v
	}
	if v := strings.TrimSpace(fc.Fee.MinaAddress); v != "" {
		cfg.FeeAddresses[coinMina] = v
	}

	if fc.Health.IntervalSeconds != nil && *fc.Health.IntervalSeconds > 0 {
		cfg.HealthInterval = time.Duration(*fc.Health.IntervalSeconds) * time.Second
	}
	if fc.Health.TimeoutSeconds != nil && *fc.Health.TimeoutSeconds > 0 {
		cfg.HealthTimeout = time.Duration(*fc.Health.TimeoutSeconds) * time.Second
	}

	for _, p := range fc.Pools {
		d := PoolDescriptor{
			Name:     strings.TrimSpace(p.Name),
			Host:     strings.TrimSpace(p.Host),
			Port:     p.Port,
			Weight:   1,
			Enabled:  true,
			Protocol: strings.TrimSpace(p.Protocol),
			Coin:     strings.ToLower(strings.TrimSpace(p.Coin)),
			TLS:      p.TLS,
		}
		if p.Weight != nil {
			d.Weight = *p.Weight
		}
		if p.Enabled != nil {
			d.Enabled = *p.Enabled
		}
		if d.Name == "" {
			d.Name = d.Addr()
		}
		if d.Protocol == "" {
			d.Protocol = "stratum1"
		}
		if d.Coin == "" {
			d.Coin = coinBTC
		}
		cfg.Pools = append(cfg.Pools, d)
	}
}

func applySecretsConfig(cfg *Config, sc secretsFileConfig) {
	if v := strings.TrimSpace(sc.DiscordToken); v != "" {
		cfg.DiscordBotToken = v
	}
	if v := strings.TrimSpace(sc.DiscordChannelID); v != "" {
		cfg.DiscordChannelID = v
	}
	if v := strings.TrimSpace(sc.AdminPassword); v != "" {
		cfg.AdminPassword = v
	}
}

func writeExampleConfigFiles(configExamplePath, secretsExamplePath string) {
	for path, contents := range map[string][]byte{
		configExamplePath:  exampleConfigFile,
		secretsExamplePath: exampleSecretsFile,
	} {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			continue
		}
		_ = os.WriteFile(path, contents, 0o644)
	}
}
