package main

import (
	"fmt"
	"strings"
)

func validateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.ListenAddr) == "" {
		return fmt.Errorf("proxy.listen_addr is required")
	}
	if cfg.MaxConns < 0 {
		return fmt.Errorf("proxy.max_conns cannot be negative")
	}
	if cfg.FeePercent < 0 || cfg.FeePercent > 100 {
		return fmt.Errorf("fee.percent must be within [0, 100], got %v", cfg.FeePercent)
	}
	if cfg.FeePercent > 0 && len(cfg.FeeAddresses) == 0 {
		return fmt.Errorf("fee.percent is set but no fee payout address is configured")
	}
	if cfg.HealthInterval <= 0 {
		return fmt.Errorf("health.interval_seconds must be > 0")
	}
	if cfg.HealthTimeout <= 0 {
		return fmt.Errorf("health.timeout_seconds must be > 0")
	}
	if len(cfg.Pools) == 0 {
		return fmt.Errorf("at least one [[pools]] entry is required")
	}

	names := make(map[string]bool, len(cfg.Pools))
	anyEnabled := false
	for i, p := range cfg.Pools {
		if p.Host == "" {
			return fmt.Errorf("pools[%d] (%s): host is required", i, p.Name)
		}
		if p.Port <= 0 || p.Port > 65535 {
			return fmt.Errorf("pools[%d] (%s): port %d is out of range", i, p.Name, p.Port)
		}
		if p.Weight < 0 {
			return fmt.Errorf("pools[%d] (%s): weight cannot be negative", i, p.Name)
		}
		if names[p.Name] {
			return fmt.Errorf("pools[%d]: duplicate pool name %q", i, p.Name)
		}
		names[p.Name] = true
		if p.Enabled {
			anyEnabled = true
		}
	}
	if !anyEnabled {
		return fmt.Errorf("all configured pools are disabled")
	}
	return nil
}
