package main

import (
	"testing"
	"time"

	"github.com/pelletier/go-toml"
)

func parseFileConfig(t *testing.T, src string) Config {
	t.Helper()
	cfg := defaultConfig()
	var fc fileConfig
	if err := toml.Unmarshal([]byte(src), &fc); err != nil {
		t.Fatalf("toml parse: %v", err)
	}
	applyFileConfig(&cfg, fc)
	return cfg
}

func TestApplyFileConfigDefaults(t *testing.T) {
	cfg := parseFileConfig(t, `
[[pools]]
name = "p1"
host = "pool.example"
port = 3333
`)
	if cfg.ListenAddr != "0.0.0.0:3333" {
		t.Fatalf("ListenAddr = %q", cfg.ListenAddr)
	}
	if len(cfg.Pools) != 1 {
		t.Fatalf("pools = %d", len(cfg.Pools))
	}
	p := cfg.Pools[0]
	if p.Weight != 1 || !p.Enabled || p.Coin != coinBTC || p.Protocol != "stratum1" {
		t.Fatalf("pool defaults not applied: %+v", p)
	}
}

func TestApplyFileConfigOverrides(t *testing.T) {
	cfg := parseFileConfig(t, `
[proxy]
listen_addr = "127.0.0.1:9000"
max_conns = 50
log_level = "debug"

[fee]
percent = 2.5
worker_name = "devfee"
btc_address = "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"
mina_address = "B62qiy32p8kAKnny8ZFwoMhYpBppM1DWVCqAPBYNcXnsAHhnfAAuXgg"

[health]
interval_seconds = 15
timeout_seconds = 5

[[pools]]
name = "mina-pool"
host = "mina.example"
port = 3333
weight = 7
enabled = false
coin = "MINA"
tls = true
`)
	if cfg.ListenAddr != "127.0.0.1:9000" || cfg.MaxConns != 50 {
		t.Fatalf("proxy overrides missed: %+v", cfg)
	}
	if cfg.FeePercent != 2.5 || cfg.FeeWorkerName != "devfee" {
		t.Fatalf("fee overrides missed: %v %q", cfg.FeePercent, cfg.FeeWorkerName)
	}
	if cfg.FeeAddresses[coinBTC] == "" || cfg.FeeAddresses[coinMina] == "" {
		t.Fatalf("fee addresses missed: %v", cfg.FeeAddresses)
	}
	if cfg.HealthInterval != 15*time.Second || cfg.HealthTimeout != 5*time.Second {
		t.Fatalf("health overrides missed: %v %v", cfg.HealthInterval, cfg.HealthTimeout)
	}
	p := cfg.Pools[0]
	if p.Weight != 7 || p.Enabled || p.Coin != coinMina || !p.TLS {
		t.Fatalf("pool overrides missed: %+v", p)
	}
}

func TestValidateConfig(t *testing.T) {
	valid := defaultConfig()
	valid.Pools = []PoolDescriptor{
		{Name: "p", Host: "pool.example", Port: 3333, Weight: 1, Enabled: true, Coin: coinBTC},
	}
	if err := validateConfig(valid); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no pools", func(c *Config) { c.Pools = nil }},
		{"all disabled", func(c *Config) { c.Pools[0].Enabled = false }},
		{"bad port", func(c *Config) { c.Pools[0].Port = 70000 }},
		{"no host", func(c *Config) { c.Pools[0].Host = "" }},
		{"negative weight", func(c *Config) { c.Pools[0].Weight = -1 }},
		{"fee out of range", func(c *Config) { c.FeePercent = 120 }},
		{"fee without address", func(c *Config) { c.FeePercent = 1; c.FeeAddresses = nil }},
		{"empty listen", func(c *Config) { c.ListenAddr = " " }},
		{"duplicate pool names", func(c *Config) {
			c.Pools = append(c.Pools, c.Pools[0])
		}},
	}
	for _, tc := range cases {
		cfg := valid
		cfg.Pools = append([]PoolDescriptor(nil), valid.Pools...)
		cfg.FeeAddresses = map[string]string{coinBTC: "addr"}
		tc.mutate(&cfg)
		if err := validateConfig(cfg); err == nil {
			t.Fatalf("%s: invalid config accepted", tc.name)
		}
	}
}

func TestSecretsOverlay(t *testing.T) {
	cfg := defaultConfig()
	var sc secretsFileConfig
	if err := toml.Unmarshal([]byte(`
discord_token = "tok"
discord_channel_id = "123"
admin_password = "hunter2"
`), &sc); err != nil {
		t.Fatalf("toml parse: %v", err)
	}
	applySecretsConfig(&cfg, sc)
	if cfg.DiscordBotToken != "tok" || cfg.DiscordChannelID != "123" || cfg.AdminPassword != "hunter2" {
		t.Fatalf("secrets not applied: %+v", cfg)
	}
}
