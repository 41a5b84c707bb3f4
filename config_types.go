package main

import "time"

// Config is the resolved runtime configuration. Loaded once at startup; the
// only process-fatal failure in the proxy is failing to produce a valid one.
type Config struct {
	ListenAddr string
	StatusAddr string
	MaxConns   int
	DataDir    string
	LogLevel   string

	// WorkerPrefix names the proxy on upstream dashboards; it is used as the
	// worker suffix of fee-redirected submits and in health probes.
	WorkerPrefix string

	FeePercent    float64
	FeeWorkerName string
	// FeeAddresses maps a coin tag to the operator payout address substituted
	// into redirected submits for sessions classified as that coin.
	FeeAddresses map[string]string

	HealthInterval time.Duration
	HealthTimeout  time.Duration

	Pools []PoolDescriptor

	// Secrets (secrets.toml).
	DiscordBotToken  string
	DiscordChannelID string
	AdminPassword    string // empty = generate one at startup
}

type fileConfig struct {
	Proxy  proxyFileConfig  `toml:"proxy"`
	Fee    feeFileConfig    `toml:"fee"`
	Health healthFileConfig `toml:"health"`
	Pools  []poolFileConfig `toml:"pools"`
}

type proxyFileConfig struct {
	ListenAddr    string `toml:"listen_addr"`
	StatusAddr    string `toml:"status_addr"`
	MaxConns      *int   `toml:"max_conns"`
	DataDir       string `toml:"data_dir"`
	LogLevel      string `toml:"log_level"`
	WorkerPrefix  string `toml:"worker_prefix"`
}

type feeFileConfig struct {
	Percent     *float64 `toml:"percent"`
	WorkerName  string   `toml:"worker_name"`
	BTCAddress  string   `toml:"btc_address"`
	MinaAddress string   `toml:"mina_address"`
}

type healthFileConfig struct {
	IntervalSeconds *int `toml:"interval_seconds"`
	TimeoutSeconds  *int `toml:"timeout_seconds"`
}

type poolFileConfig struct {
	Name     string `toml:"name"`
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Weight   *int   `toml:"weight"`
	Enabled  *bool  `toml:"enabled"`
	Protocol string `toml:"protocol"`
	Coin     string `toml:"coin"`
	TLS      bool   `toml:"tls"`
}

type secretsFileConfig struct {
	DiscordToken     string `toml:"discord_token"`
	DiscordChannelID string `toml:"discord_channel_id"`
	AdminPassword    string `toml:"admin_password"`
}

var exampleConfigFile = []byte(`# goProxy configuration.

[proxy]
listen_addr = "0.0.0.0:3333"
status_addr = "127.0.0.1:8080"
max_conns = 1000
data_dir = "data"
log_level = "info"
worker_prefix = "goproxy"

[fee]
# Fraction of submitted shares redirected to the operator payout address.
# 0 disables fee injection.
percent = 0.0
worker_name = "fee"
btc_address = ""
mina_address = ""

[health]
interval_seconds = 30
timeout_seconds = 10

[[pools]]
name = "example-btc"
host = "stratum.example.com"
port = 3333
weight = 3
enabled = true
protocol = "stratum1"
coin = "btc"
tls = false

[[pools]]
name = "example-mina"
host = "mina.example.com"
port = 3333
weight = 1
enabled = true
protocol = "mina-stratum"
coin = "mina"
tls = false
`)

var exampleSecretsFile = []byte(`# Optional Discord notifications integration.
# discord_token = "YOUR_DISCORD_BOT_TOKEN"
# discord_channel_id = "123456789012345678"

# Optional fixed admin password for the status server. When unset, a one-time
# password is generated at startup and written to the log.
# admin_password = ""
`)
