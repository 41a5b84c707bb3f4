package main

import (
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

// Coin tags used on pool descriptors and session classification.
const (
	coinBTC  = "btc"
	coinMina = "mina"
)

// minaAddressPrefix / minaAddressLength describe the fixed-form base58
// public keys the succinct-work variant uses (B62... with 55 characters).
const (
	minaAddressPrefix = "B62"
	minaAddressLength = 55
)

// classifyCoinAddress maps a miner-supplied payout address to a coin tag.
// Classification happens once, at authorize time, and is permanent for the
// session. Unknown formats fall back to the baseline coin so the session can
// still be routed at the default weighted draw.
func classifyCoinAddress(addr string) string {
	addr = strings.TrimSpace(addr)
	if isMinaAddress(addr) {
		return coinMina
	}
	if _, err := btcutil.DecodeAddress(addr, &chaincfg.MainNetParams); err == nil {
		return coinBTC
	}
	return coinBTC
}

func isMinaAddress(addr string) bool {
	if len(addr) != minaAddressLength {
		return false
	}
	if !strings.HasPrefix(addr, minaAddressPrefix) {
		return false
	}
	for i := 0; i < len(addr); i++ {
		c := addr[i]
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			continue
		}
		return false
	}
	return true
}

// splitWorkerCredential separates "address.worker" into its parts. A missing
// worker suffix leaves the worker empty; the full string is always preserved
// as the wire credential because the proxy relays it untouched.
func splitWorkerCredential(cred string) (address, worker string) {
	cred = strings.TrimSpace(cred)
	if idx := strings.IndexByte(cred, '.'); idx >= 0 {
		return cred[:idx], cred[idx+1:]
	}
	return cred, ""
}
