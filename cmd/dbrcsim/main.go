// Command dbrcsim drives a standalone DBRC cache against a trace of
// addresses, or prints the configuration the builder would resolve.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/blockcache/dbrc/dbrc"
)

func main() {
	// .env is optional: a missing file just means no overrides.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dbrcsim",
	Short: "dbrcsim drives a DBRC cache against an address trace",
}

// resolvedConfig is the set of builder knobs dbrcsim exposes, each
// overridable by an environment variable of the same uppercase,
// DBRC_-prefixed name.
type resolvedConfig struct {
	Size         uint64 `json:"size"`
	BlockSize    uint64 `json:"block_size"`
	NumLevels    int    `json:"num_levels"`
	AddressSpace uint64 `json:"address_space"`
	TLBSize      int    `json:"tlb_size"`
	MNA          int    `json:"mna"`
	Latency      int    `json:"latency"`

	BackingCapacity uint64 `json:"backing_capacity"`
	BackingLatency  int    `json:"backing_latency"`

	MonitorPort int `json:"monitor_port"`
}

func defaultConfig() resolvedConfig {
	return resolvedConfig{
		Size:            16384 * 64,
		BlockSize:       64,
		NumLevels:       3,
		AddressSpace:    1 << 32,
		TLBSize:         65536,
		MNA:             5,
		Latency:         1,
		BackingCapacity: 1 << 24,
		BackingLatency:  2,
		MonitorPort:     0,
	}
}

func resolveConfig() resolvedConfig {
	cfg := defaultConfig()

	overrideUint64(&cfg.Size, "DBRC_SIZE")
	overrideUint64(&cfg.BlockSize, "DBRC_BLOCK_SIZE")
	overrideInt(&cfg.NumLevels, "DBRC_NUM_LEVELS")
	overrideUint64(&cfg.AddressSpace, "DBRC_ADDRESS_SPACE")
	overrideInt(&cfg.TLBSize, "DBRC_TLB_SIZE")
	overrideInt(&cfg.MNA, "DBRC_MNA")
	overrideInt(&cfg.Latency, "DBRC_LATENCY")
	overrideUint64(&cfg.BackingCapacity, "DBRC_BACKING_CAPACITY")
	overrideInt(&cfg.BackingLatency, "DBRC_BACKING_LATENCY")
	overrideInt(&cfg.MonitorPort, "DBRC_MONITOR_PORT")

	return cfg
}

func (cfg resolvedConfig) builder() dbrc.Builder {
	return dbrc.MakeBuilder().
		WithSize(cfg.Size).
		WithBlockSize(cfg.BlockSize).
		WithNumLevels(cfg.NumLevels).
		WithAddressSpace(cfg.AddressSpace).
		WithTLBSize(cfg.TLBSize).
		WithMNA(cfg.MNA).
		WithLatency(cfg.Latency)
}
