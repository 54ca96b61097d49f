package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/browser"
	"github.com/rs/xid"
	"github.com/spf13/cobra"

	"github.com/blockcache/dbrc/backingstore"
	"github.com/blockcache/dbrc/dbrc"
	"github.com/blockcache/dbrc/monitoring"
	"github.com/blockcache/dbrc/sim"
	"github.com/blockcache/dbrc/tracing"
)

var (
	openBrowser  bool
	startMonitor bool
	tracePath    string
	traceBackend string
)

var replayCmd = &cobra.Command{
	Use:   "replay <trace-file>",
	Short: "Feed a file of one hex address per line through a DBRC cache",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runReplay(args[0])
	},
}

func init() {
	replayCmd.Flags().BoolVar(&startMonitor, "monitor", false, "start the monitoring HTTP server")
	replayCmd.Flags().BoolVar(&openBrowser, "open-browser", false, "open the monitoring dashboard on startup")
	replayCmd.Flags().StringVar(&tracePath, "trace", "", "persist a stats_snapshot row per address to this path (empty disables tracing)")
	replayCmd.Flags().StringVar(&traceBackend, "trace-backend", "csv", "tracing backend: csv or sqlite")
	rootCmd.AddCommand(replayCmd)
}

// driver is the CPU-side component the replay loop drives one request at a
// time, synchronously, like a test fixture's probe.
type driver struct {
	*sim.TickingComponent

	out  sim.Port
	recv []sim.Msg
}

func newDriver(engine sim.Engine, freq sim.Freq) *driver {
	d := new(driver)
	d.TickingComponent = sim.NewTickingComponent("Driver", engine, freq, d)
	d.out = sim.NewPort(d, 4, 4, "Driver.Out")
	d.AddPort("Out", d.out)

	return d
}

func (d *driver) Tick() bool {
	msg := d.out.RetrieveIncoming()
	if msg == nil {
		return false
	}

	d.recv = append(d.recv, msg)

	return true
}

func runReplay(replayPath string) error {
	addrs, err := readTrace(replayPath)
	if err != nil {
		return err
	}

	cfg := resolveConfig()
	engine := sim.NewSerialEngine()

	cache := cfg.builder().WithEngine(engine).WithFreq(1 * sim.GHz).Build("Cache")
	backing := backingstore.NewComp("Backing", engine, 1*sim.GHz, cfg.BackingCapacity, cfg.BackingLatency)
	cache.BottomPortDst = backing.TopPort.AsRemote()

	d := newDriver(engine, 1*sim.GHz)

	topConn := sim.NewDirectConnection("TopConn", engine, 1*sim.GHz)
	topConn.PlugIn(cache.TopPort)
	topConn.PlugIn(d.out)

	botConn := sim.NewDirectConnection("BotConn", engine, 1*sim.GHz)
	botConn.PlugIn(cache.BottomPort)
	botConn.PlugIn(backing.TopPort)

	if startMonitor {
		m := monitoring.NewMonitor().WithPortNumber(cfg.MonitorPort)
		m.RegisterEngine(engine)
		m.RegisterCache(cache)
		m.RegisterComponent(backing)
		m.StartServer()

		if openBrowser && cfg.MonitorPort > 1000 {
			_ = browser.OpenURL(fmt.Sprintf("http://localhost:%d/stats", cfg.MonitorPort))
		}
	}

	var traceWriter tracing.Writer
	if tracePath != "" {
		traceWriter = newTraceWriter(traceBackend, tracePath)
		traceWriter.Init()
	}

	for _, addr := range addrs {
		req := dbrc.ReadReqBuilder{}.
			WithSrc(d.out.AsRemote()).
			WithDst(cache.TopPort.AsRemote()).
			WithAddress(addr).
			WithByteSize(4).
			Build()

		if err := d.out.Send(req); err != nil {
			return fmt.Errorf("sending request for %#x: %v", addr, err)
		}

		cache.TickNow()
		if err := engine.Run(); err != nil {
			return err
		}

		if traceWriter != nil {
			snapshot := cache.CurrentStats()
			traceWriter.Write(tracing.Task{
				ID:        xid.New().String(),
				Kind:      "stats_snapshot",
				What:      fmt.Sprintf("addr=%#x", addr),
				Where:     "Cache",
				StartTime: engine.CurrentTime(),
				EndTime:   engine.CurrentTime(),
				Detail:    snapshot,
			})
		}
	}

	if traceWriter != nil {
		traceWriter.Flush()
	}

	stats := cache.CurrentStats()

	out := struct {
		Hits               uint64  `json:"hits"`
		Misses             uint64  `json:"misses"`
		HitRatio           float64 `json:"hit_ratio"`
		VictimScanAttempts uint64  `json:"victim_scan_attempts"`
	}{
		Hits:               stats.Hits,
		Misses:             stats.Misses,
		HitRatio:           stats.HitRatio(),
		VictimScanAttempts: stats.VictimScanAttempts,
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(b))

	return nil
}

// newTraceWriter builds the tracing.Writer named by backend, rooted at path.
func newTraceWriter(backend, path string) tracing.Writer {
	switch backend {
	case "csv", "":
		return tracing.NewCSVTraceWriter(path)
	case "sqlite":
		return tracing.NewSQLiteTraceWriter(path)
	default:
		panic(fmt.Errorf("unknown trace backend %q", backend))
	}
}

func readTrace(path string) ([]uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var addrs []uint64

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		addr, err := strconv.ParseUint(strings.TrimPrefix(line, "0x"), 16, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing address %q: %w", line, err)
		}

		addrs = append(addrs, addr)
	}

	return addrs, scanner.Err()
}
