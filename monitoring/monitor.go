// Package monitoring exposes a running cache's counters and internal state
// over HTTP, so a CLI user or a dashboard can watch a simulation without
// stopping it.
package monitoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"time"

	// Enable profiling
	_ "net/http/pprof"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/blockcache/dbrc/dbrc"
	"github.com/blockcache/dbrc/sim"
)

// CacheStatus is whatever CurrentStats()/GetAddrRanges() expose; Monitor
// only depends on this much of dbrc.Comp so it stays independently
// testable against a fake.
type CacheStatus interface {
	sim.Named
	CurrentStats() dbrc.Stats
	GetAddrRanges() []dbrc.AddrRange
}

// Monitor turns a running cache into an HTTP server that reports its
// counters and internal state.
type Monitor struct {
	engine     sim.Engine
	cache      CacheStatus
	components []sim.Component
	portNumber int
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n", portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterEngine registers the engine that is used in the simulation.
func (m *Monitor) RegisterEngine(e sim.Engine) {
	m.engine = e
}

// RegisterCache registers the cache component /stats and /dba report on.
func (m *Monitor) RegisterCache(c CacheStatus) {
	m.cache = c
}

// RegisterComponent registers a component to be dumped by /component/{name}.
func (m *Monitor) RegisterComponent(c sim.Component) {
	m.components = append(m.components, c)
}

// StartServer starts the monitor as a web server on its configured port,
// picking a random free one if none was set.
func (m *Monitor) StartServer() {
	r := mux.NewRouter()
	r.HandleFunc("/stats", m.stats)
	r.HandleFunc("/dba", m.dba)
	r.HandleFunc("/component/{name}", m.componentDetails)
	r.HandleFunc("/profile/cpu", m.profileCPU)
	r.HandleFunc("/host", m.host)
	http.Handle("/", r)

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	fmt.Fprintf(
		os.Stderr,
		"Monitoring simulation with http://localhost:%d\n",
		listener.Addr().(*net.TCPAddr).Port)

	go func() {
		err = http.Serve(listener, nil)
		dieOnErr(err)
	}()
}

func (m *Monitor) stats(w http.ResponseWriter, _ *http.Request) {
	if m.cache == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	stats := m.cache.CurrentStats()

	rsp := struct {
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

	writeJSON(w, rsp)
}

// dbaLevelOccupancy is the block count broken down by DUT.LF for one level.
type dbaLevelOccupancy struct {
	Level int `json:"level"`
	Valid int `json:"valid"`
}

func (m *Monitor) dba(w http.ResponseWriter, _ *http.Request) {
	if m.cache == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	ranges := m.cache.GetAddrRanges()

	rsp := struct {
		AddrRanges []dbrc.AddrRange `json:"addr_ranges"`
	}{
		AddrRanges: ranges,
	}

	writeJSON(w, rsp)
}

func (m *Monitor) componentDetails(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	component := m.findComponentOr404(w, name)
	if component == nil {
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(component)
	serializer.SetMaxDepth(1)

	err := serializer.Serialize(w)
	dieOnErr(err)
}

func (m *Monitor) findComponentOr404(w http.ResponseWriter, name string) sim.Component {
	if m.cache != nil && m.cache.Name() == name {
		if c, ok := m.cache.(sim.Component); ok {
			return c
		}
	}

	for _, c := range m.components {
		if c.Name() == name {
			return c
		}
	}

	w.WriteHeader(http.StatusNotFound)
	_, err := w.Write([]byte("component not found"))
	dieOnErr(err)

	return nil
}

func (m *Monitor) profileCPU(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	dieOnErr(err)

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	writeJSON(w, prof)
}

type hostRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) host(w http.ResponseWriter, _ *http.Request) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	dieOnErr(err)

	cpuPercent, err := proc.CPUPercent()
	dieOnErr(err)

	memInfo, err := proc.MemoryInfo()
	dieOnErr(err)

	writeJSON(w, hostRsp{CPUPercent: cpuPercent, MemorySize: memInfo.RSS})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	b, err := json.Marshal(v)
	dieOnErr(err)

	w.Header().Set("Content-Type", "application/json")
	_, err = w.Write(b)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
