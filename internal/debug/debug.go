package debug

import (
	"runtime"

	"github.com/rs/zerolog"

	"simulacra/internal/event"
)

const (
	// updateInterval: only read memory stats every N dispatches to limit stop-the-world pauses.
	updateInterval = 30
	mib            = 1024 * 1024
)

// Debug is an inspection layer. It never consumes events; it counts what it sees by type and
// category and, when enabled, logs each event and a periodic heap report. All output is off by default.
type Debug struct {
	LogEvents bool
	ReportMem bool

	log          zerolog.Logger
	dispatches   uint32
	byType       map[event.Type]int
	byCategory   map[event.Category]int
	lastMemStats runtime.MemStats
}

// New returns a Debug layer logging through log, with all output hidden.
func New(log zerolog.Logger) *Debug {
	return &Debug{
		log:        log,
		byType:     make(map[event.Type]int),
		byCategory: make(map[event.Category]int),
	}
}

// SetLogEvents sets whether every observed event is logged at debug level.
func (d *Debug) SetLogEvents(on bool) {
	d.LogEvents = on
}

// SetReportMem sets whether heap allocation is logged every updateInterval dispatches.
func (d *Debug) SetReportMem(on bool) {
	d.ReportMem = on
}

func (d *Debug) OnAttach() {
	d.log.Debug().Bool("log_events", d.LogEvents).Bool("report_mem", d.ReportMem).Msg("debug layer attached")
}

func (d *Debug) OnDetach() {
	ev := d.log.Debug().Uint32("dispatches", d.dispatches)
	for _, t := range event.Types() {
		if n := d.byType[t]; n > 0 {
			ev = ev.Int(t.String(), n)
		}
	}
	ev.Msg("debug layer detached")
}

// HandleEvents records the unconsumed events in q without consuming any of them.
func (d *Debug) HandleEvents(q *event.Queue) {
	d.dispatches++
	q.Pending(event.CategoryApplication|event.CategoryInput, func(i int, e event.Event) {
		d.byType[e.Type()]++
		flags := event.CategoryFlags(e)
		for _, c := range []event.Category{event.CategoryApplication, event.CategoryInput, event.CategoryKeyboard, event.CategoryMouse} {
			if flags.Has(c) {
				d.byCategory[c]++
			}
		}
		if d.LogEvents {
			d.log.Debug().Int("index", i).Str("type", e.Type().String()).Str("category", flags.String()).
				Interface("payload", e).Msg("event")
		}
	})

	if d.ReportMem && d.dispatches%updateInterval == 0 {
		runtime.ReadMemStats(&d.lastMemStats)
		d.log.Debug().Float64("heap_mib", float64(d.lastMemStats.Alloc)/mib).
			Uint32("gc", d.lastMemStats.NumGC).Msg("memory")
	}
}

// Count returns how many events of type t have been observed.
func (d *Debug) Count(t event.Type) int {
	return d.byType[t]
}

// CategoryCount returns how many observed events carried flag c.
func (d *Debug) CategoryCount(c event.Category) int {
	return d.byCategory[c]
}

// Dispatches returns how many times HandleEvents has run.
func (d *Debug) Dispatches() int {
	return int(d.dispatches)
}
