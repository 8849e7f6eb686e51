//go:build asn1kit_debug

package asn1kit

import (
	"io"
	"os"
	"runtime"
	"sync"
	"time"
)

/*
EnvDebugVar defines the environment variable name which can
be leveraged to invoke or disable use of the [DefaultTracer]
[Tracer] qualifier.

Use sparingly in high-volume/performance-sensitive scenarios.
*/
const EnvDebugVar = "ASN1KIT_DEBUG"

const coreTracerMask = EventEnter | EventInfo | EventExit

/*
DefaultTracer is the package-level [Tracer] implementation.
*/
type DefaultTracer struct {
	mu sync.Mutex
	w  io.Writer
	ll loglevels
}

/*
NewDefaultTracer returns an instance of *[DefaultTracer]. The
input [io.Writer] value represents the writer interface type
to which debug data shall be written.
*/
func NewDefaultTracer(writer io.Writer) *DefaultTracer {
	return &DefaultTracer{
		mu: sync.Mutex{},
		w:  writer,
		ll: newLoglevels(),
	}
}

/*
EnableLevel adds [EventType] ev to the collection of loglevels
to be used during debugging.
*/
func (r *DefaultTracer) EnableLevel(ev EventType) { r.ll.Shift(int(ev)) }

/*
DisableLevel removes [EventType] ev from the collection of loglevels
to be used during debugging.
*/
func (r *DefaultTracer) DisableLevel(ev EventType) { r.ll.Unshift(int(ev)) }

/*
Trace writes [TraceRecord] rec to the [io.Writer] handled by the
receiver instance.
*/
func (r *DefaultTracer) Trace(rec TraceRecord) {
	if !r.ll.Positive(int(rec.Type)) {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ts := rec.Time.Format("15:04:05.000")
	fn := trimFuncName(rec.Func)

	switch rec.Type & coreTracerMask {
	case EventEnter:
		r.writeEnter(ts, fn, rec.Args)
	case EventExit:
		r.writeExit(ts, fn, rec.Ret)
	default:
		r.writeInfo(ts, fn, rec.Args)
	}
}

/*
Enabled returns a Boolean value indicative of the specified
[EventType] being enabled within the receiver instance.
*/
func (r *DefaultTracer) Enabled(e EventType) bool {
	return r.ll.Positive(int(e))
}

func trimFuncName(full string) string {
	if i := stridxb(full, '/'); i >= 0 {
		return full[i+1:]
	}
	return full
}

func (r *DefaultTracer) writeEnter(ts, fn string, args []any) {
	r.w.Write([]byte(ts + " → " + fn + "("))
	for i, a := range args {
		if i > 0 {
			r.w.Write([]byte(", "))
		}
		if s := fmtArg(a); s != "" {
			r.w.Write([]byte(s))
		}
	}
	r.w.Write([]byte(")\n"))
}

func (r *DefaultTracer) writeInfo(ts, fn string, args []any) {
	r.w.Write([]byte(ts + "     • " + fn + ": "))
	for i, a := range args {
		if i > 0 {
			r.w.Write([]byte(", "))
		}
		if s := fmtArg(a); s != "" {
			r.w.Write([]byte(s))
		}
	}
	r.w.Write([]byte("\n"))
}

func (r *DefaultTracer) writeExit(ts, fn string, rets []any) {
	r.w.Write([]byte(ts + " ← " + fn + " => "))
	for i, a := range rets {
		if i > 0 {
			r.w.Write([]byte(", "))
		}
		if s := fmtArg(a); s != "" {
			r.w.Write([]byte(s))
		}
	}
	r.w.Write([]byte("\n"))
}

/*
TraceRecord encapsulates metadata pertaining to a particular event
observed by a [Tracer]. This includes a [time.Time] timestamp, an
[EventType] as well as in/out arguments.
*/
type TraceRecord struct {
	Time  time.Time
	Type  EventType
	Func  string
	Depth int
	Args  []any
	Ret   []any
}

/*
Tracer implements an interface tracer type, which is implemented
by [DefaultTracer].
*/
type Tracer interface {
	Trace(TraceRecord)
}

type levelTracer interface {
	Tracer
	Enabled(EventType) bool
}

/*
EnableDebug registers and activates [Tracer] for debugging.
*/
func EnableDebug(t Tracer) {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = t
}

/*
DisableDebug disables [Tracer] debugging.
*/
func DisableDebug() {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = &discardTracer{}
}

var (
	tmu    sync.RWMutex
	tracer Tracer = &discardTracer{}
)

type discardTracer struct{}

func (*discardTracer) Trace(_ TraceRecord)      {}
func (*discardTracer) Enabled(_ EventType) bool { return false }

func debugEvent(level EventType, args ...any) {
	tmu.RLock()
	t := tracer
	tmu.RUnlock()

	lt, ok := t.(levelTracer)
	if ok {
		if !(lt.Enabled(level) || lt.Enabled(EventAll)) {
			return
		}
	} else {
		return
	}

	pc, _, _, ok := runtime.Caller(2)
	fn := callerName()

	if ok {
		fn = runtime.FuncForPC(pc).Name()
	}
	fn = replaceAll(fn, "asn1kit.", "")
	if cntns(fn, ".func") {
		fn = fn[:idxByte(fn, '.')]
	}
	rec := TraceRecord{
		Time: time.Now(),
		Type: level,
		Func: fn,
	}
	if lt.Enabled(EventIO) {
		if len(args) == 0 {
			args = []any{"no values"}
		}
		if level == EventExit {
			rec.Ret = args
		} else {
			rec.Args = args
		}
	}
	t.Trace(rec)
}

func idxByte(s string, b byte) int {
	n := stridxb(s, b)
	if n < 0 {
		return len(s)
	}
	return n
}

func callerName() string {
	pcs := make([]uintptr, 10)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	for {
		fr, more := frames.Next()
		name := fr.Function
		if !hasPfx(name, "debug") {
			return name
		}
		if !more {
			break
		}
	}
	return "unknown"
}

func debugPath(args ...any) func(rets ...any) {
	debugEvent(EventEnter, args...)
	return func(rets ...any) {
		debugEvent(EventExit, rets...)
	}
}

func debugInfo(input ...any)      { debugEvent(EventInfo, input...) }
func debugIO(args ...any)         { debugEvent(EventIO, args...) }
func debugTLV(args ...any)        { debugEvent(EventTLV, args...) }
func debugPerf(args ...any)       { debugEvent(EventPerf, args...) }
func debugConstraint(args ...any) { debugEvent(EventConstraint, args...) }
func debugComposite(args ...any)  { debugEvent(EventComposite, args...) }
func debugPrim(args ...any)       { debugEvent(EventPrim, args...) }
func debugChoice(args ...any)     { debugEvent(EventChoice, args...) }
func debugSchema(args ...any)     { debugEvent(EventSchema, args...) }
func debugTrace(args ...any)      { debugEvent(EventTrace, args...) }
func debugCodec(args ...any)      { debugEvent(EventCodec, args...) }
func debugEnter(args ...any)      { debugEvent(EventEnter, args...) }
func debugExit(args ...any)       { debugEvent(EventExit, args...) }

// strictly for debugging.
type labeledItem struct {
	L string
	V any
}

func newLItem(value any, labels ...any) (li labeledItem) {
	li = labeledItem{V: value}
	var l []string
	for i := 0; i < len(labels); i++ {
		if s, ok := labels[i].(string); ok {
			l = append(l, s)
		}
	}

	li.L = join(l, ` `)

	return
}

func (r labeledItem) String() string {
	var l = "<No label>:"
	var v = "<Nil value>"
	if err, is := r.V.(error); is {
		if r.L == "" {
			l = "Error:"
		} else {
			l = r.L + ":"
		}
		if err != nil {
			v = l + v
		} else {
			v = l + "<Nil error>"
		}
	} else {
		if r.L != "" {
			l = r.L + ":"
		}
		_v := fmtArg(r.V)
		if _v != "" {
			v = _v
		}
		v = l + v
	}

	return v
}

func fmtArg(x interface{}) (s string) {
	switch v := x.(type) {
	case int:
		s = itoa(v)
	case []int:
		var strs []string
		for i := 0; i < len(v); i++ {
			strs = append(strs, itoa(v[i]))
		}
		s = join(strs, ` `)
	case string:
		s = v
	case bool:
		s = bool2str(v)
	case byte:
		s = fmtUint(uint64(v), 8)
	case []byte:
		var strs []string
		for i := 0; i < len(v); i++ {
			strs = append(strs, fmtUint(uint64(v[i]), 8))
		}
		s = join(strs, ` `)
	case labeledItem:
		s = v.String()
	case Options:
		s = v.String()
	case *Options:
		s = `<Empty Options>`
		if v != nil {
			s = v.String()
		}
	case TLV:
		s = "TLV: " + v.String()
	case Identifier:
		s = "Identifier{Class:" + itoa(v.Class) + ",Tag:" + itoa(v.Tag) +
			",Constructed:" + bool2str(v.Constructed) + "}"
	case *View:
		s = "View[off:" + itoa(v.Offset()) + ",len:" + itoa(v.Len()) + "]"
	case *Container:
		s = "Container[len:" + itoa(v.Len()) + "]"
	case error:
		if v != nil {
			s = v.Error()
		}
	default:
		s = "<unidentified>"
	}

	return
}

func init() {
	if evar := os.Getenv(EnvDebugVar); evar != "" {
		sp := split(evar, ",")
		var vars []any
		for i := 0; i < len(sp); i++ {
			if n, err := atoi(sp[i]); err != nil {
				sp[i] = lc(sp[i])
				vars = append(vars, sp[i])
			} else if n <= 65535 {
				if n < 0 {
					vars = []any{int(EventAll)}
					break
				}
				vars = append(vars, n)
			}
		}

		ll := newLoglevels()
		ll.SetNamesMap(map[int]string{
			int(EventAll):        "all",
			int(EventNone):       "none",
			int(EventEnter):      "enter",
			int(EventInfo):       "info",
			int(EventExit):       "exit",
			int(EventChoice):     "choice",
			int(EventComposite):  "composite",
			int(EventSchema):     "schema",
			int(EventTrace):      "trace",
			int(EventConstraint): "constraint",
			int(EventPrim):       "primitive",
			int(EventTLV):        "tlv",
			int(EventPerf):       "perf",
			int(EventIO):         "io",
			int(EventCodec):      "codec",
		})

		ll.Shift(vars...)

		dt := NewDefaultTracer(os.Stderr)
		dt.ll = ll
		EnableDebug(dt)
		debugInfo(newLItem(join(ll.enabled(), `,`), "loglevels"))
	}
}
