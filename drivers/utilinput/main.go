// Package utilinput is the "input" driver: filtered access to request
// and environment variables.
//
// In a request context the tables are built from an *http.Request. In a
// terminal context they are emulated: environment and server variables
// come from the process, the others are set by the caller. Both contexts
// run the same filters, so code reading input is testable outside a web
// server.
package utilinput

import (
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/goodglamm/g3util/core/driver"
	"github.com/goodglamm/g3util/drivers/utilarrays"
)

type (
	// Source identifies an input table.
	Source int

	// Table maps variable names to values. A value is a string, or a
	// []string for array variables.
	Table map[string]any

	// T is the input utility.
	T struct {
		mu      sync.RWMutex
		tables  map[Source]Table
		request bool
		arrays  *utilarrays.T
		log     zerolog.Logger
	}
)

const (
	SourceGet Source = iota + 1
	SourcePost
	SourceCookie
	SourceServer
	SourceEnv
)

const (
	// DriverName is the registry name of the driver.
	DriverName = "input"
)

var (
	// Driver registers a terminal context T as a shared instance.
	Driver = driver.NewSingleton(DriverName, func() any { return New() })

	toSourceString = map[Source]string{
		SourceGet:    "get",
		SourcePost:   "post",
		SourceCookie: "cookie",
		SourceServer: "server",
		SourceEnv:    "env",
	}
	toSourceID = map[string]Source{
		"get":    SourceGet,
		"post":   SourcePost,
		"cookie": SourceCookie,
		"server": SourceServer,
		"env":    SourceEnv,
	}
)

// NewSource allocates a Source from its string representation, returning
// false for an unknown name.
func NewSource(s string) (Source, bool) {
	t, ok := toSourceID[s]
	return t, ok
}

// String implements the Stringer interface
func (t Source) String() string {
	return toSourceString[t]
}

func newT() *T {
	return &T{
		tables: map[Source]Table{
			SourceGet:    {},
			SourcePost:   {},
			SourceCookie: {},
			SourceServer: {},
			SourceEnv:    {},
		},
		arrays: utilarrays.New(),
		log:    log.Logger.With().Str("pkg", DriverName).Logger(),
	}
}

// New returns a terminal context input utility. The env table is loaded
// from the process environment, the server table from the environment
// plus argv, argc and REQUEST_TIME.
func New() *T {
	t := newT()
	env := environ()
	t.tables[SourceEnv] = env
	server := Table{}
	for k, v := range env {
		server[k] = v
	}
	server["argv"] = append([]string{}, os.Args...)
	server["argc"] = len(os.Args)
	server["REQUEST_TIME"] = time.Now().Unix()
	t.tables[SourceServer] = server
	return t
}

// NewFromRequest returns a request context input utility reading r.
func NewFromRequest(r *http.Request) *T {
	t := newT()
	t.request = true
	t.tables[SourceGet] = TableFromValues(r.URL.Query())
	if err := r.ParseForm(); err != nil {
		t.log.Debug().Err(err).Msg("parse form")
	} else {
		t.tables[SourcePost] = TableFromValues(r.PostForm)
	}
	cookies := Table{}
	for _, c := range r.Cookies() {
		cookies[c.Name] = c.Value
	}
	t.tables[SourceCookie] = cookies
	t.tables[SourceServer] = serverTable(r)
	t.tables[SourceEnv] = environ()
	return t
}

// IsRequest returns true for a utility built from a request.
func (t *T) IsRequest() bool {
	return t.request
}

// SetTable replaces the table of a source.
func (t *T) SetTable(source Source, table Table) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if table == nil {
		table = Table{}
	}
	t.tables[source] = table
}

// Set sets a single variable of a source.
func (t *T) Set(source Source, name string, value any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.tables[source]; !ok {
		t.tables[source] = Table{}
	}
	t.tables[source][name] = value
}

func (t *T) lookup(source Source, name string) (any, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	table, ok := t.tables[source]
	if !ok {
		return nil, false
	}
	v, ok := table[name]
	return v, ok
}

func environ() Table {
	m := Table{}
	for _, kv := range os.Environ() {
		k, v, _ := strings.Cut(kv, "=")
		m[k] = v
	}
	return m
}

// TableFromValues converts url values: a "name[]" key yields a []string under
// "name", else the last value wins.
func TableFromValues(values map[string][]string) Table {
	m := Table{}
	for k, l := range values {
		if name, ok := strings.CutSuffix(k, "[]"); ok {
			m[name] = append([]string{}, l...)
			continue
		}
		if len(l) > 0 {
			m[k] = l[len(l)-1]
		}
	}
	return m
}

func serverTable(r *http.Request) Table {
	m := Table{
		"REQUEST_METHOD":  r.Method,
		"REQUEST_URI":     r.URL.RequestURI(),
		"QUERY_STRING":    r.URL.RawQuery,
		"SERVER_PROTOCOL": r.Proto,
		"REMOTE_ADDR":     r.RemoteAddr,
		"HTTP_HOST":       r.Host,
		"SERVER_NAME":     strings.Split(r.Host, ":")[0],
		"REQUEST_TIME":    time.Now().Unix(),
	}
	if r.TLS != nil {
		m["HTTPS"] = "on"
	}
	for k, l := range r.Header {
		if len(l) == 0 {
			continue
		}
		name := "HTTP_" + strings.ToUpper(strings.ReplaceAll(k, "-", "_"))
		m[name] = strings.Join(l, ", ")
	}
	return m
}
