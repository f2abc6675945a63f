package clog

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/apex/log"
)

// ComponentField is the entry field the handler lifts out of the key=value list and
// prints in brackets ahead of the message.
const ComponentField = "component"

type Handler struct {
	mu     sync.Mutex
	Writer io.Writer
	now    func() time.Time
}

var levelToStrings = [...]string{
	log.DebugLevel: "DEBUG",
	log.InfoLevel:  "INFO",
	log.WarnLevel:  "WARN",
	log.ErrorLevel: "ERROR",
	log.FatalLevel: "FATAL",
}

// field used for sorting.
type field struct {
	Name  string
	Value interface{}
}

type byName []field

func (a byName) Len() int           { return len(a) }
func (a byName) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byName) Less(i, j int) bool { return a[i].Name < a[j].Name }

func NewHandler(w io.Writer) *Handler {
	return &Handler{Writer: w, now: time.Now}
}

// SetOutput swaps the writer, closing the previous one unless it is stdout/stderr.
func (h *Handler) SetOutput(w io.Writer) {
	h.mu.Lock()
	defer h.mu.Unlock()

	closeWriter(h.Writer)
	h.Writer = w
}

func (h *Handler) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	closeWriter(h.Writer)
}

func closeWriter(w io.Writer) {
	if w == nil || w == os.Stdout || w == os.Stderr {
		return
	}

	if c, ok := w.(io.Closer); ok {
		_ = c.Close()
	}
}

func (h *Handler) HandleLog(e *log.Entry) error {
	var (
		fields    []field
		component string
	)

	for k, v := range e.Fields {
		if k == ComponentField {
			component = fmt.Sprint(v)
			continue
		}
		fields = append(fields, field{k, v})
	}

	sort.Sort(byName(fields))

	var b bytes.Buffer
	_, _ = fmt.Fprintf(&b, "%5s %s", levelToStrings[e.Level], h.now().Format(time.DateTime))
	if component != "" {
		_, _ = fmt.Fprintf(&b, " [%s]", component)
	}
	_, _ = fmt.Fprintf(&b, " %-25s", e.Message)

	for _, f := range fields {
		_, _ = fmt.Fprintf(&b, " %s=%v", f.Name, f.Value)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, _ = fmt.Fprintln(h.Writer, b.String())

	return nil
}
