package debug

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	mu   sync.Mutex
	file *os.File
	once sync.Once
)

// open lazily opens the debug file named by ELM_DEBUG, if any.
func open() {
	path := os.Getenv("ELM_DEBUG")
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	file = f
}

// Log appends a formatted message to the debug file. No-op unless
// ELM_DEBUG is set to a writable path.
func Log(format string, args ...any) {
	once.Do(open)
	if file == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(file, "%s ", time.Now().Format("15:04:05.000"))
	fmt.Fprintf(file, format, args...)
	fmt.Fprintln(file)
}
