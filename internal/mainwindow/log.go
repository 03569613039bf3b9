package mainwindow

import (
	"sync/atomic"

	"github.com/charmbracelet/log"
)

var logger atomic.Pointer[log.Logger]

func init() {
	logger.Store(log.Default().WithPrefix("main"))
}

// SetLogger routes the package's "main" channel to l. A nil l restores the default.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.Default()
	}
	logger.Store(l.WithPrefix("main"))
}

func mainLog() *log.Logger {
	return logger.Load()
}
