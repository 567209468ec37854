package archive

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// gooseLogger adapts a charmbracelet logger to Goose's logger interface.
// Goose expects a logger with Printf and Fatalf methods.
type gooseLogger struct {
	l *log.Logger
}

func (c *gooseLogger) Printf(format string, v ...interface{}) {
	msg := strings.TrimSpace(fmt.Sprintf(format, v...))
	if c == nil || c.l == nil {
		log.Info(msg)
		return
	}
	c.l.Info(msg)
}

func (c *gooseLogger) Fatalf(format string, v ...interface{}) {
	msg := strings.TrimSpace(fmt.Sprintf(format, v...))
	if c == nil || c.l == nil {
		log.Fatal(msg)
		return
	}
	c.l.Fatal(msg)
}
