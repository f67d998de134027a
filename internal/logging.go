package internal

import (
	"log"
	"os"
)

// InitLogging configures the process-wide logger. All packages log through
// the stdlib logger.
func InitLogging() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
