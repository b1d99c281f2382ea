package helpers

import "log"

// Logger provides simplified logging with prefixes
type Logger struct {
	prefix string
}

// NewLogger creates a new logger with a prefix
func NewLogger(prefix string) *Logger {
	return &Logger{prefix: "[" + prefix + "]"}
}

func (l *Logger) write(level, msg string, args []interface{}) {
	if len(args) == 0 {
		log.Printf("%s %s: %s", l.prefix, level, msg)
		return
	}
	log.Printf("%s %s: %s %v", l.prefix, level, msg, args)
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...interface{}) {
	l.write("INFO", msg, args)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...interface{}) {
	l.write("WARN", msg, args)
}

// Error logs an error message
func (l *Logger) Error(msg string, err error, args ...interface{}) {
	l.write("ERROR", msg+" - "+err.Error(), args)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...interface{}) {
	l.write("DEBUG", msg, args)
}
