// Package log wraps the standard logger so the process can switch its output
// to a rotated file in one place.
package log

import (
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

var debug bool

// Setup directs output to a rotated log file, or to stderr when path is empty.
// It returns a closer for the file sink.
func Setup(path string, verbose bool) io.Closer {
	debug = verbose
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	if path == "" {
		log.SetOutput(os.Stderr)
		return io.NopCloser(nil)
	}
	l := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 2,
		MaxAge:     28, // days
		Compress:   true,
	}
	log.SetOutput(l)
	return l
}

// Writer returns the current output of the standard logger.
func Writer() io.Writer {
	return log.Writer()
}

// Print calls the standard log.Print()
func Print(v ...interface{}) {
	log.Output(2, fmt.Sprint(v...))
}

// Printf calls the standard log.Printf()
func Printf(format string, v ...interface{}) {
	log.Output(2, fmt.Sprintf(format, v...))
}

// Println calls the standard log.Println()
func Println(v ...interface{}) {
	log.Output(2, fmt.Sprintln(v...))
}

// Fatal calls the standard log.Fatal()
func Fatal(v ...interface{}) {
	log.Output(2, fmt.Sprint(v...))
	os.Exit(1)
}

// Fatalf calls the standard log.Fatalf()
func Fatalf(format string, v ...interface{}) {
	log.Output(2, fmt.Sprintf(format, v...))
	os.Exit(1)
}

// Debugf logs with a [DEBUG] prefix when verbose output is enabled.
func Debugf(format string, v ...interface{}) {
	if !debug {
		return
	}
	log.Output(2, "[DEBUG] "+fmt.Sprintf(format, v...))
}
