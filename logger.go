package gor502

import (
	"log"
	"os"
)

type logger interface {
	Info(v ...interface{})
	Infof(format string, v ...interface{})
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})
	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// Log is the package logger. Replace it before decoding to route the
// raw-payload traces into the host application's logging.
var Log logger = &gor502Logger{
	stdLog: log.New(os.Stdout, "", log.LstdFlags),
	errLog: log.New(os.Stderr, "", log.LstdFlags),
}

type gor502Logger struct {
	stdLog *log.Logger
	errLog *log.Logger
}

func (l *gor502Logger) Info(v ...interface{}) {
	l.stdLog.Print(v...)
}
func (l *gor502Logger) Infof(format string, v ...interface{}) {
	l.stdLog.Printf(format, v...)
}
func (l *gor502Logger) Debug(v ...interface{}) {
	l.stdLog.Print(v...)
}
func (l *gor502Logger) Debugf(format string, v ...interface{}) {
	l.stdLog.Printf(format, v...)
}
func (l *gor502Logger) Error(v ...interface{}) {
	l.errLog.Println(v...)
}
func (l *gor502Logger) Errorf(format string, v ...interface{}) {
	l.errLog.Printf(format, v...)
}
