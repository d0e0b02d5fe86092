// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package log implements leveling and teeing on top of Go's standard
// logs package. As with the standard log package, this package
// defines a standard logger available as a package global and via
// package functions.
//
// The conformance harness tees the standard logger per fixture
// category, so that messages about a fixture carry the category they
// were produced under.
package log

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// Level defines the level of logging. Higher levels are more
// verbose.
type Level int

const (
	// OffLevel turns logging off.
	OffLevel Level = iota
	// ErrorLevel outputs only error messages.
	ErrorLevel
	// InfoLevel is the standard error level.
	InfoLevel
	// DebugLevel outputs detailed debugging output.
	DebugLevel
)

var levelNames = [...]string{
	OffLevel:   "off",
	ErrorLevel: "error",
	InfoLevel:  "info",
	DebugLevel: "debug",
}

func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel returns the level named by s, which is one of "off",
// "error", "info", or "debug".
func ParseLevel(s string) (Level, error) {
	for l, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(l), nil
		}
	}
	return OffLevel, fmt.Errorf("unrecognized log level %q", s)
}

// An Outputter receives published log messages. Go's
// *log.Logger implements Outputter.
type Outputter interface {
	Output(calldepth int, s string) error
}

type multiOutputter []Outputter

func (m multiOutputter) Output(calldepth int, s string) (err error) {
	for _, out := range m {
		if e := out.Output(calldepth+1, s); e != nil {
			err = e
		}
	}
	return
}

// MultiOutputter returns an Outputter that outputs each message to
// all the provided outputters. It returns the last error.
func MultiOutputter(outputters ...Outputter) Outputter {
	return multiOutputter(outputters)
}

// A Logger receives log messages at multiple levels, and publishes
// those messages to its outputter if the level (or logger) is
// active. A Logger created by Tee also publishes to its parent,
// prefixed. Nil Loggers ignore all log messages.
type Logger struct {
	// Outputter receives all log messages at or below the Logger's
	// current level. It may be nil for teed loggers.
	Outputter
	// Level defines the publishing level of this Logger.
	Level Level

	parent *Logger
	prefix string
}

// New creates a new Logger that publishes messsages at or below the
// provided level to the provided outputter. New returns nil (which
// drops every message) when level is OffLevel.
func New(out Outputter, level Level) *Logger {
	if level == OffLevel {
		return nil
	}
	return &Logger{Outputter: out, Level: level}
}

// Tee constructs a new logger that tees its output to the provided
// outputter and parent logger. Messages sent to the parent are
// prefixed with the provided prefix string. Out may be nil, in which
// cases messages are published to the parent only.
func (l *Logger) Tee(out Outputter, prefix string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{Outputter: out, Level: l.Level, parent: l, prefix: prefix}
}

// At tells whether the logger is at or below the provided level.
func (l *Logger) At(level Level) bool {
	return l != nil && level <= l.Level
}

// Print formats a message in the manner of fmt.Print and publishes
// it to the logger at InfoLevel.
func (l *Logger) Print(v ...interface{}) {
	if l.At(InfoLevel) {
		l.publish(2, InfoLevel, fmt.Sprint(v...))
	}
}

// Printf formats a message in the manner of fmt.Printf and publishes
// it to the logger at InfoLevel.
func (l *Logger) Printf(format string, args ...interface{}) {
	if l.At(InfoLevel) {
		l.publish(2, InfoLevel, fmt.Sprintf(format, args...))
	}
}

// Error formats a message in the manner of fmt.Print and publishes
// it to the logger at ErrorLevel.
func (l *Logger) Error(v ...interface{}) {
	if l.At(ErrorLevel) {
		l.publish(2, ErrorLevel, fmt.Sprint(v...))
	}
}

// Errorf formats a message in the manner of fmt.Printf and publishes
// it to the logger at ErrorLevel.
func (l *Logger) Errorf(format string, args ...interface{}) {
	if l.At(ErrorLevel) {
		l.publish(2, ErrorLevel, fmt.Sprintf(format, args...))
	}
}

// Debug formats a message in the manner of fmt.Print and publishes
// it to the logger at DebugLevel.
func (l *Logger) Debug(v ...interface{}) {
	if l.At(DebugLevel) {
		l.publish(2, DebugLevel, fmt.Sprint(v...))
	}
}

// Debugf formats a message in the manner of fmt.Printf and publishes
// it to the logger at DebugLevel.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.At(DebugLevel) {
		l.publish(2, DebugLevel, fmt.Sprintf(format, args...))
	}
}

// publish outputs msg and passes it up the chain of parents, each
// adding its prefix. The message is formatted once by the caller.
func (l *Logger) publish(calldepth int, level Level, msg string) {
	for ; l != nil; l = l.parent {
		calldepth++
		if l.Outputter != nil && level <= l.Level {
			l.Output(calldepth, msg)
		}
		msg = l.prefix + msg
	}
}

// Std is the standard logger. The jsfixture command replaces it
// according to its -log flag.
var Std = New(log.New(os.Stderr, "", log.LstdFlags), InfoLevel)

// Print calls Std.Print.
func Print(v ...interface{}) { Std.Print(v...) }

// Printf calls Std.Printf.
func Printf(format string, args ...interface{}) { Std.Printf(format, args...) }

// Error calls Std.Error.
func Error(v ...interface{}) { Std.Error(v...) }

// Errorf calls Std.Errorf.
func Errorf(format string, args ...interface{}) { Std.Errorf(format, args...) }

// Debug calls Std.Debug.
func Debug(v ...interface{}) { Std.Debug(v...) }

// Debugf calls Std.Debugf.
func Debugf(format string, args ...interface{}) { Std.Debugf(format, args...) }
