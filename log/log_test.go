// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package log_test

import (
	"reflect"
	"testing"

	"github.com/grailbio/jsfixture/log"
)

type outputBuffer struct {
	messages []string
}

func (o *outputBuffer) Output(calldepth int, s string) error {
	o.messages = append(o.messages, s)
	return nil
}

func TestLogger(t *testing.T) {
	var b1, b2 outputBuffer
	l1 := log.New(&b1, log.InfoLevel)
	l2 := l1.Tee(&b2, "pass: ")
	l1.Printf("checking 3 fixtures")
	l2.Error("0123456789abcdef.js: unexpected result")

	if got, want := b1.messages, ([]string{"checking 3 fixtures", "pass: 0123456789abcdef.js: unexpected result"}); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := b2.messages, ([]string{"0123456789abcdef.js: unexpected result"}); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTeeWithPrefix(t *testing.T) {
	var b outputBuffer
	l := log.New(&b, log.InfoLevel)
	l.Printf("corpus")
	l1 := l.Tee(nil, "early: ")
	l1.Printf("known divergent")
	l2 := l1.Tee(nil, "x.js: ")
	l2.Printf("stale")

	if got, want := b.messages, ([]string{
		"corpus",
		"early: known divergent",
		"early: x.js: stale",
	}); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLevels(t *testing.T) {
	var b outputBuffer
	l := log.New(&b, log.ErrorLevel)
	l.Print("this message should be dropped")
	l.Debug("this too")
	l.Error("i should see this message")
	l.Error("and this")
	if got, want := b.messages, ([]string{"i should see this message", "and this"}); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	for _, level := range []log.Level{log.InfoLevel, log.DebugLevel} {
		if l.At(level) {
			t.Errorf("logger at %v", level)
		}
	}
	if !l.At(log.ErrorLevel) {
		t.Error("not at ErrorLevel")
	}
}

func TestMultiOutputter(t *testing.T) {
	var b1, b2 outputBuffer
	l := log.New(log.MultiOutputter(&b1, &b2), log.InfoLevel)
	l.Printf("m")
	want := []string{"m"}
	if got := b1.messages; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := b2.messages; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseLevel(t *testing.T) {
	for _, level := range []log.Level{log.OffLevel, log.ErrorLevel, log.InfoLevel, log.DebugLevel} {
		got, err := log.ParseLevel(level.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != level {
			t.Errorf("got %v, want %v", got, level)
		}
	}
	if got, err := log.ParseLevel("DEBUG"); err != nil || got != log.DebugLevel {
		t.Errorf("got %v, %v, want debug", got, err)
	}
	if _, err := log.ParseLevel("verbose"); err == nil {
		t.Error("expected error")
	}
}

func TestStd(t *testing.T) {
	saved := log.Std
	defer func() { log.Std = saved }()
	var b outputBuffer
	log.Std = log.New(&b, log.DebugLevel)
	log.Printf("%d fixtures", 3)
	log.Debug("slug ", "0123456789abcdef")
	log.Error("failed")
	log.Std = nil
	log.Print("dropped")
	want := []string{"3 fixtures", "slug 0123456789abcdef", "failed"}
	if got := b.messages; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
