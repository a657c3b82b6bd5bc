package tlog

import (
	"fmt"
	"strings"

	"github.com/sirkon/errors"
)

const (
	bold  = "\033[1m"
	red   = "\033[1;31m"
	reset = "\033[0m"
)

// Log logs error.
func Log(t TestingPrinter, err error) {
	t.Helper()
	t.Log(renderString(err, bold))
}

// Error signal error.
func Error(t TestingPrinter, err error) {
	t.Helper()
	t.Error(renderString(err, red))
}

// Check do nothing and return false if error is nil.
// Prints error and return true otherwise.
func Check(t TestingPrinter, err error) bool {
	if err == nil {
		return false
	}

	t.Helper()
	t.Error(renderString(err, red))
	return true
}

// Expect checks the error matches target. A matching error is logged,
// anything else is signaled.
func Expect(t TestingPrinter, err error, target error) bool {
	t.Helper()

	if err == nil {
		t.Errorf("%serror matching '%v' was expected, got nothing%s", red, target, reset)
		return false
	}

	if !errors.Is(err, target) {
		t.Errorf("%serror matching '%v' was expected%s", red, target, reset)
		t.Error(renderString(err, red))
		return false
	}

	t.Log(renderString(err, bold))
	return true
}

func renderString(err error, highlight string) string {
	if err == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString(highlight)
	b.WriteString(err.Error())
	b.WriteString(reset)
	b.WriteByte('\n')

	d := errors.GetContextDeliverer(err)
	if d == nil {
		return b.String()
	}

	var c errorContextConsumer
	d.Deliver(&c)

	var maxname int
	for _, v := range c.vars {
		if len(v.name) > maxname {
			maxname = len(v.name)
		}
	}

	for _, v := range c.vars {
		b.WriteString("    ")
		b.WriteString(bold)
		b.WriteString(v.name)
		b.WriteString(reset)
		b.WriteString(`: `)
		b.WriteString(strings.Repeat(" ", maxname-len(v.name)))
		_, _ = fmt.Fprintln(&b, v.value)
	}
	return b.String()
}
