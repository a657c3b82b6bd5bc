package tlog_test

import (
	stderrs "errors"
	"testing"

	"github.com/sirkon/dllist/internal/tlog"
	"github.com/sirkon/errors"
)

func TestLogging(t *testing.T) {
	t.Run("log-std-error", func(t *testing.T) {
		tlog.Log(t, stderrs.New("not an error"))
	})

	t.Run("log-ctxed-error", func(t *testing.T) {
		tlog.Log(t, errors.New("ctx error").Int("position", 12).Bool("head-empty", true).Str("node", "a"))
	})

	t.Run("check-nil", func(t *testing.T) {
		if tlog.Check(t, nil) {
			t.Error("nil error must not be reported")
		}
	})

	t.Run("expect-wrapped", func(t *testing.T) {
		const sentinel errors.Const = "sentinel"
		tlog.Expect(t, errors.Wrap(sentinel, "wrap").Int("index", 3), sentinel)
	})
}
