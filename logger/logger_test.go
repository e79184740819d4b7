package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelsUseTheirPrefixAndDestination(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewWithWriters(&out, &errOut)

	l.Info("ready")
	l.Warnf("store %s unavailable", "file")
	l.Errorf("exit code %d", 2)
	l.Event("level-up", "level=2")

	assert.Contains(t, out.String(), "[BLOCKFALL-INFO] ")
	assert.Contains(t, out.String(), "ready\n")
	assert.Contains(t, out.String(), "[BLOCKFALL-WARN] ")
	assert.Contains(t, out.String(), "store file unavailable\n")
	assert.Contains(t, out.String(), "[EVENT:level-up] level=2\n")
	assert.NotContains(t, out.String(), "exit code")

	assert.Contains(t, errOut.String(), "[BLOCKFALL-ERROR] ")
	assert.Contains(t, errOut.String(), "exit code 2\n")
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		l := Discard()
		l.Info("dropped")
		l.Error("dropped")
	})
}
