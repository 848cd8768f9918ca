package logutil

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelWarn, ParseLevel(" warning "))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel(""))
	assert.Equal(t, LevelInfo, ParseLevel("chatty"))
}

func TestLevelGate(t *testing.T) {
	out, flags, prev := log.Writer(), log.Flags(), logLevel
	t.Cleanup(func() {
		SetLevel(prev)
		log.SetOutput(out)
		log.SetFlags(flags)
	})

	var buf bytes.Buffer
	log.SetOutput(&buf)
	log.SetFlags(0)

	SetLevel(LevelWarn)
	Debugf("hidden %d", 1)
	Infof("hidden %d", 2)
	Warnf("shown %d", 3)
	Errorf("shown %d", 4)
	assert.Equal(t, "[WARN] shown 3\n[ERROR] shown 4\n", buf.String())
	assert.False(t, Enabled(LevelInfo))
	assert.True(t, Enabled(LevelError))
}
