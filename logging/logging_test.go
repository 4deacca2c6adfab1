package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/zeebo/assert"
)

func TestInitLevels(t *testing.T) {
	defer SetLogger(*L())

	var buf bytes.Buffer
	Init(&buf, false, false)
	log := L()
	log.Debug().Msg("hidden")
	log.Info().Msg("shown")
	assert.That(t, !strings.Contains(buf.String(), "hidden"))
	assert.That(t, strings.Contains(buf.String(), `"message":"shown"`))

	buf.Reset()
	Init(&buf, true, false)
	log = L()
	log.Debug().Msg("debugging")
	assert.That(t, strings.Contains(buf.String(), `"level":"debug"`))
}

func TestInitHuman(t *testing.T) {
	defer SetLogger(*L())

	var buf bytes.Buffer
	Init(&buf, false, true)
	log := L()
	log.Info().Str("corpus", "bible.txt").Msg("loading")

	out := buf.String()
	assert.That(t, strings.Contains(out, "loading"))
	assert.That(t, strings.Contains(out, "corpus="))
	assert.That(t, !strings.HasPrefix(out, "{"))
}

func TestWithPhase(t *testing.T) {
	defer SetLogger(*L())

	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))

	log := WithPhase("corpus")
	log.Info().Msg("built")
	assert.That(t, strings.Contains(buf.String(), `"phase":"corpus"`))
}
