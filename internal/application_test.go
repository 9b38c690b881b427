package application

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/square-game/internal/config"
)

func TestRunApp(t *testing.T) {
	// Given: a config and a scripted session
	conf := &config.Config{LogLevel: "info", RecolorDelay: time.Minute, Prompt: "> "}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	out := &bytes.Buffer{}

	// When: the app runs until the player quits
	err := RunApp(logger, conf, strings.NewReader("guide\nstart\nmenu\nquit\n"), out)

	// Then: the screens were drawn and the app exited cleanly
	require.NoError(t, err)
	screen := out.String()
	assert.Contains(t, screen, "== Square Game ==")
	assert.Contains(t, screen, "If you match incorrectly, the game is over!")
	assert.Contains(t, screen, "Score: 0")
}
