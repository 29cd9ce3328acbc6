package config

import (
	"context"
	"encoding/json"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var written Config
	require.NoError(t, json.Unmarshal(data, &written))
	assert.Equal(t, *Default(), written)
}

func TestLoadUnwritableKeepsDefaults(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()
	path := filepath.Join(t.TempDir(), "missing", "config.json")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoFileExists(t, path)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, log.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, path, hook.LastEntry().Data["path"])
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_url":"ws://game:9000/play","palette":{"rival":"#00f"}}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ws://game:9000/play", cfg.ServerURL)
	assert.Equal(t, 600, cfg.SurfaceSize)
	assert.Equal(t, "#00f", cfg.Palette.Rival)
	assert.Equal(t, "#c2c2c2", cfg.Palette.Snake)
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{
		"syntax":  `{"server_url":`,
		"size":    `{"surface_size":-1}`,
		"colour":  `{"palette":{"background":"#231f20","snake":"#c2c2c2","rival":"ultraviolet","food":"#e66916"}}`,
		"no addr": `{"server_url":""}`,
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".json")
			require.NoError(t, os.WriteFile(path, []byte(body), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestDefaultPalette(t *testing.T) {
	c, err := Default().Palette.Parse()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x23, 0x1f, 0x20, 0xff}, c.Background)
	assert.Equal(t, color.RGBA{0xc2, 0xc2, 0xc2, 0xff}, c.Snake)
	assert.Equal(t, color.RGBA{0xff, 0x00, 0x00, 0xff}, c.Rival)
	assert.Equal(t, color.RGBA{0xe6, 0x69, 0x16, 0xff}, c.Food)
}

func TestParseColor(t *testing.T) {
	cases := map[string]color.RGBA{
		"#e66916": {0xe6, 0x69, 0x16, 0xff},
		"#E66916": {0xe6, 0x69, 0x16, 0xff},
		"#fff":    {0xff, 0xff, 0xff, 0xff},
		"red":     {0xff, 0x00, 0x00, 0xff},
		" White ": {0xff, 0xff, 0xff, 0xff},
	}
	for in, want := range cases {
		got, err := ParseColor(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, in := range []string{"", "#12", "#gggggg", "nocolour"} {
		_, err := ParseColor(in)
		assert.Error(t, err, in)
	}
}

func TestWatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	_, err := Load(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reloaded := make(chan *Config, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(c *Config) {
			select {
			case reloaded <- c:
			default:
			}
		})
	}()

	require.Eventually(t, func() bool {
		if err := os.WriteFile(path, []byte(`{"log_level":"debug"}`), 0644); err != nil {
			return false
		}
		select {
		case c := <-reloaded:
			return c.LogLevel == "debug"
		case <-time.After(50 * time.Millisecond):
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}
