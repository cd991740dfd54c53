package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/leighmacdonald/folio/internal/config"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "folio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoaderDefaults(t *testing.T) {
	conf, err := config.NewLoader(writeConfig(t, "{}")).Read()
	require.NoError(t, err)

	require.Equal(t, config.DefaultRowHeightPx, conf.RowHeightPx)
	require.Equal(t, config.DefaultBreakpoint, conf.MenuBreakpoint)
	require.Equal(t, config.DefaultListenAddr, conf.ListenAddr)
	require.Equal(t, config.DefaultSendTimeout, conf.SendTimeout)
	require.Equal(t, config.DefaultShutdownWait, conf.ShutdownTimeout)
	require.Equal(t, config.DefaultSMTPPort, conf.SMTP.Port)
	require.False(t, conf.SMTP.Enabled())
	require.Empty(t, conf.ContentPath)
}

func TestLoaderFile(t *testing.T) {
	conf, err := config.NewLoader(writeConfig(t, `
content_path: /tmp/me.yaml
row_height_px: 20
menu_breakpoint: 5
send_timeout: 3s
shutdown_timeout: 2s
smtp:
  host: smtp.example.com
  user: me@example.com
  to: inbox@example.com
`)).Read()
	require.NoError(t, err)

	require.Equal(t, "/tmp/me.yaml", conf.ContentPath)
	require.Equal(t, 20, conf.RowHeightPx)
	require.Equal(t, 20, conf.MenuBreakpoint)
	require.Equal(t, 3*time.Second, conf.SendTimeout)
	require.Equal(t, 2*time.Second, conf.ShutdownTimeout)
	require.True(t, conf.SMTP.Enabled())
	require.Equal(t, "inbox@example.com", conf.SMTP.To)
}

func TestLoaderEnv(t *testing.T) {
	t.Setenv("FOLIO_ROW_HEIGHT_PX", "8")
	t.Setenv("FOLIO_SMTP_HOST", "mail.example.com")

	conf, err := config.NewLoader(writeConfig(t, "row_height_px: 20")).Read()
	require.NoError(t, err)
	require.Equal(t, 8, conf.RowHeightPx)
	require.Equal(t, "mail.example.com", conf.SMTP.Host)
}

func TestLoaderInvalid(t *testing.T) {
	_, err := config.NewLoader(writeConfig(t, "row_height_px: 0")).Read()
	require.Error(t, err)

	_, errMissing := config.NewLoader(filepath.Join(t.TempDir(), "nope.yaml")).Read()
	require.Error(t, errMissing)
}

func TestLoaderNonPositiveTimeouts(t *testing.T) {
	conf, err := config.NewLoader(writeConfig(t, "send_timeout: 0s\nshutdown_timeout: -1s")).Read()
	require.NoError(t, err)
	require.Equal(t, config.DefaultSendTimeout, conf.SendTimeout)
	require.Equal(t, config.DefaultShutdownWait, conf.ShutdownTimeout)

	t.Setenv("FOLIO_SEND_TIMEOUT", "-5s")

	fromEnv, errEnv := config.NewLoader(writeConfig(t, "{}")).Read()
	require.NoError(t, errEnv)
	require.Equal(t, config.DefaultSendTimeout, fromEnv.SendTimeout)
}
