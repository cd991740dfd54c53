package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Loader handles setting up viper and loading configuration from files and the environment.
type Loader struct {
	*viper.Viper
}

// NewLoader configures the search paths and defaults. When configFile is non-empty only that
// file is considered.
func NewLoader(configFile string) *Loader {
	loader := Loader{Viper: viper.New()}
	loader.SetDefault("content_path", "")
	loader.SetDefault("row_height_px", DefaultRowHeightPx)
	loader.SetDefault("menu_breakpoint", DefaultBreakpoint)
	loader.SetDefault("fps", DefaultFPS)
	loader.SetDefault("listen_addr", DefaultListenAddr)
	loader.SetDefault("send_timeout", DefaultSendTimeout)
	loader.SetDefault("shutdown_timeout", DefaultShutdownWait)
	loader.SetDefault("debug", false)
	loader.SetDefault("smtp.host", "")
	loader.SetDefault("smtp.port", DefaultSMTPPort)
	loader.SetDefault("smtp.user", "")
	loader.SetDefault("smtp.password", "")
	loader.SetDefault("smtp.to", "")
	loader.SetConfigType("yaml")
	loader.SetEnvPrefix(EnvPrefix)
	loader.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	loader.AutomaticEnv()

	if configFile != "" {
		loader.SetConfigFile(configFile)
	} else {
		loader.SetConfigName(DefaultConfigName)
		loader.AddConfigPath(Path(""))
		loader.AddConfigPath(".")
	}

	return &loader
}

func (cl *Loader) Path() string {
	return cl.ConfigFileUsed()
}

// Read loads the config. A missing config file is not an error, the defaults apply.
func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	if config.RowHeightPx < minimumRowHeightPx {
		return Config{}, fmt.Errorf("%w: row_height_px must be at least %d", errConfigRead, minimumRowHeightPx)
	}

	if config.MenuBreakpoint < minimumBreakpoint {
		config.MenuBreakpoint = minimumBreakpoint
	}

	if config.FPS <= 0 {
		config.FPS = DefaultFPS
	}

	if config.SendTimeout <= 0 {
		config.SendTimeout = DefaultSendTimeout
	}

	if config.ShutdownTimeout <= 0 {
		config.ShutdownTimeout = DefaultShutdownWait
	}

	return config, nil
}
