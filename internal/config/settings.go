package config

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. CYBERJET_SSH_PORT.
const EnvPrefix = "CYBERJET"

// ConfigName is the settings file name looked up in the config dir, without
// extension (yaml, json and toml are accepted).
const ConfigName = "cyberjet"

// ViewSettings holds the logical viewport size.
type ViewSettings struct {
	Width  int `json:"width" mapstructure:"width"`
	Height int `json:"height" mapstructure:"height"`
}

// SSHSettings holds SSH server settings.
type SSHSettings struct {
	Host        string `json:"host" mapstructure:"host"`
	Port        string `json:"port" mapstructure:"port"`
	HostKeyPath string `json:"hostKeyPath" mapstructure:"hostKeyPath"`
	DisplayHost string `json:"displayHost" mapstructure:"displayHost"` // Host shown on the landing page
}

// WebSettings holds landing page server settings.
type WebSettings struct {
	Host string `json:"host" mapstructure:"host"`
	Port string `json:"port" mapstructure:"port"`
}

// Settings is the full runtime configuration.
type Settings struct {
	LogLevel string       `json:"logLevel" mapstructure:"logLevel"`
	LogFile  string       `json:"logFile" mapstructure:"logFile"`
	Audio    string       `json:"audio" mapstructure:"audio"`
	View     ViewSettings `json:"view" mapstructure:"view"`
	SSH      SSHSettings  `json:"ssh" mapstructure:"ssh"`
	Web      WebSettings  `json:"web" mapstructure:"web"`
}

// Load reads settings from the optional config file in configDir, applies
// CYBERJET_* environment overrides and fills defaults.
func Load(configDir string) (Settings, error) {
	// Set default values
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logFile", "cyberjet.log")
	viper.SetDefault("audio", "speaker")

	viper.SetDefault("view.width", 960)
	viper.SetDefault("view.height", 540)

	viper.SetDefault("ssh.host", "0.0.0.0")
	viper.SetDefault("ssh.port", "2222")
	viper.SetDefault("ssh.hostKeyPath", ".ssh/id_ed25519")
	viper.SetDefault("ssh.displayHost", "localhost")

	viper.SetDefault("web.host", "0.0.0.0")
	viper.SetDefault("web.port", "8080")

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName(ConfigName)
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	if s.View.Width <= 0 || s.View.Height <= 0 {
		return Settings{}, fmt.Errorf("invalid viewport %dx%d", s.View.Width, s.View.Height)
	}
	return s, nil
}

// Addr joins host and port for a listener.
func Addr(host, port string) string {
	return net.JoinHostPort(host, port)
}
