package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	TokenFile string
	Output    string
	Verbose   bool

	// Token is read from TokenFile after login
	Token string
}

// config keys, also the flag names
const (
	keyServer    = "server"
	keyTokenFile = "token-file"
	keyOutput    = "output"
	keyVerbose   = "verbose"
)

// newViper sets up defaults, EASYLOG_* env lookup and the optional
// .easylog.yaml in the working or home directory
func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(keyServer, "http://localhost:8080")
	v.SetDefault(keyTokenFile, defaultTokenFile())
	v.SetDefault(keyOutput, "text")
	v.SetDefault(keyVerbose, false)

	v.SetConfigName(".easylog") // .yaml is implicit
	v.SetEnvPrefix("EASYLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("EASYLOG_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	return v
}

// LoadConfig resolves flags over env over config file over defaults
func LoadConfig(v *viper.Viper, flags *pflag.FlagSet) (*Config, error) {
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	c := &Config{
		ServerURL: v.GetString(keyServer),
		TokenFile: v.GetString(keyTokenFile),
		Output:    v.GetString(keyOutput),
		Verbose:   v.GetBool(keyVerbose),
	}
	if c.Output != "text" && c.Output != "json" {
		return nil, errors.New("--output must be text or json")
	}
	return c, nil
}

// LoadToken loads the token from file if not already set
func (c *Config) LoadToken() error {
	if c.Token != "" {
		return nil
	}

	data, err := os.ReadFile(c.TokenFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No token file is fine
		}
		return err
	}

	c.Token = strings.TrimSpace(string(data))
	return nil
}

// SaveToken saves the token to the token file
func (c *Config) SaveToken(token string) error {
	c.Token = token

	dir := filepath.Dir(c.TokenFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.TokenFile, []byte(token), 0600)
}

// ClearToken removes the token file
func (c *Config) ClearToken() error {
	c.Token = ""
	if err := os.Remove(c.TokenFile); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".easylog/token"
	}
	return filepath.Join(home, ".easylog", "token")
}
