package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".servicehub"

	baseURLKey        = "api.base_url"
	credentialPathKey = "credentials.path"

	defaultBaseURL = "http://localhost:8080"

	configFileMode = 0o600
	configDirMode  = 0o700
)

type Config struct {
	BaseURL        string
	CredentialPath string
}

// Load resolves configuration from (highest first) SERVICEHUB_* environment
// variables, ~/.servicehub/config.toml, and built-in defaults. A .env file
// in the working directory is folded into the environment when present.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	_ = godotenv.Load()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	dir := filepath.Join(homeDir, configDir)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(dir)
	cfg.SetDefault(baseURLKey, defaultBaseURL)
	cfg.SetDefault(credentialPathKey, filepath.Join(dir, "token"))
	cfg.SetEnvPrefix("SERVICEHUB")
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	loaded := Config{
		BaseURL:        strings.TrimRight(cfg.GetString(baseURLKey), "/"),
		CredentialPath: cfg.GetString(credentialPathKey),
	}
	if loaded.BaseURL == "" {
		return Config{}, errors.New("api base url is empty")
	}
	if loaded.CredentialPath == "" {
		return Config{}, errors.New("credential path is empty")
	}

	return loaded, nil
}

type fileSchema struct {
	API         apiSchema         `toml:"api"`
	Credentials credentialsSchema `toml:"credentials"`
}

type apiSchema struct {
	BaseURL string `toml:"base_url"`
}

type credentialsSchema struct {
	Path string `toml:"path"`
}

// WriteDefault materialises the active configuration at
// ~/.servicehub/config.toml so it can be edited. Refuses to overwrite.
func WriteDefault(loaded Config) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	dir := filepath.Join(homeDir, configDir)
	path := filepath.Join(dir, configName+"."+configType)

	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config file already exists at %s", path)
	}

	data, err := toml.Marshal(fileSchema{
		API:         apiSchema{BaseURL: loaded.BaseURL},
		Credentials: credentialsSchema{Path: loaded.CredentialPath},
	})
	if err != nil {
		return "", fmt.Errorf("encode config file: %w", err)
	}

	if err := os.MkdirAll(dir, configDirMode); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, configFileMode); err != nil {
		return "", fmt.Errorf("write config file: %w", err)
	}

	return path, nil
}
