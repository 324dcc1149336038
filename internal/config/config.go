package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const appName = "gyani"

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// The provided Viper instance is mutated with defaults, file contents, and env.
func Load(ctx context.Context, v *viper.Viper) error {
	// If SetConfigFile was provided upstream it wins; these are fallbacks.
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, appName))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", appName))
		}
		v.AddConfigPath(".")
	}

	applyDefaults(v)

	// A missing file is fine; a broken one is not.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return err
		}
	}

	// Environment variables: GYANI_* (highest among these sources)
	v.SetEnvPrefix(appName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.Set("base_url", strings.TrimRight(strings.TrimSpace(v.GetString("base_url")), "/"))
	v.Set("model", strings.TrimSpace(v.GetString("model")))
	v.Set("output", strings.ToLower(strings.TrimSpace(v.GetString("output"))))
	return nil
}

// DefaultConfigPath resolves the standard config.toml location.
func DefaultConfigPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, appName, "config.toml")
}

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the configuration options, their defaults and
// meanings. It drives defaults, validation and the generated config file.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "base_url", Default: "https://gyani-ai-backend.onrender.com", Comment: "Generation backend; requests go to base_url/ai"},
		{Key: "model", Default: "meta-llama/llama-3.1-405b-instruct", Comment: "Model id selected when none is given"},
		{Key: "output", Default: "pretty", Comment: "Output for `ask`: pretty, plain, html, markdown or json"},

		{Key: "request.timeout", Default: "120s", Comment: "Per-request timeout (Go duration); 0 waits indefinitely"},

		{Key: "render.style", Default: "dracula", Comment: "Glamour style name (dark, light, dracula, ...) or path to a JSON style"},
		{Key: "render.word_wrap", Default: 80, Comment: "Wrap rendered content at this width; 0 disables wrapping"},

		{Key: "notice.duration", Default: "3s", Comment: "How long notices stay on screen in the TUI"},

		{Key: "editor.command", Default: "", Comment: "Editor used to compose prompts; falls back to $VISUAL then $EDITOR"},

		{Key: "log.level", Default: "info", Comment: "Log level: debug, info, warn, error or fatal"},
		{Key: "log.output", Default: "stderr", Comment: "Log destination: stderr, discard or a file path"},
	}
}
