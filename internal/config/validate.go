package config

import (
	"errors"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/charmbracelet/glamour/styles"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// OutputModes lists the accepted values of the output key.
var OutputModes = []string{"pretty", "plain", "html", "markdown", "json"}

// CheckConfigValidity inspects every option and reports all problems in one error.
func CheckConfigValidity(v *viper.Viper) error {
	var problems []string
	add := func(msg string) { problems = append(problems, msg) }

	if raw := strings.TrimSpace(v.GetString("base_url")); raw == "" {
		add("base_url is required")
	} else if u, err := url.Parse(raw); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		add("base_url must be an http or https url")
	}

	if strings.TrimSpace(v.GetString("model")) == "" {
		add("model is required")
	}

	if out := strings.ToLower(strings.TrimSpace(v.GetString("output"))); !contains(OutputModes, out) {
		add("output must be one of " + strings.Join(OutputModes, ", "))
	}

	if d, err := cast.ToDurationE(v.Get("request.timeout")); err != nil {
		add("request.timeout must be a duration")
	} else if d < 0 {
		add("request.timeout must not be negative")
	}

	if d, err := cast.ToDurationE(v.Get("notice.duration")); err != nil {
		add("notice.duration must be a duration")
	} else if d <= 0 {
		add("notice.duration must be greater than 0")
	}

	if w, err := cast.ToIntE(v.Get("render.word_wrap")); err != nil {
		add("render.word_wrap must be an integer")
	} else if w < 0 {
		add("render.word_wrap must not be negative")
	}

	if style := strings.TrimSpace(v.GetString("render.style")); style == "" {
		add("render.style is required")
	} else if !knownStyle(style) {
		if _, err := os.Stat(style); err != nil {
			add("render.style must be a glamour style name or an existing file")
		}
	}

	if _, err := log.ParseLevel(strings.ToLower(v.GetString("log.level"))); err != nil {
		add("log.level must be one of debug, info, warn, error, fatal")
	}
	if strings.TrimSpace(v.GetString("log.output")) == "" {
		add("log.output is required")
	}

	if len(problems) == 0 {
		return nil
	}
	return errors.New("invalid config:\n  - " + strings.Join(problems, "\n  - "))
}

// Duration reads key as a duration, returning def when it cannot be parsed.
func Duration(v *viper.Viper, key string, def time.Duration) time.Duration {
	d, err := cast.ToDurationE(v.Get(key))
	if err != nil {
		return def
	}
	return d
}

func knownStyle(name string) bool {
	if name == "auto" {
		return true
	}
	_, ok := styles.DefaultStyles[name]
	return ok
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
