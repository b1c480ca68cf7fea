package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// source reads trimmed settings from viper, which layers the environment over an
// optional config file. Blank or unparsable values fall back to the default.
type source struct {
	v *viper.Viper
}

func (s source) raw(key string) string {
	return strings.TrimSpace(s.v.GetString(key))
}

func (s source) str(key, def string) string {
	if val := s.raw(key); val != "" {
		return val
	}
	return def
}

// duration accepts Go duration syntax and rejects non-positive values.
func (s source) duration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s.raw(key))
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func (s source) flag(key string, def bool) bool {
	switch strings.ToLower(s.raw(key)) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	default:
		return def
	}
}

// list splits a comma-separated value, dropping blank items.
func (s source) list(key, def string) []string {
	var out []string
	for _, item := range strings.Split(s.str(key, def), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
