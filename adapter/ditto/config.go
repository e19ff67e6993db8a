package ditto

import (
	"fmt"
	"strings"
)

// Config for the Ditto Protocol mapper.
type Config struct {
	// ContentTypeBlocklist lists inbound content types that are dropped.
	ContentTypeBlocklist []string
	// Codec names the wire codec used when the context carries none.
	Codec string
}

// Defaults returns the Config used when no options are given.
func Defaults() Config {
	return Config{
		ContentTypeBlocklist: []string{
			"application/vnd.eclipse-hono-empty-notification",
			"application/vnd.eclipse-hono-device-provisioning-notification",
			"application/vnd.eclipse-hono-dc-notification+json",
			"application/vnd.eclipse-hono-delivery-failure-notification+json",
		},
		Codec: "json",
	}
}

// Validate checks Config before a mapper is built from it.
func (c Config) Validate() error {
	if c.Codec == "" {
		return fmt.Errorf("config: codec required")
	}
	for i, ct := range c.ContentTypeBlocklist {
		if strings.TrimSpace(ct) == "" {
			return fmt.Errorf("config: content_type_blocklist[%d] is empty", i)
		}
	}
	return nil
}

func (c Config) toMap() map[string]any {
	return map[string]any{
		"content_type_blocklist": c.ContentTypeBlocklist,
		"codec":                  c.Codec,
	}
}

// ConfigFromMap converts a generic map to Config with defaults.
func ConfigFromMap(m map[string]any) Config {
	c := Defaults()

	switch v := m["content_type_blocklist"].(type) {
	case []string:
		c.ContentTypeBlocklist = v
	case string:
		c.ContentTypeBlocklist = splitList(v)
	}
	if v, ok := m["codec"].(string); ok && v != "" {
		c.Codec = v
	}
	return c
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
