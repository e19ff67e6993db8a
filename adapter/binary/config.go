package binary

import (
	"fmt"
	"strings"

	"github.com/trickstertwo/xmapping"
)

// Config for the binary payload mapper.
type Config struct {
	// NamespaceHeader and IDHeader name the external headers that carry
	// the entity namespace and ID.
	NamespaceHeader string
	IDHeader        string
	// DefaultNamespace is used when the namespace header is missing.
	DefaultNamespace string

	// Topic segments and path of inbound protocol messages.
	Group     string
	Channel   string
	Criterion string
	Action    string
	Path      string

	// ValueAsBuffer makes inbound values a PortableBuffer instead of text.
	ValueAsBuffer bool
	// ContentType is set on outbound byte payloads.
	ContentType string
}

// Defaults returns the Config used when no options are given.
func Defaults() Config {
	return Config{
		NamespaceHeader: "device-namespace",
		IDHeader:        "device-id",
		Group:           xmapping.GroupThings,
		Channel:         xmapping.ChannelTwin,
		Criterion:       xmapping.CriterionCommands,
		Action:          xmapping.ActionModify,
		Path:            "/attributes/payload",
		ContentType:     "application/octet-stream",
	}
}

// Validate checks that every topic segment has a source.
func (c Config) Validate() error {
	if c.NamespaceHeader == "" && c.DefaultNamespace == "" {
		return fmt.Errorf("config: namespace_header or default_namespace required")
	}
	if c.IDHeader == "" {
		return fmt.Errorf("config: id_header required")
	}
	for _, seg := range []struct{ name, value string }{
		{"group", c.Group},
		{"channel", c.Channel},
		{"criterion", c.Criterion},
		{"action", c.Action},
	} {
		if seg.value == "" {
			return fmt.Errorf("config: %s required", seg.name)
		}
		if strings.Contains(seg.value, "/") {
			return fmt.Errorf("config: %s must not contain '/', got %q", seg.name, seg.value)
		}
	}
	return nil
}

func (c Config) toMap() map[string]any {
	return map[string]any{
		"namespace_header":  c.NamespaceHeader,
		"id_header":         c.IDHeader,
		"default_namespace": c.DefaultNamespace,
		"group":             c.Group,
		"channel":           c.Channel,
		"criterion":         c.Criterion,
		"action":            c.Action,
		"path":              c.Path,
		"value_as_buffer":   c.ValueAsBuffer,
		"content_type":      c.ContentType,
	}
}

// ConfigFromMap converts a generic map to Config with defaults.
func ConfigFromMap(m map[string]any) Config {
	c := Defaults()

	str := func(k string, dst *string) {
		if v, ok := m[k].(string); ok && v != "" {
			*dst = v
		}
	}
	str("namespace_header", &c.NamespaceHeader)
	str("id_header", &c.IDHeader)
	str("default_namespace", &c.DefaultNamespace)
	str("group", &c.Group)
	str("channel", &c.Channel)
	str("criterion", &c.Criterion)
	str("action", &c.Action)
	str("path", &c.Path)
	str("content_type", &c.ContentType)
	if v, ok := m["value_as_buffer"].(bool); ok {
		c.ValueAsBuffer = v
	}
	return c
}
