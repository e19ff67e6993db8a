// Package ditto provides the Ditto Protocol mapper for xmapping.
//
// Mapper alias: "Ditto"
//
// Inbound, the external text payload (or the byte payload read as UTF-8)
// must hold a JSON serialized protocol message. Outbound, the protocol
// message is serialized to JSON text with content type
// "application/vnd.eclipse.ditto+json".
//
// Config keys:
// - content_type_blocklist: []string or comma-separated string of inbound
//   content types to drop (default: the Hono notification types)
// - codec: wire codec name used when none is injected (default "json")
//
// Example builder usage:
//
//	p, _ := xmapping.NewProcessorBuilder().
//	    WithMapper(ditto.MapperName, map[string]any{
//	        "content_type_blocklist": "application/vnd.eclipse-hono-empty-notification",
//	    }).
//	    Build()
package ditto
