// Package binary provides a mapper for opaque device payloads.
//
// Mapper alias: "Binary"
//
// Inbound, the byte payload (or the text payload through TextToBytes) is
// placed in the protocol value as single-byte text, or as a PortableBuffer
// when value_as_buffer is set. Namespace and ID come from the configured
// headers; messages without an ID are dropped. Outbound, the value is
// turned back into a byte payload.
//
// Config keys: namespace_header, id_header, default_namespace, group,
// channel, criterion, action, path, value_as_buffer, content_type.
package binary
