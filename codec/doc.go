// Package codec implements the JSBON encoder and decoder: the core engine
// described by the specification's component design (§4). Encoder walks a
// value.Object/value.Array graph once, emitting a payload and populating the
// name/value interning tables and the container identity map, then prepends
// a header and the tables. Decoder reverses the process: parse the header,
// read both tables, then recursively materialize the payload, resolving
// back-edges against a reference registry keyed by tag-byte offset.
//
// Payload values are written and read through bytestream.Writer/Reader. The
// tag and header constants live in format and the count encoding in
// internal/varint; this package assembles the header and tables on encode
// and parses them from the input slice on decode.
package codec
