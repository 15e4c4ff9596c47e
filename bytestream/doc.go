// Package bytestream is the sequential big-endian byte-stream utility that
// codec.Encoder and codec.Decoder treat as an external collaborator (spec §1):
// a growable write buffer and a random-access read cursor, both speaking
// typed integer/float primitives, NUL-terminated UTF-8 strings, and raw byte
// arrays, over a single EndianEngine.
//
// The codec package emits its payload through a Writer and reads it back
// through a Reader. Varint counts are appended as bytes from internal/varint,
// and the decoder parses the header CRC32 and the interning tables straight
// from the input slice before handing the payload to a Reader.
package bytestream
