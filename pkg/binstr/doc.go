// Package binstr packs a small text language describing bit strings into
// byte buffers. It is meant for binary test fixtures and wire-format payloads
// (packet headers and the like) written as readable text.
//
// An IPv4 header, for example:
//
//	# version header_length service_type total_length
//	{4}0x4 {4}5 0x00 {16}1500
//	# identification evil dnf mf offset
//	{16}0xcafe 0b0 0b0 0b0 {13}0
//	# ttl protocol checksum
//	{8}255 {8}17 {16}0
//	# source addr
//	{32}0x12345678
//	# dst addr
//	{32}0x9abcdef0
//
// Grammar:
//
//	document := line { "\n" line }          ; lines are trimmed, blank lines skipped
//	line     := item { " " item }
//	item     := [repeat] [length] numeral | comment
//	repeat   := "*" integer "*"             ; numeral written integer times
//	length   := "{" digits "}"              ; numeral truncated or zero padded to digits bits
//	comment  := "#" ...                     ; rest of the line is ignored
//	numeral  := hex | bin | oct | decimal
//	hex      := "0x" hexdigit*              ; 4 bits per digit
//	bin      := "0b" ("0" | "1")*           ; 1 bit per digit
//	oct      := "0" octdigit+               ; 3 bits per digit
//	decimal  := digit+                      ; needs a length, at most 64 bits
//
// Bits are packed most significant bit first. Truncation keeps the low order
// bits of the numeral. The returned length is in bits and may not be a
// multiple of 8; the unused bits of the last byte are zeroed.
package binstr
