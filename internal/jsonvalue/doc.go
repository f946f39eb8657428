// Package jsonvalue provides a closed, ordered representation of decoded JSON.
//
// A [Value] is exactly one of six kinds: null, boolean, number, string, array,
// or object. Validators switch on [Value.Kind] instead of probing dynamic Go
// types, and objects keep their members in document order so that
// diagnostics are reported in key-declaration order.
//
// Numbers keep their literal text. Whether a number is an integer is decided
// from that literal: 1 and -7 are integers, 1.0 and 1e3 are not.
//
// Objects with duplicate keys keep the position of the first occurrence and
// the value of the last, matching how most JSON decoders build maps.
package jsonvalue
