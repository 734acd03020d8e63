// Package bagua implements an eight-trigram symbolic codec.
//
// Text, unsigned integers and raw bit-strings are reduced to one binary
// string, cut into 3-bit groups and written with the eight trigram glyphs:
//
//	000 ☷ 坤 Kun     100 ☳ 震 Zhen
//	001 ☶ 艮 Gen     101 ☲ 离 Li
//	010 ☵ 坎 Kan     110 ☱ 兑 Dui
//	011 ☴ 巽 Xun     111 ☰ 乾 Qian
//
// # Encoding
//
// Text is expanded to 16 bits per UTF-16 code unit, most significant bit
// first. Integers use their minimal binary form. Bit-strings are taken as-is
// after every character other than '0' and '1' is removed. The joined bits
// are right-padded with zeros to a multiple of 3.
//
// # Decoding
//
// Decoding reverses the symbol step, then reads 16-bit code units. A short
// trailing unit, a zero unit, and any foreign symbol are dropped silently, so
//
//	DecodeToText(EncodeText(s)) == s
//
// holds for text without U+0000, while the opposite direction is lossy: the
// padding added by the encoder cannot be told apart from data.
//
// # Descriptors
//
// Every symbol carries a static Descriptor (name, meaning, element, nature,
// polarity, family). Descriptors are display metadata only and take no part
// in round-tripping.
//
// All functions are pure and safe for concurrent use.
package bagua
