/*
Package paa implements reading and decoding of Arma PAA texture containers.

A PAA file stores a 16-bit pixel format code, a stream of self-delimiting
metadata TAGGs (average/maximum color, alpha flag, channel swizzle, mipmap
offsets, plus unknown ones preserved verbatim), and a chain of mipmap records
terminated by a zero-dimension sentinel. Mipmap payloads may be LZO compressed
(DXT formats, width high bit set) or LZSS compressed (bit-packed formats).

The package focuses on practical workflows: parse the container once, decode
any mipmap level on demand into a flat RGBA buffer (DXT1, DXT5, ARGB8888,
ARGB4444, ARGB1555 and gray+alpha are supported), apply the stored channel
swizzle, and optionally repackage the texture as DDS.
*/
package paa
