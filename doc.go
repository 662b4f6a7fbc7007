// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package lzw implements the Lempel-Ziv-Welch compression algorithm for the code
streams embedded in GIF, TIFF and PDF files and for fixed width code streams.

A Flavor describes the wire format. GIF streams pack codes least significant
bit first and use literal widths between 2 and 8. TIFF streams use 8-bit
literals, pack the codes most significant bit first and increase the code
width one code early. Both reserve a clear code and an end code and limit
codes to 12 bits. The fixed width flavors write all codes with the same width
and stop extending the dictionary once it is full.

The Writer emits a clear code at the start of every variable width stream and
whenever its dictionary is full. The output for the GIF flavor is identical to
the output of the compress/lzw package.

The Reader uses tables whose size depends only on the maximum code width.
Corrupted streams are reported by errors wrapping ErrMalformedStream or by
ErrUnexpectedEOS. The package doesn't handle the framing of the containers,
for instance GIF sub-blocks or TIFF strips.
*/
package lzw
