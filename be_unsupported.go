//go:build !(amd64 || arm64 || 386 || arm || riscv64 || loong64 || mipsle || mips64le || ppc64le || wasm)

package main

// Texture uploads pass R,G,B,A bytes as packed 32-bit pixels, which assumes
// little-endian byte order.
var _ = "RetroVideo requires a little-endian architecture" + 1
