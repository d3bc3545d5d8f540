//go:build amd64 || arm64 || 386 || arm || riscv64 || loong64 || mipsle || mips64le || ppc64le || wasm

// le_check.go - RetroVideo requires a little-endian architecture.
//
// The RGBA frame buffer is uploaded to textures declared as packed 32-bit
// pixels, which only matches on little-endian hosts. be_unsupported.go
// fails the build everywhere else.

package main
