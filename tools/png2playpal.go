// png2playpal.go - Convert a 16x16 swatch PNG into a raw PLAYPAL lump
//
// Usage: go run png2playpal.go swatch.png PLAYPAL.lmp
//
// The swatch is scaled to 16x16 with nearest-neighbour sampling; entry i is
// the pixel at column i%16, row i/16.

package main

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

const swatchSide = 16

func main() {
	if len(os.Args) != 3 {
		fmt.Println("Usage: png2playpal <swatch.png> <PLAYPAL.lmp>")
		os.Exit(1)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Printf("Error opening swatch: %v\n", err)
		os.Exit(1)
	}
	img, err := png.Decode(f)
	f.Close()
	if err != nil {
		fmt.Printf("Error decoding PNG: %v\n", err)
		os.Exit(1)
	}

	bounds := img.Bounds()
	fmt.Printf("Swatch size: %dx%d\n", bounds.Dx(), bounds.Dy())

	grid := image.NewRGBA(image.Rect(0, 0, swatchSide, swatchSide))
	draw.NearestNeighbor.Scale(grid, grid.Bounds(), img, bounds, draw.Src, nil)

	pal := make([]byte, 0, swatchSide*swatchSide*3)
	for i := 0; i < len(grid.Pix); i += 4 {
		pal = append(pal, grid.Pix[i], grid.Pix[i+1], grid.Pix[i+2])
	}

	if err := os.WriteFile(os.Args[2], pal, 0644); err != nil {
		fmt.Printf("Error writing output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Written %d bytes to %s\n", len(pal), os.Args[2])
}
