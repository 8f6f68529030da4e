// Command potrace traces raster images into SVG vector paths.
package main

import "github.com/gogpu/potrace/cmd/potrace/cmd"

func main() {
	cmd.Execute()
}
