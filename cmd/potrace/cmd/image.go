package cmd

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
)

// decodeImageFile opens and decodes path, sniffing the format from its
// contents (png/jpeg/bmp are registered via blank import). Image decoding
// is confined to the CLI; the engine only ever consumes an image.Image.
func decodeImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	_ = format
	return img, nil
}

func writeFile(path string, data string) error {
	return os.WriteFile(path, []byte(data), 0644)
}

func check(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "potrace:", err)
		os.Exit(1)
	}
}
