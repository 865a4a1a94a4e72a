package main

import (
	"path/filepath"
	"strings"
)

// outputPath names the file written next to input: the input's stem plus
// suffix, with a .png extension. A name with a single leading dot and no
// other dot (".png") is its own stem. An input without a usable stem is
// named "image".
func outputPath(input, suffix string) string {
	return filepath.Join(filepath.Dir(input), fileStem(input)+suffix+".png")
}

// fileStem returns the final path element without its extension.
func fileStem(input string) string {
	base := filepath.Base(input)
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return "image"
	}
	if strings.LastIndex(base, ".") <= 0 {
		return base
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
