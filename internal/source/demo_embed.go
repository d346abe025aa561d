package source

import (
	_ "embed"
)

//go:embed demo.yaml
var demoCorpusYAML []byte

// Demo returns the embedded demo corpus so the binary runs standalone
// without a corpus file.
func Demo() (*Source, error) {
	return Parse(demoCorpusYAML)
}
