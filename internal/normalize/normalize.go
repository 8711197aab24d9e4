// Package normalize canonicalizes technology and skill names into comparable
// keys. Two entries name the same technology iff their keys are equal.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
)

// DefaultSynonyms maps common name variants to their canonical key. Keys and
// values are already folded; lookups happen after folding.
var DefaultSynonyms = map[string]string{
	"golang":                "go",
	"go lang":               "go",
	"js":                    "javascript",
	"ts":                    "typescript",
	"k8s":                   "kubernetes",
	"postgres":              "postgresql",
	"postgre":               "postgresql",
	"mongo":                 "mongodb",
	"es":                    "elasticsearch",
	"react.js":              "react",
	"reactjs":               "react",
	"vue.js":                "vue",
	"vuejs":                 "vue",
	"nodejs":                "node.js",
	"node":                  "node.js",
	"dotnet":                ".net",
	"c sharp":               "c#",
	"csharp":                "c#",
	"amazon web services":   "aws",
	"google cloud":          "gcp",
	"google cloud platform": "gcp",
	"microsoft azure":       "azure",
	"ci cd":                 "ci/cd",
	"tf":                    "terraform",
}

// Keyer produces canonical comparison keys from raw names. A zero synonym
// table still folds and collapses; construction never touches the network.
type Keyer struct {
	synonyms map[string]string
	folder   cases.Caser
}

// NewKeyer builds a Keyer over the given synonym table. Nil falls back to
// DefaultSynonyms; pass an empty map to disable synonyms entirely.
func NewKeyer(synonyms map[string]string) *Keyer {
	if synonyms == nil {
		synonyms = DefaultSynonyms
	}
	folded := make(map[string]string, len(synonyms))
	folder := cases.Fold()
	for variant, canonical := range synonyms {
		folded[fold(folder, variant)] = fold(folder, canonical)
	}
	return &Keyer{synonyms: folded, folder: folder}
}

// Key returns the canonical comparison key for a raw name: case-folded,
// whitespace-collapsed, and mapped through the synonym table. Unknown names
// pass through folded; unparseable input degrades to a trimmed lower-cased
// string and never fails.
func (k *Keyer) Key(name string) string {
	key := fold(k.folder, name)
	if canonical, ok := k.synonyms[key]; ok {
		return canonical
	}
	return key
}

func fold(folder cases.Caser, s string) string {
	collapsed := strings.Join(strings.Fields(strings.TrimSpace(s)), " ")
	return folder.String(collapsed)
}
