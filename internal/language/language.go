// Package language knows which syntax highlighting identifiers pastery.net
// accepts and how to pick one from a file name.
package language

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v2"
)

// Autodetect asks the service to choose the language itself.
const Autodetect = "autodetect"

// Language is one entry of the embedded language table.
type Language struct {
	Name       string   `yaml:"name"`
	Title      string   `yaml:"title"`
	Extensions []string `yaml:"extensions"`
}

//go:embed languages.yml
var languagesYAML []byte

var (
	languages []*Language
	byName    map[string]*Language
	byExt     map[string]*Language
)

func init() {
	if err := load(languagesYAML); err != nil {
		panic(err)
	}
}

func load(data []byte) error {
	var list []*Language
	if err := yaml.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("parsing language table: %w", err)
	}

	names := make(map[string]*Language, len(list))
	exts := make(map[string]*Language)
	for _, l := range list {
		if l.Name == "" || l.Name == Autodetect {
			return fmt.Errorf("language table: invalid name %q", l.Name)
		}
		if _, dup := names[l.Name]; dup {
			return fmt.Errorf("language table: duplicate name %q", l.Name)
		}
		names[l.Name] = l
		for _, ext := range l.Extensions {
			if prev, dup := exts[ext]; dup {
				return fmt.Errorf("language table: extension %q claimed by %q and %q", ext, prev.Name, l.Name)
			}
			exts[ext] = l
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })

	languages, byName, byExt = list, names, exts
	return nil
}

// Known returns every language in the table, sorted by name.
func Known() []*Language {
	return languages
}

// Names returns the identifiers of every known language, sorted.
func Names() []string {
	names := make([]string, len(languages))
	for i, l := range languages {
		names[i] = l.Name
	}
	return names
}

// Named returns the language with the given identifier, or nil.
func Named(name string) *Language {
	return byName[name]
}

// Guess picks a language from the extension of path's file name. The
// extension is matched exactly against the table. ok is false when the file
// has no extension or the extension is unknown.
func Guess(path string) (name string, ok bool) {
	ext := strings.TrimPrefix(filepath.Ext(filepath.Base(path)), ".")
	if ext == "" {
		return "", false
	}
	l, ok := byExt[ext]
	if !ok {
		return "", false
	}
	return l.Name, true
}

// UnknownError is returned by Validate for a token that is neither a known
// language nor Autodetect.
type UnknownError struct {
	Token       string
	Suggestions []string
}

func (e *UnknownError) Error() string {
	if len(e.Suggestions) > 0 {
		return fmt.Sprintf("Unknown language `%s'; did you mean %s?", e.Token, quoteList(e.Suggestions, "or"))
	}
	return fmt.Sprintf("Unknown language `%s'; expected `%s' or one of %s", e.Token, Autodetect, strings.Join(Names(), ", "))
}

// Validate returns token unchanged if the service will accept it.
func Validate(token string) (string, error) {
	if token == Autodetect {
		return token, nil
	}
	if _, ok := byName[token]; ok {
		return token, nil
	}
	return "", &UnknownError{Token: token, Suggestions: suggest(token)}
}

// suggest returns known names within a small edit distance of token, or that
// token is a prefix of.
func suggest(token string) []string {
	if token == "" {
		return nil
	}
	lower := strings.ToLower(token)
	var out []string
	for _, l := range languages {
		if strings.HasPrefix(l.Name, lower) || distance(lower, l.Name) <= 2 {
			out = append(out, l.Name)
		}
	}
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

// distance is the Levenshtein distance between a and b.
func distance(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func quoteList(items []string, conj string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "`" + s + "'"
	}
	if len(quoted) == 1 {
		return quoted[0]
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " " + conj + " " + quoted[len(quoted)-1]
}
