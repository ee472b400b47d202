// Package indenter renders nested, indented textual representations of
// analysis results and lattice elements.
package indenter

import (
	"strings"
)

type indenter struct {
	buffer string
	level  int
}

func Indenter() *indenter {
	return &indenter{}
}

func (i *indenter) indent() string {
	return strings.Repeat("  ", i.level)
}

// Start begins a nested representation with the given opening delimiter.
func (i *indenter) Start(str string) *indenter {
	i.buffer = str
	return i
}

// NestStrings nests the given lines one level deeper than the enclosing
// delimiters.
func (i *indenter) NestStrings(strs ...string) *indenter {
	return i.NestStringsSep("", strs...)
}

// NestStringsSep nests the given lines, appending `sep` to every line
// but the last.
func (i *indenter) NestStringsSep(sep string, strs ...string) *indenter {
	if len(strs) == 1 {
		i.buffer += strs[0]
		return i
	}

	i.level++
	for j, str := range strs {
		i.buffer += "\n" + i.indent() + str
		if j < len(strs)-1 {
			i.buffer += sep
		}
	}
	i.level--
	i.buffer += "\n"
	return i
}

// NestThunked nests lazily produced lines.
func (i *indenter) NestThunked(strs ...func() string) *indenter {
	produced := make([]string, 0, len(strs))
	for _, str := range strs {
		produced = append(produced, str())
	}
	return i.NestStringsSep("", produced...)
}

// End finishes the representation with the given closing delimiter.
func (i *indenter) End(str string) string {
	var res string
	if len(i.buffer) > 0 && i.buffer[len(i.buffer)-1] == '\n' {
		res = i.buffer + i.indent() + str
	} else {
		res = i.buffer + str
	}
	i.buffer = ""
	return res
}
