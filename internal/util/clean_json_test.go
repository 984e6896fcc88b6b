package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSON(t *testing.T) {
	cases := map[string]string{
		"```json\n{\"a\":1}\n```":          `{"a":1}`,
		"```\n{\"a\":1}```":                `{"a":1}`,
		`  {"a":1}  `:                      `{"a":1}`,
		"Here you go:\n{\"a\":{\"b\":2}}.": `{"a":{"b":2}}`,
		"{\"a\":1}\nHope this helps!":      `{"a":1}`,
		"no json here":                     "no json here",
	}
	for in, want := range cases {
		assert.Equal(t, want, CleanJSON(in), "input %q", in)
	}
}
