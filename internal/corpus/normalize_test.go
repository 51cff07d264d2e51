package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"plain text", "plain text"},
		{"<p>Bone  loss in\nmice</p>", "Bone loss in mice"},
		{"  <b>Microgravity</b> effects <br/> observed ", "Microgravity effects observed"},
		{"tabs\tand\t\tnewlines\n\ncollapse", "tabs and newlines collapse"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Normalize(tc.in))
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"<div> spaced   out </div>",
		"already clean",
		"many\n\n\nlines <i>here</i>",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}
