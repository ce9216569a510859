package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalName(t *testing.T) {
	cases := []struct {
		local    string
		english  string
		expected string
	}{
		{"美国", "United States of America", "United States"},
		{"德国", "Germany", "Germany"},
		{"阿联酋", "", "United Arab Emirates"},
		{"阿联酋", "United Arab Emirates of Somewhere", "United Arab Emirates"},
		{"钻石公主号邮轮", "Diamond Princess Cruise Ship", "Diamond Princess Cruise"},
		{"", "USA", "United States"},
		{"", "  Japan ", "Japan"},
		{"", "", ""},
		{"其他", "", ""},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, DefaultNormalizer.CanonicalName(c.local, c.english), "wrong name for %q/%q", c.local, c.english)
	}
}

func TestNormalizerExtraAliases(t *testing.T) {
	n := NewNormalizer(map[string]string{
		"Viet Nam": "Vietnam",
		"USA":      "America",
	})

	assert.Equal(t, "Vietnam", n.CanonicalName("", "Viet Nam"))
	assert.Equal(t, "America", n.CanonicalName("", "USA"), "extra alias should win")
	assert.Equal(t, "United States", n.CanonicalName("", "United States of America"))

	assert.Equal(t, "United States", DefaultNormalizer.CanonicalName("", "USA"), "default table changed")
}
