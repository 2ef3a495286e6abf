package github

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepoNameFor(t *testing.T) {
	name := repoNameFor("A Coffee Shop! With Online Ordering and more")
	assert.True(t, strings.HasPrefix(name, "ai-website-a-coffee-shop-with-"), name)

	// Suffix is 8 hex chars.
	parts := strings.Split(name, "-")
	assert.Len(t, parts[len(parts)-1], 8)

	// Two calls never collide.
	assert.NotEqual(t, repoNameFor("same text"), repoNameFor("same text"))

	// Degenerate descriptions still produce a usable slug.
	assert.True(t, strings.HasPrefix(repoNameFor("!!! ???"), "ai-website-site-"))
}
