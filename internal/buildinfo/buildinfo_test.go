package buildinfo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	s := String()
	assert.Contains(t, s, "version: "+Version)
	assert.Contains(t, s, "commit: "+Commit)
	assert.Equal(t, 3, len(strings.Split(s, "\n")))
}

func TestTemplate(t *testing.T) {
	tmpl := Template()
	assert.True(t, strings.HasPrefix(tmpl, "{{.Name}} version "+Version))
	assert.True(t, strings.HasSuffix(tmpl, "\n"))
}
