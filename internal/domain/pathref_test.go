package domain_test

import (
	"testing"

	"github.com/openkraft/skillkraft/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestIsPathLike(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"references/api_guide.md", true},
		{"./scripts/run.sh", true},
		{`assets\logo.png`, true},
		{"references/schemas", true},
		{"/etc/hosts.conf", true},
		{"README.md", false},
		{"go test ./...", false},
		{"https://example.com/a.md", false},
		{"foo/bar", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.IsPathLike(tt.in), tt.in)
	}
}

func TestIsAbsoluteRef(t *testing.T) {
	assert.True(t, domain.IsAbsoluteRef("/home/me/notes.md"))
	assert.True(t, domain.IsAbsoluteRef(`C:\skills\notes.md`))
	assert.True(t, domain.IsAbsoluteRef("~/notes.md"))
	assert.False(t, domain.IsAbsoluteRef("references/notes.md"))
	assert.False(t, domain.IsAbsoluteRef("./notes.md"))
}

func TestIsAbsoluteSpan(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"/etc/passwd", true},
		{"/Users/me/skills/foo", true},
		{`C:\tools\bin`, true},
		{"~/skills", true},
		{`\\server\share`, true},
		{"/commit", false},
		{"/", false},
		{"references/foo", false},
		{"/etc/some file", false},
		{"file:///etc/passwd", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.IsAbsoluteSpan(tt.in), tt.in)
	}
}

func TestIsExternalLink(t *testing.T) {
	assert.True(t, domain.IsExternalLink("https://example.com"))
	assert.True(t, domain.IsExternalLink("mailto:a@b.c"))
	assert.True(t, domain.IsExternalLink("#usage"))
	assert.True(t, domain.IsExternalLink(""))
	assert.False(t, domain.IsExternalLink("references/a.md"))
	assert.False(t, domain.IsExternalLink(`C:\a.md`))
}

func TestNormalizeRef(t *testing.T) {
	assert.Equal(t, "references/a.md", domain.NormalizeRef("./references/a.md"))
	assert.Equal(t, "references/a.md", domain.NormalizeRef(`references\a.md`))
	assert.Equal(t, "references/a.md", domain.NormalizeRef("references/a.md#setup"))
	assert.Equal(t, "assets/x.png", domain.NormalizeRef("references/../assets/x.png"))
}
