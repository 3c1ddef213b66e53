package preprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeTypst_Hash(t *testing.T) {
	assert.Equal(t, `C\# developer`, EscapeTypst("C# developer"))
}

func TestEscapeTypst_Backslash(t *testing.T) {
	assert.Equal(t, `a\\b`, EscapeTypst(`a\b`))
}

func TestEscapeTypst_KeepsMarkdownControls(t *testing.T) {
	assert.Equal(t, "**bold** [text](url)", EscapeTypst("**bold** [text](url)"))
}

func TestMarkdownToTypst_Bold(t *testing.T) {
	assert.Equal(t, "#strong[bold] text", MarkdownToTypst("**bold** text"))
}

func TestMarkdownToTypst_Italic(t *testing.T) {
	assert.Equal(t, "#emph[it] text", MarkdownToTypst("*it* text"))
}

func TestMarkdownToTypst_BoldItalic(t *testing.T) {
	assert.Equal(t, "#strong[#emph[x]]", MarkdownToTypst("***x***"))
}

func TestMarkdownToTypst_Link(t *testing.T) {
	assert.Equal(t, `#link("https://example.com")[site]`, MarkdownToTypst("[site](https://example.com)"))
}

func TestMarkdownToTypst_EscapedAsteriskSurvives(t *testing.T) {
	assert.Equal(t, `2 \* 3`, MarkdownToTypst(`2 \* 3`))
}

func TestMakeKeywordsBold_WholeWord(t *testing.T) {
	got := MakeKeywordsBold("Expert in Go and Golang tooling", []string{"Go"})
	assert.Equal(t, "Expert in **Go** and Golang tooling", got)
}

func TestMakeKeywordsBold_CaseInsensitive(t *testing.T) {
	got := MakeKeywordsBold("python and Python", []string{"Python"})
	assert.Equal(t, "**python** and **Python**", got)
}

func TestMakeKeywordsBold_AlreadyBold(t *testing.T) {
	got := MakeKeywordsBold("**Go** expert", []string{"Go"})
	assert.Equal(t, "**Go** expert", got)
}
