package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText_NormalizesLineEndings(t *testing.T) {
	assert.Equal(t, "a\nb\nc", CleanText("a\r\nb\rc"))
}

func TestCleanText_CollapsesInteriorSpaces(t *testing.T) {
	// pdftotext layout mode pads columns with runs of spaces
	assert.Equal(t, "Jane Doe\nSenior Engineer", CleanText("Jane    Doe\t\nSenior\t\tEngineer"))
}

func TestCleanText_PreservesIndentation(t *testing.T) {
	assert.Equal(t, "Skills:\n  - Go\n  - Python", CleanText("Skills:\n  -   Go\n  -  Python"))
}

func TestCleanText_ReducesBlankRuns(t *testing.T) {
	assert.Equal(t, "a\n\nb", CleanText("a\n\n\n\n\nb"))
}

func TestCleanText_TrimsSurroundingWhitespace(t *testing.T) {
	assert.Equal(t, "resume body", CleanText("\n\n  resume body  \n\n"))
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n\t\n  "))
}
