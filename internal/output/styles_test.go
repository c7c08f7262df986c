package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCheckmark(t *testing.T) {
	got := FormatCheckmark("done")
	assert.Contains(t, got, "✔")
	assert.Contains(t, got, "done")
}

func TestFormatCreated(t *testing.T) {
	assert.Equal(t, "Created 'report.txt'", FormatCreated("report.txt", false))

	styled := FormatCreated("report.txt", true)
	assert.Contains(t, styled, "✔")
	assert.Contains(t, styled, "report.txt")
}

func TestStyles_Foregrounds(t *testing.T) {
	assert.Equal(t, ColorCyan, StyleNoun.GetForeground())
	assert.Equal(t, ColorYellow, StyleDated.GetForeground())
	assert.True(t, StyleDim.GetFaint())
	assert.True(t, StyleHeading.GetBold())
}
