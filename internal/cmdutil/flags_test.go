package cmdutil

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perrors "github.com/ChrisDavison/ptt/internal/errors"
	"github.com/ChrisDavison/ptt/internal/output"
)

func TestTemplateFlags_AddTo(t *testing.T) {
	var f TemplateFlags
	cmd := &cobra.Command{Use: "test"}
	f.AddTo(cmd)

	format := cmd.Flags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "f", format.Shorthand)
	assert.NotNil(t, cmd.Flags().Lookup("set"))

	force := cmd.Flags().Lookup("force")
	require.NotNil(t, force)
	assert.Equal(t, "true", force.DefValue)
}

func TestTemplateFlags_Parse(t *testing.T) {
	var f TemplateFlags
	cmd := &cobra.Command{Use: "test"}
	f.AddTo(cmd)

	require.NoError(t, cmd.ParseFlags([]string{
		"-f", "%Y%m%d",
		"--set", "who=world",
		"--set", "mood=a=b",
		"--force=false",
	}))

	assert.Equal(t, "%Y%m%d", f.DateFormat)
	assert.Equal(t, []string{"who=world", "mood=a=b"}, f.Set)
	assert.False(t, f.Force)
}

func TestOutputFlags_Parse(t *testing.T) {
	tests := []struct {
		input   string
		want    output.Format
		wantErr bool
	}{
		{"text", output.FormatText, false},
		{"table", output.FormatTable, false},
		{"json", output.FormatJSON, false},
		{"yml", output.FormatYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f := OutputFlags{Format: tt.input}
			got, err := f.Parse()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, perrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
