package templates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perrors "github.com/ChrisDavison/ptt/internal/errors"
)

var newYear = time.Date(2024, time.January, 1, 9, 30, 0, 0, time.UTC)

func TestOutputName(t *testing.T) {
	dated := Template{Name: "log", Path: "/t/DATE-log.txt", Dated: true}
	plain := Template{Name: "note", Path: "/t/note.txt"}

	tests := []struct {
		name      string
		tpl       Template
		fragments []string
		format    string
		want      string
	}{
		{
			name:   "dated without fragments uses template name",
			tpl:    dated,
			format: "%Y%m%d",
			want:   "20240101-log.txt",
		},
		{
			name:      "dated with fragments",
			tpl:       dated,
			fragments: []string{"a", "b"},
			format:    "%Y%m%d",
			want:      "20240101-a-b.txt",
		},
		{
			name:   "dated with default format",
			tpl:    dated,
			format: "",
			want:   "2024-01-01-log.txt",
		},
		{
			name:      "undated with single fragment",
			tpl:       plain,
			fragments: []string{"report"},
			want:      "report.txt",
		},
		{
			name:      "undated with several fragments",
			tpl:       plain,
			fragments: []string{"weekly", "report", "v2"},
			want:      "weekly-report-v2.txt",
		},
		{
			name:      "extension always appended",
			tpl:       plain,
			fragments: []string{"notes.txt"},
			want:      "notes.txt.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OutputName(tt.tpl, tt.fragments, tt.format, newYear)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOutputName_UndatedWithoutFragments(t *testing.T) {
	for _, fragments := range [][]string{nil, {}, {""}} {
		_, err := OutputName(Template{Name: "note"}, fragments, "", newYear)
		require.Error(t, err)
		assert.ErrorIs(t, err, perrors.ErrMissingOutputName)

		var missing *perrors.MissingOutputNameError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "note", missing.Name)
	}
}

func TestOutputName_InvalidDateFormat(t *testing.T) {
	_, err := OutputName(Template{Name: "log", Dated: true}, nil, "%Q", newYear)
	require.Error(t, err)
	assert.ErrorIs(t, err, perrors.ErrValidation)
}

func TestFormatDate(t *testing.T) {
	got, err := FormatDate("%d.%m.%Y", newYear)
	require.NoError(t, err)
	assert.Equal(t, "01.01.2024", got)
}
