package templates

import (
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"

	perrors "github.com/ChrisDavison/ptt/internal/errors"
)

// JoinFragments joins filename fragments with "-". An empty result means no
// filename was given.
func JoinFragments(fragments []string) string {
	return strings.Join(fragments, "-")
}

// FormatDate renders t with a strftime pattern such as "%Y-%m-%d".
// An empty pattern uses DefaultDateFormat.
func FormatDate(pattern string, t time.Time) (string, error) {
	if pattern == "" {
		pattern = DefaultDateFormat
	}
	s, err := strftime.Format(pattern, t)
	if err != nil {
		return "", &perrors.InvalidDateFormatError{Format: pattern, Err: err}
	}
	return s, nil
}

// OutputName computes the file name an invocation of tpl writes to:
//
//   - dated: "<date>-<fragments or template name>.txt"
//   - undated with fragments: "<fragments>.txt"
//   - undated without fragments: *errors.MissingOutputNameError
//
// The .txt extension is always appended.
func OutputName(tpl Template, fragments []string, dateFormat string, now time.Time) (string, error) {
	base := JoinFragments(fragments)

	if tpl.Dated {
		date, err := FormatDate(dateFormat, now)
		if err != nil {
			return "", err
		}
		if base == "" {
			base = tpl.Name
		}
		return date + "-" + base + Ext, nil
	}

	if base == "" {
		return "", &perrors.MissingOutputNameError{Name: tpl.Name}
	}
	return base + Ext, nil
}
