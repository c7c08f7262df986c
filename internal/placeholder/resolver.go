package placeholder

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	perrors "github.com/ChrisDavison/ptt/internal/errors"
	"github.com/ChrisDavison/ptt/internal/output"
)

// PromptSeparator follows the key in every interactive prompt.
const PromptSeparator = "⇒"

// Resolver supplies a value for every key of a Map.
// Implementations return a new Map with the same keys in the same order.
type Resolver interface {
	Resolve(ctx context.Context, keys *Map) (*Map, error)
}

// Prompter resolves values interactively: one prompt per key, one line of
// input per answer.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter that writes prompts to out and reads
// answers from in.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Prompt writes "<key> ⇒ " and blocks for one line of input. The returned
// value has surrounding whitespace trimmed. A final line without a trailing
// newline is accepted; an input that ends before any byte is read is an
// InputClosedError.
func (p *Prompter) Prompt(key string) (string, error) {
	if _, err := fmt.Fprintf(p.out, "%s %s ", key, PromptSeparator); err != nil {
		return "", &perrors.InputClosedError{Key: key, Err: err}
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", &perrors.InputClosedError{Key: key, Err: err}
	}
	return strings.TrimSpace(line), nil
}

// Resolve prompts for each key in order.
func (p *Prompter) Resolve(ctx context.Context, keys *Map) (*Map, error) {
	out := NewMap()
	for _, k := range keys.Keys() {
		if err := ctx.Err(); err != nil {
			return nil, &perrors.InputClosedError{Key: k, Err: err}
		}
		v, err := p.promptContext(ctx, k)
		if err != nil {
			return nil, err
		}
		output.Debug("placeholder resolved", "key", k, "source", "prompt")
		out.Set(k, v)
	}
	return out, nil
}

// promptContext is Prompt with cancellation. A cancelled read leaves its
// goroutine blocked on the reader until the process exits.
func (p *Prompter) promptContext(ctx context.Context, key string) (string, error) {
	type answer struct {
		value string
		err   error
	}
	ch := make(chan answer, 1)
	go func() {
		v, err := p.Prompt(key)
		ch <- answer{v, err}
	}()

	select {
	case <-ctx.Done():
		return "", &perrors.InputClosedError{Key: key, Err: ctx.Err()}
	case a := <-ch:
		return a.value, a.err
	}
}

// MapResolver resolves values from a fixed set, for non-interactive use.
type MapResolver struct {
	values map[string]string
}

// NewMapResolver creates a MapResolver over values.
func NewMapResolver(values map[string]string) *MapResolver {
	return &MapResolver{values: values}
}

// Resolve looks every key up; a missing key is an UnresolvedError.
func (r *MapResolver) Resolve(_ context.Context, keys *Map) (*Map, error) {
	out := NewMap()
	for _, k := range keys.Keys() {
		v, ok := r.values[k]
		if !ok {
			return nil, &perrors.UnresolvedError{Key: k}
		}
		output.Debug("placeholder resolved", "key", k, "source", "preset")
		out.Set(k, v)
	}
	return out, nil
}

// Lookup returns the preset value for key.
func (r *MapResolver) Lookup(key string) (string, bool) {
	v, ok := r.values[key]
	return v, ok
}

// ChainResolver fills keys from preset values first and asks fallback for
// the rest, keeping the original key order.
type ChainResolver struct {
	preset   *MapResolver
	fallback Resolver
}

// NewChainResolver creates a ChainResolver. A nil or empty preset makes it
// behave exactly like fallback.
func NewChainResolver(preset map[string]string, fallback Resolver) *ChainResolver {
	return &ChainResolver{preset: NewMapResolver(preset), fallback: fallback}
}

// Resolve implements Resolver.
func (c *ChainResolver) Resolve(ctx context.Context, keys *Map) (*Map, error) {
	missing := NewMap()
	for _, k := range keys.Keys() {
		if _, ok := c.preset.Lookup(k); !ok {
			missing.Set(k, "")
		}
	}

	var asked *Map
	if missing.Len() > 0 {
		var err error
		asked, err = c.fallback.Resolve(ctx, missing)
		if err != nil {
			return nil, err
		}
	}

	out := NewMap()
	for _, k := range keys.Keys() {
		if v, ok := c.preset.Lookup(k); ok {
			out.Set(k, v)
			continue
		}
		v, _ := asked.Get(k)
		out.Set(k, v)
	}
	return out, nil
}

// ParseAssignments parses "key=value" pairs as given to --set. Keys must be
// valid placeholder names.
func ParseAssignments(pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, perrors.Wrap(perrors.ErrValidation, fmt.Sprintf("invalid assignment %q, expected key=value", pair))
		}
		if !IsName(key) {
			return nil, perrors.Wrap(perrors.ErrValidation, fmt.Sprintf("invalid placeholder name %q, letters only", key))
		}
		values[key] = value
	}
	return values, nil
}

// IsName reports whether s is a valid placeholder name.
func IsName(s string) bool {
	return namePattern.MatchString(s)
}
