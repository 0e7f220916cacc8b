// Package audio produces the prompt sound for a round: a generated clip when a
// speech backend is configured, otherwise the bundled recording.
package audio

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrNoClip = errors.New("no clip for key")

type Request struct {
	// Key identifies the target, e.g. an animal id.
	Key         string
	Name        string
	Description string
}

// Prompt is the instruction sent to a speech backend.
func (r Request) Prompt() string {
	prompt := fmt.Sprintf("Make the sound of a %s.", r.Name)
	if desc := strings.TrimSpace(r.Description); desc != "" {
		prompt += " " + desc
	}
	return prompt
}

// Clip carries either inline audio or a URL the browser can fetch.
type Clip struct {
	ContentType string
	Data        []byte
	URL         string
	// Fallback is set when the clip came from a fallback source.
	Fallback bool
}

func (c Clip) Empty() bool {
	return len(c.Data) == 0 && c.URL == ""
}

type Source interface {
	Generate(ctx context.Context, req Request) (Clip, error)
}

// Static serves bundled clips by key.
type Static struct {
	urls map[string]string
}

func NewStatic(urls map[string]string) *Static {
	copied := make(map[string]string, len(urls))
	for key, url := range urls {
		copied[key] = url
	}
	return &Static{urls: copied}
}

func (s *Static) Generate(_ context.Context, req Request) (Clip, error) {
	url, ok := s.urls[req.Key]
	if !ok || url == "" {
		return Clip{}, fmt.Errorf("%w: %q", ErrNoClip, req.Key)
	}
	return Clip{URL: url}, nil
}
