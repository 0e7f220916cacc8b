package audio

import (
	"context"
	"log"
)

type fallbackSource struct {
	primary  Source
	fallback Source
}

// WithFallback tries primary and answers from fallback when it fails or
// returns nothing. Only the fallback's error is returned.
func WithFallback(primary, fallback Source) Source {
	if primary == nil {
		return fallback
	}
	return &fallbackSource{primary: primary, fallback: fallback}
}

func (f *fallbackSource) Generate(ctx context.Context, req Request) (Clip, error) {
	clip, err := f.primary.Generate(ctx, req)
	if err == nil && !clip.Empty() {
		return clip, nil
	}
	if err != nil {
		log.Printf("sound fallback key=%s error=%v", req.Key, err)
	} else {
		log.Printf("sound fallback key=%s error=empty clip", req.Key)
	}
	clip, err = f.fallback.Generate(ctx, req)
	if err != nil {
		return Clip{}, err
	}
	clip.Fallback = true
	return clip, nil
}
