package audio

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const openAISpeechURL = "https://api.openai.com/v1/audio/speech"

var ErrNotConfigured = errors.New("OpenAI API key is not configured")

type openAISpeechRequest struct {
	Model          string `json:"model"`
	Voice          string `json:"voice"`
	Input          string `json:"input"`
	Instructions   string `json:"instructions,omitempty"`
	ResponseFormat string `json:"response_format"`
}

type openAIErrorResponse struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// OpenAISpeech asks the OpenAI speech endpoint to perform the sound.
type OpenAISpeech struct {
	APIKey   string
	Model    string
	Voice    string
	Endpoint string
	Client   *http.Client
}

func NewOpenAISpeech(apiKey, model, voice string) *OpenAISpeech {
	return &OpenAISpeech{
		APIKey:   apiKey,
		Model:    model,
		Voice:    voice,
		Endpoint: openAISpeechURL,
		Client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (o *OpenAISpeech) Generate(ctx context.Context, req Request) (Clip, error) {
	apiKey := strings.TrimSpace(o.APIKey)
	if apiKey == "" {
		return Clip{}, ErrNotConfigured
	}
	payload, err := json.Marshal(openAISpeechRequest{
		Model:          o.Model,
		Voice:          o.Voice,
		Input:          req.Prompt(),
		Instructions:   "Speak playfully for a young child, imitating the sound.",
		ResponseFormat: "mp3",
	})
	if err != nil {
		return Clip{}, fmt.Errorf("failed to build OpenAI speech request")
	}

	reqCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	endpoint := o.Endpoint
	if endpoint == "" {
		endpoint = openAISpeechURL
	}
	httpReq, err := http.NewRequestWithContext(reqCtx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return Clip{}, fmt.Errorf("failed to build OpenAI speech request")
	}
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	client := o.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return Clip{}, fmt.Errorf("failed to reach OpenAI: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Clip{}, fmt.Errorf("failed to read OpenAI response")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var parsed openAIErrorResponse
		if json.Unmarshal(body, &parsed) == nil && parsed.Error != nil && parsed.Error.Message != "" {
			return Clip{}, fmt.Errorf("OpenAI error: %s", parsed.Error.Message)
		}
		return Clip{}, fmt.Errorf("OpenAI request failed (%d)", resp.StatusCode)
	}
	if len(body) == 0 {
		return Clip{}, errors.New("OpenAI returned an empty clip")
	}
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" || strings.HasPrefix(contentType, "application/json") {
		contentType = "audio/mpeg"
	}
	return Clip{ContentType: contentType, Data: body}, nil
}
