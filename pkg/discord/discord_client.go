package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"harvestladder/internal/logger"
)

type Client struct {
	HttpClient *http.Client
	WebhookURL string
}

type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
}

type Message struct {
	Content string  `json:"content,omitempty"`
	Embeds  []Embed `json:"embeds,omitempty"`
}

func (c Client) SendMessage(msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal discord message: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.WebhookURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	response, err := c.HttpClient.Do(req)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode == 429 {
		logger.Debug("hit discord rate limit. sleeping...")
		time.Sleep(5 * time.Second)
		return c.SendMessage(msg)
	} else if response.StatusCode >= 300 {
		responseBytes, err := io.ReadAll(response.Body)
		if err != nil {
			return fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
		}
		return fmt.Errorf("discord webhook returned status code %d: %s", response.StatusCode, string(responseBytes))
	}

	return nil
}
