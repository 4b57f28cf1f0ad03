package entity

import "time"

// Sender distinguishes the two sides of the transcript.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is one entry of a chat transcript. Transcripts are append-only
// within a session and ephemeral: they live in memory for the page lifetime
// and are never persisted.
type Message struct {
	Role        Sender    `json:"role"`
	Text        string    `json:"text"`
	Timestamp   time.Time `json:"timestamp"`
	DownloadURL string    `json:"download_url,omitempty"`
}
