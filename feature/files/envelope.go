package files

import (
	"encoding/json"
	"fmt"
	"time"

	"file-agent/core/storage"
)

// Envelope is the uniform result of every file operation.
//
// It serializes flat: {"success": true, <payload fields>} on success and
// {"success": false, "error": "..."} on failure. Data must marshal to a JSON
// object and is dropped on failure.
type Envelope struct {
	Success bool
	Data    any
	Error   string

	kind string
}

// Kind returns the error kind of a failed envelope produced by a Service, or
// "" when unknown.
func (e Envelope) Kind() string {
	return e.kind
}

// Succeed wraps a payload in a successful envelope.
func Succeed(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// Fail builds a failed envelope carrying msg.
func Fail(msg string) Envelope {
	if msg == "" {
		msg = "unknown error"
	}
	return Envelope{Error: msg}
}

// MarshalJSON flattens Data into the envelope object.
func (e Envelope) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage)

	if e.Success && e.Data != nil {
		raw, err := json.Marshal(e.Data)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, fmt.Errorf("envelope payload %T is not a JSON object: %w", e.Data, err)
		}
	}

	fields["success"] = json.RawMessage("false")
	if e.Success {
		fields["success"] = json.RawMessage("true")
	} else {
		msg, err := json.Marshal(e.Error)
		if err != nil {
			return nil, err
		}
		fields["error"] = msg
	}

	return json.Marshal(fields)
}

// ReadFileData is the payload of a successful ReadFile.
type ReadFileData struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
	Size     int64  `json:"size"`
}

// WriteFileData is the payload of a successful WriteFile.
type WriteFileData struct {
	Filename    string `json:"filename"`
	Size        int64  `json:"size"`
	Key         string `json:"key"`
	Bucket      string `json:"bucket"`
	ETag        string `json:"etag"`
	ContentType string `json:"content_type"`
}

// ListFilesData is the payload of a successful ListFiles.
type ListFilesData struct {
	Files []string `json:"files"`
	Count int      `json:"count"`
}

// FileDetail is one entry of a detailed listing. Size and LastModified are
// absent when the object could not be stat'ed.
type FileDetail struct {
	Name         string     `json:"name"`
	Size         *int64     `json:"size,omitempty"`
	LastModified *time.Time `json:"last_modified,omitempty"`
}

// FileDetailsData is the payload of a successful ListFileDetails.
type FileDetailsData struct {
	Files []FileDetail `json:"files"`
	Count int          `json:"count"`
}

// DeleteFileData is the payload of a successful DeleteFile.
type DeleteFileData struct {
	Filename string `json:"filename"`
	Message  string `json:"message"`
}

// StatFileData is the payload of a successful StatFile.
type StatFileData struct {
	storage.ObjectMeta
}

// ShareFileData is the payload of a successful ShareFile.
type ShareFileData struct {
	Filename  string `json:"filename"`
	URL       string `json:"url"`
	ExpiresIn int64  `json:"expires_in"`
}
