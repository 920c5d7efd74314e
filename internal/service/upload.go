package service

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/primal100/pool-stats/internal/constants"
	"github.com/primal100/pool-stats/internal/logging"
)

// Uploader delivers export records to a configured webhook. Uploads are
// fire-and-forget relative to the scoring core: the record is an immutable
// copy captured under the session lock, so the worker can never touch live
// state.
type Uploader struct {
	url    string
	client *http.Client
}

// NewUploader returns an uploader for the given webhook URL, or nil when no
// URL is configured (callers treat a nil uploader as "export to caller
// only").
func NewUploader(url string) *Uploader {
	if url == "" {
		return nil
	}
	return &Uploader{
		url:    url,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

type uploadPayload struct {
	Code   string   `json:"code"`
	Line   string   `json:"line"`
	Values []string `json:"values"`
}

// UploadAsync posts the export record in a background goroutine. Failures
// are logged, never surfaced to the caller that triggered the export.
func (u *Uploader) UploadAsync(code string, rec ExportRecord) {
	if u == nil {
		return
	}
	go func() {
		body, err := json.Marshal(uploadPayload{
			Code:   code,
			Line:   rec.TabDelimited(),
			Values: rec.Values(),
		})
		if err != nil {
			logging.Error("failed to encode export payload", err, logging.Fields{constants.LogFieldMatchCode: code})
			return
		}
		resp, err := u.client.Post(u.url, constants.ContentTypeJSON, bytes.NewReader(body))
		if err != nil {
			logging.Error("export upload failed", err, logging.Fields{constants.LogFieldMatchCode: code, constants.LogFieldURL: u.url})
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode >= 300 {
			logging.Warn("export upload rejected", logging.Fields{constants.LogFieldMatchCode: code, constants.LogFieldURL: u.url, "status": resp.StatusCode})
			return
		}
		logging.Info("export uploaded", logging.Fields{constants.LogFieldMatchCode: code, constants.LogFieldURL: u.url})
	}()
}
