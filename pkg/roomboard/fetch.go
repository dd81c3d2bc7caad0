package roomboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// TempFile is a downloaded payload held on disk for the duration of a run.
type TempFile struct {
	Path string
	Size int64
}

// Remove deletes the file if it is still there.
func (t *TempFile) Remove() error {
	if t == nil || t.Path == "" {
		return nil
	}
	if err := os.Remove(t.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Fetcher downloads the source workbook.
type Fetcher struct {
	httpClient *http.Client
}

// NewFetcher creates a Fetcher whose requests time out after timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Download GETs url into a new temporary file. The caller owns the file
// and must Remove it. Any failure is returned as a *FetchError and leaves
// no file behind.
func (f *Fetcher) Download(ctx context.Context, url string) (*TempFile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, NewFetchError(url, 0, fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("User-Agent", "roomboard-go")
	req.Header.Set("Accept", "*/*")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, NewFetchError(url, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, NewFetchError(url, resp.StatusCode, fmt.Errorf("body: %q", body))
	}

	out, err := os.CreateTemp("", "roomboard-*.xlsx")
	if err != nil {
		return nil, NewFetchError(url, 0, fmt.Errorf("creating temp file: %w", err))
	}
	tmp := &TempFile{Path: out.Name()}

	n, err := io.Copy(out, resp.Body)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		tmp.Remove()
		return nil, NewFetchError(url, 0, fmt.Errorf("reading body: %w", err))
	}
	tmp.Size = n
	return tmp, nil
}
