package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/schollz/progressbar/v3"

	"github.com/frogworks/frogworks/internal/models"
)

// DownloadApplicationVersion streams a released build to destDir and returns
// the path of the downloaded file. When showProgress is set, a progress bar
// is rendered on stderr.
func (c *Client) DownloadApplicationVersion(ctx context.Context, version *models.ApplicationVersion, destDir string, showProgress bool) (string, error) {
	form := url.Values{}
	form.Set("version_id", strconv.Itoa(version.ID))
	if c.sessionID != "" {
		form.Set("session_id", c.sessionID)
	}

	endpoint := fmt.Sprintf("%s/api/application/download?%s", c.baseURL, form.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("download version %d: %w", version.ID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", newStatusError(resp.StatusCode, extractErrorMessage(body))
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("create destination directory: %w", err)
	}

	destPath := filepath.Join(destDir, filepath.Base(version.Filename))
	out, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", destPath, err)
	}
	defer out.Close()

	var writer io.Writer = out
	if showProgress {
		bar := progressbar.DefaultBytes(
			resp.ContentLength,
			fmt.Sprintf("downloading %s %s", version.Name, version.Platform),
		)
		writer = io.MultiWriter(out, bar)
	}

	if _, err := io.Copy(writer, resp.Body); err != nil {
		os.Remove(destPath)
		return "", fmt.Errorf("write %s: %w", destPath, err)
	}

	return destPath, nil
}
