// Package downloader fetches TFLite models and their label and metadata
// files from the HuggingFace Hub.
package downloader

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Default endpoints. HUGGINGFACE_API_URL and HUGGINGFACE_CDN_URL override
// them when a source is created.
const (
	DefaultAPIURL = "https://huggingface.co/api/models/"
	DefaultCDNURL = "https://huggingface.co/"
)

// ModelSource defines the interface for a model source, such as HuggingFace.
type ModelSource interface {
	// DownloadModel downloads the specified model and its associated files
	// to the given destination.
	DownloadModel(ctx context.Context, modelID string, destination string) (*DownloadResult, error)
}

// DownloadResult contains the paths to the downloaded model and the
// auxiliary files (labels, metadata) shipped next to it.
type DownloadResult struct {
	ModelPath  string
	AssetPaths []string
}

// Downloader handles the overall download process using a ModelSource.
type Downloader struct {
	source ModelSource
}

// NewDownloader creates a new Downloader with the given ModelSource.
func NewDownloader(source ModelSource) *Downloader {
	return &Downloader{source: source}
}

// Download fetches modelID into destination.
func (d *Downloader) Download(ctx context.Context, modelID string, destination string) (*DownloadResult, error) {
	return d.source.DownloadModel(ctx, modelID, destination)
}

// HuggingFaceSource implements ModelSource for the HuggingFace Hub.
type HuggingFaceSource struct {
	client *http.Client
	apiKey string
	apiURL string
	cdnURL string
	log    logrus.FieldLogger
}

// NewHuggingFaceSource creates a source authenticating with apiKey. An
// empty key downloads anonymously.
func NewHuggingFaceSource(apiKey string) *HuggingFaceSource {
	h := &HuggingFaceSource{
		client: &http.Client{},
		apiKey: apiKey,
		apiURL: DefaultAPIURL,
		cdnURL: DefaultCDNURL,
		log:    logrus.StandardLogger(),
	}
	if u := os.Getenv("HUGGINGFACE_API_URL"); u != "" {
		h.apiURL = u
	}
	if u := os.Getenv("HUGGINGFACE_CDN_URL"); u != "" {
		h.cdnURL = u
	}
	return h
}

// SetLogger replaces the logger download progress is reported to.
func (h *HuggingFaceSource) SetLogger(l logrus.FieldLogger) {
	if l != nil {
		h.log = l
	}
}

// HuggingFaceModelInfo is the part of the HuggingFace API model response
// the downloader uses.
type HuggingFaceModelInfo struct {
	ModelID  string `json:"modelId"`
	Siblings []struct {
		RPath string `json:"rfilename"`
	} `json:"siblings"`
}

func (h *HuggingFaceSource) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if h.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+h.apiKey)
	}
	return h.client.Do(req)
}

// DownloadModel downloads the first .tflite file of the repository and
// every label or metadata file (.txt, .json) next to it.
func (h *HuggingFaceSource) DownloadModel(ctx context.Context, modelID string, destination string) (result *DownloadResult, err error) {
	apiURL := h.apiURL + modelID

	resp, err := h.get(ctx, apiURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch model info from HuggingFace API")
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil && err == nil {
			result, err = nil, errors.Wrapf(cerr, "failed to close response body for %s", apiURL)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("HuggingFace API returned non-OK status: %s", resp.Status)
	}

	var info HuggingFaceModelInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, errors.Wrap(err, "failed to decode HuggingFace API response")
	}

	result = &DownloadResult{}
	for _, sibling := range info.Siblings {
		rPath := sibling.RPath
		local := filepath.Join(destination, filepath.Base(rPath))
		switch {
		case strings.HasSuffix(rPath, ".tflite"):
			if result.ModelPath != "" {
				h.log.WithField("file", rPath).Debug("skipping additional TFLite model")
				continue
			}
			if err := h.downloadFile(ctx, h.fileURL(modelID, rPath), local); err != nil {
				return nil, errors.Wrapf(err, "failed to download TFLite model %s", rPath)
			}
			result.ModelPath = local
		case strings.HasSuffix(rPath, ".txt") || strings.HasSuffix(rPath, ".json"):
			if err := h.downloadFile(ctx, h.fileURL(modelID, rPath), local); err != nil {
				return nil, errors.Wrapf(err, "failed to download asset %s", rPath)
			}
			result.AssetPaths = append(result.AssetPaths, local)
		}
	}

	if result.ModelPath == "" {
		return nil, errors.Errorf("no TFLite model found for model ID: %s", modelID)
	}
	h.log.WithFields(logrus.Fields{
		"model":  modelID,
		"path":   result.ModelPath,
		"assets": len(result.AssetPaths),
	}).Info("model downloaded")
	return result, nil
}

func (h *HuggingFaceSource) fileURL(modelID, rPath string) string {
	return strings.TrimSuffix(h.cdnURL, "/") + "/" + modelID + "/resolve/main/" + rPath
}

// downloadFile downloads a single file from a URL to a local path. A
// partially written file is removed.
func (h *HuggingFaceSource) downloadFile(ctx context.Context, url, filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", dir)
	}

	resp, err := h.get(ctx, url)
	if err != nil {
		return errors.Wrapf(err, "failed to download file from %s", url)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			h.log.WithError(cerr).WithField("url", url).Warn("error closing response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("failed to download file from %s: status code %s", url, resp.Status)
	}

	out, err := os.Create(filePath)
	if err != nil {
		return errors.Wrapf(err, "failed to create file %s", filePath)
	}
	if _, err := copyFile(resp.Body, out); err != nil {
		_ = out.Close()
		_ = os.Remove(filePath)
		return errors.Wrapf(err, "failed to write file %s", filePath)
	}
	if err := out.Close(); err != nil {
		return errors.Wrapf(err, "failed to close file %s", filePath)
	}
	return nil
}

// copyFile copies content from a source reader to a destination writer.
func copyFile(src io.Reader, dst io.Writer) (int64, error) {
	return io.Copy(dst, src)
}
