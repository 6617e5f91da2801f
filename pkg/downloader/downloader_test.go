package downloader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
)

// MockModelSource is a mock implementation of the ModelSource interface for testing.
type MockModelSource struct {
	mockDownloadModel func(modelID string, destination string) (*DownloadResult, error)
}

func (m *MockModelSource) DownloadModel(_ context.Context, modelID string, destination string) (*DownloadResult, error) {
	if m.mockDownloadModel != nil {
		return m.mockDownloadModel(modelID, destination)
	}
	return nil, errors.New("DownloadModel not implemented for mock")
}

func TestNewDownloader(t *testing.T) {
	mockSource := &MockModelSource{}
	d := NewDownloader(mockSource)

	if d == nil {
		t.Fatal("NewDownloader returned nil")
	}
	if d.source != mockSource {
		t.Errorf("NewDownloader did not set the correct ModelSource")
	}
}

func TestDownloader_Download(t *testing.T) {
	tests := []struct {
		name          string
		mockResult    *DownloadResult
		mockError     error
		expectedError bool
	}{
		{
			name: "Successful download",
			mockResult: &DownloadResult{
				ModelPath:  "/tmp/download/model.tflite",
				AssetPaths: []string{"/tmp/download/labels.txt"},
			},
		},
		{
			name:          "Download with error",
			mockError:     errors.New("mock download error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDownloader(&MockModelSource{
				mockDownloadModel: func(string, string) (*DownloadResult, error) {
					return tt.mockResult, tt.mockError
				},
			})

			result, err := d.Download(context.Background(), "test-model", "/tmp/download")
			if tt.expectedError {
				if err == nil {
					t.Errorf("Expected an error, but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, but got: %v", err)
			}
			if result.ModelPath != tt.mockResult.ModelPath {
				t.Errorf("Expected ModelPath %s, got %s", tt.mockResult.ModelPath, result.ModelPath)
			}
		})
	}
}

func Test_downloadFile(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name           string
		serverHandler  http.HandlerFunc
		fileName       string
		expectedErrMsg string
	}{
		{
			name: "Successful download",
			serverHandler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, "test content")
			},
			fileName: "nested/test.txt",
		},
		{
			name: "HTTP error status",
			serverHandler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "Not Found", http.StatusNotFound)
			},
			fileName:       "error.txt",
			expectedErrMsg: "status code 404",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.serverHandler)
			defer server.Close()

			h := NewHuggingFaceSource("")
			filePath := filepath.Join(tempDir, tt.fileName)
			err := h.downloadFile(context.Background(), server.URL, filePath)

			if tt.expectedErrMsg != "" {
				if err == nil || !strings.Contains(err.Error(), tt.expectedErrMsg) {
					t.Errorf("Expected error containing \"%s\", got \"%v\"", tt.expectedErrMsg, err)
				}
				if _, fileErr := os.Stat(filePath); !os.IsNotExist(fileErr) {
					t.Errorf("File %s should not exist on error", filePath)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, but got: %v", err)
			}
			content, readErr := os.ReadFile(filePath)
			if readErr != nil {
				t.Fatalf("Failed to read downloaded file: %v", readErr)
			}
			if string(content) != "test content" {
				t.Errorf("Downloaded content mismatch: got \"%s\", want \"test content\"", string(content))
			}
		})
	}
}

func Test_copyFile(t *testing.T) {
	for _, input := range []string{"", "hello world"} {
		dst := &bytes.Buffer{}
		n, err := copyFile(bytes.NewBufferString(input), dst)
		if err != nil {
			t.Errorf("Expected no error, but got: %v", err)
		}
		if n != int64(len(input)) || dst.String() != input {
			t.Errorf("Copied %d bytes %q, want %q", n, dst.String(), input)
		}
	}
}

func TestHuggingFaceSource_DownloadModel(t *testing.T) {
	tests := []struct {
		name           string
		modelID        string
		apiHandler     http.HandlerFunc
		cdnHandler     http.HandlerFunc
		expectedModel  string
		expectedAssets []string
		expectedError  string
	}{
		{
			name:    "Successful download of model and labels",
			modelID: "test-org/mobilenet",
			apiHandler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"modelId": "test-org/mobilenet","siblings": [{"rfilename": "mobilenet.tflite"},{"rfilename": "quant/mobilenet_int8.tflite"},{"rfilename": "labels.txt"},{"rfilename": "README.md"}]}`)
			},
			cdnHandler: func(w http.ResponseWriter, r *http.Request) {
				switch {
				case strings.HasSuffix(r.URL.Path, "/resolve/main/mobilenet.tflite"):
					fmt.Fprint(w, "tflite model content")
				case strings.HasSuffix(r.URL.Path, "labels.txt"):
					fmt.Fprint(w, "cat\ndog\n")
				default:
					http.Error(w, "Not Found", http.StatusNotFound)
				}
			},
			expectedModel:  "mobilenet.tflite",
			expectedAssets: []string{"labels.txt"},
		},
		{
			name:    "Model not found on HuggingFace API",
			modelID: "nonexistent/model",
			apiHandler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "Not Found", http.StatusNotFound)
			},
			expectedError: "HuggingFace API returned non-OK status: 404 Not Found",
		},
		{
			name:    "No TFLite model in repository",
			modelID: "test-org/no-tflite",
			apiHandler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"modelId": "test-org/no-tflite","siblings": [{"rfilename": "config.json"}]}`)
			},
			cdnHandler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, "{}")
			},
			expectedError: "no TFLite model found for model ID: test-org/no-tflite",
		},
		{
			name:    "CDN download failure",
			modelID: "test-org/cdn-fail",
			apiHandler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"modelId": "test-org/cdn-fail","siblings": [{"rfilename": "model.tflite"}]}`)
			},
			cdnHandler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			},
			expectedError: "failed to download TFLite model model.tflite: failed to download file from",
		},
		{
			name:    "Malformed API response",
			modelID: "test-org/garbage",
			apiHandler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"siblings": [`)
			},
			expectedError: "failed to decode HuggingFace API response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			apiServer := httptest.NewServer(tt.apiHandler)
			defer apiServer.Close()
			cdnHandler := tt.cdnHandler
			if cdnHandler == nil {
				cdnHandler = func(w http.ResponseWriter, r *http.Request) {
					http.Error(w, "Not Found", http.StatusNotFound)
				}
			}
			cdnServer := httptest.NewServer(cdnHandler)
			defer cdnServer.Close()

			t.Setenv("HUGGINGFACE_API_URL", apiServer.URL+"/")
			t.Setenv("HUGGINGFACE_CDN_URL", cdnServer.URL+"/")

			hfSource := NewHuggingFaceSource("")
			logger, _ := test.NewNullLogger()
			hfSource.SetLogger(logger)
			result, err := hfSource.DownloadModel(context.Background(), tt.modelID, tempDir)

			if tt.expectedError != "" {
				if err == nil || !strings.Contains(err.Error(), tt.expectedError) {
					t.Errorf("Expected error containing \"%s\", got \"%v\"", tt.expectedError, err)
				}
				if result != nil {
					t.Errorf("Expected nil result on error, got %v", result)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, but got: %v", err)
			}

			expectedModelPath := filepath.Join(tempDir, tt.expectedModel)
			if result.ModelPath != expectedModelPath {
				t.Errorf("Expected ModelPath %s, got %s", expectedModelPath, result.ModelPath)
			}
			if _, err := os.Stat(result.ModelPath); err != nil {
				t.Errorf("Downloaded model file does not exist: %s", result.ModelPath)
			}
			if len(result.AssetPaths) != len(tt.expectedAssets) {
				t.Fatalf("Expected %d asset paths, got %v", len(tt.expectedAssets), result.AssetPaths)
			}
			for i, asset := range tt.expectedAssets {
				if want := filepath.Join(tempDir, asset); result.AssetPaths[i] != want {
					t.Errorf("Asset %d: got %s, want %s", i, result.AssetPaths[i], want)
				}
			}
		})
	}
}

func TestHuggingFaceSource_SendsAPIKey(t *testing.T) {
	var apiAuth, cdnAuth string
	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{"siblings": [{"rfilename": "model.tflite"}]}`)
	}))
	defer apiServer.Close()
	cdnServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cdnAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, "model")
	}))
	defer cdnServer.Close()

	t.Setenv("HUGGINGFACE_API_URL", apiServer.URL+"/")
	t.Setenv("HUGGINGFACE_CDN_URL", cdnServer.URL)

	if _, err := NewHuggingFaceSource("hf_secret").DownloadModel(context.Background(), "org/model", t.TempDir()); err != nil {
		t.Fatalf("DownloadModel returned an error: %v", err)
	}
	if apiAuth != "Bearer hf_secret" || cdnAuth != "Bearer hf_secret" {
		t.Errorf("Authorization headers: api %q, cdn %q", apiAuth, cdnAuth)
	}
}

func TestHuggingFaceSource_Defaults(t *testing.T) {
	t.Setenv("HUGGINGFACE_API_URL", "")
	t.Setenv("HUGGINGFACE_CDN_URL", "")
	h := NewHuggingFaceSource("")
	if h.apiURL != DefaultAPIURL || h.cdnURL != DefaultCDNURL {
		t.Errorf("unexpected endpoints %s %s", h.apiURL, h.cdnURL)
	}
	if got := h.fileURL("org/model", "model.tflite"); got != "https://huggingface.co/org/model/resolve/main/model.tflite" {
		t.Errorf("fileURL = %s", got)
	}
}
