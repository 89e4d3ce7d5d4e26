package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path/filepath"
	"time"

	"github.com/atamiles/vlures-bench/pkg/models"
)

// DatasetsServerURL is the Hugging Face datasets-server endpoint used to
// enumerate splits and rows without pulling the full dataset through a
// client library.
const DatasetsServerURL = "https://datasets-server.huggingface.co"

// rowsPageSize is the page size for /rows requests; 100 is the server's
// maximum.
const rowsPageSize = 100

// HubProvider enumerates a hosted dataset's splits and rows via the
// datasets-server REST API.
type HubProvider struct {
	baseURL    string
	repo       string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHubProvider creates a provider for a dataset repository id such as
// "atamiles/VLURes".
func NewHubProvider(repo string, timeout time.Duration, logger *slog.Logger) *HubProvider {
	return &HubProvider{
		baseURL:    DatasetsServerURL,
		repo:       repo,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// WithBaseURL overrides the datasets-server endpoint, for tests.
func (p *HubProvider) WithBaseURL(baseURL string) *HubProvider {
	p.baseURL = baseURL
	return p
}

type splitsResponse struct {
	Splits []struct {
		Dataset string `json:"dataset"`
		Config  string `json:"config"`
		Split   string `json:"split"`
	} `json:"splits"`
}

type rowsResponse struct {
	Rows []struct {
		RowIdx int                        `json:"row_idx"`
		Row    map[string]json.RawMessage `json:"row"`
	} `json:"rows"`
	NumRowsTotal int `json:"num_rows_total"`
}

// Split identifies one config/split pair of the dataset.
type Split struct {
	Config string
	Split  string
}

// Splits returns the dataset's splits. Each split corresponds to one
// language of the benchmark.
func (p *HubProvider) Splits(ctx context.Context) ([]Split, error) {
	endpoint := fmt.Sprintf("%s/splits?dataset=%s", p.baseURL, url.QueryEscape(p.repo))

	var resp splitsResponse
	if err := p.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("failed to list splits for %s: %w", p.repo, err)
	}

	splits := make([]Split, 0, len(resp.Splits))
	for _, s := range resp.Splits {
		splits = append(splits, Split{Config: s.Config, Split: s.Split})
	}
	return splits, nil
}

// Items pages through a split's rows and returns the download work list.
// Rows missing an id or image_url column are skipped with a warning, the
// rest map to <imageDir>/<id>.jpg destinations.
func (p *HubProvider) Items(ctx context.Context, split Split, imageDir string) ([]models.DownloadItem, error) {
	var items []models.DownloadItem

	for offset := 0; ; offset += rowsPageSize {
		endpoint := fmt.Sprintf("%s/rows?dataset=%s&config=%s&split=%s&offset=%d&length=%d",
			p.baseURL,
			url.QueryEscape(p.repo),
			url.QueryEscape(split.Config),
			url.QueryEscape(split.Split),
			offset,
			rowsPageSize)

		var resp rowsResponse
		if err := p.getJSON(ctx, endpoint, &resp); err != nil {
			return nil, fmt.Errorf("failed to fetch rows for %s/%s at offset %d: %w", split.Config, split.Split, offset, err)
		}

		for _, row := range resp.Rows {
			id := stringColumn(row.Row, "id")
			imageURL := stringColumn(row.Row, "image_url")
			if id == "" || imageURL == "" {
				p.logger.Warn("Skipping row with missing id or image_url",
					"split", split.Split,
					"row_idx", row.RowIdx)
				continue
			}
			items = append(items, models.DownloadItem{
				ID:   id,
				URL:  imageURL,
				Path: filepath.Join(imageDir, id+".jpg"),
			})
		}

		if offset+rowsPageSize >= resp.NumRowsTotal || len(resp.Rows) == 0 {
			break
		}
	}

	return items, nil
}

// stringColumn extracts a column as a string, tolerating numeric ids.
func stringColumn(row map[string]json.RawMessage, key string) string {
	raw, ok := row[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func (p *HubProvider) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			p.logger.Warn("Failed to close response body", "error", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("datasets-server returned status %d: %s", resp.StatusCode, string(body))
	}
	return json.Unmarshal(body, out)
}
