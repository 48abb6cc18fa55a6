package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/nikolayk812/shopledger/internal/domain"
)

type exportRequest struct {
	Format    domain.ExportFormat `json:"format"`
	StartDate string              `json:"startDate,omitempty"`
	EndDate   string              `json:"endDate,omitempty"`
}

// Export downloads a server-rendered file with all records of entity.
func (c *Client) Export(ctx context.Context, entity domain.ExportEntity, format domain.ExportFormat) (io.ReadCloser, error) {
	if entity == "" {
		return nil, fmt.Errorf("entity is empty")
	}

	return c.download(ctx, "export."+string(entity), "/export/"+string(entity), exportRequest{Format: format})
}

// ExportAnalytics downloads the analytics report for the given date range,
// dates formatted as YYYY-MM-DD.
func (c *Client) ExportAnalytics(ctx context.Context, startDate, endDate string, format domain.ExportFormat) (io.ReadCloser, error) {
	return c.download(ctx, "export.analytics", "/export/analytics", exportRequest{
		Format:    format,
		StartDate: startDate,
		EndDate:   endDate,
	})
}

func (c *Client) download(ctx context.Context, op, path string, req exportRequest) (io.ReadCloser, error) {
	if req.Format == "" {
		return nil, fmt.Errorf("format is empty")
	}

	var data []byte
	err := c.do(ctx, request{op: op, method: http.MethodPost, path: path, body: req, accept: "*/*"}, &data)
	if err != nil {
		return nil, err
	}

	return io.NopCloser(bytes.NewReader(data)), nil
}
