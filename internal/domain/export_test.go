package domain_test

import (
	"testing"

	"github.com/nikolayk812/shopledger/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExportFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.ExportFormat
		wantExt string
		wantErr string
	}{
		{in: "csv", want: domain.FormatCSV, wantExt: "csv"},
		{in: "excel", want: domain.FormatExcel, wantExt: "xlsx"},
		{in: "xlsx", want: domain.FormatExcel, wantExt: "xlsx"},
		{in: "pdf", want: domain.FormatPDF, wantExt: "pdf"},
		{in: "docx", wantErr: "export format[docx] is not valid"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseExportFormat(tt.in)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantExt, got.Extension())
		})
	}
}

func TestParseExportEntity(t *testing.T) {
	got, err := domain.ParseExportEntity("orders")
	require.NoError(t, err)
	assert.Equal(t, domain.ExportOrders, got)

	_, err = domain.ParseExportEntity("analytics")
	assert.EqualError(t, err, "export entity[analytics] is not valid")
}
