package domain

import "fmt"

type ExportEntity string

const (
	ExportProducts ExportEntity = "products"
	ExportOrders   ExportEntity = "orders"
	ExportUsers    ExportEntity = "users"
)

func ParseExportEntity(s string) (ExportEntity, error) {
	switch e := ExportEntity(s); e {
	case ExportProducts, ExportOrders, ExportUsers:
		return e, nil
	}
	return "", fmt.Errorf("export entity[%s] is not valid", s)
}

type ExportFormat string

const (
	FormatCSV   ExportFormat = "csv"
	FormatExcel ExportFormat = "excel"
	FormatPDF   ExportFormat = "pdf"
)

// ParseExportFormat accepts xlsx as an alias of excel.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(s); f {
	case FormatCSV, FormatExcel, FormatPDF:
		return f, nil
	case "xlsx":
		return FormatExcel, nil
	}
	return "", fmt.Errorf("export format[%s] is not valid", s)
}

// Extension is the file suffix a downloaded export is saved with.
func (f ExportFormat) Extension() string {
	if f == FormatExcel {
		return "xlsx"
	}
	return string(f)
}
