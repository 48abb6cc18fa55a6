// Package spreadsheet renders the admin lists as xlsx workbooks when the
// export is built on the client instead of downloaded from the server.
package spreadsheet

import (
	"fmt"
	"io"
	"time"

	"github.com/nikolayk812/shopledger/internal/domain"
	"github.com/tealeg/xlsx"
)

const timeLayout = "2006-01-02 15:04:05"

func WriteProducts(w io.Writer, products []domain.Product) error {
	headers := []string{"ID", "Name", "Category", "Brand", "Price", "Discount", "Stock", "Rating", "Reviews", "CreatedAt"}

	return write(w, "Products", headers, len(products), func(i int, row *xlsx.Row) {
		p := products[i]

		row.AddCell().SetString(p.ID)
		row.AddCell().SetString(p.Name)
		row.AddCell().SetString(p.Category)
		row.AddCell().SetString(p.Brand)
		row.AddCell().SetFloat(p.Price.InexactFloat64())
		row.AddCell().SetFloat(p.Discount.InexactFloat64())
		row.AddCell().SetInt(p.Stock)
		row.AddCell().SetFloat(p.Rating)
		row.AddCell().SetInt(p.Reviews)
		row.AddCell().SetString(formatTime(p.CreatedAt))
	})
}

func WriteOrders(w io.Writer, orders []domain.Order) error {
	headers := []string{"ID", "UserID", "Status", "Items", "TotalAmount", "DiscountedTotal", "PaymentMethod", "TrackingNumber", "CreatedAt"}

	return write(w, "Orders", headers, len(orders), func(i int, row *xlsx.Row) {
		o := orders[i]

		var units int
		for _, item := range o.Items {
			units += item.Quantity
		}

		row.AddCell().SetString(o.ID)
		row.AddCell().SetString(o.UserID)
		row.AddCell().SetString(string(o.Status))
		row.AddCell().SetInt(units)
		row.AddCell().SetFloat(o.TotalAmount.InexactFloat64())
		row.AddCell().SetFloat(o.DiscountedTotal.InexactFloat64())
		row.AddCell().SetString(o.PaymentMethod)
		row.AddCell().SetString(o.TrackingNumber)
		row.AddCell().SetString(formatTime(o.CreatedAt))
	})
}

func WriteUsers(w io.Writer, users []domain.User) error {
	headers := []string{"ID", "Email", "Name", "Role", "Status", "TwoFactorAuth", "LastLogin", "CreatedAt"}

	return write(w, "Users", headers, len(users), func(i int, row *xlsx.Row) {
		u := users[i]

		row.AddCell().SetString(u.ID)
		row.AddCell().SetString(u.Email)
		row.AddCell().SetString(u.Name)
		row.AddCell().SetString(string(u.Role))
		row.AddCell().SetString(string(u.Status))
		row.AddCell().SetBool(u.Security.TwoFactorAuth)
		row.AddCell().SetString(formatTime(u.Security.LastLogin))
		row.AddCell().SetString(formatTime(u.CreatedAt))
	})
}

func write(w io.Writer, sheetName string, headers []string, n int, fill func(i int, row *xlsx.Row)) error {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return fmt.Errorf("file.AddSheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetString(h)
	}

	for i := range n {
		fill(i, sheet.AddRow())
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("file.Write: %w", err)
	}

	return nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayout)
}

// Filename is the default name of a workbook for entity.
func Filename(entity domain.ExportEntity) string {
	return string(entity) + ".xlsx"
}
