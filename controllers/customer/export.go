package customerController

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/lequanQL/glassity-api/models"
	"github.com/lequanQL/glassity-api/store"
)

var exportHeaders = []string{
	"ID", "Full Name", "Email", "Phone", "City",
	"Total Orders", "Total Spent", "Status", "Membership Level",
}

// CustomerCSV renders the export document for the given customers. It is a
// pure formatting function; the handler below only adds download headers.
func CustomerCSV(customers []models.Customer) (string, error) {
	var buf strings.Builder
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeaders); err != nil {
		return "", err
	}
	for _, c := range customers {
		record := []string{
			strconv.Itoa(c.ID),
			c.FullName,
			c.Email,
			c.Phone,
			c.City,
			strconv.Itoa(c.TotalOrders),
			strconv.FormatFloat(c.TotalSpent, 'f', -1, 64),
			c.Status,
			c.MembershipLevel,
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	return buf.String(), w.Error()
}

// selectCustomers resolves the ?ids=1,2,3 subset; no ids means everyone.
func selectCustomers(customers []models.Customer, idsParam string) []models.Customer {
	idsParam = strings.TrimSpace(idsParam)
	if idsParam == "" {
		return customers
	}
	wanted := make(map[int]struct{})
	for _, tok := range strings.Split(idsParam, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if id, err := strconv.Atoi(tok); err == nil {
			wanted[id] = struct{}{}
		}
	}
	var out []models.Customer
	for _, c := range customers {
		if _, ok := wanted[c.ID]; ok {
			out = append(out, c)
		}
	}
	return out
}

// GET /admin/customers/export-csv
func ExportCustomersCSV(customers *store.Collection[models.Customer]) gin.HandlerFunc {
	return func(c *gin.Context) {
		selected := selectCustomers(customers.List(), c.Query("ids"))

		content, err := CustomerCSV(selected)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build CSV"})
			return
		}

		filename := fmt.Sprintf("customers-export-%s.csv", time.Now().Format("2006-01-02"))
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.Data(http.StatusOK, "text/csv", []byte(content))
	}
}

// GET /admin/customers/export-excel
func ExportCustomersToExcel(customers *store.Collection[models.Customer]) gin.HandlerFunc {
	return func(c *gin.Context) {
		selected := selectCustomers(customers.List(), c.Query("ids"))

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Customers")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range exportHeaders {
			headerRow.AddCell().SetValue(h)
		}

		for _, cust := range selected {
			row := sheet.AddRow()
			row.AddCell().SetValue(cust.ID)
			row.AddCell().SetValue(cust.FullName)
			row.AddCell().SetValue(cust.Email)
			row.AddCell().SetValue(cust.Phone)
			row.AddCell().SetValue(cust.City)
			row.AddCell().SetValue(cust.TotalOrders)
			row.AddCell().SetValue(cust.TotalSpent)
			row.AddCell().SetValue(cust.Status)
			row.AddCell().SetValue(cust.MembershipLevel)
		}

		c.Header("Content-Disposition", "attachment; filename=customers.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
