package adminController

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/tealeg/xlsx"

	"github.com/knsalim/paanshop-api/store"
)

// GET /admin/orders/export-excel
func ExportOrdersToExcel(st store.Store, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := listAllOrders(c.Request.Context(), st)
		if err != nil {
			log.WithError(err).Error("failed to fetch orders for export")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"OrderID", "UserID", "Customer", "Mobile", "Method", "ArrivalTime",
			"DeliveryStatus", "PaymentStatus", "GrandTotal", "Items", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, o := range orders {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.UserID)
			row.AddCell().SetValue(o.OrderName)
			row.AddCell().SetValue(o.OrderMobileNumber)
			row.AddCell().SetValue(o.DeliveryMethod)
			row.AddCell().SetValue(o.ArrivalTime)
			row.AddCell().SetValue(string(o.DeliveryStatus))
			row.AddCell().SetValue(string(o.PaymentStatus))
			row.AddCell().SetValue(o.GrandTotal)

			var items []string
			for _, it := range o.CartItems {
				items = append(items, it.Name+" x"+strconv.Itoa(it.Quantity))
			}
			row.AddCell().SetValue(strings.Join(items, ", "))

			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			log.WithError(err).Error("failed to write Excel file")
		}
	}
}
