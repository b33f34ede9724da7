package Controllers

import (
	"fmt"
	"log"
	"net/http"

	"EnasClinic/Models"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gin-gonic/gin"
)

func ExportSessionsTable(c *gin.Context) {
	var input struct {
		DateFrom string `json:"date_from"`
		DateTo   string `json:"date_to"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, err)
		return
	}

	var records []Models.SessionRecord

	if input.DateFrom != "" && input.DateTo != "" {
		if err := Models.DB.Model(&Models.SessionRecord{}).
			Where("date BETWEEN ? AND ?", input.DateFrom, input.DateTo).
			Order("date asc").
			Find(&records).Error; err != nil {
			c.JSON(http.StatusBadRequest, err)
			return
		}
	} else {
		if err := Models.DB.Model(&Models.SessionRecord{}).Order("date asc").Find(&records).Error; err != nil {
			c.JSON(http.StatusBadRequest, err)
			return
		}
	}

	headers := map[string]string{
		"A1": "Date",
		"B1": "Client",
		"C1": "Region",
		"D1": "Staff",
		"E1": "Total",
		"F1": "Paid",
		"G1": "Remaining",
		"H1": "Status",
		"I1": "Payment Method",
	}
	file := excelize.NewFile()
	sheet := "Sessions"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")
	for k, v := range headers {
		file.SetCellValue(sheet, k, v)
	}

	for i := 0; i < len(records); i++ {
		appendRowSession(sheet, file, i, records)
	}
	var filename string = fmt.Sprintf("./Sessions.xlsx")
	if err := file.SaveAs(filename); err != nil {
		log.Println(err)
	}
	c.File(filename)
}

func appendRowSession(sheet string, file *excelize.File, index int, rows []Models.SessionRecord) (fileWriter *excelize.File) {
	rowCount := index + 2
	file.SetCellValue(sheet, fmt.Sprintf("A%v", rowCount), rows[index].Date)
	file.SetCellValue(sheet, fmt.Sprintf("B%v", rowCount), rows[index].ClientName)
	file.SetCellValue(sheet, fmt.Sprintf("C%v", rowCount), rows[index].Region)
	file.SetCellValue(sheet, fmt.Sprintf("D%v", rowCount), rows[index].StaffName)
	file.SetCellValue(sheet, fmt.Sprintf("E%v", rowCount), rows[index].TotalPrice)
	file.SetCellValue(sheet, fmt.Sprintf("F%v", rowCount), rows[index].Paid)
	file.SetCellValue(sheet, fmt.Sprintf("G%v", rowCount), rows[index].Remaining)
	file.SetCellValue(sheet, fmt.Sprintf("H%v", rowCount), rows[index].PaymentStatus)
	file.SetCellValue(sheet, fmt.Sprintf("I%v", rowCount), rows[index].PaymentMethod)
	return file
}

func ExportReviewsTable(c *gin.Context) {
	var reviews []Models.Review
	if err := Models.DB.Model(&Models.Review{}).Order("created_at desc").Find(&reviews).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	headers := map[string]string{
		"A1": "Client",
		"B1": "Rating",
		"C1": "Comment",
		"D1": "Source",
	}

	file := excelize.NewFile()
	sheet := "Reviews"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")
	for k, v := range headers {
		file.SetCellValue(sheet, k, v)
	}

	for i := 0; i < len(reviews); i++ {
		rowCount := i + 2
		file.SetCellValue(sheet, fmt.Sprintf("A%v", rowCount), reviews[i].ClientName)
		file.SetCellValue(sheet, fmt.Sprintf("B%v", rowCount), reviews[i].Rating)
		file.SetCellValue(sheet, fmt.Sprintf("C%v", rowCount), reviews[i].Comment)
		file.SetCellValue(sheet, fmt.Sprintf("D%v", rowCount), reviews[i].Source)
	}

	var filename string = fmt.Sprintf("./Reviews.xlsx")
	if err := file.SaveAs(filename); err != nil {
		log.Println(err)
	}
	c.File(filename)
}
