package service

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

type ReportService struct {
	store DocumentStore
}

func NewReportService(store DocumentStore) *ReportService {
	return &ReportService{store: store}
}

// DocumentReport renders the owner's documents as an xlsx workbook and
// returns the encoded bytes.
func (s *ReportService) DocumentReport(ctx context.Context, ownerID string) ([]byte, error) {
	docs, err := s.store.ListDocumentsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Documents"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4F81BD"}},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, err
	}

	headers := []string{"Filename", "Pages", "Summary", "Uploaded"}
	for i, name := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(sheet, "A1", "D1", headerStyle); err != nil {
		return nil, err
	}

	for i, doc := range docs {
		row := i + 2
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), doc.Filename); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", row), doc.PageCount); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("C%d", row), doc.Summary); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("D%d", row), doc.CreatedAt.Format("2006-01-02 15:04")); err != nil {
			return nil, err
		}
	}

	if err := f.SetColWidth(sheet, "A", "A", 32); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "C", "C", 60); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "D", "D", 18); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
