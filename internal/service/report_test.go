package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/paperstack/backend/internal/model"
	"github.com/xuri/excelize/v2"
)

func TestDocumentReport(t *testing.T) {
	store := &fakeDocumentStore{docs: []model.Document{
		{ID: "d1", OwnerID: "owner-1", Filename: "contract.pdf", PageCount: 4, Summary: "A contract.", CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)},
		{ID: "d2", OwnerID: "owner-1", Filename: "invoice.pdf", PageCount: 1, CreatedAt: time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)},
	}}
	svc := NewReportService(store)

	report, err := svc.DocumentReport(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("DocumentReport: %v", err)
	}
	if len(report) == 0 {
		t.Fatal("empty report")
	}

	f, err := excelize.OpenReader(bytes.NewReader(report))
	if err != nil {
		t.Fatalf("report is not a readable workbook: %v", err)
	}
	defer f.Close()

	header, err := f.GetCellValue("Documents", "A1")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if header != "Filename" {
		t.Fatalf("expected header Filename, got %q", header)
	}

	filename, err := f.GetCellValue("Documents", "A2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if filename != "contract.pdf" {
		t.Fatalf("expected first row contract.pdf, got %q", filename)
	}
}

func TestDocumentReportEmpty(t *testing.T) {
	svc := NewReportService(&fakeDocumentStore{})

	report, err := svc.DocumentReport(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("DocumentReport: %v", err)
	}
	if len(report) == 0 {
		t.Fatal("a header-only workbook is still expected")
	}
}
