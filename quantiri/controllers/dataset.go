// quantiri/controllers/dataset.go
package controllers

import (
	"context"
	"quantiri/quantiri/sources/psql/dao"
	"quantiri/quantiri/sources/psql/models"
	"quantiri/quantiri/sources/storage"
	"quantiri/quantiri/types"
	"quantiri/quantiri/utils/csvutils"
	"quantiri/quantiri/utils/logging"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// previewRows is how many parsed rows are retained in the database; the
// full row count is still recorded on the dataset.
const previewRows = 50

type DatasetController struct {
	datasets *dao.DatasetDAO
	archive  *storage.MinIOClient
}

func NewDatasetController(datasets *dao.DatasetDAO, archive *storage.MinIOClient) *DatasetController {
	return &DatasetController{
		datasets: datasets,
		archive:  archive,
	}
}

// Ingest parses uploaded CSV text, persists a dataset with a bounded
// preview, and archives the raw text to object storage. The archive write
// is best effort: the preview is already durable when it runs.
func (c *DatasetController) Ingest(ctx context.Context, userID uuid.UUID, req types.CSVIngestRequest) (*types.ParsedDataset, error) {
	var issues []types.FieldError
	if req.FileName == "" {
		issues = append(issues, types.FieldError{Field: "fileName", Message: "File name is required"})
	}
	if req.FileSize < 0 {
		issues = append(issues, types.FieldError{Field: "fileSize", Message: "File size must not be negative"})
	}
	if req.Text == "" {
		issues = append(issues, types.FieldError{Field: "text", Message: "CSV text is required"})
	}
	if len(issues) > 0 {
		return nil, types.NewValidationError(issues...)
	}

	columns, rows, err := csvutils.Parse(req.Text)
	if err != nil {
		return nil, types.NewValidationError(types.FieldError{Field: "text", Message: "Could not parse CSV: " + err.Error()})
	}

	preview := rows
	if len(preview) > previewRows {
		preview = preview[:previewRows]
	}

	dataset := &models.Dataset{
		UserID:   userID,
		FileName: req.FileName,
		FileSize: req.FileSize,
		Columns:  columns,
		Rows:     preview,
		RowCount: len(rows),
	}
	if err := c.datasets.CreateDataset(ctx, dataset); err != nil {
		return nil, err
	}

	if c.archive != nil {
		if _, err := c.archive.UploadCSV(ctx, dataset.ID.String(), req.Text); err != nil {
			logging.ErrorLogger.Error("csv archive upload failed",
				zap.String("dataset_id", dataset.ID.String()), zap.Error(err))
		}
	}

	return &types.ParsedDataset{
		ID:       dataset.ID.String(),
		Columns:  columns,
		Rows:     preview,
		RowCount: len(rows),
		FileName: req.FileName,
		FileSize: req.FileSize,
	}, nil
}

func (c *DatasetController) List(ctx context.Context, userID uuid.UUID) ([]models.Dataset, error) {
	return c.datasets.GetDatasetsByUser(ctx, userID)
}

func (c *DatasetController) Get(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*models.Dataset, error) {
	dataset, err := c.datasets.GetDatasetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dataset == nil || dataset.UserID != userID {
		return nil, types.ErrDatasetNotFound
	}
	return dataset, nil
}
