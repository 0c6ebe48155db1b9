package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"ledger-backend/internal/config"
	"ledger-backend/internal/models"
)

// ExportService renders statements to CSV and, when a bucket is configured,
// archives the artifact to S3-compatible object storage (R2).
type ExportService struct {
	cfg *config.Config
}

func NewExportService(cfg *config.Config) *ExportService {
	return &ExportService{cfg: cfg}
}

// RenderCSV writes a statement as CSV: one row per entry with its running
// balance, followed by a totals row.
func (s *ExportService) RenderCSV(statement *models.Statement) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Date", "Type", "Reference", "Description", "Debit", "Credit", "Balance"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, e := range statement.Entries {
		row := []string{
			e.Date,
			string(e.Type),
			e.Reference,
			e.Description,
			formatAmount(e.Debit),
			formatAmount(e.Credit),
			formatAmount(statement.Balances[e.ID]),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	totals := []string{
		"", "", "", "Total",
		formatAmount(statement.Summary.TotalDebit),
		formatAmount(statement.Summary.TotalCredit),
		formatAmount(statement.Summary.ClosingBalance),
	}
	if err := w.Write(totals); err != nil {
		return nil, fmt.Errorf("failed to write CSV totals: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Archive uploads an exported artifact to the configured bucket. Returns the
// object key. A missing bucket config is not an error; archiving is optional.
func (s *ExportService) Archive(ctx context.Context, accountID string, data []byte) (string, error) {
	if s.cfg.Export.Bucket == "" {
		return "", nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.Export.AccessKey,
			s.cfg.Export.SecretKey,
			"",
		)),
		awsconfig.WithRegion(s.cfg.Export.Region),
	)
	if err != nil {
		return "", fmt.Errorf("failed to configure storage client: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if s.cfg.Export.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.cfg.Export.Endpoint)
		}
	})

	key := fmt.Sprintf("%sstatements/%s/%s-%s.csv",
		s.cfg.Export.Prefix,
		accountID,
		time.Now().UTC().Format("20060102-150405"),
		uuid.New().String()[:8],
	)

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Export.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to archive export: %w", err)
	}

	log.Printf("[Export] archived statement for account %s to %s", accountID, key)
	return key, nil
}
