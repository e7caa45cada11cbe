package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"spreadScope/internal/model"
)

// JsonlStorage appends records to a JSONL file.
type JsonlStorage struct {
	path string
	mu   sync.Mutex
}

func NewJsonlStorage(path string) *JsonlStorage {
	return &JsonlStorage{path: path}
}

// PutCurveBatch appends curve points as JSON lines.
func (s *JsonlStorage) PutCurveBatch(ctx context.Context, points []model.CurvePoint) error {
	if len(points) == 0 {
		return nil
	}
	records := make([]any, 0, len(points))
	for _, point := range points {
		records = append(records, point)
	}
	return s.appendRecords(records)
}

// PutSweepBatch appends sweep rows as JSON lines.
func (s *JsonlStorage) PutSweepBatch(ctx context.Context, rows []model.SweepRow) error {
	if len(rows) == 0 {
		return nil
	}
	records := make([]any, 0, len(rows))
	for _, row := range rows {
		records = append(records, row)
	}
	return s.appendRecords(records)
}

func (s *JsonlStorage) appendRecords(records []any) error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, record := range records {
		line, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("marshal record: %w", err)
		}
		if _, err := writer.Write(line); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
		if err := writer.WriteByte('\n'); err != nil {
			return fmt.Errorf("write newline: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	return nil
}
