package feedfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"listing-service/internal/core/domain"
)

// ErrEmptyFeed - во входных данных нет ни массива, ни конверта {"value": [...]}
var ErrEmptyFeed = errors.New("feed is empty")

// FileSource читает фид из JSON-файла. Файл содержит массив записей
// или OData-конверт {"value": [...]}.
type FileSource struct {
	path string
}

func NewFileSource(path string) (*FileSource, error) {
	if path == "" {
		return nil, fmt.Errorf("feedfile: path is required")
	}
	return &FileSource{path: path}, nil
}

func (s *FileSource) Records(ctx context.Context) ([]domain.RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("feedfile: open %q: %w", s.path, err)
	}
	defer f.Close()

	records, err := DecodeRecords(f)
	if err != nil {
		return nil, fmt.Errorf("feedfile: %q: %w", s.path, err)
	}
	return records, nil
}

// DecodeRecords разбирает JSON-массив записей или конверт {"value": [...]}.
// Числа сохраняются как json.Number, чтобы длинные ключи не теряли точность.
// Элемент, который не является объектом, возвращается как nil-запись на своей
// позиции: его отклонит ингест, а остальные записи фида будут обработаны.
func DecodeRecords(r io.Reader) ([]domain.RawRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read feed: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, ErrEmptyFeed
	}

	switch data[0] {
	case '[':
		var elements []json.RawMessage
		if err := decode(data, &elements); err != nil {
			return nil, fmt.Errorf("decode feed array: %w", err)
		}
		return decodeElements(elements)
	case '{':
		var envelope struct {
			Value []json.RawMessage `json:"value"`
		}
		if err := decode(data, &envelope); err != nil {
			return nil, fmt.Errorf("decode feed envelope: %w", err)
		}
		if envelope.Value == nil {
			return nil, ErrEmptyFeed
		}
		return decodeElements(envelope.Value)
	}
	return nil, fmt.Errorf("decode feed: expected a JSON array or an object with \"value\"")
}

func decodeElements(elements []json.RawMessage) ([]domain.RawRecord, error) {
	records := make([]domain.RawRecord, len(elements))
	for i, element := range elements {
		element = bytes.TrimSpace(element)
		if len(element) == 0 || element[0] != '{' {
			continue
		}
		if err := decode(element, &records[i]); err != nil {
			return nil, fmt.Errorf("decode feed record %d: %w", i, err)
		}
	}
	return records, nil
}

func decode(data []byte, dst interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(dst)
}
