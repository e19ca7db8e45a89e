package files

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLEncoder: стратегия кодирования в YAML.
type YAMLEncoder struct{}

func (YAMLEncoder) EncodeRows(rows []Row) ([]byte, error) {
	out := make([]rowRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, toRecord(r))
	}
	return yaml.Marshal(out)
}

type YAMLParser struct{}

func (YAMLParser) Parse(data []byte) ([]Row, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var in []rowRecord
	if err := dec.Decode(&in); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	out := make([]Row, 0, len(in))
	for _, rec := range in {
		if row, ok := fromRecord(rec); ok {
			out = append(out, row)
		}
	}
	return out, nil
}
