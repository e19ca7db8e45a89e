package files

import (
	"encoding/json"
	"fmt"
)

type JSONEncoder struct{}

func (JSONEncoder) EncodeRows(rows []Row) ([]byte, error) {
	out := make([]rowRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, toRecord(r))
	}
	return json.MarshalIndent(out, "", "  ")
}

type JSONParser struct{}

func (JSONParser) Parse(data []byte) ([]Row, error) {
	var in []rowRecord
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	out := make([]Row, 0, len(in))
	for _, rec := range in {
		if row, ok := fromRecord(rec); ok {
			out = append(out, row)
		}
	}
	return out, nil
}
