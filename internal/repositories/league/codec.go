package league

import (
	"encoding/json"
	"fmt"
)

// encodeRows serializes rows as a nested JSON array, top row first
func encodeRows(rows [][]string) ([]byte, error) {
	// nil rows would encode as null
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string{}, row...)
	}

	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal league: %w", err)
	}

	return data, nil
}

func decodeRows(data []byte) ([][]string, error) {
	var rows [][]string
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal league: %w", err)
	}

	if rows == nil {
		rows = [][]string{}
	}

	return rows, nil
}
