// Package parser provides utilities for parsing the model's input
// data: trade tables, registry lookup tables, and scenario files.
package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tradegraph/core/internal/models"
)

// ParseTradeCSV reads a bilateral trade table. The header row must
// contain Partner, Reporter, Element and Value columns (any order,
// case-insensitive); extra columns are ignored. Values must parse as
// non-negative numbers.
func ParseTradeCSV(data []byte) ([]models.TradeRecord, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty trade data")
	}

	r := csv.NewReader(bytes.NewReader(data))

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read trade header: %w", err)
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"partner", "reporter", "element", "value"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("trade header missing %q column", required)
		}
	}

	var records []models.TradeRecord
	for line := 2; ; line++ {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("trade row %d: %w", line, err)
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(row[cols["value"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("trade row %d: bad value: %w", line, err)
		}
		if value < 0 {
			return nil, fmt.Errorf("trade row %d: negative value %v", line, value)
		}

		records = append(records, models.TradeRecord{
			Partner:  strings.TrimSpace(row[cols["partner"]]),
			Reporter: strings.TrimSpace(row[cols["reporter"]]),
			Element:  strings.TrimSpace(row[cols["element"]]),
			Value:    value,
		})
	}

	return records, nil
}
