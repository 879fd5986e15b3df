package sync

import (
	"encoding/csv"
	"fmt"
	"io"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"gosupplier_api/internal/catalog/normalize"
)

// ReadCSVFeed decodes a delimited vendor feed into raw records keyed by the
// header row. Legacy feeds often ship in a Windows codepage, so the
// encoding is configurable; anything unknown is read as UTF-8.
func ReadCSVFeed(reader io.Reader, comma rune, encoding string) ([]normalize.Raw, error) {
	if cm := charmapDecoder(encoding); cm != nil {
		reader = transform.NewReader(reader, cm.NewDecoder())
	}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = comma
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	allRows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv read error: %w", err)
	}
	if len(allRows) == 0 {
		return nil, fmt.Errorf("csv feed is empty")
	}

	header := allRows[0]
	raws := make([]normalize.Raw, 0, len(allRows)-1)
	for _, row := range allRows[1:] {
		raw := normalize.Raw{}
		for i, column := range header {
			if i < len(row) && row[i] != "" {
				raw[column] = row[i]
			}
		}
		raws = append(raws, raw)
	}

	return raws, nil
}

func charmapDecoder(encoding string) *charmap.Charmap {
	switch encoding {
	case "windows-1251":
		return charmap.Windows1251
	case "windows-1252":
		return charmap.Windows1252
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1
	default:
		return nil
	}
}
