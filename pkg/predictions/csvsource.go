package predictions

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Column headers the prediction pipeline writes. gameweek is optional
// for backwards compatibility with older exports.
const (
	colWebName         = "web_name"
	colElementType     = "element_type"
	colTeamName        = "team_name"
	colNowCost         = "now_cost"
	colPredictedPoints = "predicted_points"
	colGameweek        = "gameweek"
)

// CSVSource loads a prediction set from the CSV file written by the
// scoring pipeline. The file is header-driven, so column order does not
// matter; missing required columns are an error.
type CSVSource struct {
	Path string
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

// Load reads and parses the predictions file. An empty file or a file
// with headers but no rows yields ErrNoPredictions.
func (s *CSVSource) Load(ctx context.Context) (*Set, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open predictions file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoPredictions
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read predictions header: %w", err)
	}

	columns, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	set := &Set{}
	rowNum := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read predictions row %d: %w", rowNum, err)
		}

		rec, gameweek, err := parseRow(row, columns)
		if err != nil {
			return nil, fmt.Errorf("predictions row %d: %w", rowNum, err)
		}

		// Gameweek comes from the first row carrying one
		if set.Gameweek == 0 && gameweek > 0 {
			set.Gameweek = gameweek
		}

		set.Records = append(set.Records, rec)
		rowNum++
	}

	if len(set.Records) == 0 {
		return nil, ErrNoPredictions
	}

	return set, nil
}

// mapColumns resolves header names to column indices
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}

	required := []string{colWebName, colElementType, colTeamName, colNowCost, colPredictedPoints}
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("predictions file missing required column %q", name)
		}
	}

	return columns, nil
}

func parseRow(row []string, columns map[string]int) (Record, int, error) {
	field := func(name string) (string, error) {
		idx := columns[name]
		if idx >= len(row) {
			return "", fmt.Errorf("missing field %q", name)
		}
		return row[idx], nil
	}

	var rec Record
	var err error

	if rec.WebName, err = field(colWebName); err != nil {
		return rec, 0, err
	}
	if rec.TeamName, err = field(colTeamName); err != nil {
		return rec, 0, err
	}

	elementType, err := field(colElementType)
	if err != nil {
		return rec, 0, err
	}
	if rec.ElementType, err = strconv.Atoi(elementType); err != nil {
		return rec, 0, fmt.Errorf("invalid element_type %q: %w", elementType, err)
	}

	nowCost, err := field(colNowCost)
	if err != nil {
		return rec, 0, err
	}
	if rec.NowCost, err = strconv.ParseFloat(nowCost, 64); err != nil {
		return rec, 0, fmt.Errorf("invalid now_cost %q: %w", nowCost, err)
	}

	predictedPoints, err := field(colPredictedPoints)
	if err != nil {
		return rec, 0, err
	}
	if rec.PredictedPoints, err = strconv.ParseFloat(predictedPoints, 64); err != nil {
		return rec, 0, fmt.Errorf("invalid predicted_points %q: %w", predictedPoints, err)
	}

	gameweek := 0
	if idx, ok := columns[colGameweek]; ok && idx < len(row) && row[idx] != "" {
		if gameweek, err = strconv.Atoi(row[idx]); err != nil {
			return rec, 0, fmt.Errorf("invalid gameweek %q: %w", row[idx], err)
		}
	}

	return rec, gameweek, nil
}
