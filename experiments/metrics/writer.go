package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	baseDir string
}

func NewWriter() (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("experiments", "selfplay", timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) WriteMatches(records []MatchRecord) error {
	path := filepath.Join(w.baseDir, "matches.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create matches file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "seed", "winner", "rounds", "moves", "start_time", "duration"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write matches header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.ID,
			strconv.FormatUint(r.Seed, 10),
			r.Winner,
			strconv.Itoa(r.Rounds),
			strconv.Itoa(r.Moves),
			r.StartTime.UTC().Format(time.RFC3339),
			r.Duration.String(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write match row: %w", err)
		}
	}
	return nil
}

func (w *Writer) WriteMoves(records []MoveRecord) error {
	path := filepath.Join(w.baseDir, "moves.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create moves file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{
		"match", "round", "faction", "x", "y", "cost",
		"captured", "fortress_built", "tower_captured", "portal_captured",
		"bridge_built", "mountain_converted",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write moves header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.Match,
			strconv.Itoa(r.Round),
			r.Faction,
			strconv.Itoa(r.X),
			strconv.Itoa(r.Y),
			strconv.Itoa(r.Cost),
			strconv.FormatBool(r.Captured),
			strconv.FormatBool(r.FortressBuilt),
			strconv.FormatBool(r.TowerCaptured),
			strconv.FormatBool(r.PortalCaptured),
			strconv.FormatBool(r.BridgeBuilt),
			strconv.FormatBool(r.MountainConverted),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write move row: %w", err)
		}
	}
	return nil
}
