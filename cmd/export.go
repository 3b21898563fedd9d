package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	sim "github.com/paging-sim/paging-sim/sim"
)

// Output formats accepted by --format.
const (
	formatTable   = "table"
	formatSteps   = "steps"
	formatJSON    = "json"
	formatYAML    = "yaml"
	formatMsgpack = "msgpack"
	formatCSV     = "csv"
)

var validFormats = map[string]bool{
	formatTable: true, formatSteps: true, formatJSON: true,
	formatYAML: true, formatMsgpack: true, formatCSV: true,
}

func isValidFormat(format string) bool {
	return validFormats[format]
}

// validFormatNames returns the accepted --format values, sorted.
func validFormatNames() []string {
	names := make([]string, 0, len(validFormats))
	for name := range validFormats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// exportResults writes results to path (stdout when empty) in format.
func exportResults(path, format string, results []*sim.SimulationResult) error {
	if format == formatMsgpack && path == "" {
		return fmt.Errorf("msgpack output is binary; --out is required")
	}
	if path == "" {
		return writeResults(os.Stdout, format, results)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() { _ = file.Close() }()
	if err := writeResults(file, format, results); err != nil {
		return err
	}
	return file.Close()
}

// writeResults encodes results to w. Structured formats encode a single
// result as an object and several as a list.
func writeResults(w io.Writer, format string, results []*sim.SimulationResult) error {
	var payload any = results
	if len(results) == 1 {
		payload = results[0]
	}

	switch format {
	case formatTable:
		for _, r := range results {
			renderTable(w, r)
			_, _ = fmt.Fprintln(w)
		}
		if len(results) > 1 {
			renderComparison(w, results)
		}
		return nil
	case formatSteps:
		for _, r := range results {
			renderSteps(w, r)
		}
		return nil
	case formatJSON:
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("JSON marshal failed: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case formatYAML:
		data, err := yaml.Marshal(payload)
		if err != nil {
			return fmt.Errorf("YAML marshal failed: %w", err)
		}
		_, err = w.Write(data)
		return err
	case formatMsgpack:
		data, err := msgpack.Marshal(payload)
		if err != nil {
			return fmt.Errorf("msgpack marshal failed: %w", err)
		}
		_, err = w.Write(data)
		return err
	case formatCSV:
		return writeCSV(w, results)
	default:
		return fmt.Errorf("unknown format %q; valid: %v", format, validFormatNames())
	}
}

// writeCSV writes one row per step:
// algorithm,step,reference,fault,evicted,frame_1..frame_N.
// Empty slots and the absence of an eviction are written as "-".
func writeCSV(w io.Writer, results []*sim.SimulationResult) error {
	frames := 0
	for _, r := range results {
		frames = max(frames, r.FrameCount)
	}

	writer := csv.NewWriter(w)
	header := []string{"algorithm", "step", "reference", "fault", "evicted"}
	for i := 1; i <= frames; i++ {
		header = append(header, "frame_"+strconv.Itoa(i))
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, r := range results {
		name := r.Algorithm.String()
		for i, s := range r.Steps {
			record := []string{
				name,
				strconv.Itoa(i + 1),
				strconv.Itoa(int(s.Reference)),
				strconv.FormatBool(s.Fault),
				s.Evicted.String(),
			}
			for slot := 0; slot < frames; slot++ {
				cell := "-"
				if slot < len(s.Frames) {
					cell = s.Frames[slot].String()
				}
				record = append(record, cell)
			}
			if err := writer.Write(record); err != nil {
				return fmt.Errorf("writing CSV row: %w", err)
			}
		}
	}
	writer.Flush()
	return writer.Error()
}
