package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/tutils/randx"
	"github.com/tutils/randx/stats"
)

const (
	formatAuto  = "auto"
	formatText  = "text"
	formatJSON  = "json"
	formatCSV   = "csv"
	formatTable = "table"
)

// outputFormat resolves the configured format. "auto" renders a table on
// a terminal and plain text otherwise.
func outputFormat(w io.Writer) (string, error) {
	f := strings.ToLower(viper.GetString("format"))
	switch f {
	case formatText, formatJSON, formatCSV, formatTable:
		return f, nil
	case formatAuto, "":
		if file, ok := w.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
			return formatTable, nil
		}
		return formatText, nil
	default:
		return "", fmt.Errorf("unsupported output format: '%s'", f)
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeResult(w io.Writer, res *randx.Result) error {
	format, err := outputFormat(w)
	if err != nil {
		return err
	}

	values := res.Strings()
	switch format {
	case formatJSON:
		return writeJSON(w, struct {
			*randx.Result
			Values interface{} `json:"values"`
		}{res, res.Values()})
	case formatCSV:
		cw := csv.NewWriter(w)
		cw.Write([]string{"index", "value"})
		for i, v := range values {
			cw.Write([]string{strconv.Itoa(i), v})
		}
		cw.Flush()
		return cw.Error()
	case formatTable:
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"#", res.Distribution})
		for i, v := range values {
			table.Append([]string{strconv.Itoa(i), v})
		}
		table.Render()
		return nil
	default:
		for _, v := range values {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return err
			}
		}
		return nil
	}
}

func writeBatch(w io.Writer, batch [][]float64) error {
	format, err := outputFormat(w)
	if err != nil {
		return err
	}
	if format == formatJSON {
		return writeJSON(w, batch)
	}

	rows := make([][]string, len(batch))
	for i, s := range batch {
		rows[i] = make([]string, len(s))
		for j, u := range s {
			rows[i][j] = strconv.FormatFloat(u, 'g', -1, 64)
		}
	}

	switch format {
	case formatCSV:
		cw := csv.NewWriter(w)
		cw.WriteAll(rows)
		return cw.Error()
	case formatTable:
		table := tablewriter.NewWriter(w)
		header := []string{"#"}
		for j := range batch[0] {
			header = append(header, fmt.Sprintf("u%d", j+1))
		}
		table.SetHeader(header)
		for i, row := range rows {
			table.Append(append([]string{strconv.Itoa(i)}, row...))
		}
		table.Render()
		return nil
	default:
		for _, row := range rows {
			if _, err := fmt.Fprintln(w, strings.Join(row, " ")); err != nil {
				return err
			}
		}
		return nil
	}
}

func writeSummary(w io.Writer, res *randx.Result, s stats.Summary) error {
	format, err := outputFormat(w)
	if err != nil {
		return err
	}
	if format == formatJSON {
		return writeJSON(w, struct {
			*randx.Result
			Summary stats.Summary `json:"summary"`
		}{res, s})
	}

	f := func(v float64) string {
		return strconv.FormatFloat(v, 'g', 6, 64)
	}
	rows := [][]string{
		{"distribution", res.Distribution},
		{"seed", strconv.FormatInt(res.Seed, 10)},
		{"requested", strconv.Itoa(res.Size)},
		{"returned", strconv.Itoa(s.Count)},
		{"mean", f(s.Mean)},
		{"variance", f(s.Variance)},
		{"stddev", f(s.StdDev)},
		{"min", f(s.Min)},
		{"median", f(s.Median)},
		{"max", f(s.Max)},
	}

	switch format {
	case formatCSV:
		cw := csv.NewWriter(w)
		cw.Write([]string{"statistic", "value"})
		cw.WriteAll(rows)
		return cw.Error()
	case formatTable:
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"statistic", "value"})
		for _, row := range rows {
			table.Append(row)
		}
		table.Render()
		return nil
	default:
		for _, row := range rows {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", row[0], row[1]); err != nil {
				return err
			}
		}
		return nil
	}
}
