package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mohammed-shakir/hexgrid/internal/covering"
)

var coverFlags struct {
	res   int
	file  string
	count bool
}

var coverCmd = &cobra.Command{
	Use:   "cover",
	Short: "Cover a geometry with cells at a resolution",
	Long: `cover reads a geometry document (JSON) from --file or stdin and
prints the cell indexes covering it, one per line.

The document has a "kind" field (point, multipoint, line, linestring,
multilinestring, polygon, multipolygon, rect, triangle, collection) and
the matching coordinate field. Set "degrees": true for degree input.`,
	Example: `  echo '{"kind":"polygon","degrees":true,"rings":[[[59,17],[60,17],[60,19],[59,19],[59,17]]]}' \
    | hexgrid cover --res 5`,
	Args: cobra.NoArgs,
	RunE: runCover,
}

func init() {
	coverCmd.Flags().IntVar(&coverFlags.res, "res", 7, "covering resolution (0-15)")
	coverCmd.Flags().StringVarP(&coverFlags.file, "file", "f", "", "read the geometry document from a file instead of stdin")
	coverCmd.Flags().BoolVar(&coverFlags.count, "count", false, "print only the number of cells")
	rootCmd.AddCommand(coverCmd)
}

func runCover(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	if coverFlags.file != "" {
		f, err := os.Open(coverFlags.file)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	var doc covering.GeometryDoc
	dec := json.NewDecoder(in)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("decode geometry: %w", err)
	}

	req, err := covering.ParseRequest(doc, coverFlags.res)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	n := 0
	for c := range req.Geometry.ToCells(req.Resolution) {
		n++
		if !coverFlags.count {
			fmt.Fprintln(out, c)
		}
	}
	if coverFlags.count {
		fmt.Fprintln(out, n)
	}
	return nil
}
