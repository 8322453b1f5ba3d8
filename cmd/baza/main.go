// Command baza is the CLI driver: it loads CSV files into tables and
// runs SQL script files against them from the command line.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kbanas/baza/config"
	"github.com/kbanas/baza/csv"
	"github.com/kbanas/baza/errs"
	"github.com/kbanas/baza/interp"
	"github.com/kbanas/baza/parser"
	"github.com/kbanas/baza/script"
	"github.com/kbanas/baza/storage"
)

type loadFlags struct {
	table      string
	file       string
	delim      string
	configPath string
}

type runFlags struct {
	loads      []string
	configPath string
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "baza",
		Short: "A small relational query engine over in-memory tables",
	}

	rootCmd.AddCommand(loadCmd())
	rootCmd.AddCommand(runCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func loadCmd() *cobra.Command {
	flags := &loadFlags{}
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Create a table from a CSV file and print its contents",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runLoad(flags)
		},
	}

	cmd.Flags().StringVarP(&flags.table, "table", "t", "", "table name to create (required)")
	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "path to the CSV file to load (required)")
	cmd.Flags().StringVarP(&flags.delim, "delim", "d", "", "CSV field delimiter (defaults to the config value, or ',')")
	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "path to a baza.toml config file")
	_ = cmd.MarkFlagRequired("table")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runLoad(flags *loadFlags) error {
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return exitErr(err)
	}

	delim := cfg.Delimiter()
	if flags.delim != "" {
		r := []rune(flags.delim)
		delim = r[0]
	}

	db := storage.New()
	if err := loadCSVFile(db, flags.table, flags.file, delim); err != nil {
		return exitErr(err)
	}

	in := interp.New(db)
	in.PadWidth = cfg.Output.PadWidth

	q, err := parser.Parse("SELECT * FROM " + flags.table)
	if err != nil {
		return exitErr(err)
	}
	res, err := in.Execute(q)
	if err != nil {
		return exitErr(err)
	}
	printResult(res)
	return nil
}

func runCmd() *cobra.Command {
	flags := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run <script-file>",
		Short: "Execute a file of SQL statements against a database, optionally pre-loaded from CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runScript(args[0], flags)
		},
	}

	cmd.Flags().StringArrayVarP(&flags.loads, "load", "l", nil, "table=file.csv to load before running the script (repeatable)")
	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "path to a baza.toml config file")

	return cmd
}

func runScript(path string, flags *runFlags) error {
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return exitErr(err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return exitErr(errs.Wrap(errs.FileNotFound, err, "opening "+path))
	}

	db := storage.New()
	for _, spec := range flags.loads {
		table, file, ok := strings.Cut(spec, "=")
		if !ok {
			return exitErr(errs.Newf(errs.InvalidQuery, "--load %q must be of the form table=file.csv", spec))
		}
		if err := loadCSVFile(db, table, file, cfg.Delimiter()); err != nil {
			return exitErr(err)
		}
	}

	in := interp.New(db)
	in.PadWidth = cfg.Output.PadWidth

	for i, r := range script.Run(in, string(content)) {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "statement %d: %v\n", i+1, r.Err)
			if errs.KindOf(r.Err).Fatal() {
				return exitErr(r.Err)
			}
			continue
		}
		if r.Result != nil && r.Result.Columns != nil {
			printResult(r.Result)
		} else {
			fmt.Println("OK")
		}
	}
	return nil
}

func loadCSVFile(db *storage.Database, table, path string, delim rune) error {
	f, err := os.Open(path)
	if err != nil {
		return errs.Wrap(errs.FileNotFound, err, "opening "+path)
	}
	defer func() { _ = f.Close() }()

	return csv.Load(db, table, f, delim)
}

func printResult(res *interp.Result) {
	if res.Columns == nil {
		fmt.Printf("%d row(s) affected\n", res.RowsAffected)
		return
	}
	for _, row := range res.Rows {
		for _, cell := range row {
			fmt.Print(cell)
		}
		fmt.Println()
	}
}

func exitErr(err error) error {
	fmt.Fprintln(os.Stderr, err)
	return err
}
