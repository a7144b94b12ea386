package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"parc"
	"parc/internal/render"
	"parc/jsonval"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.json|directory>...",
	Short: "Validate JSON files and report parse failures",
	Long:  `Validate JSON files (or all *.json files within directories) and report parse failures as compiler-style diagnostics`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().Bool("quiet", false, "suppress per-file success output")
}

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// checkResult holds the outcome for one file; Err and ReadErr are
// mutually exclusive.
type checkResult struct {
	Path    string
	Input   []byte
	Err     *parc.Error[string]
	ReadErr error
}

func runCheck(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no JSON files found in %s", strings.Join(args, ", "))
	}

	manifest, _, err := loadConfig(".")
	if err != nil {
		return err
	}

	colorMode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	contextLines, err := cmd.Root().PersistentFlags().GetInt("context")
	if err != nil {
		return fmt.Errorf("failed to get context flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	colorOn := resolveColor(colorMode, manifest)
	if !cmd.Root().PersistentFlags().Changed("context") && manifest != nil && manifest.Output.Context > 0 {
		contextLines = manifest.Output.Context
	}
	if jobs <= 0 {
		if manifest != nil && manifest.Check.Jobs > 0 {
			jobs = manifest.Check.Jobs
		} else {
			jobs = runtime.NumCPU()
		}
	}

	// Fan out; results land at fixed indices so output order stays
	// deterministic regardless of scheduling.
	results := make([]checkResult, len(files))
	var g errgroup.Group
	g.SetLimit(jobs)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			results[i] = checkFile(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	opts := render.Options{Color: colorOn, Context: contextLines}
	for _, res := range results {
		switch {
		case res.ReadErr != nil:
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", res.Path, res.ReadErr)
		case res.Err != nil:
			failed++
			render.Print(os.Stderr, res.Path, res.Input, res.Err, opts)
		case !quiet:
			fmt.Fprintf(os.Stdout, "%s: ok\n", res.Path)
		}
	}

	summary := fmt.Sprintf("%d files checked, %d failed", len(files), failed)
	if colorOn {
		if failed > 0 {
			summary = failStyle.Render(summary)
		} else {
			summary = okStyle.Render(summary)
		}
	}
	fmt.Fprintln(os.Stderr, summary)

	if failed > 0 {
		os.Exit(1)
	}
	return nil
}

func checkFile(path string) checkResult {
	input, err := os.ReadFile(path)
	if err != nil {
		return checkResult{Path: path, ReadErr: err}
	}
	res := checkResult{Path: path, Input: input}
	if _, err := jsonval.Parse(input); err != nil {
		var perr *parc.Error[string]
		if errors.As(err, &perr) {
			res.Err = perr
		} else {
			res.ReadErr = err
		}
	}
	return res
}

// collectFiles expands arguments into a sorted, de-duplicated list of
// JSON files; directories are walked recursively for *.json.
func collectFiles(args []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string
	add := func(p string) {
		p = filepath.ToSlash(filepath.Clean(p))
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			files = append(files, p)
		}
	}
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(arg)
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(path, ".json") {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(files)
	return files, nil
}
