package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/FromJayLee/starfield/pkg/scene"
	"github.com/FromJayLee/starfield/pkg/validation"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow)
	infoColor = color.New(color.FgCyan)
	okColor   = color.New(color.FgGreen, color.Bold)
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		errColor.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.Path != "" {
				fmt.Printf("    -> %s = %v\n", e.Path, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		warnColor.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.Path != "" {
				fmt.Printf("    -> %s = %v\n", w.Path, w.ActualValue)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		infoColor.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		okColor.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		errColor.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printSceneSummary(s *scene.Scene, out string) {
	fmt.Printf("Scene %dx%d, seed %d\n", s.Width, s.Height, s.Seed)
	fmt.Printf("%-16s %10s\n", "Layer", "Records")
	fmt.Printf("%-16s %10s\n", "----------------", "----------")
	for _, l := range s.Layers {
		fmt.Printf("%-16s %10d\n", l.Name, len(l.Records))
	}
	fmt.Printf("%-16s %10d\n", "TOTAL", s.TotalRecords())
	fmt.Printf("\nPreview written to %s\n", out)
}
