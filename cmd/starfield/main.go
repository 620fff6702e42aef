package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/FromJayLee/starfield/internal/logging"
	"github.com/FromJayLee/starfield/internal/server"
)

// Flags shared by the generation commands. Zero values mean "use the
// profile's setting".
type genFlags struct {
	seed    int32
	width   int
	height  int
	seedSet bool
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "starfield",
		Short: "Deterministic starfield/nebula background generator",
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addGenFlags(cmd *cobra.Command, f *genFlags) {
	cmd.Flags().Int32Var(&f.seed, "seed", 0, "generation seed (default: profile seed)")
	cmd.Flags().IntVar(&f.width, "width", 0, "canvas width in pixels (default: profile width)")
	cmd.Flags().IntVar(&f.height, "height", 0, "canvas height in pixels (default: profile height)")
}

func generateCmd() *cobra.Command {
	var flags genFlags

	cmd := &cobra.Command{
		Use:   "generate [project-path]",
		Short: "Generate a scene and write it as JSON to stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.seedSet = cmd.Flags().Changed("seed")
			return runGenerate(projectPath(args), flags)
		},
	}
	addGenFlags(cmd, &flags)
	return cmd
}

func validateCmd() *cobra.Command {
	var flags genFlags

	cmd := &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a generation profile and a sample scene",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.seedSet = cmd.Flags().Changed("seed")
			return runValidate(projectPath(args), flags)
		},
	}
	addGenFlags(cmd, &flags)
	return cmd
}

func renderCmd() *cobra.Command {
	var flags genFlags
	var out string

	cmd := &cobra.Command{
		Use:   "render [project-path]",
		Short: "Generate a scene and rasterize it to a PNG preview",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.seedSet = cmd.Flags().Changed("seed")
			return runRender(projectPath(args), flags, out)
		},
	}
	addGenFlags(cmd, &flags)
	cmd.Flags().StringVarP(&out, "out", "o", "starfield.png", "output PNG path")
	return cmd
}

func serveCmd() *cobra.Command {
	var port int
	var logFile string

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local dev server with a live preview",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			log, err := logging.New(true, logFile)
			if err != nil {
				return err
			}
			defer log.Sync()

			srv := server.New(projectPath(args), port, log)
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	cmd.Flags().StringVar(&logFile, "log-file", "", "optional rotated log file")
	return cmd
}

func projectPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
