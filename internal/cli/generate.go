package cli

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vk/gridci/internal/app"
)

func newGenerateCommand(outW, errW io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <manifest-path>",
		Short: "Compile a package-graph manifest into a child pipeline document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logFormat, logLevel, err := logFlags(cmd)
			if err != nil {
				return err
			}

			// Environment bindings mirror the variables the parent
			// pipeline historically controlled these knobs with.
			v := viper.New()
			_ = v.BindPFlag("dry_run", cmd.Flags().Lookup("dry-run"))
			_ = v.BindEnv("dry_run", "DRYRUN")
			_ = v.BindEnv("cuda_compute", "CUDA_COMPUTE_CAPABILITIES")
			_ = v.BindEnv("scheduler_params", "SCHEDULER_PARAMETERS")

			configPath, _ := cmd.Flags().GetString("config")
			outputPath, _ := cmd.Flags().GetString("output")

			cfg, err := app.NewConfig(app.Config{
				ManifestPath:    args[0],
				ConfigPath:      configPath,
				OutputPath:      outputPath,
				DryRun:          isTruthy(v.GetString("dry_run")),
				CUDACompute:     v.GetString("cuda_compute"),
				SchedulerParams: v.GetString("scheduler_params"),
				LogFormat:       logFormat,
				LogLevel:        logLevel,
			})
			if err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}

			return app.NewApp(outW, errW, cfg).Generate(cmd.Context())
		},
	}

	cmd.Flags().String("config", ".gitlab-ci.yml", "Path to the base configuration document.")
	cmd.Flags().String("output", "easybuild-child-pipeline.yml", "Path to write the pipeline document.")
	cmd.Flags().Bool("dry-run", false, "Generate jobs that invoke the build in dry-run mode.")

	return cmd
}
