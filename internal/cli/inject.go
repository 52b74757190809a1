package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vk/gridci/internal/app"
)

func newInjectCommand(outW, errW io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inject <pipeline-file>",
		Short: "Inject base configuration defaults into an existing pipeline document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logFormat, logLevel, err := logFlags(cmd)
			if err != nil {
				return err
			}

			configPath, _ := cmd.Flags().GetString("config")

			cfg, err := app.NewConfig(app.Config{
				PipelinePath: args[0],
				ConfigPath:   configPath,
				LogFormat:    logFormat,
				LogLevel:     logLevel,
			})
			if err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}

			return app.NewApp(outW, errW, cfg).Inject(cmd.Context())
		},
	}

	cmd.Flags().String("config", ".gitlab-ci.yml", "Path to the base configuration document.")

	return cmd
}
