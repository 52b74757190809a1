package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vk/gridci/internal/baseconfig"
	"github.com/vk/gridci/internal/pipeline"
)

// printSummary writes the human-facing recap after a successful generate:
// where the document landed, how many jobs it holds, and the trigger
// snippet to paste into the parent pipeline.
func (a *App) printSummary(doc *pipeline.Document) {
	rule := strings.Repeat("=", 72)

	fmt.Fprintln(a.outW, rule)
	fmt.Fprintln(a.outW, "Pipeline generated")
	fmt.Fprintln(a.outW, rule)
	fmt.Fprintf(a.outW, "Pipeline file: %s\n", a.config.OutputPath)
	fmt.Fprintf(a.outW, "Total jobs:    %d\n", len(doc.Jobs))
	fmt.Fprintln(a.outW)
	fmt.Fprintln(a.outW, "To trigger this pipeline, add to your parent configuration:")
	fmt.Fprintln(a.outW)
	fmt.Fprintf(a.outW, "%s:\n", baseconfig.TriggerJob)
	fmt.Fprintln(a.outW, "  stage: build")
	fmt.Fprintln(a.outW, "  trigger:")
	fmt.Fprintln(a.outW, "    include:")
	fmt.Fprintf(a.outW, "      - artifact: %s\n", filepath.Base(a.config.OutputPath))
	fmt.Fprintln(a.outW, "        job: generate_pipeline")
	fmt.Fprintln(a.outW, "    strategy: depend")
	fmt.Fprintln(a.outW, rule)
}
