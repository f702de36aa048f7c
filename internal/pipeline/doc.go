// Package pipeline runs one batch over a directory: discovery, the
// optional test-batch limit, planning, preview, the confirmation gate and
// best-effort execution, followed by the summary report.
//
// Files:
//   - discover.go: non-recursive listing of regular files
//   - runner.go: Runner.Run and the summary
//   - execute.go: Renamer and the overwrite-safe FSRenamer
//   - confirm.go: Confirmer and the (Y/n) PromptConfirmer
//   - stats.go: RunStats
package pipeline
