// Package naming turns raw model output into safe filename tokens and
// assigns collision-free final names within one run.
//
// Pieces:
//   - NameCounter: per-run base-name usage counts and issued names;
//     Allocate yields "base.ext", then "base_2.ext", "base_3.ext", ...,
//     skipping any name already issued in the run (allocator.go)
//   - Rules: injectable blacklist, abbreviations and length limits, and
//     Normalize for model output (postprocess.go)
//   - Fallback: ordered rules that derive a token from the original filename
//     when the model output is degenerate (fallback.go)
package naming
