// Package extract reads human-meaningful text out of a file so a name can be
// suggested for it.
//
// Variants, selected by [Registry] from the file extension with a content
// sniffing fallback:
//   - ImageExtractor: tesseract OCR with optional upscaling (image.go)
//   - TextExtractor: plain text and HTML (text.go)
//   - PdfExtractor: text runs of the first pages (pdf.go)
//   - AudioExtractor: ffmpeg clip plus speech transcription (audio.go)
//   - VideoExtractor: ffprobe audio check, then the audio path (video.go)
//
// External tools run through [CommandRunner]; failed runs are classified
// from stderr into the sentinel errors in errors.go.
package extract
