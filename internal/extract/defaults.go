package extract

import "github.com/srinivassivaratri/namemate/internal/config"

// File type tables for the default registry.
var (
	ImageExts = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp", ".pnm"}
	TextExts  = []string{".txt", ".md", ".markdown", ".rst", ".csv", ".tsv", ".log", ".json", ".yaml", ".yml", ".xml", ".html", ".htm", ".xhtml"}
	PdfExts   = []string{".pdf"}
	AudioExts = []string{".mp3", ".wav", ".m4a", ".flac", ".ogg", ".opus", ".aac"}
	VideoExts = []string{".mp4", ".mkv", ".mov", ".webm", ".avi", ".m4v"}
)

// NewDefaultRegistry wires every extractor variant from cfg. Audio and
// video are registered only when t is non-nil.
func NewDefaultRegistry(cfg config.ExtractConfig, verbose bool, t Transcriber, log Logger) *Registry {
	runner := ExecRunner{Verbose: verbose}
	r := NewRegistry(cfg.MaxContentChars, log)
	r.Verbose = verbose

	img := &ImageExtractor{
		Runner:        runner,
		Tesseract:     cfg.TesseractPath,
		Language:      cfg.OCRLanguage,
		PageSegMode:   cfg.OCRPageSegMode,
		MinConfidence: cfg.OCRMinConfidence,
		MinWidth:      cfg.OCRMinWidth,
	}
	r.Register(img, ImageExts...)
	r.RegisterMIME(img, "image/*")

	txt := &TextExtractor{MaxBytes: cfg.MaxContentChars * 4}
	r.Register(txt, TextExts...)
	r.RegisterMIME(txt, "text/*")

	p := &PdfExtractor{MaxPages: cfg.PDFMaxPages}
	r.Register(p, PdfExts...)
	r.RegisterMIME(p, "application/pdf")

	if t == nil {
		return r
	}
	audio := &AudioExtractor{
		Runner:      runner,
		FFmpeg:      cfg.FFmpegPath,
		MaxSeconds:  cfg.MediaMaxSeconds,
		Transcriber: t,
	}
	r.Register(audio, AudioExts...)
	r.RegisterMIME(audio, "audio/*")

	video := &VideoExtractor{Runner: runner, FFprobe: cfg.FFprobePath, Audio: audio}
	r.Register(video, VideoExts...)
	r.RegisterMIME(video, "video/*")
	return r
}
