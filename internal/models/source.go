package models

import (
	"path/filepath"
	"strings"
)

var sourceByExt = map[string]Source{
	".txt": SourceText,
	".md":  SourceText,

	".wav":  SourceAudio,
	".mp3":  SourceAudio,
	".m4a":  SourceAudio,
	".flac": SourceAudio,
	".ogg":  SourceAudio,
	".opus": SourceAudio,
	".aac":  SourceAudio,

	// video containers, audio is extracted with ffmpeg
	".mp4":  SourceAudio,
	".mov":  SourceAudio,
	".avi":  SourceAudio,
	".mkv":  SourceAudio,
	".webm": SourceAudio,
	".m4v":  SourceAudio,
	".flv":  SourceAudio,
}

// SourceFor classifies path by its extension. ok is false for files the
// pipeline cannot handle.
func SourceFor(path string) (src Source, ok bool) {
	src, ok = sourceByExt[strings.ToLower(filepath.Ext(path))]
	return src, ok
}
