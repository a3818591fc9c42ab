package transcode

import "context"

// AudioTranscoder encodes the audio track of inputPath into outputPath and
// removes inputPath once the output is complete.
type AudioTranscoder interface {
	ExtractAudio(ctx context.Context, inputPath, outputPath string) error
}
