package martindb

import (
	"log/slog"
	"os"
	"time"

	slogseq "github.com/sokkalf/slog-seq"
)

// SetupLogger builds the process logger. With an empty seqURL it logs
// text to stdout; otherwise records ship to the given Seq endpoint,
// falling back to stdout when Seq is unavailable. The returned func
// flushes the handler and should run on shutdown.
func SetupLogger(seqURL string) (*slog.Logger, func()) {
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	if seqURL == "" {
		return slog.New(textHandler), func() {}
	}

	_, seqHandler := slogseq.NewLogger(
		seqURL,
		slogseq.WithBatchSize(10),
		slogseq.WithFlushInterval(500*time.Millisecond),
		slogseq.WithHandlerOptions(&slog.HandlerOptions{
			Level: slog.LevelDebug,
		}),
	)
	if seqHandler == nil {
		return slog.New(textHandler), func() {}
	}

	return slog.New(seqHandler), func() { seqHandler.Close() }
}
