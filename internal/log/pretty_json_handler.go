package log

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
)

type PrettyJSONHandlerOptions struct {
	slog.HandlerOptions
	PrettyPrint bool
}

// NewPrettyJSONHandler returns a JSON handler which indents every record when PrettyPrint is set.
// Meant for reading logs in a terminal during development.
func NewPrettyJSONHandler(w io.Writer, opts *PrettyJSONHandlerOptions) slog.Handler {
	if opts == nil {
		opts = &PrettyJSONHandlerOptions{}
	}

	if !opts.PrettyPrint {
		return slog.NewJSONHandler(w, &opts.HandlerOptions)
	}

	h := &prettyHandler{writer: w, mu: &sync.Mutex{}, buf: &bytes.Buffer{}}
	h.JSONHandler = slog.NewJSONHandler(h.buf, &opts.HandlerOptions)
	return h
}

type prettyHandler struct {
	*slog.JSONHandler
	writer io.Writer
	mu     *sync.Mutex
	buf    *bytes.Buffer
}

func (h *prettyHandler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	defer h.buf.Reset()

	if err := h.JSONHandler.Handle(ctx, r); err != nil {
		return err
	}

	var indented bytes.Buffer
	if err := json.Indent(&indented, h.buf.Bytes(), "", "  "); err != nil {
		// fall back to the compact line
		_, err := h.writer.Write(h.buf.Bytes())
		return err
	}

	_, err := h.writer.Write(indented.Bytes())
	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyHandler{
		JSONHandler: h.JSONHandler.WithAttrs(attrs).(*slog.JSONHandler),
		writer:      h.writer,
		mu:          h.mu,
		buf:         h.buf,
	}
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	return &prettyHandler{
		JSONHandler: h.JSONHandler.WithGroup(name).(*slog.JSONHandler),
		writer:      h.writer,
		mu:          h.mu,
		buf:         h.buf,
	}
}
