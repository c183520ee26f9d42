// Package export writes JSON snapshots of the catalog to object storage.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/5w1tchy/library-catalog/internal/metrics"
	"github.com/5w1tchy/library-catalog/internal/models"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Source interface {
	All(ctx context.Context) ([]models.Book, error)
}

type Uploader interface {
	PutObject(ctx context.Context, objectKey, contentType string, body []byte) error
	PresignedDownloadURL(ctx context.Context, objectKey string) (string, error)
}

// Snapshot is the exported document.
type Snapshot struct {
	ExportedAt time.Time     `json:"exported_at"`
	Count      int           `json:"count"`
	Books      []models.Book `json:"books"`
}

// Result describes an uploaded snapshot.
type Result struct {
	Key   string
	URL   string
	Count int
}

type Exporter struct {
	src Source
	up  Uploader
	log *slog.Logger
	now func() time.Time
}

func New(src Source, up Uploader, log *slog.Logger) *Exporter {
	return &Exporter{src: src, up: up, log: log, now: time.Now}
}

// Run uploads a snapshot of every book and returns a presigned link to it.
func (e *Exporter) Run(ctx context.Context) (Result, error) {
	res, err := e.run(ctx)
	if err != nil {
		metrics.Exports.WithLabelValues("error").Inc()
		return Result{}, err
	}
	metrics.Exports.WithLabelValues("ok").Inc()
	return res, nil
}

func (e *Exporter) run(ctx context.Context) (Result, error) {
	books, err := e.src.All(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("[export] load books: %w", err)
	}

	at := e.now().UTC()
	body, err := Encode(Snapshot{ExportedAt: at, Count: len(books), Books: books})
	if err != nil {
		return Result{}, fmt.Errorf("[export] encode: %w", err)
	}

	key := ObjectKey(at, uuid.New())
	if err := e.up.PutObject(ctx, key, "application/json", body); err != nil {
		return Result{}, fmt.Errorf("[export] upload: %w", err)
	}

	url, err := e.up.PresignedDownloadURL(ctx, key)
	if err != nil {
		return Result{}, fmt.Errorf("[export] presign %s: %w", key, err)
	}

	e.log.Info("[export] snapshot uploaded", "key", key, "books", len(books), "bytes", len(body))
	return Result{Key: key, URL: url, Count: len(books)}, nil
}

// Encode renders a snapshot as indented JSON.
func Encode(s Snapshot) ([]byte, error) {
	if s.Books == nil {
		s.Books = []models.Book{}
	}
	return json.MarshalIndent(s, "", "  ")
}

// ObjectKey is exports/books-<UTC timestamp>-<id>.json.
func ObjectKey(at time.Time, id uuid.UUID) string {
	return fmt.Sprintf("exports/books-%s-%s.json", at.UTC().Format("20060102T150405Z"), id)
}
