package favorites

import (
	"context"
	"fmt"
	"strings"
	"time"

	"leetcode-tracker/core/leetcode"
	"leetcode-tracker/core/reconcile"
	"leetcode-tracker/core/snapshot"

	"go.uber.org/zap"
)

// SyncRequest describes one sync run.
type SyncRequest struct {
	// Slug is the list to fetch. Empty means the default list.
	Slug leetcode.FavoriteSlug
	// PreviousPath is the snapshot to merge with. A missing file counts as no snapshot.
	PreviousPath string
	// AutoPrevious picks the latest report in the output directory when PreviousPath is empty.
	AutoPrevious bool
	// DryRun reconciles without writing the report.
	DryRun bool
}

// SyncResult is the success half of a sync result.
type SyncResult struct {
	Slug leetcode.FavoriteSlug `json:"favorite_slug"`
	// Path is the written report, or the path it would have had on a dry run.
	Path string `json:"path"`
	// PreviousPath is the snapshot that was merged, if any.
	PreviousPath string            `json:"previous_path,omitempty"`
	Written      bool              `json:"written"`
	Report       *reconcile.Report `json:"report"`
}

// Service runs fetch, reconcile and write for curated lists.
type Service struct {
	fetcher leetcode.Fetcher
	baseURL string
	report  snapshot.Config
	logger  *zap.Logger
	now     func() time.Time
}

// NewService creates a new favorites service.
func NewService(fetcher leetcode.Fetcher, baseURL string, report snapshot.Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		fetcher: fetcher,
		baseURL: baseURL,
		report:  report.WithDefaults(),
		logger:  logger,
		now:     time.Now,
	}
}

// SetClock replaces the clock used to date report files.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Questions returns the current contents of a list.
func (s *Service) Questions(ctx context.Context, slug leetcode.FavoriteSlug) ([]leetcode.Question, error) {
	slug, err := normalizeSlug(slug)
	if err != nil {
		return nil, err
	}

	questions, err := s.fetcher.FetchFavoriteQuestions(ctx, slug)
	if err != nil {
		return nil, &Error{Kind: KindFetch, Op: "fetch questions", Err: err}
	}
	return questions, nil
}

// Sync fetches the list, merges it with the previous snapshot and writes the
// dated report.
func (s *Service) Sync(ctx context.Context, req SyncRequest) (*SyncResult, error) {
	slug, err := normalizeSlug(req.Slug)
	if err != nil {
		return nil, err
	}
	l := s.logger.With(zap.String("favorite_slug", slug.String()))

	l.Info("Getting questions...")
	questions, err := s.fetcher.FetchFavoriteQuestions(ctx, slug)
	if err != nil {
		return nil, &Error{Kind: KindFetch, Op: "fetch questions", Err: err}
	}

	prevPath := req.PreviousPath
	if prevPath == "" && req.AutoPrevious {
		latest, found, err := snapshot.Latest(s.report.OutputDir, s.report.Prefix, slug.String(), s.report.DateLayout)
		if err != nil {
			return nil, &Error{Kind: KindSnapshotRead, Op: "find previous report", Err: err}
		}
		if found {
			prevPath = latest
		}
	}

	var previous reconcile.Snapshot
	if prevPath != "" {
		l.Info("Reading previous CSV...", zap.String("path", prevPath))
		previous, err = snapshot.Read(prevPath)
		if err != nil {
			return nil, &Error{Kind: KindSnapshotRead, Op: "read previous report", Err: err}
		}
		if previous.IsEmpty() {
			l.Warn("Previous CSV not found, treating as empty", zap.String("path", prevPath))
		}
	}

	report := reconcile.Reconcile(questions, previous, s.baseURL)

	name := snapshot.FileName(s.report.Prefix, slug.String(), s.now(), s.report.DateLayout)
	result := &SyncResult{
		Slug:         slug,
		Path:         name,
		PreviousPath: prevPath,
		Report:       report,
	}

	if req.DryRun {
		l.Info("Dry run, report not written", summaryFields(report.Summary)...)
		return result, nil
	}

	l.Info(fmt.Sprintf("Writing %d questions to csv...", len(questions)))
	path, err := snapshot.Write(s.report.OutputDir, name, report)
	if err != nil {
		return nil, &Error{Kind: KindWrite, Op: "write report", Err: err}
	}
	result.Path = path
	result.Written = true

	l.Info("Successfully wrote questions to "+path, summaryFields(report.Summary)...)
	return result, nil
}

// Preview reconciles a list against its latest saved report without writing.
func (s *Service) Preview(ctx context.Context, slug leetcode.FavoriteSlug) (*SyncResult, error) {
	return s.Sync(ctx, SyncRequest{Slug: slug, AutoPrevious: true, DryRun: true})
}

// normalizeSlug applies the default list and rejects identifiers that cannot
// be part of a file name.
func normalizeSlug(slug leetcode.FavoriteSlug) (leetcode.FavoriteSlug, error) {
	slug = leetcode.ParseFavoriteSlug(slug.String())
	if strings.ContainsAny(slug.String(), `/\`) || strings.Contains(slug.String(), "..") {
		return "", &Error{
			Kind: KindInvalidInput,
			Op:   "validate favorite slug",
			Err:  fmt.Errorf("invalid favorite slug %q", slug),
		}
	}
	return slug, nil
}

func summaryFields(s reconcile.Summary) []zap.Field {
	return []zap.Field{
		zap.Int("total", s.Total),
		zap.Int("current", s.Current),
		zap.Int("new", s.New),
		zap.Int("retained", s.Retained),
		zap.Int("reactivated", s.Reactivated),
		zap.Int("outdated", s.Outdated),
	}
}
