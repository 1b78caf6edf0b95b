package dashboard

import (
	"context"
	"log"
	"time"

	"pulseboard/internal/models"
	"pulseboard/internal/services/fetcher"
	"pulseboard/internal/services/formatter"
	"pulseboard/internal/services/generator"
	"pulseboard/internal/services/render"
)

// Source tells where a rendered snapshot came from.
type Source string

const (
	SourceRemote    Source = "remote"
	SourceSynthetic Source = "synthetic"
)

// Result describes one completed fetch-and-render cycle.
type Result struct {
	RenderID   string
	Source     Source
	Snapshot   *models.DashboardSnapshot
	FetchErr   error
	RenderedAt time.Time
}

// RenderRecorder counts renders per source.
type RenderRecorder interface {
	RecordRender(ctx context.Context, source string) error
}

// NoopRecorder is used when no counter backend is configured.
type NoopRecorder struct{}

func (NoopRecorder) RecordRender(context.Context, string) error { return nil }

type Service interface {
	// Bootstrap runs the page-load pipeline once: load the dashboard and
	// stamp the last-updated field.
	Bootstrap(ctx context.Context, target render.Target) Result
	// LoadDashboard fetches the data resource and renders it, substituting
	// synthetic data on any failure. It never fails.
	LoadDashboard(ctx context.Context, target render.Target) Result
	// GenerateRandomData synthesises a snapshot and renders it.
	GenerateRandomData(target render.Target)
	// StampLastUpdated writes the current time into the last-updated field.
	StampLastUpdated(target render.Target)
	// Snapshot makes the same fetch-or-synthesise decision without rendering.
	Snapshot(ctx context.Context) (*models.DashboardSnapshot, Source, error)
}

type service struct {
	fetcher   fetcher.Fetcher
	generator *generator.Generator
	format    *formatter.Formatter
	recorder  RenderRecorder
	now       func() time.Time
}

func NewService(
	f fetcher.Fetcher,
	g *generator.Generator,
	format *formatter.Formatter,
	recorder RenderRecorder,
) Service {
	if f == nil {
		panic("fetcher is required")
	}
	if g == nil {
		g = generator.New(nil)
	}
	if format == nil {
		format = formatter.New(formatter.DefaultLocale)
	}
	if recorder == nil {
		recorder = NoopRecorder{}
	}
	return &service{
		fetcher:   f,
		generator: g,
		format:    format,
		recorder:  recorder,
		now:       time.Now,
	}
}

func (s *service) renderer(target render.Target) *render.Renderer {
	return render.NewRenderer(target, s.format, s.now)
}

func (s *service) Bootstrap(ctx context.Context, target render.Target) Result {
	result := s.LoadDashboard(ctx, target)
	s.StampLastUpdated(target)
	return result
}

func (s *service) LoadDashboard(ctx context.Context, target render.Target) Result {
	result := Result{RenderID: RenderIDFromContext(ctx)}

	snapshot, err := s.fetcher.Fetch(ctx)
	if err != nil {
		log.Printf("⚠️ [%s] Error fetching dashboard data, rendering synthetic data: %v", result.RenderID, err)
		result.Source = SourceSynthetic
		result.FetchErr = err
		result.Snapshot = s.renderSynthetic(target)
	} else {
		s.renderer(target).UpdateDashboard(snapshot)
		result.Source = SourceRemote
		result.Snapshot = snapshot
	}
	result.RenderedAt = s.now()

	if err := s.recorder.RecordRender(ctx, string(result.Source)); err != nil {
		log.Printf("⚠️ [%s] Failed to record render: %v", result.RenderID, err)
	}
	return result
}

func (s *service) GenerateRandomData(target render.Target) {
	s.renderSynthetic(target)
}

func (s *service) renderSynthetic(target render.Target) *models.DashboardSnapshot {
	snapshot := s.generator.Generate(s.now())
	s.renderer(target).UpdateDashboard(snapshot)
	return snapshot
}

func (s *service) StampLastUpdated(target render.Target) {
	s.renderer(target).UpdateLastUpdated(s.now())
}

func (s *service) Snapshot(ctx context.Context) (*models.DashboardSnapshot, Source, error) {
	snapshot, err := s.fetcher.Fetch(ctx)
	if err != nil {
		log.Printf("⚠️ [%s] Error fetching dashboard data, serving synthetic data: %v", RenderIDFromContext(ctx), err)
		return s.generator.Generate(s.now()), SourceSynthetic, err
	}
	return snapshot, SourceRemote, nil
}
