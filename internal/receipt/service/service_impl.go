package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"github.com/rasidhq/rasid/internal/config"
	"github.com/rasidhq/rasid/internal/providers/pdf"
	"github.com/rasidhq/rasid/internal/receipt/compute"
	"github.com/rasidhq/rasid/internal/receipt/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Repo     domain.Repository
	Renderer pdf.Renderer
	Defaults *config.DefaultsHolder
}

// Service owns the single draft. All handlers go through it, so the mutex
// keeps edits sequential the way browser events are.
type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	repo     domain.Repository
	renderer pdf.Renderer
	defaults *config.DefaultsHolder

	mu    sync.Mutex
	draft domain.ReceiptDraft
}

func New(p Params) domain.Service {
	s := &Service{
		db:       p.DB,
		log:      p.Log.Named("receipt.service"),
		genID:    p.GenID,
		repo:     p.Repo,
		renderer: p.Renderer,
		defaults: p.Defaults,
	}
	s.draft = s.rehydrate(context.Background())
	return s
}

// rehydrate restores the persisted draft, falling back to a fresh one when
// the store is empty, unreadable or unparseable. Storage problems are never
// surfaced past the log.
func (s *Service) rehydrate(ctx context.Context) domain.ReceiptDraft {
	saved, err := s.repo.Load(ctx, s.db)
	if err != nil {
		s.log.Warn("could not restore saved draft, starting fresh", zap.Error(err))
	}
	if saved != nil && len(saved.Items) > 0 {
		return *saved
	}
	return domain.NewDraft(s.genID, time.Now(), s.receiptDefaults())
}

func (s *Service) receiptDefaults() domain.Defaults {
	d := s.defaults.Receipt()
	return domain.Defaults{IGSTPercent: d.IGSTPercent, Country: d.Country}
}

func (s *Service) Get(_ context.Context) domain.DraftView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return view(s.draft)
}

func (s *Service) Apply(ctx context.Context, update domain.Update) (domain.DraftView, error) {
	if update == nil {
		return domain.DraftView{}, domain.ErrInvalidUpdate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft = update.Apply(s.draft)
	s.persist(ctx)
	return view(s.draft), nil
}

// Reset discards the draft and its persisted copy and starts over with fresh
// defaults, including a newly generated receipt number.
func (s *Service) Reset(ctx context.Context) domain.DraftView {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Clear(ctx, s.db); err != nil {
		s.log.Warn("could not clear saved draft", zap.Error(err))
	}
	s.draft = domain.NewDraft(s.genID, time.Now(), s.receiptDefaults())
	return view(s.draft)
}

// Export validates the draft and renders the PDF artifact. Validation
// failures leave the draft untouched and yield no artifact.
func (s *Service) Export(ctx context.Context) (domain.ExportResult, error) {
	s.mu.Lock()
	draft := s.draft
	s.mu.Unlock()

	draft.Seller.GSTIN = domain.NormalizeGSTIN(draft.Seller.GSTIN)
	draft.Buyer.GSTIN = domain.NormalizeGSTIN(draft.Buyer.GSTIN)

	if err := domain.ValidateForExport(draft); err != nil {
		return domain.ExportResult{}, err
	}

	data, err := s.renderer.RenderReceipt(ctx, draft)
	if err != nil {
		s.log.Error("receipt render failed", zap.Error(err))
		return domain.ExportResult{}, fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}

	return domain.ExportResult{
		Filename: exportFilename(draft.ReceiptNumber),
		Data:     data,
	}, nil
}

// persist writes the draft through best-effort; a broken store must not
// block editing.
func (s *Service) persist(ctx context.Context) {
	if err := s.repo.Save(ctx, s.db, s.draft); err != nil {
		s.log.Warn("could not persist draft", zap.Error(err))
	}
}

func view(draft domain.ReceiptDraft) domain.DraftView {
	return domain.DraftView{
		Draft:      draft,
		SubTotal:   compute.SubTotal(draft.Items),
		TotalTax:   compute.TotalTax(draft.Items),
		GrandTotal: compute.GrandTotal(draft.Items),
	}
}

var safeFilename = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// exportFilename derives the download name from the receipt number,
// slugifying anything that would be unsafe in a filename.
func exportFilename(receiptNumber string) string {
	name := strings.TrimSpace(receiptNumber)
	if name != "" && !safeFilename.MatchString(name) {
		name = slug.Make(name)
	}
	if name == "" {
		name = "receipt"
	}
	return name + ".pdf"
}
