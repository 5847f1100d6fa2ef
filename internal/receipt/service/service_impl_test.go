package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/rasidhq/rasid/internal/config"
	"github.com/rasidhq/rasid/internal/receipt/domain"
	"github.com/rasidhq/rasid/internal/receipt/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeRenderer struct {
	data []byte
	err  error
}

func (f *fakeRenderer) RenderReceipt(ctx context.Context, draft domain.ReceiptDraft) ([]byte, error) {
	_ = ctx
	_ = draft
	return f.data, f.err
}

func newTestService(t *testing.T, db *gorm.DB, renderer *fakeRenderer) domain.Service {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	holder, err := config.NewDefaultsHolder()
	require.NoError(t, err)

	return New(Params{
		DB:       db,
		Log:      zap.NewNop(),
		GenID:    node,
		Repo:     repository.Provide(),
		Renderer: renderer,
		Defaults: holder,
	})
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))
	return db
}

func fillValid(t *testing.T, svc domain.Service) domain.DraftView {
	t.Helper()
	ctx := context.Background()
	apply := func(u domain.Update) domain.DraftView {
		v, err := svc.Apply(ctx, u)
		require.NoError(t, err)
		return v
	}
	apply(domain.SetAddressField{Party: domain.PartySeller, Field: domain.AddressCompanyName, Value: "Acme Traders"})
	apply(domain.SetAddressField{Party: domain.PartySeller, Field: domain.AddressGSTIN, Value: "22AAAAA0000A1Z5"})
	apply(domain.SetAddressField{Party: domain.PartyBuyer, Field: domain.AddressCompanyName, Value: "Bharat Supplies"})
	apply(domain.SetAddressField{Party: domain.PartyBuyer, Field: domain.AddressGSTIN, Value: "29BBBBB1111B2Z6"})
	view := svc.Get(ctx)
	id := view.Draft.Items[0].ID
	apply(domain.SetItemText{ID: id, Field: domain.ItemDescription, Value: "Consulting"})
	apply(domain.SetItemNumber{ID: id, Field: domain.ItemQuantity, Value: 2})
	return apply(domain.SetItemNumber{ID: id, Field: domain.ItemRate, Value: 100})
}

func TestStartsWithFreshDefaults(t *testing.T) {
	svc := newTestService(t, testDB(t), &fakeRenderer{})
	view := svc.Get(context.Background())

	assert.Regexp(t, `^REC-\d{6}$`, view.Draft.ReceiptNumber)
	require.Len(t, view.Draft.Items, 1)
	assert.Equal(t, 18.0, view.Draft.Items[0].IGSTPercent)
	assert.Equal(t, 0.0, view.GrandTotal)
}

func TestApplyComputesTotals(t *testing.T) {
	svc := newTestService(t, testDB(t), &fakeRenderer{})
	view := fillValid(t, svc)

	assert.Equal(t, 200.0, view.SubTotal)
	assert.Equal(t, 36.0, view.TotalTax)
	assert.Equal(t, 236.0, view.GrandTotal)
}

func TestDraftSurvivesRestart(t *testing.T) {
	db := testDB(t)
	first := newTestService(t, db, &fakeRenderer{})
	want := fillValid(t, first)

	second := newTestService(t, db, &fakeRenderer{})
	got := second.Get(context.Background())
	assert.Equal(t, want.Draft, got.Draft)
}

func TestCorruptSavedDraftFallsBackToDefaults(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.Exec(
		`INSERT INTO receipt_drafts (storage_key, payload, updated_at) VALUES (?, ?, ?)`,
		repository.StorageKey, `{broken`, time.Now().UTC(),
	).Error)

	svc := newTestService(t, db, &fakeRenderer{})
	view := svc.Get(context.Background())
	require.Len(t, view.Draft.Items, 1)
	assert.Regexp(t, `^REC-\d{6}$`, view.Draft.ReceiptNumber)
}

func TestEditingSurvivesBrokenStorage(t *testing.T) {
	db := testDB(t)
	svc := newTestService(t, db, &fakeRenderer{})
	require.NoError(t, db.Exec(`DROP TABLE receipt_drafts`).Error)

	view, err := svc.Apply(context.Background(), domain.SetField{Field: domain.FieldNotes, Value: "still works"})
	require.NoError(t, err)
	assert.Equal(t, "still works", view.Draft.Notes)
}

func TestApplyNilUpdate(t *testing.T) {
	svc := newTestService(t, testDB(t), &fakeRenderer{})
	_, err := svc.Apply(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidUpdate)
}

func TestResetClearsPersistedDraft(t *testing.T) {
	db := testDB(t)
	svc := newTestService(t, db, &fakeRenderer{})
	fillValid(t, svc)

	view := svc.Reset(context.Background())
	require.Len(t, view.Draft.Items, 1)
	assert.Empty(t, view.Draft.Seller.CompanyName)
	assert.Equal(t, 1.0, view.Draft.Items[0].Quantity)
	assert.Equal(t, 0.0, view.Draft.Items[0].Rate)
	assert.Equal(t, 18.0, view.Draft.Items[0].IGSTPercent)

	saved, err := repository.Provide().Load(context.Background(), db)
	require.NoError(t, err)
	assert.Nil(t, saved)
}

func TestExportBlockedByValidation(t *testing.T) {
	renderer := &fakeRenderer{data: []byte("%PDF-fake")}
	svc := newTestService(t, testDB(t), renderer)

	_, err := svc.Export(context.Background())
	assert.ErrorIs(t, err, domain.ErrCompanyNameMissing)
}

func TestExportSuccess(t *testing.T) {
	renderer := &fakeRenderer{data: []byte("%PDF-fake")}
	svc := newTestService(t, testDB(t), renderer)
	view := fillValid(t, svc)

	result, err := svc.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, view.Draft.ReceiptNumber+".pdf", result.Filename)
	assert.Equal(t, []byte("%PDF-fake"), result.Data)
}

func TestExportUppercasesGSTIN(t *testing.T) {
	renderer := &fakeRenderer{data: []byte("%PDF-fake")}
	svc := newTestService(t, testDB(t), renderer)
	fillValid(t, svc)
	_, err := svc.Apply(context.Background(), domain.SetAddressField{
		Party: domain.PartySeller, Field: domain.AddressGSTIN, Value: "22aaaaa0000a1z5",
	})
	require.NoError(t, err)

	_, err = svc.Export(context.Background())
	assert.NoError(t, err)

	// validation normalized a copy; the stored draft keeps the user's input
	assert.Equal(t, "22aaaaa0000a1z5", svc.Get(context.Background()).Draft.Seller.GSTIN)
}

func TestExportRendererFailureIsAtomic(t *testing.T) {
	renderer := &fakeRenderer{err: errors.New("boom")}
	svc := newTestService(t, testDB(t), renderer)
	fillValid(t, svc)

	result, err := svc.Export(context.Background())
	assert.ErrorIs(t, err, domain.ErrExportFailed)
	assert.Empty(t, result.Data)
	assert.Empty(t, result.Filename)
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "REC-123456.pdf", exportFilename("REC-123456"))
	assert.Equal(t, "rec-12-34.pdf", exportFilename("REC 12/34"))
	assert.Equal(t, "receipt.pdf", exportFilename("   "))
}
