package repository

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/rasidhq/rasid/internal/receipt/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func testDraft(t *testing.T) domain.ReceiptDraft {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	draft := domain.NewDraft(node, time.Now(), domain.Defaults{})
	draft.Seller.CompanyName = "Acme Traders"
	draft.Seller.GSTIN = "22AAAAA0000A1Z5"
	draft.Notes = "thanks"
	return draft
}

func TestSaveLoadRoundTrip(t *testing.T) {
	db := testDB(t)
	repo := Provide()
	ctx := context.Background()
	draft := testDraft(t)

	require.NoError(t, repo.Save(ctx, db, draft))

	loaded, err := repo.Load(ctx, db)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, draft, *loaded)
}

func TestSaveOverwritesWholesale(t *testing.T) {
	db := testDB(t)
	repo := Provide()
	ctx := context.Background()

	first := testDraft(t)
	require.NoError(t, repo.Save(ctx, db, first))

	second := first
	second.Notes = "updated"
	require.NoError(t, repo.Save(ctx, db, second))

	loaded, err := repo.Load(ctx, db)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "updated", loaded.Notes)

	var count int64
	require.NoError(t, db.Table("receipt_drafts").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestLoadMissingReturnsNil(t *testing.T) {
	db := testDB(t)
	loaded, err := Provide().Load(context.Background(), db)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestLoadCorruptPayloadReturnsError(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.Exec(
		`INSERT INTO receipt_drafts (storage_key, payload, updated_at) VALUES (?, ?, ?)`,
		StorageKey, `{not json`, time.Now().UTC(),
	).Error)

	loaded, err := Provide().Load(context.Background(), db)
	assert.Error(t, err)
	assert.Nil(t, loaded)
}

func TestClear(t *testing.T) {
	db := testDB(t)
	repo := Provide()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, db, testDraft(t)))
	require.NoError(t, repo.Clear(ctx, db))

	loaded, err := repo.Load(ctx, db)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// clearing an already-empty store is fine
	require.NoError(t, repo.Clear(ctx, db))
}
