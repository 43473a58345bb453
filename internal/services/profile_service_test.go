package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"metacatalog/internal/domain"
	"metacatalog/internal/models"
)

type profileFixture struct {
	svc         *ProfileService
	profileRepo *fakeProfileRepo
	tableRepo   *fakeTableRepo
	generator   *fakeGenerator
}

func newProfileFixture() *profileFixture {
	profileRepo := newFakeProfileRepo()
	tableRepo := newFakeTableRepo()
	generator := &fakeGenerator{html: "<html>report</html>", rows: 42, cols: 3}
	return &profileFixture{
		svc:         NewProfileService(profileRepo, tableRepo, generator, zap.NewNop().Sugar()),
		profileRepo: profileRepo,
		tableRepo:   tableRepo,
		generator:   generator,
	}
}

func TestProfileGeneratesWhenMissing(t *testing.T) {
	f := newProfileFixture()
	f.tableRepo.physical[physicalKey("billing_db", "invoices")] = true
	f.profileRepo.hash = "abc123"

	result, err := f.svc.GetOrGenerateProfile(context.Background(), &ProfileRequest{
		SchemaName: "billing_db", TableName: "invoices",
	})
	require.NoError(t, err)
	assert.False(t, result.IsCached)
	assert.Equal(t, "<html>report</html>", result.HTML)
	assert.Equal(t, int64(42), result.RowCount)
	assert.Equal(t, 1, f.generator.calls)

	stored := f.profileRepo.stored[physicalKey("billing_db", "invoices")]
	require.NotNil(t, stored)
	assert.Equal(t, "abc123", stored.SampleHash)
}

func TestProfileServesCacheWhenHashMatches(t *testing.T) {
	f := newProfileFixture()
	f.tableRepo.physical[physicalKey("billing_db", "invoices")] = true
	f.profileRepo.hash = "abc123"
	f.profileRepo.stored[physicalKey("billing_db", "invoices")] = &models.TableProfile{
		SchemaName:  "billing_db",
		TableName:   "invoices",
		SampleHash:  "abc123",
		ReportHTML:  "<html>cached</html>",
		RowCount:    42,
		ColumnCount: 3,
		GeneratedAt: time.Now().Add(-time.Hour),
	}

	result, err := f.svc.GetOrGenerateProfile(context.Background(), &ProfileRequest{
		SchemaName: "billing_db", TableName: "invoices",
	})
	require.NoError(t, err)
	assert.True(t, result.IsCached)
	assert.Equal(t, "<html>cached</html>", result.HTML)
	assert.Zero(t, f.generator.calls, "cache hit must not regenerate")
}

func TestProfileRegeneratesWhenHashDiffers(t *testing.T) {
	f := newProfileFixture()
	f.tableRepo.physical[physicalKey("billing_db", "invoices")] = true
	f.profileRepo.hash = "def456"
	f.profileRepo.stored[physicalKey("billing_db", "invoices")] = &models.TableProfile{
		SchemaName: "billing_db",
		TableName:  "invoices",
		SampleHash: "abc123",
		ReportHTML: "<html>stale</html>",
	}

	result, err := f.svc.GetOrGenerateProfile(context.Background(), &ProfileRequest{
		SchemaName: "billing_db", TableName: "invoices",
	})
	require.NoError(t, err)
	assert.False(t, result.IsCached)
	assert.Equal(t, "<html>report</html>", result.HTML)
	assert.Equal(t, 1, f.generator.calls)
	assert.Equal(t, "def456", f.profileRepo.stored[physicalKey("billing_db", "invoices")].SampleHash)
}

func TestProfileUnknownTable(t *testing.T) {
	f := newProfileFixture()

	_, err := f.svc.GetOrGenerateProfile(context.Background(), &ProfileRequest{
		SchemaName: "billing_db", TableName: "ghost",
	})
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestProfileRejectsBadIdentifiers(t *testing.T) {
	f := newProfileFixture()

	_, err := f.svc.GetOrGenerateProfile(context.Background(), &ProfileRequest{
		SchemaName: "billing_db", TableName: "invoices; DROP TABLE lobs",
	})
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
}
