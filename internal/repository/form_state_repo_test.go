package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"path"
	"testing"
	"time"

	"spine-intake/internal/domain"
	"spine-intake/internal/store"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeKV struct {
	data map[string]string
	ttls map[string]time.Duration
	err  error
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeKV) Get(ctx context.Context, key string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	v, ok := f.data[key]
	if !ok {
		return "", store.ErrMiss
	}
	return v, nil
}

func (f *fakeKV) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if f.err != nil {
		return f.err
	}
	f.data[key] = value
	f.ttls[key] = ttl
	return nil
}

func (f *fakeKV) Del(ctx context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func (f *fakeKV) ScanKeys(ctx context.Context, pattern string) ([]string, error) {
	keys := make([]string, 0, len(f.data))
	for k := range f.data {
		if ok, _ := path.Match(pattern, k); ok {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func sampleAreas() []domain.PainArea {
	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	return []domain.PainArea{
		{
			ID: "a1", Region: "L4 Vertebra", Intensity: 7,
			Coordinates: domain.ReferencePoint{X: 120, Y: 310},
			OriginView:  domain.ViewBack, SourceGroupID: 104, CreatedAt: created,
		},
		{
			ID: "a2", Region: "Left Knee", Intensity: 3,
			Coordinates: domain.ReferencePoint{X: 90, Y: 520},
			OriginView:  domain.ViewFront, SourceGroupID: 14, FreeText: "after running", CreatedAt: created,
		},
	}
}

func TestMemoryFormStateRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryFormStateRepo()

	got, err := repo.LoadPainAreas(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, got)

	areas := sampleAreas()
	require.NoError(t, repo.SavePainAreas(ctx, "s1", areas))
	areas[0].Intensity = 1 // 调用方后续修改不影响已保存数据

	got, err = repo.LoadPainAreas(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 7, got[0].Intensity)

	ids, err := repo.ListSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"s1"}, ids)

	require.NoError(t, repo.DeleteSession(ctx, "s1"))
	got, _ = repo.LoadPainAreas(ctx, "s1")
	assert.Empty(t, got)
}

func TestRedisFormStateRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	repo := NewRedisFormStateRepo(kv, 2*time.Hour, zap.NewNop())

	got, err := repo.LoadPainAreas(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, repo.SavePainAreas(ctx, "s1", sampleAreas()))
	assert.Equal(t, 2*time.Hour, kv.ttls["painmap:session:s1:pain-areas"])

	got, err = repo.LoadPainAreas(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, sampleAreas(), got)

	require.NoError(t, repo.SavePainAreas(ctx, "s2", nil))
	assert.Equal(t, "[]", kv.data[SessionKey("s2")])
	kv.data["unrelated"] = "x"

	ids, err := repo.ListSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"s1", "s2"}, ids)

	require.NoError(t, repo.DeleteSession(ctx, "s1"))
	_, ok := kv.data[SessionKey("s1")]
	assert.False(t, ok)
}

func TestRedisFormStateRepo_Errors(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	repo := NewRedisFormStateRepo(kv, time.Hour, nil)

	kv.data[SessionKey("bad")] = "{not json"
	_, err := repo.LoadPainAreas(ctx, "bad")
	assert.Error(t, err)

	boom := errors.New("connection refused")
	kv.err = boom
	_, err = repo.LoadPainAreas(ctx, "s1")
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, repo.SavePainAreas(ctx, "s1", sampleAreas()), boom)
}

func TestRedisFormStateRepo_MigratesLegacyNotes(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	repo := NewRedisFormStateRepo(kv, time.Hour, nil)
	kv.data[SessionKey("old")] = `[{"id":"x","region":"Sacrum S1","intensity":6,"coordinates":{"x":1,"y":2},"notes":"Back view, group 105: stabbing"}]`

	got, err := repo.LoadPainAreas(ctx, "old")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.ViewBack, got[0].OriginView)
	assert.Equal(t, 105, got[0].SourceGroupID)
	assert.Equal(t, "stabbing", got[0].FreeText)
}

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *PostgresFormStateRepo) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewPostgresFormStateRepo(db, zap.NewNop())
	return db, mock, repo
}

func TestPostgresFormStateRepo_Load(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	b, err := json.Marshal(sampleAreas())
	require.NoError(t, err)
	mock.ExpectQuery(`SELECT pain_areas FROM assessments WHERE session_id = \$1`).
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"pain_areas"}).AddRow(b))

	got, err := repo.LoadPainAreas(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, sampleAreas(), got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresFormStateRepo_LoadMissingSession(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT pain_areas FROM assessments`).
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	got, err := repo.LoadPainAreas(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresFormStateRepo_LoadLegacyRow(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	legacy := `[{"id":"x","region":"Chest","intensity":4,"coordinates":{"x":10,"y":20},"notes":"Clicked on front view, group 5"}]`
	mock.ExpectQuery(`SELECT pain_areas FROM assessments`).
		WithArgs("legacy").
		WillReturnRows(sqlmock.NewRows([]string{"pain_areas"}).AddRow([]byte(legacy)))

	got, err := repo.LoadPainAreas(context.Background(), "legacy")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.ViewFront, got[0].OriginView)
	assert.Equal(t, 5, got[0].SourceGroupID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresFormStateRepo_Save(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO assessments`).
		WithArgs("s1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SavePainAreas(context.Background(), "s1", sampleAreas()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresFormStateRepo_SaveMissingTable(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	pqErr := &pq.Error{Code: "42P01", Message: `relation "assessments" does not exist`}
	mock.ExpectExec(`INSERT INTO assessments`).
		WithArgs("s1", "[]").
		WillReturnError(pqErr)

	err := repo.SavePainAreas(context.Background(), "s1", nil)
	require.Error(t, err)
	var got *pq.Error
	assert.True(t, errors.As(err, &got))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresFormStateRepo_ListAndDelete(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT session_id FROM assessments`).
		WillReturnRows(sqlmock.NewRows([]string{"session_id"}).AddRow("s1").AddRow("s2"))
	mock.ExpectExec(`DELETE FROM assessments WHERE session_id = \$1`).
		WithArgs("s1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	ids, err := repo.ListSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"s1", "s2"}, ids)
	require.NoError(t, repo.DeleteSession(context.Background(), "s1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresFormStateRepo_EnsureSchema(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS assessments`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
