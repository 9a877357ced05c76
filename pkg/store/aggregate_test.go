package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"agbrain/entities"
	"agbrain/pkg/store"
	"agbrain/pkg/testutil"
)

func seedFarms(t *testing.T, db *gorm.DB, farms ...entities.Farm) {
	t.Helper()
	for i := range farms {
		require.NoError(t, db.Create(&farms[i]).Error)
	}
}

func TestCount(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)

	n, err := store.Count(ctx, db, &entities.Farm{})
	require.NoError(t, err)
	assert.Zero(t, n)

	seedFarms(t, db, entities.Farm{State: "SP"}, entities.Farm{State: "MG"}, entities.Farm{State: "RJ"}, entities.Farm{State: "MG"})
	n, err = store.Count(ctx, db, &entities.Farm{})
	require.NoError(t, err)
	assert.EqualValues(t, 4, n)
}

func TestSumSingleColumn(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	for i := 0; i < 5; i++ {
		seedFarms(t, db, entities.Farm{TotalArea: 100})
	}

	sums, err := store.Sum(ctx, db, &entities.Farm{}, "total_area")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"total_area": 500}, sums)
}

func TestSumMultipleColumns(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	for i := 0; i < 5; i++ {
		seedFarms(t, db, entities.Farm{TotalArea: 100, ArableArea: 70, VegetationArea: 30})
	}

	sums, err := store.Sum(ctx, db, &entities.Farm{}, "arable_area", "vegetation_area")
	require.NoError(t, err)
	assert.InDelta(t, 350, sums["arable_area"], 1e-9)
	assert.InDelta(t, 150, sums["vegetation_area"], 1e-9)
}

func TestSumOfEmptyTableIsZero(t *testing.T) {
	db := testutil.NewDB(t)

	sums, err := store.Sum(context.Background(), db, &entities.Farm{}, "total_area", "arable_area")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"total_area": 0, "arable_area": 0}, sums)
}

func TestSumRejectsOddColumnNames(t *testing.T) {
	db := testutil.NewDB(t)

	_, err := store.Sum(context.Background(), db, &entities.Farm{}, "total_area); DROP TABLE farms; --")
	assert.ErrorContains(t, err, "invalid column name")
	assert.True(t, db.Migrator().HasTable("farms"))
}

func TestGroupCountBy(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	seedFarms(t, db,
		entities.Farm{State: "SP"},
		entities.Farm{State: "MG"},
		entities.Farm{State: "MG"},
		entities.Farm{State: "MG"},
		entities.Farm{State: "RJ"},
	)

	groups, err := store.GroupCountBy(ctx, db, &entities.Farm{}, "state")
	require.NoError(t, err)
	assert.ElementsMatch(t, []store.GroupCount{
		{Key: "SP", Count: 1},
		{Key: "MG", Count: 3},
		{Key: "RJ", Count: 1},
	}, groups)
}

func TestGroupCountByEmpty(t *testing.T) {
	groups, err := store.GroupCountBy(context.Background(), testutil.NewDB(t), &entities.Crop{}, "name")
	require.NoError(t, err)
	assert.Empty(t, groups)
}
