package repositories

import (
	"context"
	"testing"

	"rigtrack/internal/dto"
	"rigtrack/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEquipmentTypeRepository_Integration_UpdateToHardware(t *testing.T) {
	require.NotNil(t, testPool, "testPool is not initialized")
	cleanupTables(t, testPool)

	repo := NewEquipmentTypeRepository(testPool)
	ctx := context.Background()

	// The seeded rope type is soft goods with a 10 year lifespan. Flipping
	// it to hardware must clear the lifespan in the same statement, the
	// soft_goods_lifespan constraint forbids the halfway state.
	err := repo.UpdateEquipmentType(ctx, "R", dto.UpdateEquipmentTypeDTO{
		IsSoftGoods: utils.BoolPtr(false),
	})
	require.NoError(t, err)

	et, err := repo.FindEquipmentType(ctx, "R")
	require.NoError(t, err)
	assert.False(t, et.IsSoftGoods)
	assert.Nil(t, et.LifespanYears)
}

func TestEquipmentTypeRepository_Integration_UpdateLifespan(t *testing.T) {
	cleanupTables(t, testPool)

	repo := NewEquipmentTypeRepository(testPool)
	ctx := context.Background()

	err := repo.UpdateEquipmentType(ctx, "R", dto.UpdateEquipmentTypeDTO{
		LifespanYears: utils.IntPtr(15),
	})
	require.NoError(t, err)

	et, err := repo.FindEquipmentType(ctx, "R")
	require.NoError(t, err)
	assert.True(t, et.IsSoftGoods)
	require.NotNil(t, et.LifespanYears)
	assert.Equal(t, 15, *et.LifespanYears)
}
