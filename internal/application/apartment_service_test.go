package application

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nestorahq/nestora-api/internal/domain/entity"
)

// nine units with rents 800, 900, ..., 1600 in insertion order
func listingFixture() *ApartmentService {
	apts := make([]entity.Apartment, 0, 9)
	for i := 0; i < 9; i++ {
		apts = append(apts, entity.Apartment{
			ID:          fmt.Sprintf("apt-%d", i+1),
			FloorNo:     i/3 + 1,
			BlockName:   "A",
			ApartmentNo: fmt.Sprintf("A%d", i+1),
			Rent:        800 + i*100,
			Available:   true,
		})
	}
	return NewApartmentService(newFakeApartmentRepo(apts...), nil, "", nil, "", nil)
}

func TestApartmentListFirstPage(t *testing.T) {
	svc := listingFixture()

	items, total, err := svc.List(context.Background(), 1, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(9), total)
	require.Len(t, items, PageSize)
	assert.Equal(t, "apt-1", items[0].ID)
	assert.Equal(t, "apt-6", items[5].ID)
}

func TestApartmentListSecondPage(t *testing.T) {
	svc := listingFixture()

	items, total, err := svc.List(context.Background(), 2, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(9), total)
	require.Len(t, items, 3)
	assert.Equal(t, "apt-7", items[0].ID)
	assert.Equal(t, "apt-9", items[2].ID)
}

func TestApartmentListPageOutOfRange(t *testing.T) {
	svc := listingFixture()

	items, total, err := svc.List(context.Background(), 3, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(9), total)
	assert.Empty(t, items)
}

// page 0 (and anything below 1) is treated as the first page
func TestApartmentListPageFloor(t *testing.T) {
	svc := listingFixture()

	items, _, err := svc.List(context.Background(), 0, 0, 0)
	require.NoError(t, err)
	require.Len(t, items, PageSize)
	assert.Equal(t, "apt-1", items[0].ID)
}

func TestApartmentListRentBoundsInclusive(t *testing.T) {
	svc := listingFixture()

	items, total, err := svc.List(context.Background(), 1, 900, 1100)
	require.NoError(t, err)

	assert.Equal(t, int64(3), total)
	require.Len(t, items, 3)
	assert.Equal(t, 900, items[0].Rent)
	assert.Equal(t, 1100, items[2].Rent)
}

// the count reflects the filter, not the whole inventory
func TestApartmentListFilteredTotal(t *testing.T) {
	svc := listingFixture()

	items, total, err := svc.List(context.Background(), 1, 1500, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(2), total)
	assert.Len(t, items, 2)
}
