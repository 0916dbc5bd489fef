package jsonfile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/H1dayet/StoreMonitoring/internal/entities"
)

func TestCreateStoreThenLookup(t *testing.T) {
	repo, _ := newTestRepo(t, storesFile)

	created, err := repo.CreateStore(context.Background(), entities.Store{Code: "1407", Name: "OBA-BEYLEQAN 13"})
	require.NoError(t, err)
	require.Equal(t, "1407", created.Code)

	got, err := repo.GetStore(context.Background(), "1407")
	require.NoError(t, err)
	require.Equal(t, "OBA-BEYLEQAN 13", got.Name)
}

func TestCreateStoreDuplicateCode(t *testing.T) {
	repo, _ := newTestRepo(t, storesFile)

	_, err := repo.CreateStore(context.Background(), entities.Store{Code: "1407", Name: "OBA-BEYLEQAN 13"})
	require.NoError(t, err)

	_, err = repo.CreateStore(context.Background(), entities.Store{Code: "1407", Name: "Other"})
	require.ErrorIs(t, err, entities.ErrStoreExists)

	stores, err := repo.ListStores(context.Background())
	require.NoError(t, err)
	require.Len(t, stores, 1)
	require.Equal(t, "1407", stores[0].Code)
}

func TestCreateStoreValidation(t *testing.T) {
	repo, _ := newTestRepo(t, storesFile)

	tests := []struct {
		name    string
		code    string
		store   string
		wantErr error
	}{
		{name: "empty code", code: "  ", store: "Somewhere", wantErr: entities.ErrInvalidArgument},
		{name: "empty name", code: "42", store: "", wantErr: entities.ErrInvalidArgument},
		{name: "non numeric code", code: "A42", store: "Somewhere", wantErr: entities.ErrStoreCodeNotNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.CreateStore(context.Background(), entities.Store{Code: tt.code, Name: tt.store})
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateStoreTrimsInput(t *testing.T) {
	repo, _ := newTestRepo(t, storesFile)

	created, err := repo.CreateStore(context.Background(), entities.Store{Code: " 728 ", Name: " OBA-SHIRVAN 11 "})
	require.NoError(t, err)
	require.Equal(t, "728", created.Code)
	require.Equal(t, "OBA-SHIRVAN 11", created.Name)
}

func TestListStoresNumericAwareOrdering(t *testing.T) {
	repo, _ := newTestRepo(t, storesFile)

	for _, code := range []string{"100", "99", "1407", "5"} {
		_, err := repo.CreateStore(context.Background(), entities.Store{Code: code, Name: "Store " + code})
		require.NoError(t, err)
	}

	stores, err := repo.ListStores(context.Background())
	require.NoError(t, err)

	codes := make([]string, 0, len(stores))
	for _, s := range stores {
		codes = append(codes, s.Code)
	}
	require.Equal(t, []string{"5", "99", "100", "1407"}, codes)
}

func TestDeleteStore(t *testing.T) {
	repo, _ := newTestRepo(t, storesFile)

	_, err := repo.CreateStore(context.Background(), entities.Store{Code: "728", Name: "OBA-SHIRVAN 11"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteStore(context.Background(), "728"))

	_, err = repo.GetStore(context.Background(), "728")
	require.ErrorIs(t, err, entities.ErrStoreNotFound)

	err = repo.DeleteStore(context.Background(), "728")
	require.ErrorIs(t, err, entities.ErrStoreNotFound)
}

func TestStoresRoundTripThroughDisk(t *testing.T) {
	repo, dir := newTestRepo(t, storesFile)

	_, err := repo.CreateStore(context.Background(), entities.Store{Code: "1407", Name: "OBA-BEYLEQAN 13"})
	require.NoError(t, err)

	reloaded, err := reopen(t, dir).ListStores(context.Background())
	require.NoError(t, err)
	require.Len(t, reloaded, 1)
	require.Equal(t, entities.Store{Code: "1407", Name: "OBA-BEYLEQAN 13"}, reloaded[0])
}
