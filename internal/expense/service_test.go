package expense

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anindyar/dompet/internal/common"
	"github.com/anindyar/dompet/internal/service"
	"github.com/anindyar/dompet/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	store, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))

	return NewService(store)
}

func TestCreate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	exp, err := svc.Create(ctx, CreateParams{
		Date:        "2024-05-01",
		Category:    "Makanan & Minuman",
		Amount:      "Rp 25.000",
		Description: "  Makan siang  ",
	})
	require.NoError(t, err)

	assert.Positive(t, exp.ID)
	assert.Equal(t, "2024-05-01", exp.DateString())
	assert.InDelta(t, 25.0, exp.Amount, 0.001)
	assert.Equal(t, "Makan siang", exp.Description)
}

func TestCreate_UnknownCategoryAllowed(t *testing.T) {
	svc := newTestService(t)

	exp, err := svc.Create(context.Background(), CreateParams{
		Date:     "2024-05-01",
		Category: "Kategori Baru",
		Amount:   "10000",
	})
	require.NoError(t, err)
	assert.Equal(t, "Kategori Baru", exp.Category)
}

func TestCreate_Validation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		params  CreateParams
		wantMsg string
	}{
		{
			name:    "bad date",
			params:  CreateParams{Date: "01/05/2024", Category: "Belanja", Amount: "1000"},
			wantMsg: "invalid date format, use YYYY-MM-DD",
		},
		{
			name:    "zero amount",
			params:  CreateParams{Date: "2024-05-01", Category: "Belanja", Amount: "0"},
			wantMsg: "invalid amount, must be a positive number",
		},
		{
			name:    "negative amount",
			params:  CreateParams{Date: "2024-05-01", Category: "Belanja", Amount: "-100"},
			wantMsg: "invalid amount, must be a positive number",
		},
		{
			name:    "empty category",
			params:  CreateParams{Date: "2024-05-01", Category: "   ", Amount: "1000"},
			wantMsg: "category cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.params)
			require.Error(t, err)

			var userErr *common.UserError
			require.True(t, errors.As(err, &userErr))
			assert.Equal(t, tt.wantMsg, userErr.UserMessage)
			assert.ErrorIs(t, err, common.ErrInvalidInput)
		})
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc := newTestService(t)

	err := svc.Update(context.Background(), 9999, CreateParams{
		Date:     "2024-05-01",
		Category: "Belanja",
		Amount:   "1000",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	svc := newTestService(t)

	err := svc.Delete(context.Background(), 9999)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdateAndDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	exp, err := svc.Create(ctx, CreateParams{
		Date:     "2024-05-01",
		Category: "Belanja",
		Amount:   "1000",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Update(ctx, exp.ID, CreateParams{
		Date:     "2024-05-02",
		Category: "Hiburan",
		Amount:   "2000",
	}))

	history, err := svc.History(ctx, service.ExpenseFilter{Category: "Hiburan"})
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "2024-05-02", history[0].DateString())

	require.NoError(t, svc.Delete(ctx, exp.ID))

	history, err = svc.History(ctx, service.ExpenseFilter{})
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestCategoryNames(t *testing.T) {
	svc := newTestService(t)

	names, err := svc.CategoryNames(context.Background())
	require.NoError(t, err)
	assert.Len(t, names, 8)
	assert.Contains(t, names, "Makanan & Minuman")
	assert.Contains(t, names, "Lain-lain")
}
