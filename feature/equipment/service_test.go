package equipment_test

import (
	"testing"

	"github.com/Kappa-h/fibulopedia/core/content"
	"github.com/Kappa-h/fibulopedia/core/content/contenttest"
	"github.com/Kappa-h/fibulopedia/feature/equipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T) *equipment.Service {
	t.Helper()
	return equipment.NewService(contenttest.NewStore(t), zap.NewNop())
}

func intPtr(n int) *int { return &n }

func names(items []content.Equipment) []string {
	out := make([]string, len(items))
	for i, e := range items {
		out[i] = e.Name
	}
	return out
}

func TestList(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		name   string
		filter equipment.Filter
		want   []string
	}{
		{"All", equipment.Filter{}, []string{"Dragon Shield", "Steel Helmet"}},
		{"Slot", equipment.Filter{Slot: "shield"}, []string{"Dragon Shield"}},
		{"Query", equipment.Filter{Query: "cyclops"}, []string{"Steel Helmet"}},
		{"MinArmor", equipment.Filter{MinArmor: intPtr(10)}, []string{"Dragon Shield"}},
		{"MaxArmor", equipment.Filter{MaxArmor: intPtr(10)}, []string{"Steel Helmet"}},
		{"SortArmor", equipment.Filter{Sort: "armor"}, []string{"Dragon Shield", "Steel Helmet"}},
		{"SortWeight", equipment.Filter{Sort: "weight"}, []string{"Steel Helmet", "Dragon Shield"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := svc.List(tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(items))
		})
	}
}

func TestList_CollectionUnavailable(t *testing.T) {
	store := contenttest.NewStoreWithout(t, "equipment.json")
	svc := equipment.NewService(store, zap.NewNop())

	_, err := svc.List(equipment.Filter{})
	assert.ErrorIs(t, err, content.ErrMissing)
}

func TestGet(t *testing.T) {
	svc := newService(t)

	e, err := svc.Get("dragon-shield")
	require.NoError(t, err)
	assert.Equal(t, "equipment_001", e.ID)
	assert.Equal(t, 31, e.Armor)

	_, err = svc.Get("golden-boots")
	assert.ErrorIs(t, err, content.ErrNotFound)
}

func TestSlots(t *testing.T) {
	svc := newService(t)

	slots, err := svc.Slots()
	require.NoError(t, err)
	assert.Equal(t, []string{"helmet", "shield"}, slots)
}
