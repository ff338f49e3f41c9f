package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("creates product with defaults", func(t *testing.T) {
		product, err := NewProduct("Wool Sweater")
		require.NoError(t, err)

		assert.Equal(t, "Wool Sweater", product.Name)
		assert.True(t, product.PurchasePrice.IsZero())
		assert.True(t, product.SalesPrice.IsZero())
		assert.Empty(t, product.Variants)
		assert.Equal(t, 1, product.GetVersion())
		assert.Len(t, product.GetDomainEvents(), 1)
		assert.Equal(t, EventTypeProductCreated, product.GetDomainEvents()[0].EventType())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewProduct("")
		assert.Error(t, err)
	})
}

func TestProductSetPrices(t *testing.T) {
	t.Run("cascades prices to variants", func(t *testing.T) {
		product, err := NewProduct("Wool Sweater")
		require.NoError(t, err)

		v1, err := NewVariant(product.ID, "M", "Navy", decimal.NewFromInt(10), decimal.NewFromInt(25))
		require.NoError(t, err)
		v2, err := NewVariant(product.ID, "L", "Navy", decimal.NewFromInt(10), decimal.NewFromInt(25))
		require.NoError(t, err)
		require.NoError(t, product.AddVariant(v1))
		require.NoError(t, product.AddVariant(v2))

		err = product.SetPrices(decimal.NewFromInt(12), decimal.NewFromInt(29))
		require.NoError(t, err)

		for _, v := range product.Variants {
			assert.True(t, v.PurchasePrice.Equal(decimal.NewFromInt(12)))
			assert.True(t, v.SalesPrice.Equal(decimal.NewFromInt(29)))
		}
	})

	t.Run("rejects negative prices", func(t *testing.T) {
		product, err := NewProduct("Wool Sweater")
		require.NoError(t, err)

		err = product.SetPrices(decimal.NewFromInt(-1), decimal.NewFromInt(10))
		assert.Error(t, err)
		err = product.SetPrices(decimal.NewFromInt(1), decimal.NewFromInt(-10))
		assert.Error(t, err)
	})

	t.Run("raises price changed event", func(t *testing.T) {
		product, err := NewProduct("Wool Sweater")
		require.NoError(t, err)
		product.ClearDomainEvents()

		err = product.SetPrices(decimal.NewFromInt(12), decimal.NewFromInt(29))
		require.NoError(t, err)

		events := product.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeProductPriceChanged, events[0].EventType())
	})
}

func TestProductVariants(t *testing.T) {
	newProduct := func(t *testing.T) *Product {
		product, err := NewProduct("Wool Sweater")
		require.NoError(t, err)
		return product
	}

	t.Run("adds and removes variants", func(t *testing.T) {
		product := newProduct(t)

		v, err := NewVariant(product.ID, "M", "Navy", decimal.Zero, decimal.Zero)
		require.NoError(t, err)
		require.NoError(t, product.AddVariant(v))
		assert.Equal(t, 1, product.VariantCount())

		require.NoError(t, product.RemoveVariant(v.ID))
		assert.Equal(t, 0, product.VariantCount())
	})

	t.Run("rejects variant of another product", func(t *testing.T) {
		product := newProduct(t)

		v, err := NewVariant(uuid.New(), "M", "Navy", decimal.Zero, decimal.Zero)
		require.NoError(t, err)
		assert.Error(t, product.AddVariant(v))
	})

	t.Run("removing unknown variant fails", func(t *testing.T) {
		product := newProduct(t)
		assert.Error(t, product.RemoveVariant(uuid.New()))
	})

	t.Run("detects existing size and color combination", func(t *testing.T) {
		product := newProduct(t)

		v, err := NewVariant(product.ID, "M", "Navy", decimal.Zero, decimal.Zero)
		require.NoError(t, err)
		require.NoError(t, product.AddVariant(v))

		assert.True(t, product.HasVariantForSize("M", "Navy"))
		assert.False(t, product.HasVariantForSize("L", "Navy"))
		assert.False(t, product.HasVariantForSize("M", "Black"))
	})

	t.Run("sums stock across variants", func(t *testing.T) {
		product := newProduct(t)

		for i, stock := range []int{3, 7} {
			v, err := NewVariant(product.ID, []string{"M", "L"}[i], "Navy", decimal.Zero, decimal.Zero)
			require.NoError(t, err)
			require.NoError(t, v.SetStock(stock))
			require.NoError(t, product.AddVariant(v))
		}
		assert.Equal(t, 10, product.TotalStock())
	})
}

func TestProductEnsureUniqueIdentifiers(t *testing.T) {
	addVariant := func(t *testing.T, p *Product, sku, barcode string) uuid.UUID {
		v, err := NewVariant(p.ID, "M", "Navy", decimal.Zero, decimal.Zero)
		require.NoError(t, err)
		require.NoError(t, v.SetSKU(sku))
		require.NoError(t, v.SetBarcode(barcode))
		require.NoError(t, p.AddVariant(v))
		return v.ID
	}

	t.Run("passes when identifiers are distinct", func(t *testing.T) {
		product, err := NewProduct("Wool Sweater")
		require.NoError(t, err)
		addVariant(t, product, "ATL-00001", "1234567000426")
		addVariant(t, product, "ATL-00002", "1234567000433")

		assert.NoError(t, product.EnsureUniqueIdentifiers())
	})

	t.Run("empty identifiers never collide", func(t *testing.T) {
		product, err := NewProduct("Wool Sweater")
		require.NoError(t, err)
		addVariant(t, product, "", "")
		addVariant(t, product, "", "")

		assert.NoError(t, product.EnsureUniqueIdentifiers())
	})

	t.Run("reports every offender", func(t *testing.T) {
		product, err := NewProduct("Wool Sweater")
		require.NoError(t, err)
		a := addVariant(t, product, "ATL-00001", "111")
		b := addVariant(t, product, "ATL-00001", "222")
		c := addVariant(t, product, "ATL-00003", "222")

		err = product.EnsureUniqueIdentifiers()
		require.Error(t, err)

		var dup *DuplicateIdentifierError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, map[uuid.UUID]string{a: "ATL-00001", b: "ATL-00001"}, dup.SKUs)
		assert.Equal(t, map[uuid.UUID]string{b: "222", c: "222"}, dup.Barcodes)
		assert.Equal(t, []string{"barcode 222", "sku ATL-00001"}, dup.Offenders())
	})
}
