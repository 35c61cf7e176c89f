package naming

import (
	"fmt"
	"testing"

	"github.com/osse101/SkinBot_Go/internal/catalog"
	"github.com/osse101/SkinBot_Go/internal/domain"
)

func benchCatalog(b *testing.B, n int) *catalog.Catalog {
	b.Helper()
	skins := make([]domain.Skin, n)
	for i := range skins {
		skins[i] = domain.Skin{ID: i, Name: fmt.Sprintf("Skin Number %d Variant", i), Value: "3"}
	}
	c, err := catalog.New(skins)
	if err != nil {
		b.Fatal(err)
	}
	return c
}

// BenchmarkResolveItem_Uncached measures a full scan over the catalog
func BenchmarkResolveItem_Uncached(b *testing.B) {
	c := benchCatalog(b, 2000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// A fresh resolver per iteration keeps the memo cold
		b.StopTimer()
		r, _ := NewResolver(c, 1)
		b.StartTimer()
		r.ResolveItem("skin numbr 1500 variant")
	}
}

func BenchmarkResolveItem_Cached(b *testing.B) {
	r, _ := NewResolver(benchCatalog(b, 2000), 0)
	r.ResolveItem("skin numbr 1500 variant")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.ResolveItem("skin numbr 1500 variant")
	}
}

func BenchmarkTransliterate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Transliterate("Жёлтый щит с ящерицей")
	}
}
