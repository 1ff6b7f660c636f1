package balance_test

import (
	"testing"

	"github.com/katalvlaran/drills/balance"
)

// BenchmarkCheck_Perfect measures a full walk of a perfect depth-14 tree (32767 nodes).
func BenchmarkCheck_Perfect(b *testing.B) {
	root := perfect(14)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !balance.IsSuperbalanced(root) {
			b.Fatal("perfect tree reported unbalanced")
		}
	}
}
